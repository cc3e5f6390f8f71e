package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"druim/internal/diagfmt"
	"druim/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.dm",
	Short: "Tokenize a druim source file",
	Long:  `Tokenize breaks a druim source file into its token stream`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	opts, err := pipelineOptions(cmd)
	if err != nil {
		return err
	}

	res, err := driver.Tokenize(path, opts)
	if err != nil {
		return err
	}
	if err := reportDiagnostics(cmd, res.Bag, res.Source, filepath.Dir(path)); err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, diagfmt.DumpTokens(res.Tokens, res.Source))
	return nil
}
