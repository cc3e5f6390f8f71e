package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"druim/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.dm",
	Short: "Parse a druim source file",
	Long:  `Parse runs the full front end and prints the program's canonical surface form`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	opts, err := pipelineOptions(cmd)
	if err != nil {
		return err
	}

	res, err := driver.Parse(path, opts)
	if err != nil {
		return err
	}
	if err := reportDiagnostics(cmd, res.Bag, res.Source, filepath.Dir(path)); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, res.Program.Surface())
	return nil
}
