package main

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"druim/internal/driver"
	"druim/internal/project"
)

const noManifestMessage = "no druim.toml found\nplease specify the file explicitly, e.g.:\n  druim run path/to/main.dm"

var runCmd = &cobra.Command{
	Use:   "run [flags] [file.dm]",
	Short: "Run a druim source file",
	Long:  `Run parses and executes a druim source file; without an argument it runs the project manifest's entry file`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		m, ok, err := project.Load(".")
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(noManifestMessage)
		}
		path = m.EntryPath()
	}

	opts, err := pipelineOptions(cmd)
	if err != nil {
		return err
	}
	res, err := driver.Run(path, opts)
	if err != nil {
		return err
	}
	return reportDiagnostics(cmd, res.Bag, res.Source, filepath.Dir(path))
}
