package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"druim/internal/diag"
	"druim/internal/diagfmt"
	"druim/internal/driver"
	"druim/internal/project"
	"druim/internal/source"
)

// errHadDiagnostics signals a nonzero exit after the diagnostics have
// already been rendered to stderr.
var errHadDiagnostics = errors.New("diagnostics reported")

// colorEnabled resolves the effective color setting. An explicit
// --color wins; then the DRUIM_ANSI toggle (presence enables, any
// value); then the project manifest's output.color; then terminal
// detection on stderr.
func colorEnabled(cmd *cobra.Command, startDir string) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch flag {
	case "on":
		return true
	case "off":
		return false
	}
	if _, ok := os.LookupEnv("DRUIM_ANSI"); ok {
		return true
	}
	if m, ok, err := project.Load(startDir); err == nil && ok {
		switch m.Config.Output.Color {
		case "on":
			return true
		case "off":
			return false
		}
	}
	return isTerminal(os.Stderr)
}

func pipelineOptions(cmd *cobra.Command) (driver.Options, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	noCache, err := cmd.Root().PersistentFlags().GetBool("no-cache")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	opts := driver.Options{MaxDiagnostics: maxDiagnostics}
	if !noCache {
		// An unusable cache directory degrades to uncached lexing.
		if cache, err := driver.OpenTokenCache("druim"); err == nil {
			opts.Cache = cache
		}
	}
	return opts, nil
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}

// reportDiagnostics renders the bag to stderr and converts collected
// errors into the shared exit sentinel.
func reportDiagnostics(cmd *cobra.Command, bag *diag.Bag, src *source.Source, startDir string) error {
	if bag.Len() > 0 {
		opts := diagfmt.Opts{Color: colorEnabled(cmd, startDir)}
		if err := driver.WriteDiagnostics(os.Stderr, bag, src, opts); err != nil {
			return err
		}
	}
	if bag.HasErrors() {
		return errHadDiagnostics
	}
	return nil
}
