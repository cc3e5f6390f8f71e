package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"druim/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "druim",
	Short:        "Druim language front end and interpreter",
	Long:         `Druim tokenizes, parses, checks and runs druim source files`,
	SilenceUsage: true,
	// Diagnostics are rendered by the commands themselves; Execute
	// only needs the exit code.
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Bool("no-cache", false, "skip the on-disk token cache")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errHadDiagnostics) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
