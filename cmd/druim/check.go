package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"druim/internal/diagfmt"
	"druim/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path]",
	Short: "Check druim source files without running them",
	Long:  `Check parses a file, or every *.dm file under a directory, and reports diagnostics`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "parallel workers for directory checks (0 = all CPUs)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	opts, err := pipelineOptions(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		res, err := driver.Parse(target, opts)
		if err != nil {
			return err
		}
		if err := reportDiagnostics(cmd, res.Bag, res.Source, filepath.Dir(target)); err != nil {
			return err
		}
		checkSummary(cmd, 1, 0)
		return nil
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	results, err := driver.CheckDir(cmd.Context(), target, opts, jobs)
	if err != nil {
		return err
	}

	fmtOpts := diagfmt.Opts{Color: colorEnabled(cmd, target)}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			failed++
			continue
		}
		if r.Result.Bag.Len() > 0 {
			fmt.Fprintf(os.Stderr, "%s:\n", r.Path)
			if err := driver.WriteDiagnostics(os.Stderr, r.Result.Bag, r.Result.Source, fmtOpts); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr)
		}
		if r.Result.Bag.HasErrors() {
			failed++
		}
	}

	checkSummary(cmd, len(results), failed)
	if failed > 0 {
		return errHadDiagnostics
	}
	return nil
}

func checkSummary(cmd *cobra.Command, total, failed int) {
	if quiet(cmd) {
		return
	}
	if failed == 0 {
		fmt.Fprintf(os.Stdout, "%s %d file(s) checked\n", color.GreenString("ok:"), total)
		return
	}
	fmt.Fprintf(os.Stdout, "%s %d of %d file(s) failed\n", color.RedString("fail:"), failed, total)
}
