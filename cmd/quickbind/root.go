// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the quickbind CLI entry point.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"quickbind/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd is the whole CLI: invoking quickbind with no arguments runs
	// the full header generation pipeline.
	rootCmd = &cobra.Command{
		Use:   "quickbind",
		Short: "Regenerate the dropbear C header from expanded Rust macros",
		Args:  cobra.NoArgs,
		Long: TitleStyle.Render("quickbind") + SubtitleStyle.Render(" - Regenerate the dropbear C header from expanded Rust macros") + `

quickbind rebuilds headers/dropbear.h in three strictly sequential
steps: it expands the eucalyptus-core crate's macros with cargo expand,
stages the expanded source under target/generated/, then feeds the
staged file to cbindgen.

The workspace root is derived from where the quickbind binary lives: a
binary kept in the workspace's scripts/ directory resolves to the
directory above it, a binary anywhere else resolves to its own
directory. Both tools run with the root as their working directory.

` + SubtitleStyle.Render("Examples:") + `
  quickbind                 Regenerate headers/dropbear.h
  quickbind --verbose       Same, with stage-by-stage diagnostics
  quickbind --config x.toml Load settings from an explicit file`,
		RunE: runPipeline,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <workspace>/quickbind.toml)")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
