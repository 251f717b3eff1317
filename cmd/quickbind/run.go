// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"quickbind/internal/config"
	"quickbind/internal/issue"
	"quickbind/internal/pipeline"
	"quickbind/internal/toolchain"
	"quickbind/internal/workspace"
	"quickbind/pkg/fspath"
	"quickbind/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runPipeline implements the root command: resolve the workspace from the
// binary's location, load configuration, then run the build stages in order.
// On a stage failure the diagnostic is rendered here and the process exits
// with code 1.
func runPipeline(cmd *cobra.Command, _ []string) error {
	binPath, err := executablePath()
	if err != nil {
		return fmt.Errorf("failed to locate the quickbind binary: %w", err)
	}
	provisionalRoot := workspace.Resolve(binPath)

	cfg := loadConfigOrDefaults(cmd, provisionalRoot)
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	logger := newLogger(verbose)

	// An explicit root from configuration replaces the binary-derived one.
	root := provisionalRoot
	if cfg.Workspace.Root != "" {
		root = types.FilesystemPath(cfg.Workspace.Root)
		if absRoot, absErr := fspath.Abs(root); absErr == nil {
			root = absRoot
		}
	}
	ws := workspace.New(root, cfg.Layout())
	logger.Debug("resolved workspace", "binary", binPath, "root", ws.Root())

	cargo := toolchain.CargoDefault
	if cfg.Expansion.Cargo != "" {
		cargo = toolchain.Tool(cfg.Expansion.Cargo)
	}
	cbindgen := toolchain.CbindgenDefault
	if cfg.Bindings.Cbindgen != "" {
		cbindgen = toolchain.Tool(cfg.Bindings.Cbindgen)
	}

	runner := pipeline.New(pipeline.Options{
		Crate:    cfg.Expansion.Crate,
		Cargo:    cargo,
		Cbindgen: cbindgen,
		Logger:   logger,
	})
	build := pipeline.NewBuild(ws, cmd.OutOrStdout(), logger)

	if runErr := runner.Run(cmd.Context(), build); runErr != nil {
		renderPipelineError(cmd.ErrOrStderr(), runErr, verbose)
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: 1, Err: runErr}
	}

	return nil
}

// executablePath returns the absolute path of the running binary.
func executablePath() (types.FilesystemPath, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return fspath.Abs(types.FilesystemPath(exe))
}

// loadConfigOrDefaults loads configuration, warning and falling back to the
// defaults when loading fails. A broken config file must not stop the build.
func loadConfigOrDefaults(cmd *cobra.Command, workspaceDir types.FilesystemPath) *config.Config {
	cfg, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{
		ConfigFilePath: cfgFile,
		WorkspaceDir:   workspaceDir.String(),
	})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		if verbose {
			if entry := issue.Get(issue.ConfigLoadFailedId); entry != nil {
				if rendered, renderErr := entry.Render("dark"); renderErr == nil {
					fmt.Fprint(cmd.ErrOrStderr(), rendered)
				}
			}
		}
		return config.DefaultConfig()
	}
	return cfg
}

// newLogger builds the diagnostic logger. Stage tracing is logged at debug
// level, so without verbose mode the logger stays silent.
func newLogger(verboseMode bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "quickbind",
	})
	if verboseMode {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
