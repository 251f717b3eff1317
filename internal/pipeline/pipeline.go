// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"fmt"
	"io"

	"quickbind/internal/toolchain"
	"quickbind/internal/workspace"
	"quickbind/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// Build is the execution context threaded through the stages. Stages
	// read the workspace from it and deposit their artifacts on it for the
	// stages after them.
	Build struct {
		Workspace workspace.Workspace

		// ExpandedSource is the captured cargo expand stdout, set by the
		// macro expander and consumed byte-for-byte by the stager.
		ExpandedSource []byte
		// StagedPath is the staged artifact location, set by the stager.
		StagedPath types.FilesystemPath
		// HeaderPath is the generated header location, set by the binding
		// generator on success.
		HeaderPath types.FilesystemPath

		// Out receives user-facing progress lines.
		Out io.Writer
		// Logger receives verbose diagnostics.
		Logger *log.Logger
	}

	// Stage is one fallible step of the build.
	Stage interface {
		// Name identifies the stage in diagnostics.
		Name() string
		// Run executes the stage against the build, mutating it on success.
		Run(ctx context.Context, b *Build) error
	}

	// Runner executes stages strictly in order, stopping at the first
	// failure. The failing stage's error is returned as-is so callers can
	// classify it.
	Runner struct {
		stages []Stage
		logger *log.Logger
	}

	// Options configures New. Crate must be set (callers validate it at the
	// configuration boundary); zero values elsewhere fall back to
	// PATH-resolved tools, a real process invoker, and silent logs.
	Options struct {
		Crate    types.CrateName
		Cargo    toolchain.Tool
		Cbindgen toolchain.Tool
		Invoker  toolchain.Invoker
		Logger   *log.Logger
	}

	// ToolError reports an external tool that was invoked and did not
	// succeed. Label carries the fixed diagnostic heading for the stage;
	// Result carries the tool's captured output for verbatim rendering.
	ToolError struct {
		Tool   toolchain.Tool
		Label  string
		Result *toolchain.Result
	}
)

// NewBuild creates a Build for the given workspace. A nil out discards
// progress lines; a nil logger discards diagnostics.
func NewBuild(ws workspace.Workspace, out io.Writer, logger *log.Logger) *Build {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Build{Workspace: ws, Out: out, Logger: logger}
}

// NewRunner creates a Runner over the given stages. A nil logger discards
// stage tracing.
func NewRunner(logger *log.Logger, stages ...Stage) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{stages: stages, logger: logger}
}

// New assembles the standard three-stage pipeline: macro expansion,
// artifact staging, binding generation.
func New(opts Options) *Runner {
	if opts.Cargo == "" {
		opts.Cargo = toolchain.CargoDefault
	}
	if opts.Cbindgen == "" {
		opts.Cbindgen = toolchain.CbindgenDefault
	}
	if opts.Invoker == nil {
		opts.Invoker = toolchain.NewExecInvoker()
	}
	return NewRunner(opts.Logger,
		&MacroExpander{Crate: opts.Crate, Cargo: opts.Cargo, Invoker: opts.Invoker},
		&ArtifactStager{},
		&BindingGenerator{Cbindgen: opts.Cbindgen, Invoker: opts.Invoker},
	)
}

// Run executes every stage in order against the build. The first stage
// error aborts the run and is returned unchanged.
func (r *Runner) Run(ctx context.Context, b *Build) error {
	for _, stage := range r.stages {
		r.logger.Debug("running stage", "stage", stage.Name())
		if err := stage.Run(ctx, b); err != nil {
			r.logger.Debug("stage failed", "stage", stage.Name(), "error", err)
			return err
		}
		r.logger.Debug("stage finished", "stage", stage.Name())
	}
	return nil
}

// Error implements the error interface for ToolError.
func (e *ToolError) Error() string {
	if e.Result != nil && e.Result.Error != nil {
		return fmt.Sprintf("%s: %v", e.Label, e.Result.Error)
	}
	if e.Result != nil {
		return fmt.Sprintf("%s (exit code %d)", e.Label, e.Result.ExitCode)
	}
	return e.Label
}

// Unwrap exposes the invoker-level cause, if any, so a missing binary can
// be detected with errors.Is(err, toolchain.ErrToolNotFound).
func (e *ToolError) Unwrap() error {
	if e.Result == nil {
		return nil
	}
	return e.Result.Error
}

// Stderr returns the tool's captured stderr, empty if nothing was captured.
func (e *ToolError) Stderr() string {
	if e.Result == nil {
		return ""
	}
	return e.Result.Stderr
}
