// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quickbind/internal/toolchain"
	"quickbind/pkg/types"
)

// ExpandFailedLabel is the fixed diagnostic heading for macro expansion
// failures.
const ExpandFailedLabel = "cargo expand failed"

// ErrEmptyExpansion is the sentinel error wrapped by EmptyExpansionError.
var ErrEmptyExpansion = errors.New("macro expansion produced no output")

type (
	// MacroExpander runs `cargo expand --lib -p <crate>` in the workspace
	// root and captures the expanded source from stdout. Whitespace-only
	// output counts as failure: cbindgen over an empty file would silently
	// emit a header with no bindings.
	MacroExpander struct {
		Crate   types.CrateName
		Cargo   toolchain.Tool
		Invoker toolchain.Invoker
	}

	// EmptyExpansionError is returned when cargo expand exits zero but
	// produces no source text.
	EmptyExpansionError struct {
		Crate types.CrateName
	}
)

// Name identifies the stage in diagnostics.
func (s *MacroExpander) Name() string { return "expand" }

// Run invokes cargo expand and stores the captured source on the build.
func (s *MacroExpander) Run(ctx context.Context, b *Build) error {
	fmt.Fprintf(b.Out, "Expanding macros for %s...\n", s.Crate)

	inv := toolchain.Invocation{
		Tool:    s.Cargo,
		Args:    []string{"expand", "--lib", "-p", s.Crate.String()},
		WorkDir: b.Workspace.Root(),
	}
	b.Logger.Debug("invoking", "command", inv.String())

	result := s.Invoker.Invoke(ctx, inv)
	if !result.Success() {
		return &ToolError{Tool: s.Cargo, Label: ExpandFailedLabel, Result: result}
	}

	if strings.TrimSpace(result.Stdout) == "" {
		return &EmptyExpansionError{Crate: s.Crate}
	}

	b.ExpandedSource = []byte(result.Stdout)
	b.Logger.Debug("macro expansion captured", "bytes", len(b.ExpandedSource))
	return nil
}

// Error implements the error interface for EmptyExpansionError.
func (e *EmptyExpansionError) Error() string {
	return fmt.Sprintf("macro expansion for crate %q produced no output", e.Crate)
}

// Unwrap returns ErrEmptyExpansion for errors.Is() compatibility.
func (e *EmptyExpansionError) Unwrap() error { return ErrEmptyExpansion }
