// SPDX-License-Identifier: MPL-2.0

// Package toolchain models the single external capability the pipeline is
// built on: run a tool as a subprocess in a working directory, block until
// it exits, and hand back its exit code with stdout and stderr captured as
// text. Nothing is streamed and nothing is interactive.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"quickbind/pkg/types"

	"mvdan.cc/sh/v3/syntax"
)

// ErrToolNotFound is the sentinel error wrapped by ToolNotFoundError.
var ErrToolNotFound = errors.New("tool not found")

type (
	// Tool identifies an external binary, either as a bare name resolved
	// via PATH (the default) or as an explicit path from configuration.
	Tool string

	// ToolNotFoundError is returned when a Tool cannot be located.
	ToolNotFoundError struct {
		Tool Tool
	}

	// Invocation is one complete subprocess request: which tool, its
	// arguments, and the directory it runs in. The environment is always
	// inherited from the current process.
	Invocation struct {
		Tool    Tool
		Args    []string
		WorkDir types.FilesystemPath
	}

	// Invoker runs invocations. The production implementation spawns real
	// processes; tests substitute scripted invokers.
	Invoker interface {
		// Invoke blocks until the tool exits and never returns nil.
		// A non-nil Result.Error means the tool could not be run at all;
		// a non-zero Result.ExitCode means it ran and failed.
		Invoke(ctx context.Context, inv Invocation) *Result
	}
)

// Default tool names, resolved via PATH unless configuration overrides them.
const (
	CargoDefault    Tool = "cargo"
	CbindgenDefault Tool = "cbindgen"
)

// String returns the tool name or path.
func (t Tool) String() string { return string(t) }

// IsValid returns whether the Tool is valid.
// A valid tool is a non-empty, non-whitespace name or path.
func (t Tool) IsValid() (bool, []error) {
	if strings.TrimSpace(string(t)) == "" {
		return false, []error{fmt.Errorf("%w: tool name must be non-empty", ErrToolNotFound)}
	}
	return true, nil
}

// Available reports whether the tool can be located right now, via PATH
// lookup for bare names or directly for explicit paths.
func (t Tool) Available() bool {
	_, err := exec.LookPath(string(t))
	return err == nil
}

// Error implements the error interface for ToolNotFoundError.
func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%q not found on PATH", e.Tool)
}

// Unwrap returns ErrToolNotFound for errors.Is() compatibility.
func (e *ToolNotFoundError) Unwrap() error { return ErrToolNotFound }

// String renders the invocation as a copy-pasteable shell command line,
// with each word quoted for POSIX shells. Used in verbose diagnostics.
func (i Invocation) String() string {
	words := make([]string, 0, 1+len(i.Args))
	words = append(words, string(i.Tool))
	words = append(words, i.Args...)
	for idx, w := range words {
		if q, err := syntax.Quote(w, syntax.LangPOSIX); err == nil {
			words[idx] = q
		}
	}
	return strings.Join(words, " ")
}
