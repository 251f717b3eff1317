// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"quickbind/pkg/types"
)

// ExecInvoker runs invocations as real subprocesses via os/exec.
type ExecInvoker struct{}

// NewExecInvoker creates the production invoker.
func NewExecInvoker() *ExecInvoker {
	return &ExecInvoker{}
}

// Invoke runs the tool and captures its output.
func (e *ExecInvoker) Invoke(ctx context.Context, inv Invocation) *Result {
	cmd := exec.CommandContext(ctx, string(inv.Tool), inv.Args...)
	if inv.WorkDir != "" {
		cmd.Dir = inv.WorkDir.String()
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = types.ExitCode(exitErr.ExitCode())
		} else {
			result.ExitCode = 1
			if errors.Is(err, exec.ErrNotFound) {
				result.Error = &ToolNotFoundError{Tool: inv.Tool}
			} else {
				result.Error = err
			}
		}
	}

	return result
}
