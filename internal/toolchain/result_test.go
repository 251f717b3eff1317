// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"errors"
	"testing"
)

func TestResultConstructors(t *testing.T) {
	t.Parallel()

	t.Run("success result", func(t *testing.T) {
		t.Parallel()

		r := NewSuccessResult("expanded source")
		if !r.Success() {
			t.Error("Success() = false for a success result")
		}
		if r.Stdout != "expanded source" {
			t.Errorf("Stdout = %q, want %q", r.Stdout, "expanded source")
		}
		if r.ExitCode != 0 || r.Error != nil {
			t.Errorf("unexpected failure fields: exit %s, error %v", r.ExitCode, r.Error)
		}
	})

	t.Run("exit code result", func(t *testing.T) {
		t.Parallel()

		r := NewExitCodeResult(101, "error[E0433]: failed to resolve")
		if r.Success() {
			t.Error("Success() = true for a non-zero exit")
		}
		if r.ExitCode != 101 {
			t.Errorf("ExitCode = %s, want 101", r.ExitCode)
		}
		if r.Stderr != "error[E0433]: failed to resolve" {
			t.Errorf("Stderr = %q, want the tool's error text", r.Stderr)
		}
		if r.Error != nil {
			t.Errorf("Error = %v, want nil for a process that ran", r.Error)
		}
	})

	t.Run("error result", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("fork/exec: permission denied")
		r := NewErrorResult(cause)
		if r.Success() {
			t.Error("Success() = true for an infrastructure failure")
		}
		if !errors.Is(r.Error, cause) {
			t.Errorf("Error = %v, want %v", r.Error, cause)
		}
		if r.ExitCode != 1 {
			t.Errorf("ExitCode = %s, want 1", r.ExitCode)
		}
	})
}
