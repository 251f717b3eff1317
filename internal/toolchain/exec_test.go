// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"quickbind/pkg/types"
)

func skipWithoutPOSIXShell(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if runtime.GOOS == "windows" {
		t.Skip("skipping sh-based test on Windows")
	}
}

func TestExecInvokerCapturesStdout(t *testing.T) {
	skipWithoutPOSIXShell(t)

	inv := Invocation{
		Tool: "sh",
		Args: []string{"-c", "printf 'pub fn foo() {}'"},
	}

	result := NewExecInvoker().Invoke(context.Background(), inv)
	if result.Error != nil {
		t.Fatalf("Invoke() error = %v", result.Error)
	}
	if result.ExitCode != 0 {
		t.Fatalf("Invoke() exit code = %s, want 0, stderr: %q", result.ExitCode, result.Stderr)
	}
	if result.Stdout != "pub fn foo() {}" {
		t.Errorf("Invoke() stdout = %q, want %q", result.Stdout, "pub fn foo() {}")
	}
	if !result.Success() {
		t.Error("Success() = false for a clean exit")
	}
}

func TestExecInvokerCapturesStderrAndExitCode(t *testing.T) {
	skipWithoutPOSIXShell(t)

	inv := Invocation{
		Tool: "sh",
		Args: []string{"-c", "echo 'bad config' >&2; exit 3"},
	}

	result := NewExecInvoker().Invoke(context.Background(), inv)
	if result.Error != nil {
		t.Fatalf("Invoke() error = %v, want nil for a process that ran", result.Error)
	}
	if result.ExitCode != 3 {
		t.Errorf("Invoke() exit code = %s, want 3", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "bad config") {
		t.Errorf("Invoke() stderr = %q, want it to contain %q", result.Stderr, "bad config")
	}
	if result.Success() {
		t.Error("Success() = true for a non-zero exit")
	}
}

func TestExecInvokerRunsInWorkDir(t *testing.T) {
	skipWithoutPOSIXShell(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("here"), 0o644); err != nil {
		t.Fatalf("writing marker file: %v", err)
	}

	inv := Invocation{
		Tool:    "sh",
		Args:    []string{"-c", "cat marker.txt"},
		WorkDir: types.FilesystemPath(dir),
	}

	result := NewExecInvoker().Invoke(context.Background(), inv)
	if !result.Success() {
		t.Fatalf("Invoke() failed: exit %s, error %v, stderr %q", result.ExitCode, result.Error, result.Stderr)
	}
	if result.Stdout != "here" {
		t.Errorf("Invoke() stdout = %q, want %q", result.Stdout, "here")
	}
}

func TestExecInvokerMissingTool(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	inv := Invocation{Tool: "quickbind-no-such-tool-on-any-path"}

	result := NewExecInvoker().Invoke(context.Background(), inv)
	if result.Error == nil {
		t.Fatal("Invoke() error = nil for a missing tool")
	}
	if !errors.Is(result.Error, ErrToolNotFound) {
		t.Errorf("Invoke() error = %v, want it to wrap ErrToolNotFound", result.Error)
	}
	if result.ExitCode != 1 {
		t.Errorf("Invoke() exit code = %s, want 1 for an unlaunchable tool", result.ExitCode)
	}
}

func TestExecInvokerCanceledContext(t *testing.T) {
	skipWithoutPOSIXShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inv := Invocation{Tool: "sh", Args: []string{"-c", "sleep 5"}}

	result := NewExecInvoker().Invoke(ctx, inv)
	if result.Success() {
		t.Error("Invoke() succeeded under a canceled context")
	}
}
