// SPDX-License-Identifier: MPL-2.0

package toolchain

import "quickbind/pkg/types"

// Result carries everything a finished (or failed-to-start) invocation
// produced. Stdout and Stderr hold the complete captured streams.
type Result struct {
	ExitCode types.ExitCode
	Stdout   string
	Stderr   string
	// Error is set only when the tool could not be run at all (e.g. the
	// binary is missing). A tool that ran and exited non-zero reports
	// through ExitCode, not Error.
	Error error
}

// Success returns true if the tool ran and exited zero.
func (r *Result) Success() bool {
	return r.Error == nil && r.ExitCode.IsSuccess()
}

// NewSuccessResult creates a Result for a clean exit with the given stdout.
func NewSuccessResult(stdout string) *Result {
	return &Result{Stdout: stdout}
}

// NewExitCodeResult creates a Result for a tool that ran and exited
// non-zero with the given stderr. Use this for normal process failure
// rather than infrastructure failure.
func NewExitCodeResult(code types.ExitCode, stderr string) *Result {
	return &Result{ExitCode: code, Stderr: stderr}
}

// NewErrorResult creates a Result for a tool that could not be run at all.
func NewErrorResult(err error) *Result {
	return &Result{ExitCode: 1, Error: err}
}
