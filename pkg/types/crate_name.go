// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting Value Types used by multiple packages
// (workspace, toolchain, pipeline, config). These are foundation types that
// carry semantic meaning and validation but have no domain-specific
// dependencies.
//
// This package is a leaf dependency: it imports only the standard library.
// Domain packages import it; it never imports domain packages.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCrateName is the sentinel error wrapped by InvalidCrateNameError.
var ErrInvalidCrateName = errors.New("invalid crate name")

type (
	// CrateName represents a cargo package name, as accepted by
	// `cargo expand -p <name>`. Cargo restricts names to alphanumeric
	// characters plus '-' and '_'. The zero value ("") is invalid.
	CrateName string

	// InvalidCrateNameError is returned when a CrateName is empty or
	// contains characters cargo would reject.
	InvalidCrateNameError struct {
		Value CrateName
	}
)

// String returns the string representation of the CrateName.
func (n CrateName) String() string { return string(n) }

// IsValid returns whether the CrateName is valid.
// A valid name is non-empty, uses only alphanumeric characters plus '-'
// and '_', and does not start with '-' (which cargo would parse as a flag).
func (n CrateName) IsValid() (bool, []error) {
	if strings.TrimSpace(string(n)) == "" {
		return false, []error{&InvalidCrateNameError{Value: n}}
	}
	if strings.HasPrefix(string(n), "-") {
		return false, []error{&InvalidCrateNameError{Value: n}}
	}
	for _, r := range string(n) {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false, []error{&InvalidCrateNameError{Value: n}}
		}
	}
	return true, nil
}

// Error implements the error interface for InvalidCrateNameError.
func (e *InvalidCrateNameError) Error() string {
	return fmt.Sprintf("invalid crate name %q: must be non-empty and use only alphanumeric characters, '-' or '_'", e.Value)
}

// Unwrap returns ErrInvalidCrateName for errors.Is() compatibility.
func (e *InvalidCrateNameError) Unwrap() error { return ErrInvalidCrateName }
