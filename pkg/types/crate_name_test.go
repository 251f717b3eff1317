// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestCrateNameIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     CrateName
		wantValid bool
	}{
		{name: "simple name", value: "eucalyptus-core", wantValid: true},
		{name: "underscored name", value: "dropbear_engine", wantValid: true},
		{name: "single letter", value: "x", wantValid: true},
		{name: "digits allowed", value: "sha2", wantValid: true},
		{name: "mixed case", value: "DropBear", wantValid: true},
		{name: "empty is invalid", value: "", wantValid: false},
		{name: "whitespace only is invalid", value: "   ", wantValid: false},
		{name: "leading hyphen is invalid", value: "-core", wantValid: false},
		{name: "embedded space is invalid", value: "eucalyptus core", wantValid: false},
		{name: "path separator is invalid", value: "crates/eucalyptus-core", wantValid: false},
		{name: "dot is invalid", value: "core.v2", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.value.IsValid()
			if valid != tt.wantValid {
				t.Errorf("CrateName(%q).IsValid() = %v, want %v", tt.value, valid, tt.wantValid)
			}
			if tt.wantValid {
				if len(errs) != 0 {
					t.Errorf("CrateName(%q).IsValid() returned errors for valid value: %v", tt.value, errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatal("CrateName.IsValid() returned no errors for invalid value")
			}
			if !errors.Is(errs[0], ErrInvalidCrateName) {
				t.Errorf("error does not wrap ErrInvalidCrateName: %v", errs[0])
			}
			var cnErr *InvalidCrateNameError
			if !errors.As(errs[0], &cnErr) {
				t.Errorf("error should be *InvalidCrateNameError, got: %T", errs[0])
			}
		})
	}
}

func TestCrateNameString(t *testing.T) {
	t.Parallel()

	n := CrateName("eucalyptus-core")
	if n.String() != "eucalyptus-core" {
		t.Errorf("CrateName.String() = %q, want %q", n.String(), "eucalyptus-core")
	}
}
