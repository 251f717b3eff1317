// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"errors"
	"runtime"
	"testing"
)

func TestToolIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		tool      Tool
		wantValid bool
	}{
		{"bare name", CargoDefault, true},
		{"explicit path", Tool("/usr/local/bin/cbindgen"), true},
		{"empty is invalid", Tool(""), false},
		{"whitespace only is invalid", Tool("   "), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.tool.IsValid()
			if valid != tt.wantValid {
				t.Errorf("Tool(%q).IsValid() = %v, want %v", tt.tool, valid, tt.wantValid)
			}
			if !tt.wantValid {
				if len(errs) == 0 {
					t.Fatal("Tool.IsValid() returned no errors for invalid value")
				}
				if !errors.Is(errs[0], ErrToolNotFound) {
					t.Errorf("error does not wrap ErrToolNotFound: %v", errs[0])
				}
			}
		})
	}
}

func TestToolAvailable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping PATH lookup test on Windows")
	}

	if !Tool("sh").Available() {
		t.Error("Tool(\"sh\").Available() = false, want true on POSIX systems")
	}
	if Tool("quickbind-no-such-tool-on-any-path").Available() {
		t.Error("Available() = true for a tool that cannot exist")
	}
}

func TestInvocationString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		inv  Invocation
		want string
	}{
		{
			name: "expansion command line",
			inv: Invocation{
				Tool: CargoDefault,
				Args: []string{"expand", "--lib", "-p", "eucalyptus-core"},
			},
			want: "cargo expand --lib -p eucalyptus-core",
		},
		{
			name: "argument with spaces is quoted",
			inv: Invocation{
				Tool: CbindgenDefault,
				Args: []string{"--config", "/my workspace/cbindgen.toml"},
			},
			want: "cbindgen --config '/my workspace/cbindgen.toml'",
		},
		{
			name: "no arguments",
			inv:  Invocation{Tool: CargoDefault},
			want: "cargo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.inv.String(); got != tt.want {
				t.Errorf("Invocation.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToolNotFoundErrorUnwrap(t *testing.T) {
	t.Parallel()

	var err error = &ToolNotFoundError{Tool: "cbindgen"}
	if !errors.Is(err, ErrToolNotFound) {
		t.Error("ToolNotFoundError does not unwrap to ErrToolNotFound")
	}
}
