// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	// Verify all IDs are unique and sequential
	ids := []Id{
		CargoNotFoundId,
		CargoExpandMissingId,
		CbindgenNotFoundId,
		MacroExpansionFailedId,
		EmptyExpansionId,
		CbindgenConfigMissingId,
		BindingGenerationFailedId,
		StagingWriteFailedId,
		ConfigLoadFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if CargoNotFoundId != 1 {
		t.Errorf("CargoNotFoundId = %d, want 1", CargoNotFoundId)
	}
}

func TestIssue_Id(t *testing.T) {
	issue := Get(CargoNotFoundId)
	if issue == nil {
		t.Fatal("Get(CargoNotFoundId) returned nil")
	}

	if issue.Id() != CargoNotFoundId {
		t.Errorf("issue.Id() = %d, want %d", issue.Id(), CargoNotFoundId)
	}
}

func TestIssue_DocLinksAreCloned(t *testing.T) {
	issue := Get(CbindgenNotFoundId)
	if issue == nil {
		t.Fatal("Get(CbindgenNotFoundId) returned nil")
	}

	links := issue.DocLinks()
	if len(links) == 0 {
		t.Fatal("CbindgenNotFoundId should carry a doc link")
	}

	original := links[0]
	links[0] = "modified"
	if got := issue.DocLinks()[0]; got != original {
		t.Error("DocLinks() should return a clone")
	}
}

func TestIssue_Render(t *testing.T) {
	// Swap the render function so the test does not depend on terminal
	// styling output.
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	issue := Get(CargoExpandMissingId)
	if issue == nil {
		t.Fatal("Get(CargoExpandMissingId) returned nil")
	}

	rendered, err := issue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if !strings.Contains(rendered, "cargo install cargo-expand") {
		t.Error("Render() output should carry the install command")
	}
	if !strings.Contains(rendered, "See also") {
		t.Error("Render() output should append doc links")
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{CargoNotFoundId, false, "cargo not found"},
		{CargoExpandMissingId, false, "cargo expand is not installed"},
		{CbindgenNotFoundId, false, "cbindgen not found"},
		{MacroExpansionFailedId, false, "Macro expansion failed"},
		{EmptyExpansionId, false, "Expansion produced no output"},
		{CbindgenConfigMissingId, false, "cbindgen.toml is missing"},
		{BindingGenerationFailedId, false, "Binding generation failed"},
		{StagingWriteFailedId, false, "Could not stage the expanded source"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{Id(9999), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}

			if tt.contains != "" && !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain '%s'", tt.id, tt.contains)
			}
		})
	}
}

func TestValues(t *testing.T) {
	issues := Values()

	if len(issues) != 9 {
		t.Errorf("Values() returned %d issues, want 9", len(issues))
	}

	seen := make(map[Id]bool)
	for _, i := range issues {
		if i == nil {
			t.Fatal("Values() returned a nil issue")
		}
		if seen[i.Id()] {
			t.Errorf("Values() returned duplicate id %d", i.Id())
		}
		seen[i.Id()] = true
	}
}
