// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"quickbind/internal/issue"
	"quickbind/internal/pipeline"
	"quickbind/internal/toolchain"
)

// classifyPipelineError maps pipeline failures to issue catalog IDs so the
// CLI can render a help card after the diagnostic. Returns 0 when no catalog
// entry applies.
func classifyPipelineError(err error) issue.Id {
	var toolErr *pipeline.ToolError
	if errors.As(err, &toolErr) {
		switch {
		case errors.Is(err, toolchain.ErrToolNotFound):
			if toolErr.Label == pipeline.ExpandFailedLabel {
				return issue.CargoNotFoundId
			}
			return issue.CbindgenNotFoundId
		case toolErr.Label == pipeline.ExpandFailedLabel:
			// cargo without the expand subcommand installed reports
			// "error: no such command: `expand`".
			if strings.Contains(toolErr.Stderr(), "no such command") {
				return issue.CargoExpandMissingId
			}
			return issue.MacroExpansionFailedId
		case toolErr.Label == pipeline.BindgenFailedLabel:
			if strings.Contains(toolErr.Stderr(), "open config file") {
				return issue.CbindgenConfigMissingId
			}
			return issue.BindingGenerationFailedId
		}
	}

	var artErr *pipeline.ArtifactError
	switch {
	case errors.Is(err, pipeline.ErrEmptyExpansion):
		return issue.EmptyExpansionId
	case errors.As(err, &artErr):
		return issue.StagingWriteFailedId
	}

	return 0
}

// renderPipelineError writes the failure diagnostic to w. For external tool
// failures it prints the stage's fixed label followed by the tool's captured
// stderr verbatim; other errors get their formatted message. A matching
// issue catalog entry, if any, is rendered last.
func renderPipelineError(w io.Writer, err error, verboseMode bool) {
	var toolErr *pipeline.ToolError
	if errors.As(err, &toolErr) {
		fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), toolErr.Label)
		if stderrText := toolErr.Stderr(); stderrText != "" {
			fmt.Fprintln(w, stderrText)
		} else if cause := toolErr.Unwrap(); cause != nil {
			fmt.Fprintln(w, cause)
		}
	} else {
		fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verboseMode))
	}

	issueID := classifyPipelineError(err)
	if issueID == 0 {
		return
	}

	if catalogEntry := issue.Get(issueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render("dark")
		if renderErr != nil {
			slog.Warn("failed to render issue catalog entry", "issueID", issueID, "error", renderErr)
		} else {
			fmt.Fprint(w, rendered)
		}
	}
}
