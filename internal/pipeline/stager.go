// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"fmt"
	"os"

	"quickbind/pkg/types"
)

type (
	// ArtifactStager writes the expanded source byte-for-byte to the staged
	// artifact path, creating the staging directory on first use. Staging
	// decouples cbindgen's input from cargo's output so the exact source
	// fed to cbindgen can be inspected after the run.
	ArtifactStager struct{}

	// ArtifactError reports an artifact path that could not be created or
	// written.
	ArtifactError struct {
		Path types.FilesystemPath
		Err  error
	}
)

// Name identifies the stage in diagnostics.
func (s *ArtifactStager) Name() string { return "stage" }

// Run writes the expanded source to the workspace's staged artifact path,
// replacing whatever a previous run left there.
func (s *ArtifactStager) Run(ctx context.Context, b *Build) error {
	if len(b.ExpandedSource) == 0 {
		return fmt.Errorf("no expanded source to stage")
	}

	stagingDir := b.Workspace.StagingDir()
	if err := os.MkdirAll(stagingDir.String(), 0o755); err != nil {
		return &ArtifactError{Path: stagingDir, Err: err}
	}

	staged := b.Workspace.StagedArtifact()
	fmt.Fprintf(b.Out, "Writing expanded code to %s\n", staged)
	if err := os.WriteFile(staged.String(), b.ExpandedSource, 0o644); err != nil {
		return &ArtifactError{Path: staged, Err: err}
	}

	b.StagedPath = staged
	b.Logger.Debug("staged expanded source", "path", staged, "bytes", len(b.ExpandedSource))
	return nil
}

// Error implements the error interface for ArtifactError.
func (e *ArtifactError) Error() string {
	return fmt.Sprintf("failed to write artifact %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *ArtifactError) Unwrap() error { return e.Err }
