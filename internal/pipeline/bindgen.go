// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"fmt"
	"os"

	"quickbind/internal/toolchain"
)

// BindgenFailedLabel is the fixed diagnostic heading for binding
// generation failures.
const BindgenFailedLabel = "cbindgen failed"

// BindingGenerator runs cbindgen over the staged artifact with the
// workspace's cbindgen configuration and writes the C header, creating the
// header directory on first use. All three paths are passed absolute so
// the outcome does not depend on how cbindgen resolves relative paths.
type BindingGenerator struct {
	Cbindgen toolchain.Tool
	Invoker  toolchain.Invoker
}

// Name identifies the stage in diagnostics.
func (s *BindingGenerator) Name() string { return "bindgen" }

// Run invokes cbindgen and records the generated header on the build.
func (s *BindingGenerator) Run(ctx context.Context, b *Build) error {
	if b.StagedPath == "" {
		return fmt.Errorf("no staged artifact to generate bindings from")
	}

	fmt.Fprintln(b.Out, "Generating C bindings...")

	headerDir := b.Workspace.HeaderDir()
	if err := os.MkdirAll(headerDir.String(), 0o755); err != nil {
		return &ArtifactError{Path: headerDir, Err: err}
	}

	header := b.Workspace.HeaderFile()
	inv := toolchain.Invocation{
		Tool: s.Cbindgen,
		Args: []string{
			"--config", b.Workspace.CbindgenConfig().String(),
			"--output", header.String(),
			b.StagedPath.String(),
		},
		WorkDir: b.Workspace.Root(),
	}
	b.Logger.Debug("invoking", "command", inv.String())

	result := s.Invoker.Invoke(ctx, inv)
	if !result.Success() {
		return &ToolError{Tool: s.Cbindgen, Label: BindgenFailedLabel, Result: result}
	}

	b.HeaderPath = header
	fmt.Fprintf(b.Out, "✓ Generated %s\n", header)
	return nil
}
