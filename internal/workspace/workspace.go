// SPDX-License-Identifier: MPL-2.0

// Package workspace locates the dropbear workspace root and derives every
// pipeline path from it. Resolution is pure path arithmetic on the invoking
// binary's location: a binary kept in the workspace's scripts/ directory
// resolves to the directory above scripts/, a binary anywhere else resolves
// to its own directory. No filesystem probing is involved, so resolution
// itself cannot fail; a wrong root surfaces later when cargo runs there.
package workspace

import (
	"quickbind/pkg/fspath"
	"quickbind/pkg/types"
)

// ScriptsDirName is the reserved directory name that marks a binary as
// living one level below the workspace root.
const ScriptsDirName = "scripts"

type (
	// Layout names the workspace-relative locations the pipeline reads and
	// writes. Entries may also be absolute, in which case they are used
	// verbatim. StagedFile is a bare file name inside StagingDir, not a path.
	Layout struct {
		CbindgenConfig types.FilesystemPath
		StagingDir     types.FilesystemPath
		StagedFile     types.FilesystemPath
		Header         types.FilesystemPath
	}

	// Workspace is an immutable value carrying the resolved absolute root
	// and the layout. It is computed once at startup and passed explicitly
	// into each pipeline stage; stages never re-derive the root.
	Workspace struct {
		root   types.FilesystemPath
		layout Layout
	}
)

// DefaultLayout returns the standard dropbear workspace layout.
func DefaultLayout() Layout {
	return Layout{
		CbindgenConfig: "cbindgen.toml",
		StagingDir:     fspath.JoinStr("target", "generated"),
		StagedFile:     "expanded.rs",
		Header:         fspath.JoinStr("headers", "dropbear.h"),
	}
}

// Resolve derives the workspace root from the invoking binary's own
// location. If the binary's parent directory is named "scripts", the root
// is the grandparent; otherwise it is the parent itself.
func Resolve(binPath types.FilesystemPath) types.FilesystemPath {
	dir := fspath.Dir(binPath)
	if fspath.Base(dir) == ScriptsDirName {
		return fspath.Dir(dir)
	}
	return dir
}

// New builds a Workspace from a root directory and a layout.
func New(root types.FilesystemPath, layout Layout) Workspace {
	return Workspace{root: fspath.Clean(root), layout: layout}
}

// Root returns the absolute workspace root directory.
func (w Workspace) Root() types.FilesystemPath { return w.root }

// CbindgenConfig returns the absolute path of the cbindgen configuration
// file. The file is expected to pre-exist; the pipeline never creates it.
func (w Workspace) CbindgenConfig() types.FilesystemPath {
	return w.abs(w.layout.CbindgenConfig)
}

// StagingDir returns the absolute directory the expanded source is staged
// into. Created lazily by the stager.
func (w Workspace) StagingDir() types.FilesystemPath {
	return w.abs(w.layout.StagingDir)
}

// StagedArtifact returns the absolute path of the staged expanded source.
func (w Workspace) StagedArtifact() types.FilesystemPath {
	return fspath.Join(w.StagingDir(), w.layout.StagedFile)
}

// HeaderFile returns the absolute path of the generated C header.
func (w Workspace) HeaderFile() types.FilesystemPath {
	return w.abs(w.layout.Header)
}

// HeaderDir returns the absolute directory the header is written into.
// Created lazily by the binding generator.
func (w Workspace) HeaderDir() types.FilesystemPath {
	return fspath.Dir(w.HeaderFile())
}

func (w Workspace) abs(p types.FilesystemPath) types.FilesystemPath {
	if fspath.IsAbs(p) {
		return fspath.Clean(p)
	}
	return fspath.Join(w.root, p)
}
