// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"quickbind/internal/workspace"
	"quickbind/pkg/types"
)

// DefaultCrate is the crate whose macros are expanded when configuration
// does not say otherwise.
const DefaultCrate types.CrateName = "eucalyptus-core"

var (
	// ErrInvalidBinaryFilePath is returned when a BinaryFilePath value is whitespace-only.
	ErrInvalidBinaryFilePath = errors.New("invalid binary file path")
	// ErrInvalidWorkspaceRootPath is returned when a WorkspaceRootPath value is whitespace-only.
	ErrInvalidWorkspaceRootPath = errors.New("invalid workspace root path")
	// ErrInvalidWorkspaceConfig is the sentinel error wrapped by InvalidWorkspaceConfigError.
	ErrInvalidWorkspaceConfig = errors.New("invalid workspace config")
	// ErrInvalidExpansionConfig is the sentinel error wrapped by InvalidExpansionConfigError.
	ErrInvalidExpansionConfig = errors.New("invalid expansion config")
	// ErrInvalidBindingsConfig is the sentinel error wrapped by InvalidBindingsConfigError.
	ErrInvalidBindingsConfig = errors.New("invalid bindings config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// BinaryFilePath represents a filesystem path to a tool binary.
	// The zero value ("") is valid and means "resolve the default name via
	// PATH". Non-zero values must not be whitespace-only.
	BinaryFilePath string

	// InvalidBinaryFilePathError is returned when a BinaryFilePath value is
	// non-empty but whitespace-only.
	InvalidBinaryFilePathError struct {
		Value BinaryFilePath
	}

	// WorkspaceRootPath represents an explicit workspace root directory.
	// The zero value ("") is valid and means "resolve the root from the
	// binary's own location". Non-zero values must not be whitespace-only.
	WorkspaceRootPath string

	// InvalidWorkspaceRootPathError is returned when a WorkspaceRootPath
	// value is non-empty but whitespace-only.
	InvalidWorkspaceRootPathError struct {
		Value WorkspaceRootPath
	}

	// WorkspaceConfig pins the workspace the pipeline operates on.
	WorkspaceConfig struct {
		// Root bypasses executable-relative root resolution when set.
		Root WorkspaceRootPath `json:"root" mapstructure:"root"`
	}

	// ExpansionConfig configures the macro expansion stage.
	ExpansionConfig struct {
		// Crate is the cargo package passed to `cargo expand -p`.
		Crate types.CrateName `json:"crate" mapstructure:"crate"`
		// Cargo overrides the cargo binary; empty means "cargo" from PATH.
		Cargo BinaryFilePath `json:"cargo" mapstructure:"cargo"`
	}

	// BindingsConfig configures staging and binding generation.
	BindingsConfig struct {
		// Cbindgen overrides the cbindgen binary; empty means "cbindgen" from PATH.
		Cbindgen BinaryFilePath `json:"cbindgen" mapstructure:"cbindgen"`
		// Config is the cbindgen configuration file, workspace-relative
		// unless absolute. It must pre-exist; the pipeline never creates it.
		Config types.FilesystemPath `json:"config" mapstructure:"config"`
		// StagingDir is where the expanded source is staged,
		// workspace-relative unless absolute. Created lazily.
		StagingDir types.FilesystemPath `json:"staging_dir" mapstructure:"staging_dir"`
		// StagedFile is the staged artifact's file name inside StagingDir.
		StagedFile types.FilesystemPath `json:"staged_file" mapstructure:"staged_file"`
		// Header is the generated C header, workspace-relative unless
		// absolute. Its parent directory is created lazily.
		Header types.FilesystemPath `json:"header" mapstructure:"header"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// Config holds the application configuration.
	Config struct {
		// Workspace pins the workspace root
		Workspace WorkspaceConfig `json:"workspace" mapstructure:"workspace"`
		// Expansion configures the macro expansion stage
		Expansion ExpansionConfig `json:"expansion" mapstructure:"expansion"`
		// Bindings configures staging and binding generation
		Bindings BindingsConfig `json:"bindings" mapstructure:"bindings"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// InvalidWorkspaceConfigError is returned when a WorkspaceConfig has
	// invalid fields. It wraps ErrInvalidWorkspaceConfig for errors.Is()
	// compatibility and collects field-level validation errors.
	InvalidWorkspaceConfigError struct {
		FieldErrors []error
	}

	// InvalidExpansionConfigError is returned when an ExpansionConfig has
	// invalid fields. It wraps ErrInvalidExpansionConfig for errors.Is()
	// compatibility and collects field-level validation errors.
	InvalidExpansionConfigError struct {
		FieldErrors []error
	}

	// InvalidBindingsConfigError is returned when a BindingsConfig has
	// invalid fields. It wraps ErrInvalidBindingsConfig for errors.Is()
	// compatibility and collects field-level validation errors.
	InvalidBindingsConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// String returns the string representation of the BinaryFilePath.
func (p BinaryFilePath) String() string { return string(p) }

// IsValid returns whether the BinaryFilePath is valid.
// The zero value ("") is valid (means "resolve via PATH").
// Non-zero values must not be whitespace-only.
func (p BinaryFilePath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidBinaryFilePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidBinaryFilePathError.
func (e *InvalidBinaryFilePathError) Error() string {
	return fmt.Sprintf("invalid binary file path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidBinaryFilePath for errors.Is() compatibility.
func (e *InvalidBinaryFilePathError) Unwrap() error { return ErrInvalidBinaryFilePath }

// String returns the string representation of the WorkspaceRootPath.
func (p WorkspaceRootPath) String() string { return string(p) }

// IsValid returns whether the WorkspaceRootPath is valid.
// The zero value ("") is valid (means "resolve from the binary location").
// Non-zero values must not be whitespace-only.
func (p WorkspaceRootPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidWorkspaceRootPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidWorkspaceRootPathError.
func (e *InvalidWorkspaceRootPathError) Error() string {
	return fmt.Sprintf("invalid workspace root path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidWorkspaceRootPath for errors.Is() compatibility.
func (e *InvalidWorkspaceRootPathError) Unwrap() error { return ErrInvalidWorkspaceRootPath }

// IsValid returns whether the WorkspaceConfig has valid fields.
// It delegates to Root.IsValid().
func (c WorkspaceConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Root.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidWorkspaceConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidWorkspaceConfigError.
func (e *InvalidWorkspaceConfigError) Error() string {
	return fmt.Sprintf("invalid workspace config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidWorkspaceConfig for errors.Is() compatibility.
func (e *InvalidWorkspaceConfigError) Unwrap() error { return ErrInvalidWorkspaceConfig }

// IsValid returns whether the ExpansionConfig has valid fields.
// It delegates to Crate.IsValid() and Cargo.IsValid().
func (c ExpansionConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Crate.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Cargo.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidExpansionConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidExpansionConfigError.
func (e *InvalidExpansionConfigError) Error() string {
	return fmt.Sprintf("invalid expansion config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidExpansionConfig for errors.Is() compatibility.
func (e *InvalidExpansionConfigError) Unwrap() error { return ErrInvalidExpansionConfig }

// IsValid returns whether the BindingsConfig has valid fields.
// It delegates to Cbindgen.IsValid() and to each artifact path's IsValid().
// The artifact paths are required: their defaults are non-empty, so only an
// explicit empty override can invalidate them.
func (c BindingsConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Cbindgen.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Config.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.StagingDir.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.StagedFile.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Header.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidBindingsConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidBindingsConfigError.
func (e *InvalidBindingsConfigError) Error() string {
	return fmt.Sprintf("invalid bindings config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidBindingsConfig for errors.Is() compatibility.
func (e *InvalidBindingsConfigError) Unwrap() error { return ErrInvalidBindingsConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Workspace.IsValid(), Expansion.IsValid(), and
// Bindings.IsValid(). UI has only bool fields and needs no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Workspace.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Expansion.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Bindings.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Layout converts the bindings section into the workspace layout consumed
// by the pipeline stages.
func (c *Config) Layout() workspace.Layout {
	return workspace.Layout{
		CbindgenConfig: c.Bindings.Config,
		StagingDir:     c.Bindings.StagingDir,
		StagedFile:     c.Bindings.StagedFile,
		Header:         c.Bindings.Header,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	layout := workspace.DefaultLayout()
	return &Config{
		Workspace: WorkspaceConfig{
			Root: "", // Will resolve from the binary location if empty
		},
		Expansion: ExpansionConfig{
			Crate: DefaultCrate,
			Cargo: "", // Will use "cargo" from PATH if empty
		},
		Bindings: BindingsConfig{
			Cbindgen:   "", // Will use "cbindgen" from PATH if empty
			Config:     layout.CbindgenConfig,
			StagingDir: layout.StagingDir,
			StagedFile: layout.StagedFile,
			Header:     layout.Header,
		},
		UI: UIConfig{
			Verbose: false,
		},
	}
}
