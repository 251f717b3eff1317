// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"quickbind/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "quickbind"
	// ConfigFileName is the name of the user-level config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// WorkspaceConfigFileName is the name of the per-workspace config file,
	// looked up in the workspace root before the user-level file.
	WorkspaceConfigFileName = "quickbind.toml"
)

// ConfigDir returns the quickbind configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state. Callers that want caching can wrap this function.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("workspace.root", defaults.Workspace.Root)
	v.SetDefault("expansion.crate", defaults.Expansion.Crate)
	v.SetDefault("expansion.cargo", defaults.Expansion.Cargo)
	v.SetDefault("bindings.cbindgen", defaults.Bindings.Cbindgen)
	v.SetDefault("bindings.config", defaults.Bindings.Config)
	v.SetDefault("bindings.staging_dir", defaults.Bindings.StagingDir)
	v.SetDefault("bindings.staged_file", defaults.Bindings.StagedFile)
	v.SetDefault("bindings.header", defaults.Bindings.Header)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	resolvedPath := ""

	// If a custom config file path is set via --config flag, use it exclusively.
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithSuggestion("Drop the --config flag to fall back to workspace or user-level configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		if err := loadTOMLIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Check that the file contains valid TOML syntax").
				WithSuggestion("Verify the configuration keys match the documented sections").
				Wrap(err).
				BuildError()
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		// Prefer the workspace-level file so a checkout can pin its own
		// crate and layout for everyone who builds it.
		workspacePath := ""
		if opts.WorkspaceDir != "" {
			workspacePath = filepath.Join(opts.WorkspaceDir, WorkspaceConfigFileName)
		}

		if workspacePath != "" && fileExists(workspacePath) {
			if err := loadTOMLIntoViper(v, workspacePath); err != nil {
				return nil, "", issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(workspacePath).
					WithSuggestion("Check that the file contains valid TOML syntax").
					WithSuggestion("Verify the configuration keys match the documented sections").
					Wrap(err).
					BuildError()
			}
			resolvedPath = workspacePath
		} else {
			// Fall back to the user-level config directory
			cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
			if err != nil {
				return nil, "", err
			}

			tomlPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
			if fileExists(tomlPath) {
				if err := loadTOMLIntoViper(v, tomlPath); err != nil {
					return nil, "", issue.NewErrorContext().
						WithOperation("load configuration").
						WithResource(tomlPath).
						WithSuggestion("Check that the file contains valid TOML syntax").
						WithSuggestion("Verify the configuration keys match the documented sections").
						Wrap(err).
						BuildError()
				}
				resolvedPath = tomlPath
			}
			// If no config file found, use defaults (no error)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Field-level constraints TOML cannot express: whitespace-only overrides,
	// malformed crate names, blanked-out artifact paths.
	if valid, validationErrs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Remove or correct the offending keys; empty strings are not valid path overrides").
			WithSuggestion("Delete the file to fall back to the built-in defaults").
			Wrap(errors.Join(validationErrs...)).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadTOMLIntoViper parses a TOML file and merges its contents into Viper.
//
// Note: Viper can read TOML natively, but routing through go-toml keeps
// the line/column positions its decode errors carry, and merging a plain
// map preserves defaults for every key the file omits.
func loadTOMLIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var configMap map[string]any
	if err := toml.Unmarshal(data, &configMap); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return fmt.Errorf("%s:%d:%d: %w", path, row, col, err)
		}
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// CreateDefaultConfig creates a default config file if it doesn't exist
func CreateDefaultConfig() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)

	// Check if file already exists
	if _, err := os.Stat(cfgPath); err == nil {
		return nil // File exists
	}

	defaults := DefaultConfig()
	tomlContent := GenerateTOML(defaults)

	if err := os.WriteFile(cfgPath, []byte(tomlContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Save writes the current configuration to file
func Save(cfg *Config) error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)

	tomlContent := GenerateTOML(cfg)

	if err := os.WriteFile(cfgPath, []byte(tomlContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateTOML generates a TOML representation of the configuration.
// Optional overrides that are empty (workspace root, tool binaries) are
// omitted so the written file stays as close to the defaults as the
// values allow.
func GenerateTOML(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("# Quickbind Configuration File\n")
	sb.WriteString("# Keys omitted here fall back to the built-in defaults.\n\n")

	// Workspace
	sb.WriteString("[workspace]\n")
	if cfg.Workspace.Root != "" {
		sb.WriteString(fmt.Sprintf("root = %q\n", cfg.Workspace.Root))
	}

	// Expansion
	sb.WriteString("\n[expansion]\n")
	sb.WriteString(fmt.Sprintf("crate = %q\n", cfg.Expansion.Crate))
	if cfg.Expansion.Cargo != "" {
		sb.WriteString(fmt.Sprintf("cargo = %q\n", cfg.Expansion.Cargo))
	}

	// Bindings
	sb.WriteString("\n[bindings]\n")
	if cfg.Bindings.Cbindgen != "" {
		sb.WriteString(fmt.Sprintf("cbindgen = %q\n", cfg.Bindings.Cbindgen))
	}
	sb.WriteString(fmt.Sprintf("config = %q\n", cfg.Bindings.Config))
	sb.WriteString(fmt.Sprintf("staging_dir = %q\n", cfg.Bindings.StagingDir))
	sb.WriteString(fmt.Sprintf("staged_file = %q\n", cfg.Bindings.StagedFile))
	sb.WriteString(fmt.Sprintf("header = %q\n", cfg.Bindings.Header))

	// UI
	sb.WriteString("\n[ui]\n")
	sb.WriteString(fmt.Sprintf("verbose = %v\n", cfg.UI.Verbose))

	return sb.String()
}
