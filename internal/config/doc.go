// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as
// the file format, matching the TOML-native Rust workspace the tool operates
// on (Cargo.toml, cbindgen.toml).
//
// Configuration is optional: every setting has a built-in default equal to
// the classic pipeline behavior (crate eucalyptus-core, tools from PATH,
// target/generated/expanded.rs, headers/dropbear.h). Lookup order is an
// explicit --config path, then quickbind.toml at the workspace root, then
// the user config directory (~/.config/quickbind/config.toml, or the XDG /
// macOS / Windows equivalent), then defaults.
//
// Validation is performed by the typed config primitives themselves; an
// invalid file is reported with field-level errors rather than applied
// partially.
package config
