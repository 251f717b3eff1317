// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that include remediation steps and
// Markdown-formatted guidance, improving the experience when a pipeline run
// fails: a missing cargo subcommand or cbindgen binary is a one-command fix
// the user should not have to search for.
package issue
