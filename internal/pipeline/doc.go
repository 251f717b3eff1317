// SPDX-License-Identifier: MPL-2.0

// Package pipeline sequences the build stages that regenerate the dropbear
// C header: expand the crate's macros, stage the expanded source, generate
// bindings over it. Stages run strictly in order and the first failure
// stops the run, so later stages never see partial inputs.
package pipeline
