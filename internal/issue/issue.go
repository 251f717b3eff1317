// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	CargoNotFoundId Id = iota + 1
	CargoExpandMissingId
	CbindgenNotFoundId
	MacroExpansionFailedId
	EmptyExpansionId
	CbindgenConfigMissingId
	BindingGenerationFailedId
	StagingWriteFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // upstream documentation for the failing tool
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	cargoNotFoundIssue = &Issue{
		id: CargoNotFoundId,
		mdMsg: `
# cargo not found

The cargo binary is not on your PATH, so macros cannot be expanded.

## Things you can try:
- Install the Rust toolchain:
~~~
$ curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh
~~~

- Or, if rustup is already installed, make sure its bin directory is on PATH:
~~~
$ source "$HOME/.cargo/env"
~~~

- Or point the tool at an explicit binary in quickbind.toml:
~~~toml
[expansion]
cargo = "/opt/rust/bin/cargo"
~~~`,
		docLinks: []HttpLink{"https://rustup.rs"},
	}

	cargoExpandMissingIssue = &Issue{
		id: CargoExpandMissingId,
		mdMsg: `
# cargo expand is not installed

cargo itself works, but the expand subcommand is a separate crate and it
looks like it is missing.

## Things you can try:
- Install it once per toolchain:
~~~
$ cargo install cargo-expand
~~~

- cargo-expand also needs a nightly toolchain for the expansion itself:
~~~
$ rustup toolchain install nightly
~~~`,
		docLinks: []HttpLink{"https://github.com/dtolnay/cargo-expand"},
	}

	cbindgenNotFoundIssue = &Issue{
		id: CbindgenNotFoundId,
		mdMsg: `
# cbindgen not found

The expanded source was staged, but the cbindgen binary is not on your PATH,
so the C header cannot be generated.

## Things you can try:
- Install it:
~~~
$ cargo install --force cbindgen
~~~

- Or point the tool at an explicit binary in quickbind.toml:
~~~toml
[bindings]
cbindgen = "/opt/rust/bin/cbindgen"
~~~

Re-running after installation is safe: the staged artifact is simply
rewritten and the header regenerated.`,
		docLinks: []HttpLink{"https://github.com/mozilla/cbindgen"},
	}

	macroExpansionFailedIssue = &Issue{
		id: MacroExpansionFailedId,
		mdMsg: `
# Macro expansion failed

cargo expand exited with an error. Its stderr is printed above verbatim;
the cause is almost always a compile error in the crate being expanded.

## Things you can try:
- Make sure the crate builds on its own first:
~~~
$ cargo build -p eucalyptus-core
~~~

- Run the expansion by hand to iterate on the error:
~~~
$ cargo expand --lib -p eucalyptus-core
~~~`,
	}

	emptyExpansionIssue = &Issue{
		id: EmptyExpansionId,
		mdMsg: `
# Expansion produced no output

cargo expand exited cleanly but wrote nothing to stdout. Feeding an empty
file to cbindgen would only produce a confusing error later, so the run
stops here instead.

## Things you can try:
- Check the crate actually has a lib target:
~~~
$ cargo expand --lib -p eucalyptus-core
~~~
- Verify the crate name in quickbind.toml matches Cargo.toml.`,
	}

	cbindgenConfigMissingIssue = &Issue{
		id: CbindgenConfigMissingId,
		mdMsg: `
# cbindgen.toml is missing

cbindgen was invoked with a configuration file that does not exist. The
workspace is expected to carry cbindgen.toml at its root; this tool never
creates it.

## Things you can try:
- Check you are running from (or installed into) the right workspace.
- Create a minimal config at the workspace root:
~~~toml
language = "C"
include_guard = "DROPBEAR_H"
~~~`,
		docLinks: []HttpLink{"https://github.com/mozilla/cbindgen/blob/master/docs.md"},
	}

	bindingGenerationFailedIssue = &Issue{
		id: BindingGenerationFailedId,
		mdMsg: `
# Binding generation failed

cbindgen exited with an error. Its stderr is printed above verbatim.

## Things you can try:
- Validate cbindgen.toml against the cbindgen docs.
- Run it by hand against the staged source:
~~~
$ cbindgen --config cbindgen.toml --output headers/dropbear.h target/generated/expanded.rs
~~~`,
		docLinks: []HttpLink{"https://github.com/mozilla/cbindgen/blob/master/docs.md"},
	}

	stagingWriteFailedIssue = &Issue{
		id: StagingWriteFailedId,
		mdMsg: `
# Could not stage the expanded source

The expanded source could not be written under target/generated/.

## Things you can try:
- Check permissions and free space on the workspace volume.
- If a previous run left the directory in a bad state, remove it; it is
  recreated on the next run:
~~~
$ rm -rf target/generated
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

quickbind.toml could not be read or parsed. The run continued on built-in
defaults where possible, but explicit settings were ignored.

## Things you can try:
- Check the file is valid TOML.
- Regenerate a default config to compare against:
~~~
$ quickbind --config /dev/null --verbose
~~~`,
	}

	issues = map[Id]*Issue{
		cargoNotFoundIssue.Id():           cargoNotFoundIssue,
		cargoExpandMissingIssue.Id():      cargoExpandMissingIssue,
		cbindgenNotFoundIssue.Id():        cbindgenNotFoundIssue,
		macroExpansionFailedIssue.Id():    macroExpansionFailedIssue,
		emptyExpansionIssue.Id():          emptyExpansionIssue,
		cbindgenConfigMissingIssue.Id():   cbindgenConfigMissingIssue,
		bindingGenerationFailedIssue.Id(): bindingGenerationFailedIssue,
		stagingWriteFailedIssue.Id():      stagingWriteFailedIssue,
		configLoadFailedIssue.Id():        configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
