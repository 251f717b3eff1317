// SPDX-License-Identifier: MPL-2.0

// quickbind regenerates the dropbear C header from the expanded macro
// output of the eucalyptus-core crate.
package main

import cmd "quickbind/cmd/quickbind"

func main() {
	cmd.Execute()
}
