// SPDX-License-Identifier: MPL-2.0

package main

import cmd "ironpyc/cmd/ironpyc"

func main() {
	cmd.Execute()
}
