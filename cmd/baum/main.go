/*
Command baum displays trees on the console.

	baum demo             build a sample tree and show equality and hashing
	baum show FILE        load an outline, YAML or HTML file and print it
	baum bst N...         insert integers into a binary search tree

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
