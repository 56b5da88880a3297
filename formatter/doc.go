/*
Package formatter prints trees to consoles.

The plain rendering of a tree (baum.ArrayTree.String) is meant for logs and
tests. This package renders the same layout for interactive use: connectors,
node kinds and contents are colored, and lines which exceed the width of the
terminal are clipped, measuring text in display cells as a terminal does
(East Asian wide characters take up two cells, combining sequences stay
together).

Clients will usually just call

	formatter.Print(tree, nil)

which guesses a suitable configuration from the terminal attached to stdout.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
