/*
Package textfile provides API helpers to load outlines from text files as trees.

Two formats are supported. Plain outlines use indentation for nesting:

	groceries
	    fruit
	        apples
	        pears
	    bread

The first non-blank line is the root. Tabs count as four spaces. A line which
is indented deeper than its predecessor is a child of it; a line which is
indented less has to line up with one of its predecessors' ancestors.

YAML documents are converted by structure: mapping keys become nodes whose
children are built from the values, sequence items become children, and
scalars become leaves.

Clients interested in the progress of loading may hand a caster.Caster to the
loaders. Every node of the resulting tree is then published as an Attached
message, in pre-order. The loaders never close the caster.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'baum'
func tracer() tracing.Trace {
	return tracing.Select("baum")
}

var (
	// ErrEmptyOutline signals input without any node.
	ErrEmptyOutline = errors.New("textfile: outline is empty")
	// ErrIndentation signals a line which does not line up with any ancestor.
	ErrIndentation = errors.New("textfile: inconsistent indentation")
	// ErrMultipleRoots signals a second line on the indentation level of the root.
	ErrMultipleRoots = errors.New("textfile: outline has more than one root")
	// ErrNotRegular signals a path which does not denote a regular file.
	ErrNotRegular = errors.New("textfile: file is not a regular file")
	// ErrRecursiveAlias signals a YAML alias which refers to one of its own ancestors.
	ErrRecursiveAlias = errors.New("textfile: recursive YAML alias")
)
