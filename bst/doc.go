/*
Package bst provides a binary search tree over content with a total order.

Content types have to implement ComparableContent, i.e. offer predicates for
“greater”, “equal” and “less”, consistent with a single strict total order:
for any two values exactly one of the predicates holds.

IntComparable is a ready-made content type for integers. Ordered adapts any
type with a built-in order (numbers, strings).

The tree is not balanced; inserting sorted content degenerates it to a list.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package bst

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'baum'
func tracer() tracing.Trace {
	return tracing.Select("baum")
}

// ErrEmptyTree is returned for operations which need at least one node.
var ErrEmptyTree = errors.New("bst: tree is empty")
