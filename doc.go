/*
Package baum offers small, generic tree data structures for teaching purposes.

# ArrayTree

The main type of this package is ArrayTree, a node of a rooted n-ary tree.
Every node carries an optional content value, an ordered sequence of children
and a link back to its parent. Children are held in a growable array of slots,
which doubles its capacity whenever it runs full and never shrinks on removal.

An ArrayTree node belongs to at most one parent. Clients have to detach a node
(making it an “orphan”) before they may attach it somewhere else:

	root := baum.NewNode(4)
	child := baum.NewNode(0)
	_ = root.AddChild(child)
	err := baum.NewNode(7).AddChild(child) // errors.Is(err, baum.ErrAlreadyAttached)

Attaching a node to itself or to one of its own descendants is rejected as
well, thus an ArrayTree can never contain a cycle. All of these checks are
performed before any link is changed; a failing operation leaves every node
untouched.

Trees compare structurally: two trees are equal if their contents are equal
and their children are pairwise equal, in order. Position within an enclosing
tree and the capacity of the child array do not matter. Hash is consistent
with Equal.

Rendering a tree with String produces a box-drawing depiction like this:

	Root (int): 4
	    ├─[0] Leaf (int): 0
	    └─[1] Leaf (int): 1

# Tree

Tree is an unlinked variant of ArrayTree. It shares the growable child storage,
but does not track parents and does not guard against sharing of nodes or cycles.
Use Tree.Check to find out after the fact.

Neither of the types is safe for concurrent mutation. Clients needing concurrent
access have to wrap a tree with their own synchronization.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package baum

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the baum module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrAlreadyAttached is flagged if a node to be attached as a child already
// has a parent. It has to be detached first.
const ErrAlreadyAttached = TreeError("node is already attached to a parent")

// ErrSelfAttachment is flagged if a node is to become its own child.
const ErrSelfAttachment = TreeError("node may not be its own child")

// ErrCycleDetected is flagged if attaching a node would make an ancestor a
// child of one of its descendants.
const ErrCycleDetected = TreeError("attachment would create a cycle")

// ErrIndexOutOfRange is flagged whenever a child index is outside of [0, Len()).
const ErrIndexOutOfRange = TreeError("child index out of range")

// ErrNotAChild is flagged if a node is not a direct child of the node it is
// to be removed from.
const ErrNotAChild = TreeError("node is not a child of this node")

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g. nil nodes.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrInvalidTree is flagged by Check if a tree violates a structural invariant.
const ErrInvalidTree = TreeError("invalid tree structure")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
