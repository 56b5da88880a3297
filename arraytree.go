package baum

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"reflect"
)

// ArrayTree is a node of a rooted, parent-linked n-ary tree.
//
// A node owns its children. It may be attached to at most one parent, and
// the children of a node always satisfy
//
//	node.Child(i).Parent() == node  &&  node.Child(i).ParentIndex() == i
//
// A node created by
//
//	&ArrayTree[T]{}
//
// is a valid orphan leaf without content, but clients should prefer NewVoidNode,
// which initializes the parent index.
//
// ArrayTree is not safe for concurrent use.
type ArrayTree[T comparable] struct {
	parent      *ArrayTree[T]        // parent node, nil for orphans
	parentIndex int                  // position within parent's children, -1 for orphans
	children    slots[*ArrayTree[T]] // owned children
	content     T                    // payload
	hasContent  bool                 // false if content is absent
}

// NewNode creates an orphan leaf carrying content. A nil interface value or
// nil pointer counts as absent content, i.e. NewNode creates a void node.
func NewNode[T comparable](content T) *ArrayTree[T] {
	node := NewVoidNode[T]()
	node.SetContent(content)
	return node
}

// NewVoidNode creates an orphan leaf without content.
func NewVoidNode[T comparable]() *ArrayTree[T] {
	return &ArrayTree[T]{parentIndex: -1}
}

// NewNodeWithChildren creates a node carrying content, with children as its
// initial sequence of children. All children have to be orphans, and no child
// may be listed twice. If any child is rejected, no node will be changed.
//
// The capacity of the new node's child array equals len(children).
func NewNodeWithChildren[T comparable](content T, children ...*ArrayTree[T]) (*ArrayTree[T], error) {
	node := NewNode(content)
	if err := node.setChildren(children); err != nil {
		return nil, err
	}
	return node, nil
}

// NewVoidNodeWithChildren is like NewNodeWithChildren, but creates a node
// without content.
func NewVoidNodeWithChildren[T comparable](children ...*ArrayTree[T]) (*ArrayTree[T], error) {
	node := NewVoidNode[T]()
	if err := node.setChildren(children); err != nil {
		return nil, err
	}
	return node, nil
}

func (node *ArrayTree[T]) setChildren(children []*ArrayTree[T]) error {
	seen := make(map[*ArrayTree[T]]struct{}, len(children))
	for i, ch := range children {
		if err := node.checkAttach(ch); err != nil {
			return fmt.Errorf("%w: child #%d", err, i)
		}
		if _, dup := seen[ch]; dup {
			return fmt.Errorf("%w: child #%d is listed twice", ErrAlreadyAttached, i)
		}
		seen[ch] = struct{}{}
	}
	node.children = makeSlots(children)
	for i, ch := range children {
		node.link(ch, i)
	}
	return nil
}

// --- Attachment ------------------------------------------------------------

// checkAttach validates that child may become a child of node. It does not
// change anything.
func (node *ArrayTree[T]) checkAttach(child *ArrayTree[T]) error {
	if child == nil {
		return ErrIllegalArguments
	}
	if !child.IsOrphan() {
		return rejected(ErrAlreadyAttached)
	}
	if child == node {
		return rejected(ErrSelfAttachment)
	}
	if child.Contains(node) {
		return rejected(ErrCycleDetected)
	}
	return nil
}

func rejected(err TreeError) error {
	T().Debugf("baum: attachment rejected: %s", err)
	return err
}

func (node *ArrayTree[T]) link(child *ArrayTree[T], index int) {
	child.parent = node
	child.parentIndex = index
}

func unlink[T comparable](child *ArrayTree[T]) {
	child.parent = nil
	child.parentIndex = -1
}

// AddChild appends child as the last child of node.
//
// child has to be an orphan, must not be node itself and must not be an
// ancestor of node. Otherwise ErrAlreadyAttached, ErrSelfAttachment or
// ErrCycleDetected is returned and nothing changes.
func (node *ArrayTree[T]) AddChild(child *ArrayTree[T]) error {
	if err := node.checkAttach(child); err != nil {
		return err
	}
	node.link(child, node.children.len())
	node.children.push(child)
	return nil
}

// RemoveChild detaches the child at position index and returns it. Later
// children move one position to the left. The returned node is an orphan and
// belongs to the caller.
func (node *ArrayTree[T]) RemoveChild(index int) (*ArrayTree[T], error) {
	if index < 0 || index >= node.children.len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, node.children.len())
	}
	removed := node.children.removeAt(index, func(ch *ArrayTree[T], i int) {
		ch.parentIndex = i
	})
	unlink(removed)
	return removed, nil
}

// RemoveChildNode detaches child from node. It returns ErrNotAChild if child
// is not a direct child of node.
func (node *ArrayTree[T]) RemoveChildNode(child *ArrayTree[T]) (*ArrayTree[T], error) {
	if child == nil {
		return nil, ErrIllegalArguments
	}
	if child.parent != node {
		return nil, ErrNotAChild
	}
	return node.RemoveChild(child.parentIndex)
}

// SetChild replaces the child at position index with child and returns the
// former occupant of the slot, which becomes an orphan. Other children do not
// move.
//
// child is validated in the same way as for AddChild, before the former
// occupant is detached.
func (node *ArrayTree[T]) SetChild(index int, child *ArrayTree[T]) (*ArrayTree[T], error) {
	if index < 0 || index >= node.children.len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, node.children.len())
	}
	if err := node.checkAttach(child); err != nil {
		return nil, err
	}
	old := node.children.at(index)
	unlink(old)
	node.children.set(index, child)
	node.link(child, index)
	return old, nil
}

// Detach removes node from its parent, if any, and returns it.
func (node *ArrayTree[T]) Detach() *ArrayTree[T] {
	if node.parent != nil {
		_, err := node.parent.RemoveChild(node.parentIndex)
		assert(err == nil, "Detach: parent index out of sync")
	}
	return node
}

// --- Accessors -------------------------------------------------------------

// Content returns the content of node. The second return value is false if
// node does not carry content.
func (node *ArrayTree[T]) Content() (T, bool) {
	return node.content, node.hasContent
}

// SetContent sets the content of node. Setting a nil interface value or a
// nil pointer is the same as ClearContent.
func (node *ArrayTree[T]) SetContent(content T) {
	if isNil(content) {
		node.ClearContent()
		return
	}
	node.content = content
	node.hasContent = true
}

// isNil reports whether content is a nil interface value or a nil pointer.
func isNil[T comparable](content T) bool {
	v := any(content)
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// ClearContent removes the content of node.
func (node *ArrayTree[T]) ClearContent() {
	var zero T
	node.content = zero
	node.hasContent = false
}

// Child returns the child at position index.
func (node *ArrayTree[T]) Child(index int) (*ArrayTree[T], error) {
	if index < 0 || index >= node.children.len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, node.children.len())
	}
	return node.children.at(index), nil
}

// Children returns a copy of the sequence of children.
func (node *ArrayTree[T]) Children() []*ArrayTree[T] {
	return node.children.elems()
}

// Parent returns the parent of node, or nil for orphans.
func (node *ArrayTree[T]) Parent() *ArrayTree[T] {
	return node.parent
}

// ParentIndex returns the position of node within its parent's children,
// or -1 for orphans.
func (node *ArrayTree[T]) ParentIndex() int {
	if node.parent == nil {
		return -1
	}
	return node.parentIndex
}

// Len returns the number of children of node.
func (node *ArrayTree[T]) Len() int {
	return node.children.len()
}

// Capacity returns the number of child slots currently allocated.
func (node *ArrayTree[T]) Capacity() int {
	return node.children.capacity()
}
