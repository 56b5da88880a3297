package baum

import "iter"

// IsOrphan reports whether node has no parent.
func (node *ArrayTree[T]) IsOrphan() bool {
	return node.parent == nil
}

// IsRoot reports whether node is the root of a tree. This is the same
// condition as IsOrphan.
func (node *ArrayTree[T]) IsRoot() bool {
	return node.parent == nil
}

// IsLeaf reports whether node has no children.
func (node *ArrayTree[T]) IsLeaf() bool {
	return node.children.len() == 0
}

// IsInner reports whether node is neither a root nor a leaf.
func (node *ArrayTree[T]) IsInner() bool {
	return !(node.IsRoot() || node.IsLeaf())
}

// IsEmpty reports whether node has no children.
func (node *ArrayTree[T]) IsEmpty() bool {
	return node.children.len() == 0
}

// Size returns the number of nodes in the subtree rooted at node, including
// node itself.
func (node *ArrayTree[T]) Size() int {
	size := 1
	for _, ch := range node.children.view() {
		size += ch.Size()
	}
	return size
}

// Depth returns the number of ancestors of node. A root has depth 0.
func (node *ArrayTree[T]) Depth() int {
	d := 0
	for n := node; !n.IsRoot(); n = n.parent {
		d++
	}
	return d
}

// ShallowSearch returns the first direct child of node carrying content
// equal to value, or nil.
func (node *ArrayTree[T]) ShallowSearch(value T) *ArrayTree[T] {
	for _, ch := range node.children.view() {
		if ch.hasContent && ch.content == value {
			return ch
		}
	}
	return nil
}

// DeepSearch returns the first node in pre-order, starting with node itself,
// which carries content equal to value. It returns nil if there is none.
func (node *ArrayTree[T]) DeepSearch(value T) *ArrayTree[T] {
	if node.hasContent && node.content == value {
		return node
	}
	for _, ch := range node.children.view() {
		if found := ch.DeepSearch(value); found != nil {
			return found
		}
	}
	return nil
}

// Contains reports whether target is node itself or one of its descendants.
// Nodes are compared by identity.
func (node *ArrayTree[T]) Contains(target *ArrayTree[T]) bool {
	if target == node {
		return true
	}
	for _, ch := range node.children.view() {
		if ch.Contains(target) {
			return true
		}
	}
	return false
}

// All returns an iterator over the subtree rooted at node, in pre-order.
//
// The tree must not be modified during iteration.
func (node *ArrayTree[T]) All() iter.Seq[*ArrayTree[T]] {
	return func(yield func(*ArrayTree[T]) bool) {
		node.each(yield)
	}
}

func (node *ArrayTree[T]) each(yield func(*ArrayTree[T]) bool) bool {
	if !yield(node) {
		return false
	}
	for _, ch := range node.children.view() {
		if !ch.each(yield) {
			return false
		}
	}
	return true
}
