package bst

import (
	"iter"

	"github.com/npillmayer/baum"
)

type node[C ComparableContent[C]] struct {
	content     C
	left, right *node[C]
}

// BinarySearchTree is an unbalanced binary search tree. Content is ordered
// by its ComparableContent predicates; equal content is stored only once.
//
// A tree created by
//
//	BinarySearchTree[C]{}
//
// is a valid, empty tree.
type BinarySearchTree[C ComparableContent[C]] struct {
	root *node[C]
	size int
}

// New creates an empty binary search tree.
func New[C ComparableContent[C]]() *BinarySearchTree[C] {
	return &BinarySearchTree[C]{}
}

// Len returns the number of values in the tree.
func (t *BinarySearchTree[C]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no values.
func (t *BinarySearchTree[C]) IsEmpty() bool {
	return t.root == nil
}

// Insert adds c to the tree. It returns false if an equal value is already
// present, leaving the tree unchanged.
func (t *BinarySearchTree[C]) Insert(c C) bool {
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case c.IsLess(n.content):
			link = &n.left
		case c.IsGreater(n.content):
			link = &n.right
		default:
			tracer().Debugf("bst: value %v already present", c)
			return false
		}
	}
	*link = &node[C]{content: c}
	t.size++
	return true
}

// Search returns the stored value equal to c.
func (t *BinarySearchTree[C]) Search(c C) (C, bool) {
	n := t.root
	for n != nil {
		switch {
		case c.IsLess(n.content):
			n = n.left
		case c.IsGreater(n.content):
			n = n.right
		default:
			return n.content, true
		}
	}
	var zero C
	return zero, false
}

// Contains reports whether a value equal to c is in the tree.
func (t *BinarySearchTree[C]) Contains(c C) bool {
	_, found := t.Search(c)
	return found
}

// Remove deletes the value equal to c from the tree. It returns false if
// there is no such value; this is not an error.
func (t *BinarySearchTree[C]) Remove(c C) bool {
	var removed bool
	t.root, removed = remove(t.root, c)
	if removed {
		t.size--
	}
	return removed
}

func remove[C ComparableContent[C]](n *node[C], c C) (*node[C], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case c.IsLess(n.content):
		n.left, removed = remove(n.left, c)
		return n, removed
	case c.IsGreater(n.content):
		n.right, removed = remove(n.right, c)
		return n, removed
	}
	if n.left == nil {
		return n.right, true
	} else if n.right == nil {
		return n.left, true
	}
	// two children: replace by in-order successor
	succ := n.right
	for succ.left != nil {
		succ = succ.left
	}
	n.content = succ.content
	n.right, _ = remove(n.right, succ.content)
	return n, true
}

// Min returns the smallest value in the tree.
func (t *BinarySearchTree[C]) Min() (C, error) {
	if t.root == nil {
		var zero C
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.content, nil
}

// Max returns the greatest value in the tree.
func (t *BinarySearchTree[C]) Max() (C, error) {
	if t.root == nil {
		var zero C
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.content, nil
}

// Height returns the number of nodes on the longest path from the root to
// a leaf. The empty tree has height 0.
func (t *BinarySearchTree[C]) Height() int {
	return height(t.root)
}

func height[C ComparableContent[C]](n *node[C]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// InOrder returns an iterator over all values in ascending order.
//
// The tree must not be modified during iteration.
func (t *BinarySearchTree[C]) InOrder() iter.Seq[C] {
	return func(yield func(C) bool) {
		inorder(t.root, yield)
	}
}

func inorder[C ComparableContent[C]](n *node[C], yield func(C) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, yield) && yield(n.content) && inorder(n.right, yield)
}

// ToArrayTree converts a binary search tree to an ArrayTree, e.g. for
// rendering. Missing left or right children are omitted, so a node with a
// single child cannot tell which side it is on. ToArrayTree returns nil for
// an empty tree.
func ToArrayTree[C interface {
	comparable
	ComparableContent[C]
}](t *BinarySearchTree[C]) *baum.ArrayTree[C] {
	if t.root == nil {
		return nil
	}
	return toArrayTree(t.root)
}

func toArrayTree[C interface {
	comparable
	ComparableContent[C]
}](n *node[C]) *baum.ArrayTree[C] {
	a := baum.NewNode(n.content)
	for _, ch := range []*node[C]{n.left, n.right} {
		if ch != nil {
			if err := a.AddChild(toArrayTree(ch)); err != nil {
				panic(err) // fresh nodes are always orphans
			}
		}
	}
	return a
}
