package baum

import "fmt"

// Tree is a node of an n-ary tree without parent links.
//
// Tree uses the same growable child storage as ArrayTree, but it does not
// check attachments: a node may be added to more than one parent, or even
// to itself. Clients are responsible for keeping the structure a tree;
// Check reports violations after the fact.
type Tree[T comparable] struct {
	children   slots[*Tree[T]]
	content    T
	hasContent bool
}

// NewTree creates a leaf carrying content. As with NewNode, nil content
// counts as absent.
func NewTree[T comparable](content T) *Tree[T] {
	t := &Tree[T]{}
	t.SetContent(content)
	return t
}

// NewVoidTree creates a leaf without content.
func NewVoidTree[T comparable]() *Tree[T] {
	return &Tree[T]{}
}

// NewTreeWithChildren creates a node carrying content, with an initial
// sequence of children. The capacity of the child array equals len(children).
func NewTreeWithChildren[T comparable](content T, children ...*Tree[T]) (*Tree[T], error) {
	for i, ch := range children {
		if ch == nil {
			return nil, fmt.Errorf("%w: child #%d is nil", ErrIllegalArguments, i)
		}
	}
	t := NewTree(content)
	t.children = makeSlots(children)
	return t, nil
}

// AddChild appends child as the last child of t.
func (t *Tree[T]) AddChild(child *Tree[T]) error {
	if child == nil {
		return ErrIllegalArguments
	}
	t.children.push(child)
	return nil
}

// RemoveChild removes the child at position index and returns it. Later
// children move one position to the left.
func (t *Tree[T]) RemoveChild(index int) (*Tree[T], error) {
	if index < 0 || index >= t.children.len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, t.children.len())
	}
	return t.children.removeAt(index, nil), nil
}

// SetChild replaces the child at position index and returns the former child.
func (t *Tree[T]) SetChild(index int, child *Tree[T]) (*Tree[T], error) {
	if child == nil {
		return nil, ErrIllegalArguments
	}
	if index < 0 || index >= t.children.len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, t.children.len())
	}
	old := t.children.at(index)
	t.children.set(index, child)
	return old, nil
}

// Child returns the child at position index.
func (t *Tree[T]) Child(index int) (*Tree[T], error) {
	if index < 0 || index >= t.children.len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, t.children.len())
	}
	return t.children.at(index), nil
}

// Children returns a copy of the sequence of children.
func (t *Tree[T]) Children() []*Tree[T] {
	return t.children.elems()
}

// Content returns the content of t. The second return value is false if t
// does not carry content.
func (t *Tree[T]) Content() (T, bool) {
	return t.content, t.hasContent
}

// SetContent sets the content of t.
func (t *Tree[T]) SetContent(content T) {
	if isNil(content) {
		var zero T
		t.content, t.hasContent = zero, false
		return
	}
	t.content = content
	t.hasContent = true
}

// Len returns the number of children.
func (t *Tree[T]) Len() int {
	return t.children.len()
}

// Capacity returns the number of child slots currently allocated.
func (t *Tree[T]) Capacity() int {
	return t.children.capacity()
}

// Check reports an error wrapping ErrInvalidTree if the structure reachable
// from t contains a cycle or a node with more than one parent.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	return checkShape(t, func(n *Tree[T]) []*Tree[T] {
		return n.children.view()
	})
}

// Linked converts the structure reachable from t into an ArrayTree. It fails
// with an error wrapping ErrInvalidTree if t is not a proper tree.
func (t *Tree[T]) Linked() (*ArrayTree[T], error) {
	if err := t.Check(); err != nil {
		return nil, err
	}
	return t.linked(), nil
}

func (t *Tree[T]) linked() *ArrayTree[T] {
	node := NewVoidNode[T]()
	if t.hasContent {
		node.SetContent(t.content)
	}
	for _, ch := range t.children.view() {
		err := node.AddChild(ch.linked())
		assert(err == nil, "Linked: cannot attach fresh node")
	}
	return node
}
