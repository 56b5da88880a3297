package baum

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
)

// Box drawing characters and indentation used for rendering trees.
const (
	barRune    = '│'
	junction   = "├"
	lastChild  = "└"
	horizontal = "─"
	tabWidth   = 4
)

// Content descriptions longer than maxLabelLen grapheme clusters are cut
// to cutLabelLen and get an ellipsis appended.
const (
	maxLabelLen = 67
	cutLabelLen = 63
	ellipsis    = "..."
)

// NodeKind classifies a node for display.
type NodeKind int8

// Kinds of nodes. A node without children is always a leaf, even if it is
// the root of a tree.
const (
	LeafNode NodeKind = iota
	RootNode
	InnerNode
)

func (k NodeKind) String() string {
	switch k {
	case LeafNode:
		return "Leaf"
	case RootNode:
		return "Root"
	case InnerNode:
		return "Inner node"
	}
	return "?"
}

// Kind returns the display kind of node.
func (node *ArrayTree[T]) Kind() NodeKind {
	if node.IsLeaf() {
		return LeafNode
	} else if node.IsRoot() {
		return RootNode
	}
	return InnerNode
}

// Line is a single line of a rendered tree.
type Line struct {
	Depth  int      // depth relative to the top node of the rendering
	Prefix string   // indentation, continuation bars and connector
	Index  int      // position within parent, -1 for roots
	Kind   NodeKind // leaf, root or inner node
	Type   string   // name of the content's dynamic type
	Value  string   // content as text
	Void   bool     // true if the node carries no content
	Last   bool     // true if the node is the last child of its parent
}

// Label returns the description of the node, without prefix and without
// a trailing newline.
func (l Line) Label() string {
	var b strings.Builder
	if l.Index >= 0 {
		fmt.Fprintf(&b, "[%d] ", l.Index)
	}
	b.WriteString(l.Kind.String())
	b.WriteByte(' ')
	b.WriteString(l.ContentText())
	return b.String()
}

// ContentText returns the type and value part of the label, shortened if
// necessary.
func (l Line) ContentText() string {
	if l.Void {
		return ": <nil>"
	}
	return truncate("(" + l.Type + "): " + l.Value)
}

func (l Line) String() string {
	return l.Prefix + l.Label() + "\n"
}

var setupGraphemes sync.Once

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxLabelLen {
		return s
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(validUTF8(s))
	if gstr.Len() <= maxLabelLen {
		return s
	}
	var b strings.Builder
	for i := 0; i < cutLabelLen; i++ {
		b.WriteString(gstr.Nth(i))
	}
	b.WriteString(ellipsis)
	return b.String()
}

// validUTF8 replaces every byte of an invalid UTF-8 sequence by U+FFFD,
// so each of them counts as a character of its own.
func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(r)
	}
	return b.String()
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// Summary returns a one-line description of node, without its children.
// The line is terminated by a newline.
func (node *ArrayTree[T]) Summary() string {
	return node.line(0, "", false).String()
}

func (node *ArrayTree[T]) line(depth int, prefix string, last bool) Line {
	l := Line{
		Depth:  depth,
		Prefix: prefix,
		Index:  node.ParentIndex(),
		Kind:   node.Kind(),
		Void:   !node.hasContent,
		Last:   last,
	}
	if node.hasContent {
		l.Type = typeName(node.content)
		l.Value = fmt.Sprint(node.content)
	}
	return l
}

// String renders the subtree rooted at node, one line per node:
//
//	Root (int): 4
//	    ├─[0] Inner node (int): 0
//	    │   └─[0] Leaf (int): 7
//	    └─[1] Leaf (int): 1
//
// Every level of depth is indented by four columns. A vertical bar continues
// the connector of an ancestor which has further siblings.
func (node *ArrayTree[T]) String() string {
	var b strings.Builder
	_ = node.Layout(func(l Line) error {
		b.WriteString(l.String())
		return nil
	})
	return b.String()
}

// Layout calls f for every line of the rendering of the subtree rooted at
// node, in the order of String. It stops at the first error returned by f
// and returns it.
func (node *ArrayTree[T]) Layout(f func(Line) error) error {
	if err := f(node.line(0, "", true)); err != nil {
		return err
	}
	return node.layoutChildren(1, nil, f)
}

// more[d-1] tells whether the ancestor at depth d has a following sibling.
func (node *ArrayTree[T]) layoutChildren(depth int, more []bool, f func(Line) error) error {
	n := node.children.len()
	for i, ch := range node.children.view() {
		last := i == n-1
		if err := f(ch.line(depth, prefix(depth, more, last), last)); err != nil {
			return err
		}
		if err := ch.layoutChildren(depth+1, append(more, !last), f); err != nil {
			return err
		}
	}
	return nil
}

func prefix(depth int, more []bool, last bool) string {
	pad := []rune(strings.Repeat(" ", depth*tabWidth))
	for d, cont := range more {
		if cont {
			pad[(d+1)*tabWidth] = barRune
		}
	}
	connector := junction
	if last {
		connector = lastChild
	}
	return string(pad) + connector + horizontal
}
