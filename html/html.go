/*
Package html builds trees from HTML fragments.

Element nodes carry their tag name, text nodes their text with surrounding
white space removed. Text consisting of white space only, comments and
doctype declarations are dropped.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/baum"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// FromNode creates a tree for an HTML node and all its descendents.
// It returns nil for nodes which carry no content, e.g. white space.
func FromNode(n *html.Node) (*baum.ArrayTree[string], error) {
	if n == nil {
		return nil, baum.ErrIllegalArguments
	}
	return collect(n)
}

func collect(n *html.Node) (*baum.ArrayTree[string], error) {
	var node *baum.ArrayTree[string]
	switch n.Type {
	case html.ElementNode:
		node = baum.NewNode(n.Data)
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return nil, nil
		}
		return baum.NewNode(text), nil
	case html.DocumentNode:
		node = baum.NewVoidNode[string]()
	default:
		return nil, nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		child, err := collect(c)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		if err = node.AddChild(child); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// FromHTML creates a tree from an HTML fragment. The fragment is parsed as if
// it were the content of a <body> element. The nodes of the fragment become
// children of a root without content.
func FromHTML(input io.Reader) (*baum.ArrayTree[string], error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	root := baum.NewVoidNode[string]()
	for _, n := range nodes {
		child, err := collect(n)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		if err = root.AddChild(child); err != nil {
			return nil, err
		}
	}
	T().Debugf("html: fragment with %d nodes", root.Size())
	return root, nil
}
