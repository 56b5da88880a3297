package baum

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T comparable] struct {
	idTable map[*ArrayTree[T]]int
	max     int
}

func newtable[T comparable]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*ArrayTree[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *ArrayTree[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *ArrayTree[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[T comparable](tree *ArrayTree[T], w io.Writer) error {
	if tree == nil {
		return ErrIllegalArguments
	}
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	for node := range tree.All() {
		ID := ids.alloc(node)
		l := node.line(0, "", false)
		label := dotEscape(l.ContentText())
		if l.Index >= 0 {
			label = fmt.Sprintf("[%d] %s", l.Index, label)
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node.IsLeaf()))
		for _, ch := range node.children.view() {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(ch))
		}
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return dotError(err)
	}
	if _, err := io.WriteString(w, nodelist.String()+edgelist.String()+"}\n"); err != nil {
		return dotError(err)
	}
	return nil
}

func dotError(err error) error {
	T().Errorf("tree DOT: %s", err.Error())
	return err
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
