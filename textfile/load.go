package textfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/baum"
)

// tabWidth is the number of columns a tab character counts for.
const tabWidth = 4

// Attached is published for every node of a loaded tree.
type Attached struct {
	Node  *baum.ArrayTree[string]
	Depth int
}

// Load reads a text file containing an indented outline and returns it as a
// tree. If cast is not nil, the nodes of the tree are published to it.
func Load(name string, cast *caster.Caster) (*baum.ArrayTree[string], error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file, cast)
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	return os.Open(name) // just open for read access
}

type level struct {
	indent int
	node   *baum.ArrayTree[string]
}

// Parse reads an indented outline from r and returns it as a tree. If cast
// is not nil, the nodes of the tree are published to it.
func Parse(r io.Reader, cast *caster.Caster) (*baum.ArrayTree[string], error) {
	var stack []level
	var root *baum.ArrayTree[string]
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		indent := indentation(line)
		node := baum.NewNode(text)
		if root == nil {
			root = node
			stack = append(stack, level{indent, node})
			continue
		}
		var popped *level
		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			popped = &stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return nil, fmt.Errorf("%w: line %d", ErrMultipleRoots, lineno)
		}
		if popped != nil && popped.indent != indent {
			return nil, fmt.Errorf("%w: line %d", ErrIndentation, lineno)
		}
		parent := stack[len(stack)-1].node
		if err := parent.AddChild(node); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		stack = append(stack, level{indent, node})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrEmptyOutline
	}
	tracer().Debugf("outline: %d lines, %d nodes", lineno, root.Size())
	broadcast(cast, root)
	return root, nil
}

func indentation(line string) int {
	cols := 0
	for _, r := range line {
		switch r {
		case ' ':
			cols++
		case '\t':
			cols += tabWidth
		default:
			return cols
		}
	}
	return cols
}

// broadcast publishes all nodes of tree to cast, in pre-order.
func broadcast(cast *caster.Caster, tree *baum.ArrayTree[string]) {
	if cast == nil {
		return
	}
	for node := range tree.All() {
		if !cast.Pub(Attached{Node: node, Depth: node.Depth()}) {
			tracer().Infof("textfile: caster closed, stop publishing")
			return
		}
	}
}
