package textfile

import (
	"fmt"
	"io"

	"github.com/guiguan/caster"
	"github.com/npillmayer/baum"
	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML file and returns its structure as a tree. If cast is
// not nil, the nodes of the tree are published to it.
func LoadYAML(name string, cast *caster.Caster) (*baum.ArrayTree[string], error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseYAML(file, cast)
}

// ParseYAML reads a YAML document from r and returns its structure as a tree.
// If the document consists of more than one top-level node, they become
// children of a root without content.
func ParseYAML(r io.Reader, cast *caster.Caster) (*baum.ArrayTree[string], error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyOutline
		}
		return nil, err
	}
	nodes, err := convert(&doc, map[*yaml.Node]bool{})
	if err != nil {
		return nil, err
	}
	var root *baum.ArrayTree[string]
	switch len(nodes) {
	case 0:
		return nil, ErrEmptyOutline
	case 1:
		root = nodes[0]
	default:
		if root, err = baum.NewVoidNodeWithChildren(nodes...); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("yaml: %d nodes", root.Size())
	broadcast(cast, root)
	return root, nil
}

// convert returns the tree nodes representing n, as a sequence of siblings.
func convert(n *yaml.Node, active map[*yaml.Node]bool) ([]*baum.ArrayTree[string], error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return convert(n.Content[0], active)
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		return []*baum.ArrayTree[string]{baum.NewNode(n.Value)}, nil
	case yaml.AliasNode:
		if active[n.Alias] {
			return nil, fmt.Errorf("%w: *%s in line %d", ErrRecursiveAlias, n.Value, n.Line)
		}
		active[n.Alias] = true
		defer delete(active, n.Alias)
		return convert(n.Alias, active)
	case yaml.MappingNode:
		var nodes []*baum.ArrayTree[string]
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			children, err := convert(value, active)
			if err != nil {
				return nil, err
			}
			node, err := baum.NewNodeWithChildren(key.Value, children...)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		return nodes, nil
	case yaml.SequenceNode:
		var nodes []*baum.ArrayTree[string]
		for _, item := range n.Content {
			children, err := convert(item, active)
			if err != nil {
				return nil, err
			}
			if item.Kind == yaml.SequenceNode {
				node, err := baum.NewVoidNodeWithChildren(children...)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, node)
				continue
			}
			nodes = append(nodes, children...)
		}
		return nodes, nil
	}
	return nil, fmt.Errorf("yaml: unexpected node kind %d in line %d", n.Kind, n.Line)
}
