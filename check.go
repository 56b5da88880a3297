package baum

import (
	"fmt"

	"github.com/yourbasic/graph"
)

// Check validates the structural invariants of the subtree rooted at node:
//
//   - every child slot in use holds a node,
//   - every child links back to node, at its true position,
//   - slot usage does not exceed the capacity, free slots are empty,
//   - no node is reachable twice, i.e. the subtree is a tree.
//
// Check is meant for tests and debugging; a tree built with the public API
// of this package is always valid.
func (node *ArrayTree[T]) Check() error {
	if node == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	var slotErr error
	shapeErr := checkShape(node, func(n *ArrayTree[T]) []*ArrayTree[T] {
		if slotErr != nil {
			return nil
		}
		if err := n.checkSlots(); err != nil {
			slotErr = err
			return nil
		}
		return n.children.view()
	})
	if slotErr != nil {
		return slotErr
	}
	return shapeErr
}

func (node *ArrayTree[T]) checkSlots() error {
	if node.children.used > node.children.capacity() {
		return fmt.Errorf("%w: %d slots used, capacity is %d", ErrInvalidTree,
			node.children.used, node.children.capacity())
	}
	for i, ch := range node.children.buf {
		if i >= node.children.used {
			if ch != nil {
				return fmt.Errorf("%w: free slot %d is occupied", ErrInvalidTree, i)
			}
			continue
		}
		if ch == nil {
			return fmt.Errorf("%w: nil child at index %d", ErrInvalidTree, i)
		}
		if ch.parent != node {
			return fmt.Errorf("%w: child at index %d does not link back to its parent", ErrInvalidTree, i)
		}
		if ch.parentIndex != i {
			return fmt.Errorf("%w: child at index %d has parent index %d", ErrInvalidTree, i, ch.parentIndex)
		}
	}
	return nil
}

// checkShape walks the graph spanned by children, starting at root, and
// reports an error if it is not a tree. Nodes are compared by identity.
// Every node is expanded once, so checkShape terminates for cyclic structures.
func checkShape[N comparable](root N, children func(N) []N) error {
	ids := map[N]int{root: 0}
	type edge struct{ from, to int }
	var edges []edge
	queue := []N{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, ch := range children(n) {
			id, seen := ids[ch]
			if !seen {
				id = len(ids)
				ids[ch] = id
				queue = append(queue, ch)
			}
			edges = append(edges, edge{from: ids[n], to: id})
		}
	}
	g := graph.New(len(ids))
	indegree := make([]int, len(ids))
	for _, e := range edges {
		g.Add(e.from, e.to)
		indegree[e.to]++
	}
	if !graph.Acyclic(g) {
		return fmt.Errorf("%w: structure contains a cycle", ErrInvalidTree)
	}
	for v, d := range indegree {
		if d > 1 {
			return fmt.Errorf("%w: node #%d is shared by %d parents", ErrInvalidTree, v, d)
		}
	}
	return nil
}
