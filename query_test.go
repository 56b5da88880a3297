package baum

import "testing"

func TestSizeAndDepth(t *testing.T) {
	root := testTree(t)
	if root.Size() != 21 {
		t.Errorf("expected size 21, is %d", root.Size())
	}
	if root.Depth() != 0 {
		t.Errorf("expected root depth 0, is %d", root.Depth())
	}
	for _, ch := range root.Children() {
		if ch.Depth() != 1 || ch.Size() != 5 {
			t.Errorf("child: depth = %d, size = %d", ch.Depth(), ch.Size())
		}
		for _, g := range ch.Children() {
			if g.Depth() != 2 {
				t.Errorf("expected grandchild depth 2, is %d", g.Depth())
			}
		}
	}
}

func TestNodeKinds(t *testing.T) {
	root := testTree(t)
	ch, _ := root.Child(0)
	g, _ := ch.Child(0)
	if !root.IsRoot() || !root.IsOrphan() || root.IsInner() || root.IsLeaf() {
		t.Errorf("root misclassified")
	}
	if !ch.IsInner() || ch.IsRoot() || ch.IsLeaf() || ch.IsEmpty() {
		t.Errorf("child misclassified")
	}
	if !g.IsLeaf() || !g.IsEmpty() || g.IsInner() {
		t.Errorf("grandchild misclassified")
	}
	single := NewNode(1)
	if single.Kind() != LeafNode || root.Kind() != RootNode || ch.Kind() != InnerNode {
		t.Errorf("unexpected kinds %v, %v, %v", single.Kind(), root.Kind(), ch.Kind())
	}
}

func TestDeepSearch(t *testing.T) {
	root := NewNode(1)
	a, b, c := NewNode(2), NewNode(3), NewNode(7)
	_ = root.AddChild(a)
	_ = a.AddChild(b)
	_ = b.AddChild(c)
	if found := root.DeepSearch(7); found != c {
		t.Errorf("expected to find node 7 three levels down, got %v", found)
	}
	if found := root.DeepSearch(1); found != root {
		t.Errorf("expected to find root itself")
	}
	if found := root.DeepSearch(42); found != nil {
		t.Errorf("expected nil for absent value, got %v", found)
	}
}

func TestDeepSearchPreOrder(t *testing.T) {
	root := NewNode("r")
	a, b := NewNode("a"), NewNode("x")
	_ = root.AddChild(a)
	_ = root.AddChild(b)
	deep := NewNode("x")
	_ = a.AddChild(deep)
	if found := root.DeepSearch("x"); found != deep {
		t.Errorf("expected pre-order match below first child")
	}
}

func TestShallowSearch(t *testing.T) {
	root := testTree(t)
	if found := root.ShallowSearch(2); found == nil || found.ParentIndex() != 2 {
		t.Errorf("expected direct child 2, got %v", found)
	}
	ch, _ := root.Child(0)
	_ = ch.AddChild(NewNode(42))
	if found := root.ShallowSearch(42); found != nil {
		t.Errorf("shallow search must not find grandchildren")
	}
	if found := root.ShallowSearch(4); found != nil {
		t.Errorf("shallow search must not match the node itself")
	}
}

func TestSearchIgnoresVoidNodes(t *testing.T) {
	root := NewNode(5)
	_ = root.AddChild(NewVoidNode[int]())
	if root.ShallowSearch(0) != nil || root.DeepSearch(0) != nil {
		t.Errorf("void node must not match zero value")
	}
}

func TestContains(t *testing.T) {
	root := testTree(t)
	ch, _ := root.Child(3)
	g, _ := ch.Child(3)
	if !root.Contains(root) || !root.Contains(g) || !ch.Contains(g) {
		t.Errorf("expected containment")
	}
	if g.Contains(root) || ch.Contains(root) {
		t.Errorf("descendants must not contain ancestors")
	}
	if root.Contains(NewNode(0)) {
		t.Errorf("equal but distinct node must not be contained")
	}
}

func TestAllPreOrder(t *testing.T) {
	root := NewNode(0)
	a, b := NewNode(1), NewNode(3)
	_ = root.AddChild(a)
	_ = root.AddChild(b)
	_ = a.AddChild(NewNode(2))
	var seen []int
	for n := range root.All() {
		c, _ := n.Content()
		seen = append(seen, c)
		if c == 2 {
			break
		}
	}
	if len(seen) != 3 || seen[0] != 0 || seen[1] != 1 || seen[2] != 2 {
		t.Errorf("unexpected pre-order sequence %v", seen)
	}
}
