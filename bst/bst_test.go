package bst

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func collect[C ComparableContent[C]](t *BinarySearchTree[C]) []C {
	var values []C
	for c := range t.InOrder() {
		values = append(values, c)
	}
	return values
}

func TestIntComparableTotalOrder(t *testing.T) {
	values := []IntComparable{-20, 1, 10, 21}
	for _, a := range values {
		for _, b := range values {
			n := 0
			for _, holds := range []bool{a.IsGreater(b), a.IsEqual(b), a.IsLess(b)} {
				if holds {
					n++
				}
			}
			if n != 1 {
				t.Errorf("%d vs %d: %d predicates hold", a, b, n)
			}
		}
	}
}

func TestInsertAndSearch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New[IntComparable]()
	for _, v := range []IntComparable{10, 21, 1, -20} {
		if !tree.Insert(v) {
			t.Errorf("insert of %d failed", v)
		}
	}
	if tree.Insert(21) {
		t.Errorf("duplicate insert should be rejected")
	}
	if tree.Len() != 4 {
		t.Errorf("expected 4 values, have %d", tree.Len())
	}
	if got := collect(tree); !slices.Equal(got, []IntComparable{-20, 1, 10, 21}) {
		t.Errorf("unexpected in-order sequence %v", got)
	}
	if v, ok := tree.Search(1); !ok || v != 1 {
		t.Errorf("expected to find 1")
	}
	if tree.Contains(12) {
		t.Errorf("12 should not be found")
	}
	if tree.Height() != 3 {
		t.Errorf("expected height 3, is %d", tree.Height())
	}
}

func TestRemove(t *testing.T) {
	tree := New[IntComparable]()
	for _, v := range []IntComparable{50, 30, 70, 20, 40, 60, 80, 35} {
		tree.Insert(v)
	}
	if tree.Remove(12) {
		t.Errorf("removing absent value should report false")
	}
	// leaf, left child only, right child only, root with two children
	for _, v := range []IntComparable{20, 40, 30, 50} {
		if !tree.Remove(v) {
			t.Fatalf("remove of %d failed", v)
		}
		if tree.Contains(v) {
			t.Errorf("%d still present after removal", v)
		}
	}
	if got := collect(tree); !slices.Equal(got, []IntComparable{35, 60, 70, 80}) {
		t.Errorf("unexpected in-order sequence %v", got)
	}
	if tree.Len() != 4 {
		t.Errorf("expected 4 values, have %d", tree.Len())
	}
}

func TestMinMax(t *testing.T) {
	tree := New[Ordered[string]]()
	if _, err := tree.Min(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree, got %v", err)
	}
	for _, s := range []string{"kiwi", "apple", "pear", "fig"} {
		tree.Insert(Of(s))
	}
	lo, _ := tree.Min()
	hi, _ := tree.Max()
	if lo.Value != "apple" || hi.Value != "pear" {
		t.Errorf("unexpected min/max %v/%v", lo, hi)
	}
}

func TestToArrayTree(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree := New[IntComparable]()
	if ToArrayTree(tree) != nil {
		t.Errorf("expected nil for empty tree")
	}
	for _, v := range []IntComparable{10, 21, 1, -20} {
		tree.Insert(v)
	}
	a := ToArrayTree(tree)
	if a.Size() != 4 {
		t.Fatalf("expected 4 nodes, have %d", a.Size())
	}
	expected := "Root (IntComparable): 10\n" +
		"    ├─[0] Inner node (IntComparable): 1\n" +
		"    │   └─[0] Leaf (IntComparable): -20\n" +
		"    └─[1] Leaf (IntComparable): 21\n"
	if a.String() != expected {
		t.Errorf("unexpected rendering:\n%s", a)
	}
}
