package baum

import (
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	root, _ := NewNodeWithChildren("r", NewNode(`say "hi"`), NewNode("b"))
	var b strings.Builder
	if err := Tree2Dot(root, &b); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a digraph")
	}
	for _, want := range []string{
		`"1" -> "2";`,
		`"1" -> "3";`,
		`[0] (string): say \"hi\"`,
		"shape=circle",
		"shape=box",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("expected DOT output to contain %q", want)
		}
	}
	if err := Tree2Dot[int](nil, &b); err == nil {
		t.Errorf("expected error for nil tree")
	}
}
