package mathml

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContent(t *testing.T) {
	x := &Node{Kind: ElementKind, Data: "mi"}
	y := &Node{Kind: TextKind, Data: " y "}

	node := &Node{Kind: ElementKind, Data: "mrow", Children: []*Node{
		{Kind: TextKind, Data: "\n  "},
		x,
		{Kind: TextKind, Data: " "},
		y,
		{Kind: TextKind},
	}}

	if diff := cmp.Diff([]*Node{x, y}, node.content()); diff != "" {
		t.Errorf("Content does not match (-want +got):\n%s", diff)
	}

	if len(node.Children) != 5 {
		t.Errorf("Content must not modify children, got %d children", len(node.Children))
	}
}
