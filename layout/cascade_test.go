package layout

import (
	"testing"

	"github.com/zachzurn/flexml/context"
	"github.com/zachzurn/flexml/diag"
	"github.com/zachzurn/flexml/parser"
	"github.com/zachzurn/flexml/registry"
)

func buildTree(t *testing.T, src string) (*Tree, *registry.Registry) {
	t.Helper()
	sink := diag.New()
	reg := registry.New(nil)
	p := parser.New([]byte(src), reg, sink, nil, parser.DefaultLimits)
	nodes := p.Parse()
	root := reg.ResolveRootStyle(nil)
	return Build(nodes, reg, root), reg
}

// A bare box container with block display becomes its own Container node,
// wrapping a flushed InlineContent for its text.
func TestBuild_BlockBoxWrapsTextInInlineContent(t *testing.T) {
	tree, _ := buildTree(t, "[box Hello]")

	root := tree.Get(tree.Root)
	if root.Kind != KindContainer {
		t.Fatalf("root kind = %v, want KindContainer", root.Kind)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 root child, got %d", len(root.Children))
	}
	child := tree.Get(root.Children[0])
	if child.Kind != KindContainer {
		t.Fatalf("child kind = %v, want KindContainer (block box)", child.Kind)
	}
	if child.Style.Display != context.DisplayBlock {
		t.Errorf("child display = %v, want DisplayBlock", child.Style.Display)
	}
	if len(child.Children) != 1 {
		t.Fatalf("expected 1 grandchild (flushed inline content), got %d", len(child.Children))
	}
	ic := tree.Get(child.Children[0])
	if ic.Kind != KindInlineContent {
		t.Fatalf("grandchild kind = %v, want KindInlineContent", ic.Kind)
	}
	if len(ic.Children) != 1 || tree.Get(ic.Children[0]).Kind != KindText {
		t.Fatalf("expected inline content to hold 1 text node, got %+v", ic.Children)
	}
}

// An inline box's children flatten directly into the parent's inline
// buffer instead of becoming a nested Container.
func TestBuild_InlineBoxFlattensIntoParent(t *testing.T) {
	tree, _ := buildTree(t, "a[inline b]c")

	root := tree.Get(tree.Root)
	if len(root.Children) != 1 {
		t.Fatalf("expected a single flushed inline content child, got %d", len(root.Children))
	}
	ic := tree.Get(root.Children[0])
	if ic.Kind != KindInlineContent {
		t.Fatalf("kind = %v, want KindInlineContent", ic.Kind)
	}
	if len(ic.Children) != 3 {
		t.Fatalf("expected 3 flattened text runs (a, b, c), got %d: %+v", len(ic.Children), ic.Children)
	}
	for _, id := range ic.Children {
		if tree.Get(id).Kind != KindText {
			t.Errorf("expected every flattened child to be Text, got %v", tree.Get(id).Kind)
		}
	}
}

// An inline-block box is appended directly into the buffer as an opaque
// child rather than flattened or flushed as its own sibling Container.
func TestBuild_InlineBlockBoxIsOpaqueInlineChild(t *testing.T) {
	tree, _ := buildTree(t, "a[span b]c")

	root := tree.Get(tree.Root)
	if len(root.Children) != 1 {
		t.Fatalf("expected a single flushed inline content child, got %d", len(root.Children))
	}
	ic := tree.Get(root.Children[0])
	if len(ic.Children) != 3 {
		t.Fatalf("expected 3 children (text, opaque box, text), got %d", len(ic.Children))
	}
	if tree.Get(ic.Children[0]).Kind != KindText {
		t.Errorf("first child should be text 'a'")
	}
	if tree.Get(ic.Children[1]).Kind != KindContainer {
		t.Errorf("middle child should be an opaque Container for the inline-block box, got %v", tree.Get(ic.Children[1]).Kind)
	}
	if tree.Get(ic.Children[2]).Kind != KindText {
		t.Errorf("last child should be text 'c'")
	}
}

// Inheritable properties (color) cascade from parent to child when the
// child doesn't set its own.
func TestBuild_InheritableStylesCascade(t *testing.T) {
	tree, _ := buildTree(t, "{red color:#ff0000ff} [red [box text]]")

	root := tree.Get(tree.Root)
	redBox := tree.Get(root.Children[0])
	if len(redBox.Children) != 1 {
		t.Fatalf("expected the red box to wrap a single nested box, got %d children", len(redBox.Children))
	}
	nested := tree.Get(redBox.Children[0])
	if nested.Style.Color.R != 0xff || nested.Style.Color.G != 0 {
		t.Fatalf("expected red to cascade down to the nested box, got %+v", nested.Style.Color)
	}
}
