package fragment

import (
	"testing"

	"github.com/zachzurn/flexml/diag"
	"github.com/zachzurn/flexml/layout"
	"github.com/zachzurn/flexml/parser"
	"github.com/zachzurn/flexml/registry"
)

func buildSolvedTree(t *testing.T, src string) *layout.Tree {
	t.Helper()
	sink := diag.New()
	reg := registry.New(nil)
	p := parser.New([]byte(src), reg, sink, nil, parser.DefaultLimits)
	nodes := p.Parse()
	root := reg.ResolveRootStyle(nil)
	tree := layout.Build(nodes, reg, root)
	layout.SolveFallback(tree, 800, 600)
	return tree
}

// The root page always receives a full-page background fragment first,
// ahead of any other fragment the tree itself produces.
func TestCollect_RootAlwaysGetsPageBackgroundFirst(t *testing.T) {
	tree := buildSolvedTree(t, "hello")
	group := Collect(tree)

	if len(group.Fragments) == 0 {
		t.Fatalf("expected at least the page background fragment")
	}
	if group.Fragments[0].Kind != KindBackground {
		t.Errorf("fragments[0].Kind = %v, want KindBackground", group.Fragments[0].Kind)
	}
	if group.Fragments[0].Rect.Width != 800 || group.Fragments[0].Rect.Height != 600 {
		t.Errorf("page background rect = %+v, want the full 800x600 page", group.Fragments[0].Rect)
	}
}

// A styled box with an explicit background color produces its own
// background fragment, distinct from the page background.
func TestCollect_BoxWithBgColorProducesBackgroundFragment(t *testing.T) {
	tree := buildSolvedTree(t, "{panel bg:#336699ff} [panel some text]")
	group := Collect(tree)

	if len(group.Children) != 1 {
		t.Fatalf("expected the box's own group as a child, got %d", len(group.Children))
	}
	boxGroup := group.Children[0]

	var found bool
	for _, f := range boxGroup.Fragments {
		if f.Kind == KindBackground {
			found = true
			if f.Color.B != 0x99 {
				t.Errorf("background color = %+v, want blue channel 0x99", f.Color)
			}
		}
	}
	if !found {
		t.Fatalf("expected a background fragment on the styled box, got %+v", boxGroup.Fragments)
	}
}

// Inline text content surfaces exactly one text fragment carrying a glyph
// run, with the resolved color and font size baked into the run.
func TestCollect_InlineTextProducesGlyphRunFragment(t *testing.T) {
	tree := buildSolvedTree(t, "[box hello world]")
	group := Collect(tree)

	box := group.Children[0]
	if len(box.Children) != 1 {
		t.Fatalf("expected one inline-content group under the box, got %d", len(box.Children))
	}
	inlineGroup := box.Children[0]

	var textFrag *Fragment
	for i := range inlineGroup.Fragments {
		if inlineGroup.Fragments[i].Kind == KindText {
			textFrag = &inlineGroup.Fragments[i]
		}
	}
	if textFrag == nil {
		t.Fatalf("expected a text fragment, got %+v", inlineGroup.Fragments)
	}
	if textFrag.Run == nil {
		t.Fatalf("expected the text fragment to carry a glyph run")
	}
	if textFrag.Run.SizePx <= 0 {
		t.Errorf("expected a positive resolved font size, got %v", textFrag.Run.SizePx)
	}
}

// An InlineContent node whose text collapses to nothing (pure whitespace)
// produces no text fragment at all.
func TestCollect_EmptyInlineProducesNoTextFragment(t *testing.T) {
	tree := buildSolvedTree(t, "[box   ]")
	group := Collect(tree)

	box := group.Children[0]
	for _, child := range box.Children {
		for _, f := range child.Fragments {
			if f.Kind == KindText {
				t.Errorf("expected no text fragment for whitespace-only content, got %+v", f)
			}
		}
	}
}
