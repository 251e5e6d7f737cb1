package layout

import (
	"testing"

	"github.com/zachzurn/flexml/context"
)

func newTextNode(tree *Tree, style context.Context, text string) NodeId {
	return tree.new(Node{Kind: KindText, Style: style, Text: []byte(text)})
}

// Normal whitespace handling collapses interior runs to a single space and
// drops leading whitespace at the start of the inline run, even when that
// run is split across several Text node siblings.
func TestFlattenInline_CollapsesWhitespaceAcrossTextNodes(t *testing.T) {
	tree := &Tree{}
	style := context.New()
	style.WhiteSpace = context.WhiteSpaceNormal

	a := newTextNode(tree, style, "  hello")
	b := newTextNode(tree, style, "   \n  world  ")
	ic := tree.new(Node{Kind: KindInlineContent, Style: style, Children: []NodeId{a, b}})

	got := string(FlattenInline(tree, ic))
	if got != "hello world" {
		t.Errorf("got %q, want %q", got, "hello world")
	}
}

// Pre preserves whitespace verbatim, including internal runs and newlines.
func TestFlattenInline_PreservesWhitespaceUnderPre(t *testing.T) {
	tree := &Tree{}
	style := context.New()
	style.WhiteSpace = context.WhiteSpacePre

	a := newTextNode(tree, style, "  hello\n  world  ")
	ic := tree.new(Node{Kind: KindInlineContent, Style: style, Children: []NodeId{a}})

	got := string(FlattenInline(tree, ic))
	if got != "  hello\n  world  " {
		t.Errorf("got %q, want verbatim text preserved", got)
	}
}

// Text-transform is applied to the fully assembled, already-collapsed
// string, not to each Text node independently.
func TestFlattenInline_AppliesTextTransformAfterCollapsing(t *testing.T) {
	tree := &Tree{}
	style := context.New()
	style.TextTransform = context.TextTransformUppercase

	a := newTextNode(tree, style, "hello")
	b := newTextNode(tree, style, "  world")
	ic := tree.new(Node{Kind: KindInlineContent, Style: style, Children: []NodeId{a, b}})

	got := string(FlattenInline(tree, ic))
	if got != "HELLO WORLD" {
		t.Errorf("got %q, want %q", got, "HELLO WORLD")
	}
}

// Capitalize upper-cases the first rune of every whitespace-separated word.
func TestFlattenInline_CapitalizeTransformsEachWord(t *testing.T) {
	tree := &Tree{}
	style := context.New()
	style.TextTransform = context.TextTransformCapitalize

	a := newTextNode(tree, style, "hello world")
	ic := tree.new(Node{Kind: KindInlineContent, Style: style, Children: []NodeId{a}})

	got := string(FlattenInline(tree, ic))
	if got != "Hello World" {
		t.Errorf("got %q, want %q", got, "Hello World")
	}
}

// An InlineContent node with no Text descendants flattens to an empty
// string rather than panicking or erroring.
func TestFlattenInline_NoTextDescendantsIsEmpty(t *testing.T) {
	tree := &Tree{}
	style := context.New()
	ic := tree.new(Node{Kind: KindInlineContent, Style: style})

	got := FlattenInline(tree, ic)
	if len(got) != 0 {
		t.Errorf("got %q, want empty", got)
	}
}
