package parser

import (
	"testing"

	"github.com/zachzurn/flexml/diag"
	"github.com/zachzurn/flexml/node"
	"github.com/zachzurn/flexml/registry"
)

func parseAll(t *testing.T, src string, limits Limits) ([]node.Node, *diag.Sink, *registry.Registry) {
	t.Helper()
	sink := diag.New()
	reg := registry.New(nil)
	p := New([]byte(src), reg, sink, nil, limits)
	return p.Parse(), sink, reg
}

func textOf(t *testing.T, n node.Node) string {
	t.Helper()
	if n.Kind != node.KindText {
		t.Fatalf("expected KindText, got %v", n.Kind)
	}
	return string(n.Slice)
}

// Scenario 1: a '{' mid-text-run is not a terminator, so the whole remainder
// after the first stray ']' is swallowed as a single trailing text run.
func TestParse_GreedyTextRunSwallowsStrayDelimiters(t *testing.T) {
	src := "Hello ] = | =| \r\n World {myStyle bold+italic}} < \\|="
	nodes, sink, _ := parseAll(t, src, DefaultLimits)

	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d: %+v", len(nodes), nodes)
	}
	if got := textOf(t, nodes[0]); got != "Hello " {
		t.Errorf("node 0 = %q, want %q", got, "Hello ")
	}
	if nodes[1].Kind != node.KindText {
		t.Errorf("node 1 kind = %v, want KindText", nodes[1].Kind)
	}
	if got := string(nodes[1].Slice); got[:len("] = | =| ")] != "] = | =| " {
		t.Errorf("node 1 does not start with the expected stray-delimiter run: %q", got)
	}
	if sink.Len() != 0 {
		t.Errorf("expected 0 warnings, got %d: %+v", sink.Len(), sink.Warnings())
	}
}

// Scenario 2: a box container with a '+'-joined, unspaced style list and a
// trimmed trailing text child.
func TestParse_BoxContainerPlusJoinedStylesAndTrim(t *testing.T) {
	nodes, sink, reg := parseAll(t, "[bold+italic Hello World ]", DefaultLimits)

	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	box := nodes[0]
	if box.Kind != node.KindBoxContainer {
		t.Fatalf("expected KindBoxContainer, got %v", box.Kind)
	}
	if len(box.Styles) != 2 {
		t.Fatalf("expected 2 atomic styles, got %d: %+v", len(box.Styles), box.Styles)
	}
	if got := reg.NameOf(box.Styles[0].Id); got != "fontWeight" {
		t.Errorf("styles[0] = %s, want fontWeight", got)
	}
	if got := box.Styles[0].Value.MatchLabel; got != "bold" {
		t.Errorf("styles[0] label = %s, want bold", got)
	}
	if got := reg.NameOf(box.Styles[1].Id); got != "fontStyle" {
		t.Errorf("styles[1] = %s, want fontStyle", got)
	}
	if got := box.Styles[1].Value.MatchLabel; got != "italic" {
		t.Errorf("styles[1] label = %s, want italic", got)
	}
	if len(box.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(box.Children))
	}
	if got := textOf(t, box.Children[0]); got != "Hello World" {
		t.Errorf("child text = %q, want %q (trailing space must be trimmed)", got, "Hello World")
	}
	if sink.Len() != 0 {
		t.Errorf("expected 0 warnings, got %d: %+v", sink.Len(), sink.Warnings())
	}
}

// Scenario 3: an unterminated raw container yields its content verbatim and
// exactly one UnclosedRawContainer warning.
func TestParse_UnterminatedRawContainer(t *testing.T) {
	nodes, sink, _ := parseAll(t, "|= This is unterminated raw", DefaultLimits)

	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if got := textOf(t, nodes[0]); got != " This is unterminated raw" {
		t.Errorf("raw text = %q, want %q", got, " This is unterminated raw")
	}
	if sink.Len() != 1 || sink.Warnings()[0].Kind != diag.UnclosedRawContainer {
		t.Fatalf("expected exactly 1 UnclosedRawContainer warning, got %+v", sink.Warnings())
	}
}

// Scenario 4: a style definition whose '+'-joined, newline/space-agnostic
// list resolves to three atomics, forwarded through the "size" alias onto
// fontSize, followed by a box container referencing that style by name.
func TestParse_StyleDefinitionAndReference(t *testing.T) {
	src := "{myStyle = bold+italic+size:3} [myStyle This is styled ]"
	nodes, sink, reg := parseAll(t, src, DefaultLimits)

	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes (definition + box), got %d: %+v", len(nodes), nodes)
	}
	def := nodes[0]
	if def.Kind != node.KindStyleDefinition {
		t.Fatalf("node 0 kind = %v, want KindStyleDefinition", def.Kind)
	}
	if got := reg.NameOf(def.StyleDefId); got != "myStyle" {
		t.Errorf("definition name = %s, want myStyle", got)
	}
	atomics, _, ok := reg.Definition(def.StyleDefId)
	if !ok {
		t.Fatalf("expected a registered definition for myStyle")
	}
	if len(atomics) != 3 {
		t.Fatalf("expected 3 atomic entries, got %d: %+v", len(atomics), atomics)
	}
	names := map[string]bool{}
	for _, a := range atomics {
		names[reg.NameOf(a.Id)] = true
	}
	for _, want := range []string{"fontWeight", "fontStyle", "fontSize"} {
		if !names[want] {
			t.Errorf("definition missing atomic %s, got %+v", want, atomics)
		}
	}

	box := nodes[1]
	if box.Kind != node.KindBoxContainer {
		t.Fatalf("node 1 kind = %v, want KindBoxContainer", box.Kind)
	}
	if len(box.Children) != 1 || textOf(t, box.Children[0]) != "This is styled" {
		t.Fatalf("unexpected box children: %+v", box.Children)
	}

	if sink.Len() != 0 {
		t.Errorf("expected 0 warnings, got %d: %+v", sink.Len(), sink.Warnings())
	}
}

// Scenario 5: nesting past max_depth skips the offending subtree wholesale
// and reports exactly one ExceededNodeDepth warning, without disturbing
// sibling top-level parsing.
func TestParse_ExceedsNodeDepth(t *testing.T) {
	src := "[1 [2 [3 [4 [5 [6 [7 [8] 7] 6] 5] 4] 3] 2] 1] []"
	limits := Limits{MaxNodes: DefaultLimits.MaxNodes, MaxDepth: 5}
	nodes, sink, _ := parseAll(t, src, limits)

	if len(nodes) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d: %+v", len(nodes), nodes)
	}
	if nodes[0].Kind != node.KindBoxContainer || nodes[1].Kind != node.KindBoxContainer {
		t.Fatalf("expected both top-level nodes to be box containers, got %v and %v", nodes[0].Kind, nodes[1].Kind)
	}

	var depthWarnings int
	for _, w := range sink.Warnings() {
		if w.Kind == diag.ExceededNodeDepth {
			depthWarnings++
		}
	}
	if depthWarnings != 1 {
		t.Fatalf("expected exactly 1 ExceededNodeDepth warning, got %d: %+v", depthWarnings, sink.Warnings())
	}
}

// Scenario 6: empty input produces no nodes and a single EmptyInput warning.
func TestParse_EmptyInput(t *testing.T) {
	nodes, sink, _ := parseAll(t, "", DefaultLimits)

	if len(nodes) != 0 {
		t.Fatalf("expected 0 nodes, got %d", len(nodes))
	}
	if sink.Len() != 1 || sink.Warnings()[0].Kind != diag.EmptyInput {
		t.Fatalf("expected exactly 1 EmptyInput warning, got %+v", sink.Warnings())
	}
}

// A '{' not followed by a style name (here, a punctuation byte that no
// token rule turns into a StyleName) falls back to an ordinary text run
// instead of raising a grammar error.
func TestParse_StyleContainerWithoutNameIsText(t *testing.T) {
	const src = "{!not a style}"
	nodes, sink, _ := parseAll(t, src, DefaultLimits)

	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d: %+v", len(nodes), nodes)
	}
	if got := textOf(t, nodes[0]); got != src {
		t.Errorf("text = %q, want %q", got, src)
	}
	if sink.Len() != 0 {
		t.Errorf("expected 0 warnings, got %d: %+v", sink.Len(), sink.Warnings())
	}
}

// An empty style list still registers the definition but warns that it has
// no styles.
func TestParse_StyleContainerNoStyles(t *testing.T) {
	_, sink, _ := parseAll(t, "{myStyle}", DefaultLimits)

	if sink.Len() != 1 || sink.Warnings()[0].Kind != diag.StyleContainerNoStyles {
		t.Fatalf("expected exactly 1 StyleContainerNoStyles warning, got %+v", sink.Warnings())
	}
}

// An unclosed style container and an unclosed box container each produce
// exactly their own warning kind.
func TestParse_UnclosedContainers(t *testing.T) {
	t.Run("style container", func(t *testing.T) {
		_, sink, _ := parseAll(t, "{myStyle bold", DefaultLimits)
		if sink.Len() != 1 || sink.Warnings()[0].Kind != diag.UnclosedStyleContainer {
			t.Fatalf("expected exactly 1 UnclosedStyleContainer warning, got %+v", sink.Warnings())
		}
	})

	t.Run("box container", func(t *testing.T) {
		nodes, sink, _ := parseAll(t, "[bold never closed", DefaultLimits)
		if len(nodes) != 1 || nodes[0].Kind != node.KindBoxContainer {
			t.Fatalf("expected 1 box container node, got %+v", nodes)
		}
		if sink.Len() != 1 || sink.Warnings()[0].Kind != diag.UnclosedBoxContainer {
			t.Fatalf("expected exactly 1 UnclosedBoxContainer warning, got %+v", sink.Warnings())
		}
	})
}

// A ':' immediately following a style name with no content after it warns
// ExpectedStyleValue rather than silently dropping the style.
func TestParse_ExpectedStyleValue(t *testing.T) {
	_, sink, _ := parseAll(t, "[size: ]", DefaultLimits)

	var found bool
	for _, w := range sink.Warnings() {
		if w.Kind == diag.ExpectedStyleValue {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an ExpectedStyleValue warning, got %+v", sink.Warnings())
	}
}

// Whitespace between two words at top level is folded into the surrounding
// text run rather than split out as a standalone Whitespace node.
func TestParse_TopLevelWhitespaceFoldsIntoText(t *testing.T) {
	nodes, _, _ := parseAll(t, "hello   world", DefaultLimits)

	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d: %+v", len(nodes), nodes)
	}
	if nodes[0].Kind != node.KindText {
		t.Fatalf("expected KindText, got %v", nodes[0].Kind)
	}
	if got := textOf(t, nodes[0]); got != "hello   world" {
		t.Errorf("text = %q, want %q", got, "hello   world")
	}
}

// Tag references are dispatched to their own node kind and never merged
// into a surrounding text run, since TagContainer is a hard terminator.
func TestParse_TagBreaksTextRun(t *testing.T) {
	nodes, sink, _ := parseAll(t, "before<mytag>after", DefaultLimits)

	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d: %+v", len(nodes), nodes)
	}
	if got := textOf(t, nodes[0]); got != "before" {
		t.Errorf("node 0 = %q, want %q", got, "before")
	}
	if nodes[1].Kind != node.KindTag || nodes[1].TagName != "mytag" {
		t.Fatalf("node 1 = %+v, want Tag(mytag)", nodes[1])
	}
	if got := textOf(t, nodes[2]); got != "after" {
		t.Errorf("node 2 = %q, want %q", got, "after")
	}
	if sink.Len() != 0 {
		t.Errorf("expected 0 warnings, got %d: %+v", sink.Len(), sink.Warnings())
	}
}
