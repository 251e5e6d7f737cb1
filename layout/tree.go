// Package layout builds the layout tree the cascade produces: an arena of
// Container/InlineContent/Text nodes exposing the properties an external
// flex/block engine needs, plus a small deterministic fallback solver and
// an XML debug dump.
package layout

import "github.com/zachzurn/flexml/context"

// Kind is the discriminant of a layout Node.
type Kind int

const (
	KindContainer Kind = iota
	KindInlineContent
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "Container"
	case KindInlineContent:
		return "InlineContent"
	case KindText:
		return "Text"
	default:
		return "?"
	}
}

// NodeId indexes into a Tree's arena.
type NodeId int

// Node is one arena entry. Style is the fully cascaded context at this
// point in the tree; Children is meaningful for Container/InlineContent;
// Text is meaningful for Text only.
type Node struct {
	Kind     Kind
	Style    context.Context
	Children []NodeId
	Text     []byte

	// Rect is filled in by a layout solver (e.g. solve_fallback.go); zero
	// until one runs.
	Rect Rect
}

// Rect is a resolved box in page pixels, origin top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Tree is an arena of Nodes built by Build, rooted at Root.
type Tree struct {
	Nodes []Node
	Root  NodeId
}

func (t *Tree) new(n Node) NodeId {
	t.Nodes = append(t.Nodes, n)
	return NodeId(len(t.Nodes) - 1)
}

// Get returns the node at id.
func (t *Tree) Get(id NodeId) *Node { return &t.Nodes[id] }
