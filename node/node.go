// Package node defines the parser's output tree: text/whitespace leaves,
// tag references, style definitions, and box containers. Nodes borrow
// their text from the input buffer; the tree's lifetime is bound to it.
package node

import "github.com/zachzurn/flexml/style"

// Kind is the discriminant of the Node tagged union.
type Kind int

const (
	KindText Kind = iota
	KindWhitespace
	KindTag
	KindStyleDefinition
	KindBoxContainer
)

// Node is a borrowed-slice tree node. Only the fields relevant to Kind are
// meaningful.
type Node struct {
	Kind Kind

	// Text, Whitespace
	Slice []byte

	// Tag
	TagName string

	// StyleDefinition
	StyleDefId style.StyleId

	// BoxContainer
	Styles   []style.AtomicStyle
	Children []Node
}

func Text(slice []byte) Node       { return Node{Kind: KindText, Slice: slice} }
func Whitespace(slice []byte) Node { return Node{Kind: KindWhitespace, Slice: slice} }
func Tag(name string) Node         { return Node{Kind: KindTag, TagName: name} }
func StyleDefinition(id style.StyleId) Node {
	return Node{Kind: KindStyleDefinition, StyleDefId: id}
}
func BoxContainer(styles []style.AtomicStyle, children []Node) Node {
	return Node{Kind: KindBoxContainer, Styles: styles, Children: children}
}

func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindWhitespace:
		return "Whitespace"
	case KindTag:
		return "Tag"
	case KindStyleDefinition:
		return "StyleDefinition"
	case KindBoxContainer:
		return "BoxContainer"
	default:
		return "?"
	}
}
