package layout

import (
	"github.com/zachzurn/flexml/context"
	"github.com/zachzurn/flexml/node"
	"github.com/zachzurn/flexml/registry"
	"github.com/zachzurn/flexml/style"
)

type builder struct {
	reg  *registry.Registry
	tree *Tree
}

// Build runs cascade_container over the parsed node sequence against an
// already-resolved root style (registry.ResolveRootStyle), producing the
// layout tree's arena.
func Build(nodes []node.Node, reg *registry.Registry, rootStyle context.Context) *Tree {
	b := &builder{reg: reg, tree: &Tree{}}
	root := b.cascadeContainer(rootStyle, true, nodes, nil)
	b.tree.Root = root
	return b.tree
}

func (b *builder) cascadeContainer(parentStyle context.Context, isRoot bool, children []node.Node, ownStyles []style.AtomicStyle) NodeId {
	localStyle := parentStyle
	if !isRoot {
		localStyle = b.reg.ResolveStyle(&parentStyle, ownStyles)
	}

	var layoutChildren []NodeId
	var inlineBuffer []NodeId

	flush := func() {
		if len(inlineBuffer) == 0 {
			return
		}
		ic := b.tree.new(Node{Kind: KindInlineContent, Style: localStyle, Children: inlineBuffer})
		layoutChildren = append(layoutChildren, ic)
		inlineBuffer = nil
	}

	for _, child := range children {
		switch child.Kind {
		case node.KindBoxContainer:
			childStyle := b.reg.ResolveStyle(&localStyle, child.Styles)
			switch childStyle.Display {
			case context.DisplayInline:
				b.flushInlineToBuffer(childStyle, child.Children, &inlineBuffer)
			case context.DisplayInlineBlock:
				childNode := b.cascadeContainer(localStyle, false, child.Children, child.Styles)
				inlineBuffer = append(inlineBuffer, childNode)
			default:
				childNode := b.cascadeContainer(localStyle, false, child.Children, child.Styles)
				flush()
				layoutChildren = append(layoutChildren, childNode)
			}
		case node.KindText, node.KindWhitespace:
			textNode := b.tree.new(Node{Kind: KindText, Style: localStyle, Text: child.Slice})
			inlineBuffer = append(inlineBuffer, textNode)
		default: // StyleDefinition, Tag: neither participates in layout
			flush()
		}
	}
	flush()
	return b.tree.new(Node{Kind: KindContainer, Style: localStyle, Children: layoutChildren})
}

// flushInlineToBuffer walks a flattened-to-inline subtree (the grandchildren
// of a box whose own display resolved to Inline): text runs append directly,
// nested inline boxes recurse flattening further, anything else becomes a
// genuine subtree via cascadeContainer and is appended as an opaque child.
func (b *builder) flushInlineToBuffer(inheritedStyle context.Context, children []node.Node, buffer *[]NodeId) {
	for _, child := range children {
		switch child.Kind {
		case node.KindText, node.KindWhitespace:
			n := b.tree.new(Node{Kind: KindText, Style: inheritedStyle, Text: child.Slice})
			*buffer = append(*buffer, n)
		case node.KindBoxContainer:
			childStyle := b.reg.ResolveStyle(&inheritedStyle, child.Styles)
			if childStyle.Display == context.DisplayInline {
				b.flushInlineToBuffer(childStyle, child.Children, buffer)
			} else {
				childNode := b.cascadeContainer(inheritedStyle, false, child.Children, child.Styles)
				*buffer = append(*buffer, childNode)
			}
		default:
			// StyleDefinition, Tag: skipped, matches cascade_container's
			// "other -> skip" rule for this already-flattened context.
		}
	}
}
