package node

import (
	"github.com/zachzurn/flexml/registry"
	"github.com/zachzurn/flexml/utils/debug"
)

// PrintTree renders a parsed node sequence as an indented debug tree,
// adapted from the teacher's generic TreeWriter for fb2 node dumps.
func PrintTree(nodes []Node, reg *registry.Registry) string {
	tw := debug.NewTreeWriter()
	printNodes(tw, nodes, 0, reg)
	return tw.String()
}

func printNodes(tw *debug.TreeWriter, nodes []Node, depth int, reg *registry.Registry) {
	for _, n := range nodes {
		switch n.Kind {
		case KindText:
			tw.TextBlock(depth, "Text", string(n.Slice))
		case KindWhitespace:
			tw.TextBlock(depth, "Whitespace", string(n.Slice))
		case KindTag:
			tw.Line(depth, "Tag<%s>", n.TagName)
		case KindStyleDefinition:
			name := ""
			if reg != nil {
				name = reg.NameOf(n.StyleDefId)
			}
			tw.Line(depth, "StyleDefinition(%s)", name)
		case KindBoxContainer:
			tw.Line(depth, "BoxContainer styles=%d children=%d", len(n.Styles), len(n.Children))
			printNodes(tw, n.Children, depth+1, reg)
		}
	}
}
