package layout

import (
	"fmt"

	"github.com/beevik/etree"
)

// DebugXML renders t as an XML debug tree, the same introspection pattern
// the teacher uses (etree) to build its XHTML output, repurposed here for
// read-only inspection rather than document generation.
func DebugXML(t *Tree) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("layout")
	appendNode(root, t, t.Root)
	return doc
}

func appendNode(parent *etree.Element, t *Tree, id NodeId) {
	n := t.Get(id)
	el := parent.CreateElement(n.Kind.String())
	el.CreateAttr("x", fmt.Sprintf("%.2f", n.Rect.X))
	el.CreateAttr("y", fmt.Sprintf("%.2f", n.Rect.Y))
	el.CreateAttr("w", fmt.Sprintf("%.2f", n.Rect.Width))
	el.CreateAttr("h", fmt.Sprintf("%.2f", n.Rect.Height))
	if n.Kind == KindText {
		el.CreateAttr("display", n.Style.Display.String())
		el.SetText(string(n.Text))
		return
	}
	el.CreateAttr("display", n.Style.Display.String())
	for _, childId := range n.Children {
		appendNode(el, t, childId)
	}
}
