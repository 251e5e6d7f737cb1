package fragment

import (
	"github.com/zachzurn/flexml/context"
	"github.com/zachzurn/flexml/layout"
)

// Collect walks t in pre-order (a node's own fragments before its
// children's groups), emitting one FragmentGroup per Container
// and InlineContent node. The root page receives a full-page background
// fragment before any other node, per §4.9.
func Collect(t *layout.Tree) FragmentGroup {
	return collectNode(t, t.Root, true)
}

func collectNode(t *layout.Tree, id layout.NodeId, isRoot bool) FragmentGroup {
	n := t.Get(id)
	var group FragmentGroup

	if isRoot {
		group.Fragments = append(group.Fragments, Fragment{
			Kind:  KindBackground,
			Rect:  rectOf(n.Rect),
			Color: n.Style.BgColor,
		})
	}

	switch n.Kind {
	case layout.KindContainer:
		collectBox(&group, n)
		for _, childId := range n.Children {
			group.Children = append(group.Children, collectNode(t, childId, false))
		}
	case layout.KindInlineContent:
		collectInline(&group, t, id, n)
		for _, childId := range n.Children {
			if c := t.Get(childId); c.Kind != layout.KindText {
				group.Children = append(group.Children, collectNode(t, childId, false))
			}
		}
	}
	return group
}

// collectBox appends a Container's own background/border fragments, unless
// it already has the root's page background (isRoot is handled by the
// caller so a root Container doesn't double-paint).
func collectBox(group *FragmentGroup, n *layout.Node) {
	s := n.Style
	if !n.Style.IsRoot && s.BgColor.A > 0 {
		group.Fragments = append(group.Fragments, Fragment{
			Kind:  KindBackground,
			Rect:  rectOf(n.Rect),
			Color: s.BgColor,
		})
	}
	if s.BorderColor.A > 0 && s.BorderStyle != context.BorderStyleNone {
		w := s.BorderWidth.ToPixels(n.Rect.Width, s.ResolvedRootFontSize, s.ResolvedFontSize, s.Dpi)
		if w > 0 {
			group.Fragments = append(group.Fragments, Fragment{
				Kind:        KindBorder,
				Rect:        rectOf(n.Rect),
				Radius:      radiusOf(n, w),
				Color:       s.BorderColor,
				BorderStyle: s.BorderStyle,
				BorderWidth: w,
			})
		}
	}
}

func collectInline(group *FragmentGroup, t *layout.Tree, id layout.NodeId, n *layout.Node) {
	text := layout.FlattenInline(t, id)
	if len(text) == 0 {
		return
	}
	s := n.Style
	group.Fragments = append(group.Fragments, Fragment{
		Kind:  KindText,
		Rect:  rectOf(n.Rect),
		Color: s.Color,
		Run: &GlyphRunFragment{
			Baseline:   n.Rect.Y + s.ResolvedFontSize*0.8,
			FontFamily: s.FontFamily,
			FontWeight: s.FontWeight,
			FontStyle:  s.FontStyle,
			SizePx:     s.ResolvedFontSize,
			Color:      s.Color,
			FauxBold:   s.FontWeight >= 700,
			FauxItalic: s.FontStyle == context.FontStyleItalic,
		},
	})
}

func rectOf(r layout.Rect) Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func radiusOf(n *layout.Node, containerPx float64) Radius {
	s := n.Style
	px := func(d interface {
		ToPixels(float64, float64, float64, float64) float64
	}) float64 {
		return d.ToPixels(containerPx, s.ResolvedRootFontSize, s.ResolvedFontSize, s.Dpi)
	}
	return Radius{
		TopLeft:     px(s.BorderTopLeftRadius),
		TopRight:    px(s.BorderTopRightRadius),
		BottomLeft:  px(s.BorderBottomLeftRadius),
		BottomRight: px(s.BorderBottomRightRadius),
	}
}
