package layout

// SolveFallback assigns Rect geometry to every node in t using a minimal,
// deterministic block-stacking layout: children stack top-to-bottom inside
// their parent's content box, sized to their own resolved width (or the
// parent's content width when Auto), with height taken from an explicit
// Height or, failing that, an estimate of one line per InlineContent plus
// each block child's own height. It ignores flex, line-wrapping and
// baseline alignment entirely - it exists purely so tests can assert
// concrete pixel geometry without a third-party flex/text engine, and is
// deliberately swappable for a real one. The root node's Rect is always the
// full page, whatever height its children add up to.
func SolveFallback(t *Tree, pageWidth, pageHeight float64) {
	t.layoutBox(t.Root, 0, 0, pageWidth)
	root := t.Get(t.Root)
	root.Rect = Rect{Width: pageWidth, Height: pageHeight}
}

// layoutBox positions the node at (originX, originY) with the given
// available width, recurses into its children, and returns the height the
// node occupies, its vertical padding included.
func (t *Tree) layoutBox(id NodeId, originX, originY, availWidth float64) float64 {
	n := t.Get(id)
	s := n.Style

	rem, em, dpi := s.ResolvedRootFontSize, s.ResolvedFontSize, s.Dpi
	padTop := s.PaddingTop.ToPixels(availWidth, rem, em, dpi)
	padBottom := s.PaddingBottom.ToPixels(availWidth, rem, em, dpi)
	padLeft := s.PaddingLeft.ToPixels(availWidth, rem, em, dpi)
	padRight := s.PaddingRight.ToPixels(availWidth, rem, em, dpi)

	width := availWidth
	if !s.Width.IsAuto() {
		width = s.Width.ToPixels(availWidth, rem, em, dpi)
	}
	contentWidth := width - padLeft - padRight
	if contentWidth < 0 {
		contentWidth = 0
	}

	switch n.Kind {
	case KindText:
		// Leaf: height resolved by its InlineContent parent via line
		// estimation, not here.
		n.Rect = Rect{X: originX, Y: originY, Width: width, Height: 0}
		return 0

	case KindInlineContent:
		lineHeight := s.LineHeight.ToPixels(availWidth, rem, em, dpi)
		if lineHeight <= 0 {
			lineHeight = em * 1.2
		}
		text := FlattenInline(t, id)
		lines := 1.0
		if len(text) == 0 {
			lines = 0
		}
		h := lines * lineHeight
		n.Rect = Rect{X: originX + padLeft, Y: originY + padTop, Width: contentWidth, Height: h}
		return h + padTop + padBottom

	default: // KindContainer
		cursor := originY + padTop
		for _, childId := range n.Children {
			childHeight := t.layoutBox(childId, originX+padLeft, cursor, contentWidth)
			cursor += childHeight
		}
		contentHeight := cursor - (originY + padTop)
		height := contentHeight
		if !s.Height.IsAuto() {
			height = s.Height.ToPixels(availWidth, rem, em, dpi)
		}
		n.Rect = Rect{X: originX, Y: originY, Width: width, Height: height + padTop + padBottom}
		return n.Rect.Height
	}
}
