// Package fragment implements the post-layout fragment walk: positioned
// background/border/text fragments ready for an external painter. Glyph
// positions themselves are left opaque (a shaping collaborator's job); this
// package only decides which text runs exist, where, and in what style.
package fragment

import "github.com/zachzurn/flexml/context"

// Rect is a resolved box in page pixels, origin top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Radius holds four independent corner radii, in pixels.
type Radius struct {
	TopLeft, TopRight, BottomLeft, BottomRight float64
}

// Kind is the discriminant of a Fragment.
type Kind int

const (
	KindBackground Kind = iota
	KindBorder
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBackground:
		return "Background"
	case KindBorder:
		return "Border"
	case KindText:
		return "Text"
	default:
		return "?"
	}
}

// Glyph is one positioned glyph. GlyphId is opaque to flexml; it is
// whatever id the external shaping collaborator assigned.
type Glyph struct {
	GlyphId uint32  `ion:"glyphId"`
	X       float64 `ion:"x"`
	Y       float64 `ion:"y"`
}

// GlyphRunFragment carries everything a painter needs for one shaped run:
// the font request, the resolved size/color, synthesis flags for styles the
// loaded font face doesn't natively support, and the shaper's glyph output.
type GlyphRunFragment struct {
	Baseline   float64            `ion:"baseline"`
	FontFamily string             `ion:"fontFamily"`
	FontWeight int                `ion:"fontWeight"`
	FontStyle  context.FontStyle  `ion:"fontStyle"`
	SizePx     float64            `ion:"sizePx"`
	Color      context.Color      `ion:"color"`
	FauxBold   bool               `ion:"fauxBold"`
	FauxItalic bool               `ion:"fauxItalic"`
	Glyphs     []Glyph            `ion:"glyphs"`
}

// Fragment is one paintable primitive.
type Fragment struct {
	Kind        Kind              `ion:"kind"`
	Rect        Rect              `ion:"rect"`
	Radius      Radius            `ion:"radius"`
	Color       context.Color     `ion:"color"`
	BorderStyle context.BorderStyle `ion:"borderStyle"`
	BorderWidth float64           `ion:"borderWidth"`
	Run         *GlyphRunFragment `ion:"run"`
}

// FragmentGroup mirrors the layout tree's shape: each group corresponds to
// one Container or InlineContent node and carries that node's own
// fragments followed by its children's groups, in pre-order.
type FragmentGroup struct {
	Fragments []Fragment      `ion:"fragments"`
	Children  []FragmentGroup `ion:"children"`
}
