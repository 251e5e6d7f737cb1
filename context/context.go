package context

import "github.com/zachzurn/flexml/style"

// Context is the resolved per-node style value bag. Fields left at their
// sentinel default are meaningless until Bits confirms they were set or
// inherited; Cascade is the only place that makes that distinction matter.
type Context struct {
	Bits Bits

	Display   Display
	WhiteSpace WhiteSpace
	Opacity   float64

	MarginTop, MarginBottom, MarginLeft, MarginRight   style.Dimension
	PaddingTop, PaddingBottom, PaddingLeft, PaddingRight style.Dimension

	Width, MaxWidth, MinWidth    style.Dimension
	Height, MaxHeight, MinHeight style.Dimension

	AlignContent   AlignContent
	AlignItems     AlignItems
	AlignSelf      AlignSelf
	Gap, ColumnGap, RowGap style.Dimension
	FlexBasis      style.Dimension
	FlexDirection  FlexDirection
	FlexGrow       float64
	FlexShrink     float64
	JustifyContent JustifyContent
	FlexWrap       FlexWrap

	Color          Color
	TextDecoration TextDecoration
	FontFamily     string
	FontSize       style.Dimension
	FontStyle      FontStyle
	TextTransform  TextTransform
	LetterSpacing  style.Dimension
	LineHeight     style.Dimension
	FontWeight     int
	WordSpacing    style.Dimension
	TextAlign      TextAlign

	BgColor    Color
	BgImage    style.PathId
	BgPosition BgPosition
	BgRepeat   BgRepeat
	BgSize     BgSize

	BorderTopLeftRadius, BorderTopRightRadius       style.Dimension
	BorderBottomLeftRadius, BorderBottomRightRadius style.Dimension
	BorderColor Color
	BorderStyle BorderStyle
	BorderWidth style.Dimension

	PageWidth     style.Dimension
	PageHeight    style.Dimension
	PixelsPerInch float64
	BasePath      style.PathId

	Dpi                   float64
	ResolvedFontSize      float64
	ResolvedRootFontSize  float64
	IsRoot                bool
}

// defaultFontSizePixels, minFontSizePixels, defaultDpi and minDpi are the
// normative root defaults from the spec's Style Registry section (not the
// original implementation's stale helper constants, which disagreed with
// the written spec and were overridden per the documented precedence).
const (
	defaultFontSizePixels = 16.0
	minFontSizePixels     = 1.0
	defaultDpi            = 160.0
	minDpi                = 100.0
)

// New returns a Context with no bits set and sentinel defaults: zero
// dimensions, black text on transparent background, normal flow.
func New() Context {
	return Context{
		Display:     DisplayBlock,
		WhiteSpace:  WhiteSpaceNormal,
		Opacity:     1,
		FontFamily:  "",
		FontSize:    style.Px(defaultFontSizePixels),
		FontWeight:  300,
		Color:       Color{R: 0, G: 0, B: 0, A: 255},
		BorderStyle: BorderStyleSolid,
		BgColor:     Color{A: 0},
		BorderColor: Color{A: 0},
		FlexGrow:    0,
		FlexShrink:  1,
		Dpi:         defaultDpi,
	}
}

// Cascade copies every inheritable field the child lacks from parent,
// applies the auto-display rule, and computes the font-size/dpi anchors
// every relative Dimension on this node will resolve against.
func (c *Context) Cascade(parent *Context) {
	if parent == nil {
		c.Dpi = defaultDpi
		c.ResolvedRootFontSize = c.resolveFontSize(defaultFontSizePixels, defaultFontSizePixels, defaultDpi)
		c.ResolvedFontSize = c.ResolvedRootFontSize
		return
	}

	if Inheritable.Has(BitColor) && !c.Bits.Has(BitColor) && parent.Bits.Has(BitColor) {
		c.Color = parent.Color
		c.Bits = c.Bits.Set(BitColor)
	}
	if !c.Bits.Has(BitFontFamily) && parent.Bits.Has(BitFontFamily) {
		c.FontFamily = parent.FontFamily
		c.Bits = c.Bits.Set(BitFontFamily)
	}
	if !c.Bits.Has(BitFontSize) && parent.Bits.Has(BitFontSize) {
		c.FontSize = parent.FontSize
		c.Bits = c.Bits.Set(BitFontSize)
	}
	if !c.Bits.Has(BitFontStyle) && parent.Bits.Has(BitFontStyle) {
		c.FontStyle = parent.FontStyle
		c.Bits = c.Bits.Set(BitFontStyle)
	}
	if !c.Bits.Has(BitFontWeight) && parent.Bits.Has(BitFontWeight) {
		c.FontWeight = parent.FontWeight
		c.Bits = c.Bits.Set(BitFontWeight)
	}
	if !c.Bits.Has(BitLetterSpacing) && parent.Bits.Has(BitLetterSpacing) {
		c.LetterSpacing = parent.LetterSpacing
		c.Bits = c.Bits.Set(BitLetterSpacing)
	}
	if !c.Bits.Has(BitLineHeight) && parent.Bits.Has(BitLineHeight) {
		c.LineHeight = parent.LineHeight
		c.Bits = c.Bits.Set(BitLineHeight)
	}
	if !c.Bits.Has(BitTextAlign) && parent.Bits.Has(BitTextAlign) {
		c.TextAlign = parent.TextAlign
		c.Bits = c.Bits.Set(BitTextAlign)
	}
	if !c.Bits.Has(BitTextDecoration) && parent.Bits.Has(BitTextDecoration) {
		c.TextDecoration = parent.TextDecoration
		c.Bits = c.Bits.Set(BitTextDecoration)
	}
	if !c.Bits.Has(BitTextTransform) && parent.Bits.Has(BitTextTransform) {
		c.TextTransform = parent.TextTransform
		c.Bits = c.Bits.Set(BitTextTransform)
	}
	if !c.Bits.Has(BitWhiteSpace) && parent.Bits.Has(BitWhiteSpace) {
		c.WhiteSpace = parent.WhiteSpace
		c.Bits = c.Bits.Set(BitWhiteSpace)
	}
	if !c.Bits.Has(BitWordSpacing) && parent.Bits.Has(BitWordSpacing) {
		c.WordSpacing = parent.WordSpacing
		c.Bits = c.Bits.Set(BitWordSpacing)
	}

	// Auto-display rule: children of text-flow contexts default to inline,
	// without flipping the bit, preserving the explicit/inferred distinction.
	if !c.Bits.Has(BitDisplay) && !parent.IsRoot {
		switch parent.Display {
		case DisplayInline, DisplayBlock, DisplayInlineBlock:
			c.Display = DisplayInline
		}
	}

	c.ResolvedFontSize = c.resolveFontSize(parent.ResolvedFontSize, parent.ResolvedRootFontSize, parent.Dpi)
	c.Dpi = parent.Dpi
	c.ResolvedRootFontSize = parent.ResolvedRootFontSize
}

func (c *Context) resolveFontSize(emPx, remPx, dpi float64) float64 {
	v := c.FontSize.ToPixels(emPx, remPx, emPx, dpi)
	if v < minFontSizePixels {
		return minFontSizePixels
	}
	return v
}
