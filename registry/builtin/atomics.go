// Package builtin declares the fixed table of built-in atomic styles and
// their composite aliases, grounded in the registry's documented
// initialization order: atomics first (one id each, in table order), then
// built-in composites walking each atomic's alias table.
package builtin

import (
	"github.com/zachzurn/flexml/context"
	"github.com/zachzurn/flexml/style"
)

// Apply writes one (or, for margin/padding shorthands, several related)
// field of a Context from a parsed Value, flipping the matching bit(s). It
// is a silent no-op on Invalid/Empty/Unset, keeping cascades total per the
// error handling design.
type Apply func(c *context.Context, v style.Value)

// Atomic is one row of the built-in atomic table.
type Atomic struct {
	Name    string
	Spec    style.Spec
	ApplyFn Apply
	// Aliases lists this atomic's built-in composite aliases: each entry is
	// either a forwarding slot (Forward=true) or a fixed value to apply when
	// the alias name is used standalone.
	Aliases []Alias
}

// Alias is one row of a built-in composite's alias table.
type Alias struct {
	Name    string
	Forward bool
	Value   style.Value
}

func dim(bit context.Bits, set func(*context.Context, style.Dimension)) Apply {
	return func(c *context.Context, v style.Value) {
		d, ok := v.Dim()
		if !ok {
			return
		}
		c.Bits = c.Bits.Set(bit)
		set(c, d)
	}
}

func col(bit context.Bits, set func(*context.Context, context.Color)) Apply {
	return func(c *context.Context, v style.Value) {
		if v.Kind != style.KindColor {
			return
		}
		c.Bits = c.Bits.Set(bit)
		set(c, context.Color{R: v.Color.R, G: v.Color.G, B: v.Color.B, A: v.Color.A})
	}
}

func match(bit context.Bits, set func(*context.Context, int)) Apply {
	return func(c *context.Context, v style.Value) {
		if v.Kind != style.KindMatch {
			return
		}
		c.Bits = c.Bits.Set(bit)
		set(c, v.MatchIndex)
	}
}

func ident(bit context.Bits, set func(*context.Context, string)) Apply {
	return func(c *context.Context, v style.Value) {
		if v.Kind != style.KindMatch {
			return
		}
		c.Bits = c.Bits.Set(bit)
		set(c, v.MatchLabel)
	}
}

func num(bit context.Bits, set func(*context.Context, float64)) Apply {
	return func(c *context.Context, v style.Value) {
		if v.Kind != style.KindFloat {
			return
		}
		c.Bits = c.Bits.Set(bit)
		set(c, v.Float)
	}
}

func pathImage(bit context.Bits) Apply {
	return func(c *context.Context, v style.Value) {
		if v.Kind != style.KindImage {
			return
		}
		c.Bits = c.Bits.Set(bit)
		c.BgImage = v.PathId
	}
}

func pathBase(bit context.Bits) Apply {
	return func(c *context.Context, v style.Value) {
		if v.Kind != style.KindDirectory {
			return
		}
		c.Bits = c.Bits.Set(bit)
		c.BasePath = v.PathId
	}
}

var displaySet = []string{"none", "block", "inline", "inlineBlock", "flex"}
var whiteSpaceSet = []string{"normal", "nowrap", "pre", "preWrap", "preLine"}
var alignContentSet = []string{"normal", "flexStart", "flexEnd", "center", "spaceBetween", "spaceAround", "stretch"}
var alignItemsSet = []string{"stretch", "flexStart", "flexEnd", "center", "baseline"}
var alignSelfSet = []string{"auto", "stretch", "flexStart", "flexEnd", "center", "baseline"}
var flexDirectionSet = []string{"row", "rowReverse", "column", "columnReverse"}
var flexWrapSet = []string{"nowrap", "wrap", "wrapReverse"}
var justifyContentSet = []string{"flexStart", "flexEnd", "center", "spaceBetween", "spaceAround", "spaceEvenly"}
var textAlignSet = []string{"left", "right", "center", "justify"}
var textDecorationSet = []string{"none", "underline", "overline", "lineThrough"}
var textTransformSet = []string{"none", "uppercase", "lowercase", "capitalize"}
var fontStyleSet = []string{"normal", "italic", "oblique"}
var bgPositionSet = []string{"left", "center", "right", "top", "bottom"}
var bgRepeatSet = []string{"noRepeat", "repeat", "repeatX", "repeatY"}
var bgSizeSet = []string{"auto", "cover", "contain"}
var borderStyleSet = []string{"none", "solid", "dashed", "dotted", "double"}

// DefaultAtomics is the registry's built-in atomic table, in registration
// order. Each atomic's Aliases populate the built-in composite range
// immediately afterward, per the documented initialization algorithm.
var DefaultAtomics = []Atomic{
	{Name: "display", Spec: style.MatchSpec(displaySet), ApplyFn: match(context.BitDisplay, func(c *context.Context, i int) { c.Display = context.Display(i) })},
	{Name: "whiteSpace", Spec: style.MatchSpec(whiteSpaceSet), ApplyFn: match(context.BitWhiteSpace, func(c *context.Context, i int) { c.WhiteSpace = context.WhiteSpace(i) })},
	{Name: "opacity", Spec: style.FloatSpec(), ApplyFn: num(context.BitOpacity, func(c *context.Context, f float64) { c.Opacity = f })},

	{Name: "marginTop", Spec: style.NumberSpec(), ApplyFn: dim(context.BitMarginTop, func(c *context.Context, d style.Dimension) { c.MarginTop = d })},
	{Name: "marginBottom", Spec: style.NumberSpec(), ApplyFn: dim(context.BitMarginBottom, func(c *context.Context, d style.Dimension) { c.MarginBottom = d })},
	{Name: "marginLeft", Spec: style.NumberSpec(), ApplyFn: dim(context.BitMarginLeft, func(c *context.Context, d style.Dimension) { c.MarginLeft = d })},
	{Name: "marginRight", Spec: style.NumberSpec(), ApplyFn: dim(context.BitMarginRight, func(c *context.Context, d style.Dimension) { c.MarginRight = d })},
	{Name: "margin", Spec: style.NumberSpec(), ApplyFn: func(c *context.Context, v style.Value) {
		d, ok := v.Dim()
		if !ok {
			return
		}
		c.Bits = c.Bits.Set(context.BitMarginTop).Set(context.BitMarginBottom).Set(context.BitMarginLeft).Set(context.BitMarginRight)
		c.MarginTop, c.MarginBottom, c.MarginLeft, c.MarginRight = d, d, d, d
	}},

	{Name: "paddingTop", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitPaddingTop, func(c *context.Context, d style.Dimension) { c.PaddingTop = d })},
	{Name: "paddingBottom", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitPaddingBottom, func(c *context.Context, d style.Dimension) { c.PaddingBottom = d })},
	{Name: "paddingLeft", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitPaddingLeft, func(c *context.Context, d style.Dimension) { c.PaddingLeft = d })},
	{Name: "paddingRight", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitPaddingRight, func(c *context.Context, d style.Dimension) { c.PaddingRight = d })},
	{Name: "padding", Spec: style.PositiveNumberSpec(), ApplyFn: func(c *context.Context, v style.Value) {
		d, ok := v.Dim()
		if !ok {
			return
		}
		c.Bits = c.Bits.Set(context.BitPaddingTop).Set(context.BitPaddingBottom).Set(context.BitPaddingLeft).Set(context.BitPaddingRight)
		c.PaddingTop, c.PaddingBottom, c.PaddingLeft, c.PaddingRight = d, d, d, d
	}},

	{Name: "width", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitWidth, func(c *context.Context, d style.Dimension) { c.Width = d })},
	{Name: "maxWidth", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitMaxWidth, func(c *context.Context, d style.Dimension) { c.MaxWidth = d })},
	{Name: "minWidth", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitMinWidth, func(c *context.Context, d style.Dimension) { c.MinWidth = d })},
	{Name: "height", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitHeight, func(c *context.Context, d style.Dimension) { c.Height = d })},
	{Name: "maxHeight", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitMaxHeight, func(c *context.Context, d style.Dimension) { c.MaxHeight = d })},
	{Name: "minHeight", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitMinHeight, func(c *context.Context, d style.Dimension) { c.MinHeight = d })},

	{Name: "alignContent", Spec: style.MatchSpec(alignContentSet), ApplyFn: match(context.BitAlignContent, func(c *context.Context, i int) { c.AlignContent = context.AlignContent(i) })},
	{Name: "alignItems", Spec: style.MatchSpec(alignItemsSet), ApplyFn: match(context.BitAlignItems, func(c *context.Context, i int) { c.AlignItems = context.AlignItems(i) })},
	{Name: "alignSelf", Spec: style.MatchSpec(alignSelfSet), ApplyFn: match(context.BitAlignSelf, func(c *context.Context, i int) { c.AlignSelf = context.AlignSelf(i) })},
	{Name: "gap", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitGap, func(c *context.Context, d style.Dimension) { c.Gap = d })},
	{Name: "columnGap", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitColumnGap, func(c *context.Context, d style.Dimension) { c.ColumnGap = d })},
	{Name: "rowGap", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitRowGap, func(c *context.Context, d style.Dimension) { c.RowGap = d })},
	{Name: "flexBasis", Spec: style.MatchOrFloatSpec([]string{"auto", "content"}), ApplyFn: func(c *context.Context, v style.Value) {
		switch v.Kind {
		case style.KindMatch:
			c.Bits = c.Bits.Set(context.BitFlexBasis)
			if v.MatchLabel == "content" {
				c.FlexBasis = style.Content()
			} else {
				c.FlexBasis = style.Auto()
			}
		case style.KindFloat:
			c.Bits = c.Bits.Set(context.BitFlexBasis)
			c.FlexBasis = style.Px(v.Float)
		}
	}},
	{Name: "flexDirection", Spec: style.MatchSpec(flexDirectionSet), ApplyFn: match(context.BitFlexDirection, func(c *context.Context, i int) { c.FlexDirection = context.FlexDirection(i) })},
	{Name: "flexGrow", Spec: style.FloatSpec(), ApplyFn: num(context.BitFlexGrow, func(c *context.Context, f float64) { c.FlexGrow = f })},
	{Name: "flexShrink", Spec: style.FloatSpec(), ApplyFn: num(context.BitFlexShrink, func(c *context.Context, f float64) { c.FlexShrink = f })},
	{Name: "justifyContent", Spec: style.MatchSpec(justifyContentSet), ApplyFn: match(context.BitJustifyContent, func(c *context.Context, i int) { c.JustifyContent = context.JustifyContent(i) })},
	{Name: "flexWrap", Spec: style.MatchSpec(flexWrapSet), ApplyFn: match(context.BitFlexWrap, func(c *context.Context, i int) { c.FlexWrap = context.FlexWrap(i) })},

	{Name: "color", Spec: style.ColorSpec(), ApplyFn: col(context.BitColor, func(c *context.Context, col context.Color) { c.Color = col })},
	{Name: "textDecoration", Spec: style.MatchSpec(textDecorationSet), ApplyFn: match(context.BitTextDecoration, func(c *context.Context, i int) { c.TextDecoration = context.TextDecoration(i) })},
	{Name: "fontFamily", Spec: style.IdentSpec(), ApplyFn: ident(context.BitFontFamily, func(c *context.Context, s string) { c.FontFamily = s })},
	{Name: "fontSize", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitFontSize, func(c *context.Context, d style.Dimension) { c.FontSize = d })},
	{Name: "fontStyle", Spec: style.MatchSpec(fontStyleSet), ApplyFn: match(context.BitFontStyle, func(c *context.Context, i int) { c.FontStyle = context.FontStyle(i) })},
	{Name: "textTransform", Spec: style.MatchSpec(textTransformSet), ApplyFn: match(context.BitTextTransform, func(c *context.Context, i int) { c.TextTransform = context.TextTransform(i) })},
	{Name: "letterSpacing", Spec: style.NumberSpec(), ApplyFn: dim(context.BitLetterSpacing, func(c *context.Context, d style.Dimension) { c.LetterSpacing = d })},
	{Name: "lineHeight", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitLineHeight, func(c *context.Context, d style.Dimension) { c.LineHeight = d })},
	{Name: "fontWeight", Spec: style.MatchOrFloatSpec([]string{"thin", "extraLight", "light", "normal", "medium", "semiBold", "bold", "extraBold", "black"}), ApplyFn: func(c *context.Context, v style.Value) {
		weights := []int{100, 200, 300, 400, 500, 600, 700, 800, 900}
		switch v.Kind {
		case style.KindMatch:
			c.Bits = c.Bits.Set(context.BitFontWeight)
			c.FontWeight = weights[v.MatchIndex]
		case style.KindFloat:
			c.Bits = c.Bits.Set(context.BitFontWeight)
			c.FontWeight = int(v.Float)
		}
	}},
	{Name: "wordSpacing", Spec: style.NumberSpec(), ApplyFn: dim(context.BitWordSpacing, func(c *context.Context, d style.Dimension) { c.WordSpacing = d })},
	{Name: "textAlign", Spec: style.MatchSpec(textAlignSet), ApplyFn: match(context.BitTextAlign, func(c *context.Context, i int) { c.TextAlign = context.TextAlign(i) })},

	{Name: "bgColor", Spec: style.ColorSpec(), ApplyFn: col(context.BitBgColor, func(c *context.Context, col context.Color) { c.BgColor = col })},
	{Name: "bgImage", Spec: style.PathSpec(style.PathKindImage), ApplyFn: pathImage(context.BitBgImage)},
	{Name: "bgPosition", Spec: style.MatchSpec(bgPositionSet), ApplyFn: match(context.BitBgPosition, func(c *context.Context, i int) { c.BgPosition = context.BgPosition(i) })},
	{Name: "bgRepeat", Spec: style.MatchSpec(bgRepeatSet), ApplyFn: match(context.BitBgRepeat, func(c *context.Context, i int) { c.BgRepeat = context.BgRepeat(i) })},
	{Name: "bgSize", Spec: style.MatchOrFloatSpec(bgSizeSet), ApplyFn: func(c *context.Context, v style.Value) {
		if v.Kind == style.KindMatch {
			c.Bits = c.Bits.Set(context.BitBgSize)
			c.BgSize = context.BgSize(v.MatchIndex)
		}
	}},

	{Name: "borderTopLeftRadius", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitBorderTopLeftRadius, func(c *context.Context, d style.Dimension) { c.BorderTopLeftRadius = d })},
	{Name: "borderTopRightRadius", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitBorderTopRightRadius, func(c *context.Context, d style.Dimension) { c.BorderTopRightRadius = d })},
	{Name: "borderBottomLeftRadius", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitBorderBottomLeftRadius, func(c *context.Context, d style.Dimension) { c.BorderBottomLeftRadius = d })},
	{Name: "borderBottomRightRadius", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitBorderBottomRightRadius, func(c *context.Context, d style.Dimension) { c.BorderBottomRightRadius = d })},
	{Name: "borderColor", Spec: style.ColorSpec(), ApplyFn: col(context.BitBorderColor, func(c *context.Context, col context.Color) { c.BorderColor = col })},
	{Name: "borderStyle", Spec: style.MatchSpec(borderStyleSet), ApplyFn: match(context.BitBorderStyle, func(c *context.Context, i int) { c.BorderStyle = context.BorderStyle(i) })},
	{Name: "borderWidth", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitBorderWidth, func(c *context.Context, d style.Dimension) { c.BorderWidth = d })},

	{Name: "pageWidth", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitPageWidth, func(c *context.Context, d style.Dimension) { c.PageWidth = d })},
	{Name: "pageHeight", Spec: style.PositiveNumberSpec(), ApplyFn: dim(context.BitPageHeight, func(c *context.Context, d style.Dimension) { c.PageHeight = d })},
	{Name: "pixelsPerInch", Spec: style.FloatSpec(), ApplyFn: num(context.BitPixelsPerInch, func(c *context.Context, f float64) { c.PixelsPerInch = f })},
	{Name: "basePath", Spec: style.PathSpec(style.PathKindDirectory), ApplyFn: pathBase(context.BitBasePath)},
}

// RootStyleName is the reserved composite name for the root style block.
const RootStyleName = "flexml"
