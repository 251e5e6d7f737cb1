// Package context implements StyleContext: the resolved per-node style
// value bag, its has-been-set bitset, and the cascade algorithm that
// propagates inheritable fields and relative dimensions from parent to
// child.
package context

// Bits is a 64-bit "has this field been explicitly set on this node" set.
// Bit positions are fixed and mirror the field layout below; gaps are left
// intentionally where a field was retired, so renumbering never happens.
type Bits uint64

const (
	BitDisplay Bits = 1 << iota
	BitWhiteSpace
	BitOpacity
	BitMarginTop
	// bit 4 reserved
	_
	BitMarginBottom
	BitMarginLeft
	BitMarginRight
	BitPaddingTop
	// bit 9 reserved
	_
	BitPaddingBottom
	BitPaddingLeft
	BitPaddingRight
	BitWidth
	BitMaxWidth
	BitMinWidth
	BitHeight
	BitMaxHeight
	BitMinHeight
	BitAlignContent
	BitAlignItems
	BitAlignSelf
	BitGap
	BitColumnGap
	BitRowGap
	BitFlexBasis
	BitFlexDirection
	BitFlexGrow
	BitFlexShrink
	BitJustifyContent
	BitFlexWrap
	BitColor
	BitTextDecoration
	BitFontFamily
	BitFontSize
	BitFontStyle
	BitTextTransform
	BitLetterSpacing
	BitLineHeight
	BitFontWeight
	BitWordSpacing
	BitTextAlign
	BitBgColor
	BitBgImage
	BitBgPosition
	BitBgRepeat
	BitBgSize
	BitBorderTopLeftRadius
	BitBorderTopRightRadius
	BitBorderBottomLeftRadius
	BitBorderBottomRightRadius
	// bit 51 reserved
	_
	BitBorderColor
	BitBorderStyle
	BitBorderWidth
	BitPageWidth
	BitPageHeight
	BitPixelsPerInch
	BitBasePath
)

// Has reports whether bit is set.
func (b Bits) Has(bit Bits) bool { return b&bit != 0 }

// Set returns b with bit set.
func (b Bits) Set(bit Bits) Bits { return b | bit }

// Inheritable is the fixed set of fields that participate in cascading:
// color, font family, font size, font style, font weight, letter spacing,
// line height, text align, text decoration, text transform, white-space,
// word spacing.
const Inheritable = BitColor | BitFontFamily | BitFontSize | BitFontStyle |
	BitFontWeight | BitLetterSpacing | BitLineHeight | BitTextAlign |
	BitTextDecoration | BitTextTransform | BitWhiteSpace | BitWordSpacing
