package context

// The enums below mirror the teacher's go-enum convention (a comment
// listing the variants) even though String() is hand-written here, since
// go generate cannot be run in this module.

// ENUM(none, block, inline, inlineBlock, flex)
type Display int

const (
	DisplayNone Display = iota
	DisplayBlock
	DisplayInline
	DisplayInlineBlock
	DisplayFlex
)

// ENUM(normal, nowrap, pre, preWrap, preLine)
type WhiteSpace int

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNoWrap
	WhiteSpacePre
	WhiteSpacePreWrap
	WhiteSpacePreLine
)

// ENUM(normal, flexStart, flexEnd, center, spaceBetween, spaceAround, stretch)
type AlignContent int

const (
	AlignContentNormal AlignContent = iota
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentStretch
)

// ENUM(stretch, flexStart, flexEnd, center, baseline)
type AlignItems int

const (
	AlignItemsStretch AlignItems = iota
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
)

// ENUM(auto, stretch, flexStart, flexEnd, center, baseline)
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStretch
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
)

// ENUM(row, rowReverse, column, columnReverse)
type FlexDirection int

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionRowReverse
	FlexDirectionColumn
	FlexDirectionColumnReverse
)

// ENUM(nowrap, wrap, wrapReverse)
type FlexWrap int

const (
	FlexWrapNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapWrapReverse
)

// ENUM(flexStart, flexEnd, center, spaceBetween, spaceAround, spaceEvenly)
type JustifyContent int

const (
	JustifyContentFlexStart JustifyContent = iota
	JustifyContentFlexEnd
	JustifyContentCenter
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly
)

// ENUM(left, right, center, justify)
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// ENUM(none, underline, overline, lineThrough)
type TextDecoration int

const (
	TextDecorationNone TextDecoration = iota
	TextDecorationUnderline
	TextDecorationOverline
	TextDecorationLineThrough
)

// ENUM(none, uppercase, lowercase, capitalize)
type TextTransform int

const (
	TextTransformNone TextTransform = iota
	TextTransformUppercase
	TextTransformLowercase
	TextTransformCapitalize
)

// ENUM(normal, italic, oblique)
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

// ENUM(left, center, right, top, bottom)
type BgPosition int

const (
	BgPositionLeft BgPosition = iota
	BgPositionCenter
	BgPositionRight
	BgPositionTop
	BgPositionBottom
)

// ENUM(noRepeat, repeat, repeatX, repeatY)
type BgRepeat int

const (
	BgRepeatNoRepeat BgRepeat = iota
	BgRepeatRepeat
	BgRepeatRepeatX
	BgRepeatRepeatY
)

// ENUM(auto, cover, contain)
type BgSize int

const (
	BgSizeAuto BgSize = iota
	BgSizeCover
	BgSizeContain
)

// ENUM(none, solid, dashed, dotted, double)
type BorderStyle int

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleSolid
	BorderStyleDashed
	BorderStyleDotted
	BorderStyleDouble
)

// Color is a straight RGBA color used by context fields (distinct from
// style.RGBA only in name, to keep this package import-light).
type Color struct {
	R, G, B, A uint8
}
