// Package style defines the atomic style value model: the tagged union of
// parsed values, dimensions, colors and the small per-type parsers the
// style registry dispatches to when expanding raw style lists.
package style

import "fmt"

// StyleId is an opaque small integer produced by the registry's name
// interner. Its numeric range determines whether it names an atomic style,
// a built-in composite, or a user-defined composite.
type StyleId int

// PathId is an interned, normalized filesystem path tagged by validation
// state.
type PathId int

// PathState describes whether a PathId's target was found on disk.
type PathState int

const (
	PathMissing PathState = iota
	PathFile
	PathDir
)

// PathKind distinguishes the three flavors of path-bearing style.
type PathKind int

const (
	PathKindFont PathKind = iota
	PathKindImage
	PathKindDirectory
)

// Kind is the discriminant of the StyleValue tagged union.
type Kind int

const (
	KindEmpty Kind = iota
	KindForward
	KindUnset
	KindInvalid
	KindFloat
	KindPositiveNumber
	KindNegativeNumber
	KindColor
	KindMatch
	KindFont
	KindImage
	KindDirectory
	KindFontPath
	KindImagePath
	KindDirectoryPath
)

// RGBA is a straight, unpremultiplied 8-bit-per-channel color.
type RGBA struct {
	R, G, B, A uint8
}

// Value is the closed sum type every parsed or resolved style value takes.
// Only the fields relevant to Kind are meaningful; callers must switch on
// Kind before reading.
type Value struct {
	Kind Kind

	Float     float64
	Dimension Dimension
	Color     RGBA

	MatchIndex int
	MatchLabel string

	InvalidReason string
	InvalidHints  string

	PathId   PathId
	PathKind PathKind
	PathBuf  string
}

func Empty() Value    { return Value{Kind: KindEmpty} }
func Forward() Value  { return Value{Kind: KindForward} }
func Unset() Value    { return Value{Kind: KindUnset} }
func Invalid(reason, hints string) Value {
	return Value{Kind: KindInvalid, InvalidReason: reason, InvalidHints: hints}
}

func Float(v float64) Value { return Value{Kind: KindFloat, Float: v} }

func PositiveNumber(d Dimension) Value { return Value{Kind: KindPositiveNumber, Dimension: d} }
func NegativeNumber(d Dimension) Value { return Value{Kind: KindNegativeNumber, Dimension: d} }

func Color(c RGBA) Value { return Value{Kind: KindColor, Color: c} }

func Match(index int, label string) Value {
	return Value{Kind: KindMatch, MatchIndex: index, MatchLabel: label}
}

func FontPath(p string) Value      { return Value{Kind: KindFontPath, PathBuf: p, PathKind: PathKindFont} }
func ImagePath(p string) Value     { return Value{Kind: KindImagePath, PathBuf: p, PathKind: PathKindImage} }
func DirectoryPath(p string) Value {
	return Value{Kind: KindDirectoryPath, PathBuf: p, PathKind: PathKindDirectory}
}

func Font(id PathId) Value      { return Value{Kind: KindFont, PathId: id, PathKind: PathKindFont} }
func Image(id PathId) Value     { return Value{Kind: KindImage, PathId: id, PathKind: PathKindImage} }
func Directory(id PathId) Value {
	return Value{Kind: KindDirectory, PathId: id, PathKind: PathKindDirectory}
}

// IsPathPending reports whether v is one of the pre-intern path variants
// that the registry must still resolve.
func (v Value) IsPathPending() bool {
	switch v.Kind {
	case KindFontPath, KindImagePath, KindDirectoryPath:
		return true
	default:
		return false
	}
}

// Dim, when v carries a dimension-like quantity, returns it and true.
func (v Value) Dim() (Dimension, bool) {
	switch v.Kind {
	case KindPositiveNumber, KindNegativeNumber:
		return v.Dimension, true
	default:
		return Dimension{}, false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindEmpty:
		return "Empty"
	case KindForward:
		return "Forward"
	case KindUnset:
		return "Unset"
	case KindInvalid:
		return fmt.Sprintf("Invalid(%s, %s)", v.InvalidReason, v.InvalidHints)
	case KindFloat:
		return fmt.Sprintf("Float(%g)", v.Float)
	case KindPositiveNumber:
		return fmt.Sprintf("PositiveNumber(%v)", v.Dimension)
	case KindNegativeNumber:
		return fmt.Sprintf("NegativeNumber(%v)", v.Dimension)
	case KindColor:
		return fmt.Sprintf("Color(#%02x%02x%02x%02x)", v.Color.R, v.Color.G, v.Color.B, v.Color.A)
	case KindMatch:
		return fmt.Sprintf("Match(%d, %s)", v.MatchIndex, v.MatchLabel)
	case KindFont, KindImage, KindDirectory:
		return fmt.Sprintf("Path(id=%d)", v.PathId)
	case KindFontPath, KindImagePath, KindDirectoryPath:
		return fmt.Sprintf("PathBuf(%s)", v.PathBuf)
	default:
		return "?"
	}
}

// AtomicStyle pairs an atomic StyleId with its resolved value. Ordered lists
// of these are the canonical post-expansion form of every composite style.
type AtomicStyle struct {
	Id    StyleId
	Value Value
}
