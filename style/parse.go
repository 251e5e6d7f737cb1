package style

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// Parser is the discriminant selecting which small value grammar an atomic
// style dispatches to.
type Parser int

const (
	ParserNumber Parser = iota
	ParserPositiveNumber
	ParserFloat
	ParserMatch
	ParserMatchOrFloat
	ParserColor
	ParserPath
)

// Spec bundles a Parser with whatever extra configuration it needs: the
// match set for ParserMatch/ParserMatchOrFloat, the path kind for
// ParserPath.
type Spec struct {
	Parser   Parser
	MatchSet []string
	PathKind PathKind
}

func NumberSpec() Spec           { return Spec{Parser: ParserNumber} }
func PositiveNumberSpec() Spec   { return Spec{Parser: ParserPositiveNumber} }
func FloatSpec() Spec            { return Spec{Parser: ParserFloat} }
func MatchSpec(set []string) Spec { return Spec{Parser: ParserMatch, MatchSet: set} }
func MatchOrFloatSpec(set []string) Spec {
	return Spec{Parser: ParserMatchOrFloat, MatchSet: set}
}
func ColorSpec() Spec                  { return Spec{Parser: ParserColor} }
func PathSpec(kind PathKind) Spec      { return Spec{Parser: ParserPath, PathKind: kind} }

// Parse dispatches raw (the style value's already-trimmed textual payload)
// to the parser named by s.
func (s Spec) Parse(raw string) Value {
	switch s.Parser {
	case ParserNumber:
		return parseNumber(raw, true)
	case ParserPositiveNumber:
		return parseNumber(raw, false)
	case ParserFloat:
		return parseFloatValue(raw)
	case ParserMatch:
		return parseMatch(raw, s.MatchSet)
	case ParserMatchOrFloat:
		return parseMatchOrFloat(raw, s.MatchSet)
	case ParserColor:
		return parseColor(raw)
	case ParserPath:
		return parsePath(raw, s.PathKind)
	case ParserIdent:
		return parseIdent(raw)
	default:
		return Invalid("UNKNOWN_PARSER", "")
	}
}

var unitTable = []string{"px", "%", "pt", "in", "mm", "rem", "em"}

// parseNumber implements both Number and PositiveNumber: optional sign,
// digits with optional decimal point, optional unit suffix from
// {px,%,pt,in,mm,em,rem} (case-insensitive). Bare numbers default to Px.
func parseNumber(raw string, allowNegative bool) Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Empty()
	}

	numEnd := 0
	seenDot := false
	for i, r := range raw {
		switch {
		case r == '-' || r == '+':
			if i != 0 {
				numEnd = i
				goto doneScan
			}
			numEnd = i + 1
		case r >= '0' && r <= '9':
			numEnd = i + 1
		case r == '.' && !seenDot:
			seenDot = true
			numEnd = i + 1
		default:
			goto doneScan
		}
	}
doneScan:

	if numEnd == 0 {
		return Invalid("NUMBER", "NUMBER")
	}

	numStr := raw[:numEnd]
	unitStr := fold.String(strings.TrimSpace(raw[numEnd:]))

	n, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return Invalid("NUMBER", "NUMBER")
	}

	if unitStr == "" {
		if n < 0 && !allowNegative {
			return Invalid("NEGATIVE_NUMBER", "POSITIVE_NUMBER")
		}
		if n < 0 {
			return NegativeNumber(Px(n))
		}
		return PositiveNumber(Px(n))
	}

	var dim Dimension
	switch unitStr {
	case "px":
		dim = Px(n)
	case "%":
		if n < 0 {
			return Invalid("NEGATIVE_NUMBER", "POSITIVE_NUMBER")
		}
		return PositiveNumber(Percent(n))
	case "pt":
		dim = Point(n)
	case "in":
		dim = Inch(n)
	case "mm":
		dim = Mm(n)
	case "em":
		dim = Em(n)
	case "rem":
		dim = Rem(n)
	default:
		return Invalid("NUMBER", "NUMBER")
	}

	if n < 0 {
		if !allowNegative {
			return Invalid("NEGATIVE_NUMBER", "POSITIVE_NUMBER")
		}
		return NegativeNumber(dim)
	}
	return PositiveNumber(dim)
}

func parseFloatValue(raw string) Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Empty()
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Invalid("FLOAT", "FLOAT")
	}
	return Float(f)
}

func parseMatch(raw string, set []string) Value {
	if len(set) > 255 {
		return Invalid("FATAL_MATCH", strings.Join(set, ","))
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Empty()
	}
	folded := fold.String(raw)
	for i, candidate := range set {
		if fold.String(candidate) == folded {
			return Match(i, candidate)
		}
	}
	return Invalid("MATCH", strings.Join(set, ","))
}

func parseMatchOrFloat(raw string, set []string) Value {
	v := parseMatch(raw, set)
	if v.Kind != KindInvalid {
		return v
	}
	return parseFloatValue(raw)
}

// parseColor requires a leading '#' and one of the hex lengths {2,3,4,6,8},
// expanding each to a straight RGBA quadruple.
func parseColor(raw string) Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Empty()
	}
	if !strings.HasPrefix(raw, "#") {
		return Invalid("COLOR", "COLOR")
	}
	hex := raw[1:]
	for _, r := range hex {
		if !isHexDigit(r) {
			return Invalid("COLOR", "COLOR")
		}
	}

	expand1 := func(c byte) string { return string(c) + string(c) }

	var full string
	switch len(hex) {
	case 2: // HH -> HHHHHHFF
		full = hex + hex + hex + "FF"
	case 3: // RGB -> RRGGBBFF
		full = expand1(hex[0]) + expand1(hex[1]) + expand1(hex[2]) + "FF"
	case 4: // RGBA -> RRGGBBAA
		full = expand1(hex[0]) + expand1(hex[1]) + expand1(hex[2]) + expand1(hex[3])
	case 6: // RRGGBB -> ...FF
		full = hex + "FF"
	case 8: // RRGGBBAA verbatim
		full = hex
	default:
		return Invalid("COLOR", "COLOR")
	}

	r, _ := strconv.ParseUint(full[0:2], 16, 8)
	g, _ := strconv.ParseUint(full[2:4], 16, 8)
	b, _ := strconv.ParseUint(full[4:6], 16, 8)
	a, _ := strconv.ParseUint(full[6:8], 16, 8)
	return Color(RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)})
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// parsePath handles the literal "none" and otherwise returns the
// kind-tagged *Path variant carrying the raw path string; the registry
// performs interning, content-sniffing and id assignment.
func parsePath(raw string, kind PathKind) Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Empty()
	}
	if fold.String(raw) == fold.String("none") {
		return Unset()
	}
	switch kind {
	case PathKindFont:
		return FontPath(raw)
	case PathKindImage:
		return ImagePath(raw)
	default:
		return DirectoryPath(raw)
	}
}
