package style

import "strings"

// ParserIdent is a supplement to the seven value parsers named in the style
// value parser design: a handful of atomics (fontFamily) carry free-form
// text rather than a fixed match set, a number, a color or a path. Rather
// than invent a new Value variant, an identifier reuses Match with index 0
// and the raw text as its label - it is structurally a "matched" value, just
// against an open vocabulary instead of a closed one.
const ParserIdent Parser = 100

func parseIdent(raw string) Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Empty()
	}
	return Match(0, raw)
}

// IdentSpec builds a Spec for free-form identifier/text values.
func IdentSpec() Spec { return Spec{Parser: ParserIdent} }
