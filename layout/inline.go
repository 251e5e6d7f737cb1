package layout

import (
	"strings"
	"unicode"

	"github.com/zachzurn/flexml/context"
)

// FlattenInline concatenates the Text descendants of an InlineContent node
// into its final rendered string, applying whitespace collapsing and
// text-transform per the node's own resolved style. Normal and NoWrap
// collapse any run of whitespace to a single space and drop leading
// whitespace at the start of the run; Pre, PreWrap and PreLine preserve
// whitespace verbatim. Text-transform is applied after whitespace
// collapsing, to the fully assembled string.
func FlattenInline(t *Tree, id NodeId) []byte {
	n := t.Get(id)
	var buf strings.Builder
	trailingSpace := true // start-of-run: true suppresses leading whitespace
	collectText(t, id, n.Style.WhiteSpace, &buf, &trailingSpace)
	return []byte(transform(buf.String(), n.Style.TextTransform))
}

func collectText(t *Tree, id NodeId, ws context.WhiteSpace, buf *strings.Builder, trailingSpace *bool) {
	n := t.Get(id)
	if n.Kind == KindText {
		collapseWhitespace(string(n.Text), ws, buf, trailingSpace)
		return
	}
	for _, childId := range n.Children {
		collectText(t, childId, ws, buf, trailingSpace)
	}
}

// collapseWhitespace appends s to buf, collapsing runs of whitespace to a
// single space for Normal/NoWrap and preserving them verbatim otherwise.
// trailingSpace tracks whether the previous emitted character was
// whitespace (or the buffer is still empty), so a run split across
// adjacent Text nodes still collapses to one space at the boundary.
func collapseWhitespace(s string, ws context.WhiteSpace, buf *strings.Builder, trailingSpace *bool) {
	switch ws {
	case context.WhiteSpacePre, context.WhiteSpacePreWrap, context.WhiteSpacePreLine:
		if s == "" {
			return
		}
		buf.WriteString(s)
		*trailingSpace = isSpace(rune(s[len(s)-1]))
		return
	}

	for _, r := range s {
		if isSpace(r) {
			*trailingSpace = true
			continue
		}
		if *trailingSpace && buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteRune(r)
		*trailingSpace = false
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// transform applies a resolved text-transform to already-collapsed text.
func transform(s string, tt context.TextTransform) string {
	switch tt {
	case context.TextTransformUppercase:
		return strings.ToUpper(s)
	case context.TextTransformLowercase:
		return strings.ToLower(s)
	case context.TextTransformCapitalize:
		return capitalizeWords(s)
	default:
		return s
	}
}

// capitalizeWords upper-cases the first letter of each whitespace-separated
// word, leaving the rest of each word untouched.
func capitalizeWords(s string) string {
	var buf strings.Builder
	atWordStart := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			atWordStart = true
			buf.WriteRune(r)
			continue
		}
		if atWordStart {
			buf.WriteRune(unicode.ToUpper(r))
			atWordStart = false
		} else {
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
