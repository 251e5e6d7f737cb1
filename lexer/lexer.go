package lexer

import (
	"go.uber.org/zap"

	parse "github.com/tdewolff/parse/v2"

	"github.com/zachzurn/flexml/diag"
)

// Lexer scans a buffered input byte-by-byte, producing one Token per call
// to Next. It borrows the buffer produced by tdewolff/parse/v2's Input,
// the same low-level buffering primitive the teacher's CSS parser builds
// on, and scans the bytes that Input exposes.
type Lexer struct {
	src  []byte
	pos  int
	log  *zap.Logger
	sink *diag.Sink
}

// New wraps data in a parse.Input, then returns a Lexer ready to scan the
// bytes it exposes. sink is kept but the lexer records no warnings into it:
// every byte belongs to some token, unmatched runs being Text. sink may be
// nil.
func New(data []byte, sink *diag.Sink, log *zap.Logger) *Lexer {
	if log == nil {
		log = zap.NewNop()
	}
	input := parse.NewInputBytes(data)
	normalized := input.Bytes()
	return &Lexer{src: normalized, log: log.Named("lexer"), sink: sink}
}

// Bytes returns the normalized source buffer tokens are spans into.
func (l *Lexer) Bytes() []byte { return l.src }

// Pos reports the lexer's current byte offset.
func (l *Lexer) Pos() int { return l.pos }

// SeekTo repositions the lexer to an arbitrary byte offset. Used by the
// parser's raw-block and depth-guard skip logic, which scan the buffer
// directly rather than through the token grammar.
func (l *Lexer) SeekTo(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(l.src) {
		pos = len(l.src)
	}
	l.pos = pos
}

func (l *Lexer) at(i int) byte {
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func isWS(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\f' }
func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
func isTagChar(b byte) bool { return isAlnum(b) || b == '_' || b == '-' }
func isStyleValueChar(b byte) bool {
	switch b {
	case '.', '_', '/', '>', '#', ':', '%', '?', '&', '=', '@', '-':
		return true
	}
	return isAlnum(b)
}

// Next returns the next token, or (Token{Kind: EOF}, false) at end of input.
func (l *Lexer) Next() (Token, bool) {
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Span: Span{l.pos, l.pos}}, false
	}

	start := l.pos

	if t, ok := l.tryWhitespace(start); ok {
		return t, true
	}
	if t, ok := l.tryStyleName(start); ok {
		return t, true
	}
	if t, ok := l.tryStyleValue(start); ok {
		return t, true
	}
	if t, ok := l.trySingle(start); ok {
		return t, true
	}
	if t, ok := l.tryTag(start); ok {
		return t, true
	}
	if t, ok := l.tryRawEscaped(start); ok {
		return t, true
	}
	if t, ok := l.tryRaw(start); ok {
		return t, true
	}

	return l.scanText(start), true
}

func (l *Lexer) tryWhitespace(start int) (Token, bool) {
	if !isWS(l.at(start)) {
		return Token{}, false
	}
	i := start
	for isWS(l.at(i)) {
		i++
	}
	l.pos = i
	return Token{Kind: Whitespace, Span: Span{start, i}}, true
}

// tryStyleName matches `>?[A-Za-z0-9]+`.
func (l *Lexer) tryStyleName(start int) (Token, bool) {
	i := start
	if l.at(i) == '>' {
		i++
	}
	nameStart := i
	for isAlnum(l.at(i)) {
		i++
	}
	if i == nameStart {
		return Token{}, false
	}
	l.pos = i
	return Token{Kind: StyleName, Span: Span{start, i}}, true
}

// tryStyleValue matches `:` ws `[A-Za-z0-9._/>#:%?&=@-]+` or a quoted string.
func (l *Lexer) tryStyleValue(start int) (Token, bool) {
	if l.at(start) != ':' {
		return Token{}, false
	}
	i := start + 1
	for isWS(l.at(i)) {
		i++
	}
	if l.at(i) == '"' {
		j := i + 1
		for j < len(l.src) && l.src[j] != '"' {
			j++
		}
		if j < len(l.src) {
			j++ // include closing quote
		}
		l.pos = j
		return Token{Kind: StyleValue, Span: Span{start, j}}, true
	}
	valStart := i
	for isStyleValueChar(l.at(i)) {
		i++
	}
	if i == valStart {
		return Token{}, false
	}
	l.pos = i
	return Token{Kind: StyleValue, Span: Span{start, i}}, true
}

func (l *Lexer) trySingle(start int) (Token, bool) {
	var k Kind
	switch l.at(start) {
	case '=':
		k = Eq
	case '+':
		k = Plus
	case '[':
		k = LBracket
	case ']':
		k = RBracket
	case '{':
		k = LBrace
	case '}':
		k = RBrace
	default:
		return Token{}, false
	}
	l.pos = start + 1
	return Token{Kind: k, Span: Span{start, start + 1}}, true
}

// tryTag matches `<[A-Za-z0-9_-]+>`.
func (l *Lexer) tryTag(start int) (Token, bool) {
	if l.at(start) != '<' {
		return Token{}, false
	}
	i := start + 1
	nameStart := i
	for isTagChar(l.at(i)) {
		i++
	}
	if i == nameStart || l.at(i) != '>' {
		return Token{}, false
	}
	i++
	l.pos = i
	return Token{Kind: TagContainer, Span: Span{start, i}}, true
}

func (l *Lexer) tryRawEscaped(start int) (Token, bool) {
	if l.at(start) != '\\' {
		return Token{}, false
	}
	if l.at(start+1) == '|' && l.at(start+2) == '=' {
		l.pos = start + 3
		return Token{Kind: RawOpenEscaped, Span: Span{start, start + 3}}, true
	}
	if l.at(start+1) == '=' && l.at(start+2) == '|' {
		l.pos = start + 3
		return Token{Kind: RawCloseEscaped, Span: Span{start, start + 3}}, true
	}
	return Token{}, false
}

func (l *Lexer) tryRaw(start int) (Token, bool) {
	if l.at(start) == '|' && l.at(start+1) == '=' {
		l.pos = start + 2
		return Token{Kind: RawOpen, Span: Span{start, start + 2}}, true
	}
	if l.at(start) == '=' && l.at(start+1) == '|' {
		l.pos = start + 2
		return Token{Kind: RawClose, Span: Span{start, start + 2}}, true
	}
	return Token{}, false
}

// matchesSpecific reports whether a specific (non-Text) token starts at i,
// without consuming it - used by scanText to know where to stop.
func (l *Lexer) matchesSpecific(i int) bool {
	save := l.pos
	defer func() { l.pos = save }()
	l.pos = i
	if _, ok := l.tryWhitespace(i); ok {
		return true
	}
	if _, ok := l.tryStyleName(i); ok {
		return true
	}
	if _, ok := l.tryStyleValue(i); ok {
		return true
	}
	if _, ok := l.trySingle(i); ok {
		return true
	}
	if _, ok := l.tryTag(i); ok {
		return true
	}
	if _, ok := l.tryRawEscaped(i); ok {
		return true
	}
	if _, ok := l.tryRaw(i); ok {
		return true
	}
	return false
}

// scanText consumes the catch-all non-delimiter run, including bare '|'.
// This is itself a legitimate grammar rule (Text), not an error path, so no
// warning is raised for it.
func (l *Lexer) scanText(start int) Token {
	i := start + 1
	for i < len(l.src) && !l.matchesSpecific(i) {
		i++
	}
	l.pos = i
	return Token{Kind: Text, Span: Span{start, i}}
}
