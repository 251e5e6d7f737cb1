// Package parser turns a token stream into a flexml node tree. It holds a
// single token of lookahead, never backtracks past it, and never fails: every
// malformed construct is recovered from and recorded as a warning.
package parser

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/zachzurn/flexml/diag"
	"github.com/zachzurn/flexml/lexer"
	"github.com/zachzurn/flexml/node"
	"github.com/zachzurn/flexml/registry"
)

// Limits bounds node production and nesting depth. Exceeding either is
// recoverable: the parser emits one warning and keeps going (node count) or
// skips the offending subtree (depth).
type Limits struct {
	MaxNodes int
	MaxDepth int
}

// DefaultLimits mirrors the defaults a Doc is built with absent explicit
// configuration.
var DefaultLimits = Limits{MaxNodes: 10_000, MaxDepth: 50}

// Parser consumes a lexer.Lexer's token stream and produces node.Node trees.
type Parser struct {
	lex  *lexer.Lexer
	src  []byte
	reg  *registry.Registry
	sink *diag.Sink
	log  *zap.Logger

	peeked   *lexer.Token
	nodes    nodeGuard
	depth    depthGuard
	headerOK bool
}

// New constructs a Parser over data, sharing sink and reg with the lexer and
// style layers so diagnostics and style ids stay consistent end to end.
func New(data []byte, reg *registry.Registry, sink *diag.Sink, log *zap.Logger, limits Limits) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{
		lex:  lexer.New(data, sink, log),
		src:  data,
		reg:  reg,
		sink: sink,
		log:  log.Named("parser"),
		nodes: nodeGuard{limit: limits.MaxNodes},
		depth: depthGuard{limit: limits.MaxDepth},
	}
}

func (p *Parser) peek() (lexer.Token, bool) {
	if p.peeked != nil {
		return *p.peeked, p.peeked.Kind != lexer.EOF
	}
	t, ok := p.lex.Next()
	p.peeked = &t
	return t, ok
}

func (p *Parser) advance() lexer.Token {
	t, _ := p.peek()
	p.peeked = nil
	return t
}

func (p *Parser) slice(t lexer.Token) []byte { return t.Slice(p.lex.Bytes()) }

func (p *Parser) atEOF() bool {
	t, ok := p.peek()
	return !ok && t.Kind == lexer.EOF
}

// Parse runs the header phase then the body phase, returning the top-level
// node sequence. Root-level style definitions parsed in the header are
// registered as a side effect and also appear in the returned sequence so
// callers that only look at nodes still see them.
func (p *Parser) Parse() []node.Node {
	p.lex = lexer.New(p.src, p.sink, p.log)
	p.peeked = nil

	if len(p.src) == 0 {
		p.sink.Warn(diag.Span{Start: 0, End: 0}, diag.EmptyInput)
		return nil
	}

	var out []node.Node
	out = append(out, p.parseHeader()...)
	out = append(out, p.parseBody()...)
	return out
}

// parseHeader consumes leading whitespace and style-container definitions
// until the first token that isn't one of those two things. It does not
// consume that token.
func (p *Parser) parseHeader() []node.Node {
	var out []node.Node
	for {
		t, ok := p.peek()
		if !ok {
			p.headerOK = true
			return out
		}
		switch t.Kind {
		case lexer.Whitespace:
			p.advance()
		case lexer.LBrace:
			out = append(out, p.parseStyleContainer())
		default:
			p.headerOK = true
			return out
		}
	}
}

// parseBody repeatedly parses top-level nodes until input is exhausted or
// the node-count guard trips.
func (p *Parser) parseBody() []node.Node {
	var out []node.Node
	for {
		if p.atEOF() {
			return out
		}
		if !p.nodes.tick() {
			t, _ := p.peek()
			p.sink.Warn(diag.Span{Start: t.Span.Start, End: len(p.src)}, diag.ExceededNodeCount)
			return out
		}
		p.depth.reset()
		first, _ := p.peek()
		n, ok := p.parseTopLevelNode()
		// Top-level whitespace with no text around it (between two
		// containers, or trailing) is dropped rather than kept as a node.
		if ok && first.Kind == lexer.Whitespace && n.Kind == node.KindText &&
			len(bytes.TrimLeft(n.Slice, " \t\r\n\f")) == 0 {
			continue
		}
		if ok {
			out = append(out, n)
		}
	}
}

// parseTopLevelNode dispatches on the next token's kind. It is also used
// recursively for box-container children, where the depth guard (rather
// than a fresh reset) governs nesting.
func (p *Parser) parseTopLevelNode() (node.Node, bool) {
	t, ok := p.peek()
	if !ok {
		return node.Node{}, false
	}
	switch t.Kind {
	case lexer.LBrace:
		return p.parseStyleContainer(), true
	case lexer.LBracket:
		return p.parseBoxContainer(), true
	case lexer.RawOpen:
		return p.parseRaw(), true
	case lexer.TagContainer:
		p.advance()
		name := string(p.slice(t))
		name = name[1 : len(name)-1] // strip < >
		return node.Tag(name), true
	default:
		return p.parseTextRun(), true
	}
}

// parseStyleContainer parses `{` name [= [+] styles] `}`. A `{` not followed
// by a style name (after strictly in-line whitespace) is not a grammar
// error - it falls back to a greedy text run starting at the `{`, the same
// way any other stray delimiter does.
func (p *Parser) parseStyleContainer() node.Node {
	open := p.advance() // LBrace
	end := open.Span.End
	if t, ok := p.peek(); ok && t.Kind == lexer.Whitespace && !containsNewline(p.slice(t)) {
		p.advance()
		end = t.Span.End
	}

	t, ok := p.peek()
	if !ok || t.Kind != lexer.StyleName {
		return p.accumulateText(open.Span.Start, end)
	}
	p.advance()
	name := string(p.slice(t))

	p.skipSeparator(lexer.Eq)
	p.skipSeparatorOrWhitespace(lexer.Plus)
	entries := p.parseStyles(true)

	closed := false
	if t, ok := p.peek(); ok && t.Kind == lexer.RBrace {
		p.advance()
		closed = true
	}
	if !closed {
		p.sink.Warn(diag.Span{Start: open.Span.Start, End: p.lex.Pos()}, diag.UnclosedStyleContainer)
	}

	if len(entries) == 0 {
		p.sink.Warn(diag.Span{Start: open.Span.Start, End: p.lex.Pos()}, diag.StyleContainerNoStyles)
	}

	atomics, forwarders := p.reg.ExpandRawStyles(entries)
	id := p.reg.LookupName(name)
	res := p.reg.RegisterStyle(name, atomics, forwarders)
	switch {
	case res.Atomic:
		p.sink.Warn(diag.Span{Start: open.Span.Start, End: p.lex.Pos()}, diag.AtomicStyleDefinition)
	case res.Overwrote:
		p.sink.Warn(diag.Span{Start: open.Span.Start, End: p.lex.Pos()}, diag.OverwroteStyleDefinition)
	}
	return node.StyleDefinition(id)
}

// parseStyles parses a `name[:value]` list. After each entry it looks for a
// separator: when allowNewline is true, any whitespace (including newlines)
// or a `+` counts, and the run continues as long as one of those was found;
// when false (inline style lists, e.g. box container styles) only a literal
// `+`, with optional surrounding whitespace, counts - plain whitespace is
// skipped but does not by itself continue the list.
func (p *Parser) parseStyles(allowNewline bool) []registry.RawStyle {
	var out []registry.RawStyle
	for {
		t, ok := p.peek()
		if !ok || t.Kind != lexer.StyleName {
			return out
		}
		p.advance()
		e := registry.RawStyle{Name: string(p.slice(t))}

		if vt, ok := p.peek(); ok && vt.Kind == lexer.StyleValue {
			p.advance()
			raw := string(p.slice(vt))
			raw = raw[1:] // strip leading ':'
			for len(raw) > 0 && (raw[0] == ' ' || raw[0] == '\t') {
				raw = raw[1:]
			}
			e.Value = raw
			e.HasValue = true
		} else if t.Span.End < len(p.src) && p.src[t.Span.End] == ':' {
			// a ':' immediately follows the name but didn't lex as a
			// StyleValue (no content after it) - the value is missing.
			p.sink.Warn(diag.Span{Start: t.Span.End, End: t.Span.End + 1}, diag.ExpectedStyleValue)
		}

		out = append(out, e)

		var found bool
		if allowNewline {
			found = p.skipSeparatorOrWhitespace(lexer.Plus)
		} else {
			found = p.skipSeparator(lexer.Plus)
		}
		if !found {
			return out
		}
	}
}

// skipSeparator skips surrounding whitespace and, if present, a single sep
// token in between. It reports whether sep itself was found - surrounding
// whitespace is consumed either way and does not count as a separator.
func (p *Parser) skipSeparator(sep lexer.Kind) bool {
	p.skipWhitespace()
	found := false
	if t, ok := p.peek(); ok && t.Kind == sep {
		found = true
		p.advance()
	}
	p.skipWhitespace()
	return found
}

// skipSeparatorOrWhitespace is like skipSeparator, but leading whitespace
// (including newlines) counts as a separator by itself, not just sep.
func (p *Parser) skipSeparatorOrWhitespace(sep lexer.Kind) bool {
	found := false
	for {
		t, ok := p.peek()
		if !ok || t.Kind != lexer.Whitespace {
			break
		}
		p.advance()
		found = true
	}
	if t, ok := p.peek(); ok && t.Kind == sep {
		found = true
		p.advance()
	}
	p.skipWhitespace()
	return found
}

func containsNewline(b []byte) bool {
	for _, c := range b {
		if c == '\n' {
			return true
		}
	}
	return false
}

func (p *Parser) skipInlineWhitespace() {
	if t, ok := p.peek(); ok && t.Kind == lexer.Whitespace && !containsNewline(p.slice(t)) {
		p.advance()
	}
}

func (p *Parser) skipWhitespace() {
	if t, ok := p.peek(); ok && t.Kind == lexer.Whitespace {
		p.advance()
	}
}

// parseBoxContainer parses `[` [styles] children `]`. When the depth guard
// rejects this container it skips the body wholesale via bracket counting
// and reports one ExceededNodeDepth warning, without recursing.
func (p *Parser) parseBoxContainer() node.Node {
	open := p.advance() // LBracket

	if !p.depth.enter() {
		end := p.skipBalanced(open.Span.Start + 1)
		p.sink.Warn(diag.Span{Start: open.Span.Start, End: end}, diag.ExceededNodeDepth)
		return node.BoxContainer(nil, nil)
	}

	p.skipInlineWhitespace()
	var entries []registry.RawStyle
	if t, ok := p.peek(); ok && t.Kind == lexer.StyleName {
		entries = p.parseStyles(false)
		p.skipWhitespace()
	}
	atomics, _ := p.reg.ExpandRawStyles(entries)

	var children []node.Node
	for {
		t, ok := p.peek()
		if !ok {
			p.sink.Warn(diag.Span{Start: open.Span.Start, End: len(p.src)}, diag.UnclosedBoxContainer)
			break
		}
		if t.Kind == lexer.RBracket {
			p.advance()
			break
		}
		if !p.nodes.tick() {
			p.sink.Warn(diag.Span{Start: t.Span.Start, End: len(p.src)}, diag.ExceededNodeCount)
			break
		}
		n, ok := p.parseTopLevelNode()
		if ok {
			children = append(children, n)
		}
	}

	if n := len(children); n > 0 && children[n-1].Kind == node.KindText {
		children[n-1].Slice = bytes.TrimRight(children[n-1].Slice, " \t\r\n\f")
	}

	p.depth.leave()
	return node.BoxContainer(atomics, children)
}

// skipBalanced consumes tokens from the byte offset after an already-opened
// '[' until the matching ']' (net bracket depth returns to zero), and
// returns the offset just past it (or EOF). It resyncs the lexer directly
// on the byte buffer since the skipped content's grammar is irrelevant.
func (p *Parser) skipBalanced(from int) int {
	p.peeked = nil
	p.lex.SeekTo(from)
	depth := 1
	for {
		t, ok := p.lex.Next()
		if !ok {
			return len(p.src)
		}
		switch t.Kind {
		case lexer.LBracket:
			depth++
		case lexer.RBracket:
			depth--
			if depth == 0 {
				return t.Span.End
			}
		}
	}
}

// parseRaw parses `|=` ... `=|`, treating `\|=` and `\=|` as escaped
// delimiters that do not end the block. Content is taken verbatim from the
// byte buffer rather than through the token grammar.
func (p *Parser) parseRaw() node.Node {
	open := p.advance() // RawOpen
	start := open.Span.End
	src := p.src

	i := start
	for i < len(src) {
		if src[i] == '\\' && i+2 < len(src)+1 && hasPrefixAt(src, i, "\\=|") {
			i += 3
			continue
		}
		if hasPrefixAt(src, i, "=|") {
			p.lex.SeekTo(i + 2)
			p.peeked = nil
			return node.Text(unescapeRaw(src[start:i]))
		}
		i++
	}

	p.sink.Warn(diag.Span{Start: open.Span.Start, End: len(src)}, diag.UnclosedRawContainer)
	p.lex.SeekTo(len(src))
	p.peeked = nil
	return node.Text(unescapeRaw(src[start:]))
}

func hasPrefixAt(src []byte, i int, prefix string) bool {
	if i+len(prefix) > len(src) {
		return false
	}
	return string(src[i:i+len(prefix)]) == prefix
}

// unescapeRaw turns `\=|` into `=|` inside raw content, leaving everything
// else untouched.
func unescapeRaw(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if hasPrefixAt(b, i, "\\=|") {
			out = append(out, '=', '|')
			i += 2
			continue
		}
		out = append(out, b[i])
	}
	return out
}

// parseTextRun greedily accumulates the current token and every token that
// follows it that is not TagContainer, RawOpen, LBracket, or RBracket into a
// single Text node spanning from the first token's start to the last
// accumulated token's end. Those four kinds are exactly the ones
// parseTopLevelNode dispatches specially; everything else - including
// StyleName, StyleValue, Eq, Plus, RBrace, LBrace, and interior Whitespace -
// is just prose at this position, not a grammar error.
func (p *Parser) parseTextRun() node.Node {
	t := p.advance()
	return p.accumulateText(t.Span.Start, t.Span.End)
}

// accumulateText extends [start, end) over the peek stream until a text-run
// terminator is reached or input is exhausted.
func (p *Parser) accumulateText(start, end int) node.Node {
	for {
		t, ok := p.peek()
		if !ok || isTextRunTerminator(t.Kind) {
			break
		}
		p.advance()
		end = t.Span.End
	}
	return node.Text(p.src[start:end])
}

func isTextRunTerminator(k lexer.Kind) bool {
	switch k {
	case lexer.TagContainer, lexer.RawOpen, lexer.LBracket, lexer.RBracket:
		return true
	default:
		return false
	}
}

// Registry exposes the style registry the parser was constructed with, for
// callers assembling a Doc from the result.
func (p *Parser) Registry() *registry.Registry { return p.reg }
