package lexer

import "testing"

// allTokens drains the lexer into a slice, appending the terminal EOF token.
func allTokens(l *Lexer) []Token {
	var out []Token
	for {
		t, ok := l.Next()
		out = append(out, t)
		if !ok {
			return out
		}
	}
}

// The concatenation of every non-EOF token's slice must reconstruct the
// input exactly - the lexer never drops or duplicates a byte.
func TestLexer_TokenSlicesCoverInput(t *testing.T) {
	inputs := []string{
		"Hello ] = | =| \r\n World {myStyle bold+italic}} < \\|=",
		"[bold+italic Hello World ]",
		"|= raw content =| more",
		"{name = a:1 + b:\"quoted value\"}",
		"",
		"plain text with no delimiters",
	}

	for _, in := range inputs {
		l := New([]byte(in), nil, nil)
		var rebuilt []byte
		for {
			tok, ok := l.Next()
			if tok.Kind != EOF {
				rebuilt = append(rebuilt, tok.Slice(l.Bytes())...)
			}
			if !ok {
				break
			}
		}
		if string(rebuilt) != in {
			t.Errorf("token slices do not cover input: got %q, want %q", rebuilt, in)
		}
	}
}

func TestLexer_StyleNameMatchesPlainProse(t *testing.T) {
	l := New([]byte("HelloWorld123"), nil, nil)
	tok, ok := l.Next()
	if !ok || tok.Kind != StyleName {
		t.Fatalf("expected a single StyleName token, got %v (ok=%v)", tok.Kind, ok)
	}
	if string(tok.Slice(l.Bytes())) != "HelloWorld123" {
		t.Errorf("slice = %q, want entire input", tok.Slice(l.Bytes()))
	}
}

func TestLexer_RawDelimiters(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want Kind
	}{
		{"open", "|=", RawOpen},
		{"close-preempted-by-eq", "=|", Eq}, // '=' is claimed by trySingle before tryRaw runs
		{"open escaped", "\\|=", RawOpenEscaped},
		{"close escaped", "\\=|", RawCloseEscaped},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := New([]byte(c.src), nil, nil)
			tok, _ := l.Next()
			if tok.Kind != c.want {
				t.Errorf("Next() kind = %v, want %v", tok.Kind, c.want)
			}
		})
	}
}

func TestLexer_BareBarIsText(t *testing.T) {
	l := New([]byte("| not raw"), nil, nil)
	tok, ok := l.Next()
	if !ok || tok.Kind != Text {
		t.Fatalf("expected Text, got %v (ok=%v)", tok.Kind, ok)
	}
	if string(tok.Slice(l.Bytes())) != "|" {
		t.Errorf("slice = %q, want %q", tok.Slice(l.Bytes()), "|")
	}
}

func TestLexer_TagContainer(t *testing.T) {
	l := New([]byte("<my-tag_1>"), nil, nil)
	tok, ok := l.Next()
	if !ok || tok.Kind != TagContainer {
		t.Fatalf("expected TagContainer, got %v (ok=%v)", tok.Kind, ok)
	}
	if string(tok.Slice(l.Bytes())) != "<my-tag_1>" {
		t.Errorf("slice = %q, want %q", tok.Slice(l.Bytes()), "<my-tag_1>")
	}
}

func TestLexer_UnterminatedTagIsNotATagContainer(t *testing.T) {
	l := New([]byte("<no closing angle"), nil, nil)
	tok, _ := l.Next()
	if tok.Kind == TagContainer {
		t.Fatalf("expected a non-tag token for an unterminated '<', got TagContainer")
	}
}

func TestLexer_StyleValueQuoted(t *testing.T) {
	l := New([]byte(`:"a b c"`), nil, nil)
	tok, ok := l.Next()
	if !ok || tok.Kind != StyleValue {
		t.Fatalf("expected StyleValue, got %v (ok=%v)", tok.Kind, ok)
	}
	if got := string(tok.Slice(l.Bytes())); got != `:"a b c"` {
		t.Errorf("slice = %q, want %q", got, `:"a b c"`)
	}
}

func TestLexer_EOFAtEmptyInput(t *testing.T) {
	l := New([]byte(""), nil, nil)
	tok, ok := l.Next()
	if ok || tok.Kind != EOF {
		t.Fatalf("expected (EOF, false) for empty input, got (%v, %v)", tok.Kind, ok)
	}
}

func TestLexer_SeekTo(t *testing.T) {
	l := New([]byte("abc]def"), nil, nil)
	l.SeekTo(3)
	tok, ok := l.Next()
	if !ok || tok.Kind != RBracket {
		t.Fatalf("expected RBracket after seeking to offset 3, got %v (ok=%v)", tok.Kind, ok)
	}
	l.SeekTo(-5)
	if l.Pos() != 0 {
		t.Errorf("SeekTo(-5) should clamp to 0, got %d", l.Pos())
	}
	l.SeekTo(1000)
	if l.Pos() != len(l.Bytes()) {
		t.Errorf("SeekTo(1000) should clamp to len(src), got %d", l.Pos())
	}
}
