package lexer_test

import (
	"strings"
	"testing"

	"jstyle/internal/lexer"
	"jstyle/internal/source"
	"jstyle/internal/token"
)

func makeTestFile(input string) *source.File {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	return fs.Get(fileID)
}

func collectAll(input string) []token.Token {
	return lexer.Tokenize(makeTestFile(input))
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		out = append(out, tok.Kind)
	}
	return out
}

func expectKinds(t *testing.T, input string, expected ...token.Kind) {
	t.Helper()
	got := kinds(collectAll(input))
	if len(got) != len(expected) {
		t.Fatalf("input %q: expected %d tokens, got %d: %v", input, len(expected), len(got), got)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("input %q: token %d = %v, want %v", input, i, got[i], expected[i])
		}
	}
}

func TestBasicStatements(t *testing.T) {
	expectKinds(t, `var name = "Bob";`,
		token.Keyword, token.Whitespace, token.Ident, token.Whitespace,
		token.Punct, token.Whitespace, token.String, token.Punct)

	expectKinds(t, "x += 1.5e3",
		token.Ident, token.Whitespace, token.Punct, token.Whitespace, token.Number)

	expectKinds(t, "a === b",
		token.Ident, token.Whitespace, token.Punct, token.Whitespace, token.Ident)
}

func TestPunctGreediness(t *testing.T) {
	tests := map[string]string{
		"===":  "===",
		"!==":  "!==",
		">>>=": ">>>=",
		"=>":   "=>",
		"?.":   "?.",
		"**":   "**",
	}
	for input, want := range tests {
		tokens := collectAll(input)
		if tokens[0].Kind != token.Punct || tokens[0].Text != want {
			t.Errorf("input %q: got %v %q, want Punct %q", input, tokens[0].Kind, tokens[0].Text, want)
		}
		if tokens[1].Kind != token.EOF {
			t.Errorf("input %q: expected single punct before EOF", input)
		}
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	tokens := collectAll("function user() { this.name = undefined; }")
	if tokens[0].Kind != token.Keyword || tokens[0].Text != "function" {
		t.Errorf("expected function keyword, got %v %q", tokens[0].Kind, tokens[0].Text)
	}
	var sawThis, sawUndefined bool
	for _, tok := range tokens {
		if tok.Kind == token.Keyword && tok.Text == "this" {
			sawThis = true
		}
		if tok.Kind == token.Ident && tok.Text == "undefined" {
			sawUndefined = true
		}
	}
	if !sawThis {
		t.Error("this should lex as a keyword")
	}
	if !sawUndefined {
		t.Error("undefined should lex as an identifier")
	}
}

func TestDollarIdent(t *testing.T) {
	tokens := collectAll("$el._private")
	if tokens[0].Kind != token.Ident || tokens[0].Text != "$el" {
		t.Errorf("got %v %q, want Ident $el", tokens[0].Kind, tokens[0].Text)
	}
}

func TestComments(t *testing.T) {
	tokens := collectAll("// line\n/* block */")
	if tokens[0].Kind != token.Comment || tokens[0].Style != token.StyleLine {
		t.Errorf("token 0: got %v style=%v", tokens[0].Kind, tokens[0].Style)
	}
	if tokens[0].Text != "// line" {
		t.Errorf("line comment text = %q", tokens[0].Text)
	}
	if tokens[1].Kind != token.Newline {
		t.Errorf("token 1: got %v, want Newline", tokens[1].Kind)
	}
	if tokens[2].Kind != token.Comment || tokens[2].Style != token.StyleBlock {
		t.Errorf("token 2: got %v style=%v", tokens[2].Kind, tokens[2].Style)
	}

	tokens = collectAll("/* never closed")
	if !tokens[0].Unterminated {
		t.Error("unterminated block comment should be flagged")
	}
}

func TestStrings(t *testing.T) {
	tokens := collectAll(`'single' "double" ` + "`multi\nline`")
	var strs []token.Token
	for _, tok := range tokens {
		if tok.Kind == token.String {
			strs = append(strs, tok)
		}
	}
	if len(strs) != 3 {
		t.Fatalf("expected 3 strings, got %d", len(strs))
	}
	if strs[0].Quote() != '\'' || strs[1].Quote() != '"' || strs[2].Quote() != '`' {
		t.Errorf("quotes = %q %q %q", strs[0].Quote(), strs[1].Quote(), strs[2].Quote())
	}
	if strs[2].Unterminated {
		t.Error("template literal may span lines")
	}

	tokens = collectAll("'broken\nnext")
	if tokens[0].Kind != token.String || !tokens[0].Unterminated {
		t.Errorf("string cut by newline: got %v unterminated=%v", tokens[0].Kind, tokens[0].Unterminated)
	}
	if tokens[1].Kind != token.Newline {
		t.Errorf("newline after broken string should survive, got %v", tokens[1].Kind)
	}

	tokens = collectAll("'esc\\'aped'")
	if tokens[0].Text != `'esc\'aped'` {
		t.Errorf("escaped quote: text = %q", tokens[0].Text)
	}
}

func TestUnknownRun(t *testing.T) {
	tokens := collectAll("a ## b")
	if tokens[2].Kind != token.Unknown || tokens[2].Text != "##" {
		t.Errorf("got %v %q, want Unknown %q", tokens[2].Kind, tokens[2].Text, "##")
	}
}

// Round-trip: concatenated token text reproduces the input exactly.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"var name = \"Bob\";\n",
		"function user(options) {\n  this.name = options.name;\n}\n",
		"var heroes = ['Batman', 'Superman',];",
		"a\t\t b##€  /* x */ 'unterminated\nnext line\n",
		"x >>>= 0b101; // done",
		"`template ${x} literal`",
	}
	for _, input := range inputs {
		var b strings.Builder
		for _, tok := range collectAll(input) {
			b.WriteString(tok.Text)
		}
		if b.String() != input {
			t.Errorf("round-trip failed:\n in: %q\nout: %q", input, b.String())
		}
	}
}

// Spans partition the input: adjacent, no gaps, no overlaps.
func TestSpanPartition(t *testing.T) {
	input := "var x = 1; // c\nfoo(x)\n"
	tokens := collectAll(input)
	var off uint32
	for _, tok := range tokens {
		if tok.Span.Start != off {
			t.Fatalf("gap or overlap at offset %d: token %v spans %v", off, tok.Kind, tok.Span)
		}
		off = tok.Span.End
	}
	if off != uint32(len(input)) {
		t.Errorf("tokens cover %d bytes, input has %d", off, len(input))
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := lexer.New(makeTestFile("a b"))
	p := lx.Peek()
	n := lx.Next()
	if p != n {
		t.Errorf("Peek %v != Next %v", p, n)
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx := lexer.New(makeTestFile("x"))
	lx.Next()
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
}
