package lexer_test

import (
	"testing"

	"istudio/internal/lexer"
	"istudio/internal/source"
	"istudio/internal/token"
)

func lexString(t *testing.T, src string, cfg lexer.Config) token.Stream {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.Add("test.ist", []byte(src))
	return lexer.Lex(fs.Get(id), cfg)
}

func TestLastTokenIsEndOfFile(t *testing.T) {
	src := "let x = 1"
	s := lexString(t, src, lexer.DefaultConfig())
	last := s.At(s.Len() - 1)
	if last.Kind != token.EndOfFile {
		t.Fatalf("last token kind = %v, want EndOfFile", last.Kind)
	}
	want := uint32(len(src))
	if last.Span.Start != want || last.Span.End != want {
		t.Fatalf("EndOfFile span = %v, want (%d,%d)", last.Span, want, want)
	}
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	cases := map[string]token.Kind{
		"module": token.Keyword,
		"fn":     token.Keyword,
		"pub":    token.Keyword,
		"let":    token.Keyword,
		"mut":    token.Keyword,
		"struct": token.Keyword,
		"enum":   token.Keyword,
		"ct":     token.Keyword,
		"return": token.Keyword,
		"true":   token.Keyword,
		"false":  token.Keyword,
		"add":    token.Identifier,
		"Fn":     token.Identifier,
		"x1":     token.Identifier,
	}
	for text, want := range cases {
		s := lexString(t, text, lexer.DefaultConfig())
		got := s.At(0)
		if got.Kind != want {
			t.Fatalf("lex(%q) kind = %v, want %v", text, got.Kind, want)
		}
		if got.Text != text {
			t.Fatalf("lex(%q) text = %q, want %q", text, got.Text, text)
		}
	}
}

func TestNumberScanning(t *testing.T) {
	cases := []struct{ text, want string }{
		{"0", "0"},
		{"123", "123"},
		{"1.5", "1.5"},
		{"10.", "10"}, // a '.' with no digit after it is not part of the number
		{"3.14159", "3.14159"},
	}
	for _, c := range cases {
		text := c.text
		s := lexString(t, text, lexer.DefaultConfig())
		got := s.At(0)
		if got.Kind != token.Number {
			t.Fatalf("lex(%q) kind = %v, want Number", text, got.Kind)
		}
		if got.Text != c.want {
			t.Fatalf("lex(%q) text = %q, want %q", text, got.Text, c.want)
		}
	}
}

func TestNumberDotFollowedByIdentEndsNumber(t *testing.T) {
	s := lexString(t, "1.foo", lexer.DefaultConfig())
	if s.At(0).Text != "1" {
		t.Fatalf("first token = %q, want \"1\"", s.At(0).Text)
	}
}

func TestStringLiteralWithEscape(t *testing.T) {
	s := lexString(t, `"a\"b"`, lexer.DefaultConfig())
	got := s.At(0)
	if got.Kind != token.StringLiteral {
		t.Fatalf("kind = %v, want StringLiteral", got.Kind)
	}
	if got.Text != `"a\"b"` {
		t.Fatalf("text = %q", got.Text)
	}
}

func TestUnterminatedStringAcceptedToEOF(t *testing.T) {
	s := lexString(t, `"abc`, lexer.DefaultConfig())
	got := s.At(0)
	if got.Kind != token.StringLiteral {
		t.Fatalf("kind = %v, want StringLiteral", got.Kind)
	}
	if got.Text != `"abc` {
		t.Fatalf("text = %q, want unterminated string accepted as-is", got.Text)
	}
	if s.At(1).Kind != token.EndOfFile {
		t.Fatalf("expected EndOfFile after unterminated string")
	}
}

func TestSymbolMaximalMunch(t *testing.T) {
	cases := map[string][]string{
		"==":  {"=="},
		"!=":  {"!="},
		"<=":  {"<="},
		">=":  {">="},
		"&&":  {"&&"},
		"||":  {"||"},
		"::":  {"::"},
		"->":  {"->"},
		"=>":  {"=>"},
		"+=":  {"+="},
		">>":  {">>"},
		">>=": {">>="},
		"+":   {"+"},
		"(":   {"("},
		")":   {")"},
	}
	for text, want := range cases {
		s := lexString(t, text, lexer.DefaultConfig())
		var got []string
		for i := 0; i < s.Len()-1; i++ {
			got = append(got, s.At(i).Text)
		}
		if len(got) != len(want) {
			t.Fatalf("lex(%q) tokens = %v, want %v", text, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("lex(%q) tokens = %v, want %v", text, got, want)
			}
			if s.At(i).Kind != token.Symbol {
				t.Fatalf("lex(%q)[%d] kind = %v, want Symbol", text, i, s.At(i).Kind)
			}
		}
	}
}

func TestGreaterThanGreaterThanEqualGreedy(t *testing.T) {
	s := lexString(t, ">>=x", lexer.DefaultConfig())
	if s.At(0).Text != ">>=" {
		t.Fatalf("first token = %q, want \">>=\"", s.At(0).Text)
	}
	if s.At(1).Kind != token.Identifier || s.At(1).Text != "x" {
		t.Fatalf("second token = %+v, want identifier x", s.At(1))
	}
}

func TestLeadingTriviaRoundTrip(t *testing.T) {
	src := "  // hi\nfn"
	cfg := lexer.Config{CaptureWhitespace: true, CaptureComments: true}
	s := lexString(t, src, cfg)
	tk := s.At(0)
	if tk.Kind != token.Keyword || tk.Text != "fn" {
		t.Fatalf("first significant token = %+v, want keyword fn", tk)
	}
	var rebuilt string
	for _, tr := range tk.Leading {
		rebuilt += tr.Text
	}
	rebuilt += tk.Text
	if rebuilt != src {
		t.Fatalf("rebuilt = %q, want %q", rebuilt, src)
	}
}

func TestCommentCapturedByDefault(t *testing.T) {
	s := lexString(t, "// comment\nfn", lexer.DefaultConfig())
	tk := s.At(0)
	if tk.Kind != token.Keyword || tk.Text != "fn" {
		t.Fatalf("token = %+v, want keyword fn", tk)
	}
	if len(tk.Leading) != 1 || tk.Leading[0].Kind != token.Comment {
		t.Fatalf("leading = %+v, want one Comment trivium (comments captured by default)", tk.Leading)
	}
}

func TestWhitespaceNotCapturedByDefault(t *testing.T) {
	s := lexString(t, "  fn", lexer.DefaultConfig())
	tk := s.At(0)
	if len(tk.Leading) != 0 {
		t.Fatalf("leading = %+v, want none (whitespace not captured by default)", tk.Leading)
	}
}
