package token

import "testing"

func TestLookupKeywordPositive(t *testing.T) {
	for _, lexeme := range []string{
		"module", "fn", "pub", "let", "mut", "struct", "enum", "ct", "return",
		"true", "false",
	} {
		if ok := LookupKeyword(lexeme); !ok {
			t.Fatalf("LookupKeyword(%q) = false, want true", lexeme)
		}
	}
}

func TestLookupKeywordNegative(t *testing.T) {
	for _, s := range []string{
		"Fn", "LET", "Module", // case-sensitive
		"int", "int8", "float64", // not keywords, resolved by sema
		"identifier", "add",
	} {
		if ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) = true, want false", s)
		}
	}
}
