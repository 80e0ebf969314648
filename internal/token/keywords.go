package token

// keywords is the fixed, case-sensitive keyword set from spec.md §4.1 rule 3
// (module, fn, pub, let, mut, struct, enum, ct, return) plus true/false,
// added per the resolution of spec.md §9 Open Question 1: true/false reach
// the semantic analyzer's literal classifier as Keyword tokens rather than
// Identifier tokens, matching its is_bool_literal check.
var keywords = map[string]struct{}{
	"module": {},
	"fn":     {},
	"pub":    {},
	"let":    {},
	"mut":    {},
	"struct": {},
	"enum":   {},
	"ct":     {},
	"return": {},
	"true":   {},
	"false":  {},
}

// LookupKeyword reports whether ident is one of the fixed keyword lexemes.
// Keywords are case-sensitive; only the lowercase spelling is recognized.
func LookupKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
