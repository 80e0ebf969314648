package token

// Stream is an ordered, indexable, immutable sequence of tokens produced by
// the lexer. The final token always has Kind EndOfFile.
type Stream struct {
	tokens []Token
}

// NewStream wraps an already-lexed token slice. The caller must not mutate
// tokens afterward.
func NewStream(tokens []Token) Stream {
	return Stream{tokens: tokens}
}

// Len returns the number of tokens, including the trailing EndOfFile token.
func (s Stream) Len() int { return len(s.tokens) }

// At returns the token at i. i must be in [0, Len()).
func (s Stream) At(i int) Token { return s.tokens[i] }

// Tokens returns the underlying token slice. Callers must treat it as
// read-only.
func (s Stream) Tokens() []Token { return s.tokens }
