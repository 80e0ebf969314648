package lexer

import "istudio/internal/token"

// threeCharSymbols and twoCharSymbols list the compound symbols the lexer
// recognizes by greedy maximal-munch, longest first.
var threeCharSymbols = [][3]byte{
	{'>', '>', '='},
}

var twoCharSymbols = [][2]byte{
	{'=', '='}, {'!', '='}, {'<', '='}, {'>', '='},
	{'&', '&'}, {'|', '|'}, {':', ':'}, {'-', '>'}, {'=', '>'},
	{'+', '='}, {'-', '='}, {'*', '='}, {'/', '='}, {'%', '='},
	{'&', '='}, {'|', '='}, {'^', '='}, {'<', '<'}, {'>', '>'},
}

// scanSymbol matches the longest recognized compound symbol starting at the
// cursor, falling back to a single-byte Symbol token.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok {
		for _, s := range threeCharSymbols {
			if b0 == s[0] && b1 == s[1] {
				if b2, ok2 := lx.peekAt(2); ok2 && b2 == s[2] {
					lx.cursor.Eat(s[0])
					lx.cursor.Eat(s[1])
					lx.cursor.Eat(s[2])
					return lx.emitSymbol(start)
				}
			}
		}
		for _, s := range twoCharSymbols {
			if b0 == s[0] && b1 == s[1] {
				lx.cursor.Eat(s[0])
				lx.cursor.Eat(s[1])
				return lx.emitSymbol(start)
			}
		}
	}

	lx.cursor.Bump()
	return lx.emitSymbol(start)
}

func (lx *Lexer) emitSymbol(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Symbol, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) peekAt(offset uint32) (byte, bool) {
	off := lx.cursor.Off + offset
	if off >= lx.cursor.limit {
		return 0, false
	}
	return lx.cursor.File.Content[off], true
}
