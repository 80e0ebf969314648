package lexer

import "istudio/internal/token"

// collectLeadingTrivia gathers the run of whitespace and line comments that
// precede the next significant token. Runs of spaces, tabs, and newlines are
// coalesced into a single Whitespace trivium; "// ..." up to the next
// newline (or EOF) becomes a single Comment trivium.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if isSpace(b) {
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			if lx.cfg.CaptureWhitespace {
				lx.appendHold(token.Whitespace, start)
			}
			continue
		}

		if b == '/' {
			if lx.scanLineCommentIntoHold(start) {
				continue
			}
		}

		break
	}
}

func (lx *Lexer) scanLineCommentIntoHold(start Mark) bool {
	if b0, b1, ok := lx.cursor.Peek2(); !ok || b0 != '/' || b1 != '/' {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	if lx.cfg.CaptureComments {
		lx.appendHold(token.Comment, start)
	}
	return true
}

func (lx *Lexer) appendHold(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
