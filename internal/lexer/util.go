package lexer

// isIdentStart reports whether b can start an identifier. Only ASCII
// letters and underscore are recognized.
func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// isIdentContinue reports whether b can continue an identifier begun by
// isIdentStart.
func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
