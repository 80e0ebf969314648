package lexer

// Config controls which trivia the lexer records. Comments are captured by
// default; whitespace is not.
type Config struct {
	CaptureWhitespace bool
	CaptureComments   bool
}

// DefaultConfig returns {CaptureWhitespace: false, CaptureComments: true}.
func DefaultConfig() Config {
	return Config{CaptureWhitespace: false, CaptureComments: true}
}
