package diag

import "fmt"

// Code is a stable, numeric diagnostic identifier. Categories occupy
// thousand-wide ranges (lexical 1000s, semantic 2000s) so future codes can
// be added within a category without renumbering existing ones.
type Code uint16

const (
	// GenericNote is the code for diagnostics that carry no category of
	// their own: the driver and LSP server report parse and backend errors
	// under it.
	GenericNote Code = 0

	// LexUnknownToken is reserved; the current lexer never emits it (a byte
	// it cannot classify becomes a single-byte Symbol token rather than
	// raising a diagnostic).
	LexUnknownToken Code = 1000

	// SemDuplicateSymbol: name already declared in the current scope or
	// function registry.
	SemDuplicateSymbol Code = 2000
	// SemUnknownIdentifier: reference to a name not present in any live
	// scope.
	SemUnknownIdentifier Code = 2001
	// SemTypeMismatch: unification failure (binary, assignment, return,
	// call argument).
	SemTypeMismatch Code = 2002
	// SemArgumentCountMismatch: call arity disagrees with the callee's
	// signature.
	SemArgumentCountMismatch Code = 2003
)

func (c Code) String() string {
	switch c {
	case GenericNote:
		return "GenericNote"
	case LexUnknownToken:
		return "LexUnknownToken"
	case SemDuplicateSymbol:
		return "SemDuplicateSymbol"
	case SemUnknownIdentifier:
		return "SemUnknownIdentifier"
	case SemTypeMismatch:
		return "SemTypeMismatch"
	case SemArgumentCountMismatch:
		return "SemArgumentCountMismatch"
	default:
		return fmt.Sprintf("Code(%d)", uint16(c))
	}
}
