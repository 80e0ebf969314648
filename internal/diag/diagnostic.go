package diag

import "istudio/internal/source"

// Note is an auxiliary detail attached to a Diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single coded, spanned compiler message. Diagnostics are
// collected, never thrown; their presence never aborts the pipeline.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
