package lsp

import (
	"encoding/json"
	"io"

	"istudio/internal/diag"
	"istudio/internal/lexer"
	"istudio/internal/parser"
	"istudio/internal/sema"
	"istudio/internal/source"
)

// handleDidOpen runs the core pipeline (lex, parse, sema) over the opened
// document's text and publishes the resulting diagnostics. A structural
// parse error is reported as a single diagnostic at its own span, since the
// parser cannot proceed past it.
func (s *Server) handleDidOpen(out io.Writer, msg *rpcMessage) {
	var params didOpenParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return
	}

	diagnostics := analyzeDocument(params.TextDocument.Text)
	s.sendNotification(out, "textDocument/publishDiagnostics", publishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: diagnostics,
	})
}

func analyzeDocument(text string) []lspDiagnostic {
	fs := source.NewFileSet()
	id := fs.Add("overlay.ist", []byte(text))
	file := fs.Get(id)

	stream := lexer.Lex(file, lexer.DefaultConfig())
	res, err := parser.ParseModule(stream)
	if err != nil {
		if pe, ok := err.(*parser.Error); ok {
			return []lspDiagnostic{toLSPDiagnostic(fs, diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.GenericNote,
				Message:  pe.Message,
				Primary:  pe.Span,
			})}
		}
		return nil
	}

	bag := diag.NewBag(1000)
	analyzer := sema.New(res.Arena, diag.BagReporter{Bag: bag})
	analyzer.Analyze(res.Root)

	diagnostics := make([]lspDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		diagnostics = append(diagnostics, toLSPDiagnostic(fs, d))
	}
	return diagnostics
}

// toLSPDiagnostic converts a diag.Diagnostic's 1-based LineCol positions
// into the LSP range's 0-based line/character pairs.
func toLSPDiagnostic(fs *source.FileSet, d diag.Diagnostic) lspDiagnostic {
	start, end := fs.Resolve(d.Primary)
	return lspDiagnostic{
		Range: lspRange{
			Start: lspPosition{Line: start.Line - 1, Character: start.Col - 1},
			End:   lspPosition{Line: end.Line - 1, Character: end.Col - 1},
		},
		Severity: lspSeverity(d.Severity),
		Code:     int(d.Code),
		Message:  d.Message,
	}
}

// lspSeverity maps the diagnostic bag's severity onto the LSP
// DiagnosticSeverity enum (Error=1, Warning=2, Information=3, Hint=4).
func lspSeverity(sev diag.Severity) int {
	switch sev {
	case diag.SevError:
		return 1
	case diag.SevWarning:
		return 2
	default:
		return 3
	}
}
