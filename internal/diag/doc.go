// Package diag defines the diagnostic model of the pipeline: the semantic
// analyzer reports through the Diagnostic/Reporter/Bag triple, and the
// driver and LSP server add parse errors (which the parser returns as a
// *parser.Error) to the same Bag, so findings can be collected, sorted, and
// rendered uniformly. The lexer reports no diagnostics.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a
// human Message, a Primary span, and optional Notes. Diagnostics are
// collected, never thrown — a producer that hits a recoverable problem
// reports it and keeps going with Unknown-typed or best-effort results.
//
// Producers depend on the narrow Reporter interface rather than on Bag
// directly, so tests can supply a recording stub. BagReporter is the
// concrete adapter the driver wires up in practice; Bag supports capacity
// limiting, stable sorting, and deduplication so repeated runs produce
// byte-identical diagnostic output for golden-file tests (see golden.go).
package diag
