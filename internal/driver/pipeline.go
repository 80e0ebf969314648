// Package driver wires the core stages (lex, parse, sema, lower, optimize,
// emit) into a single-file pipeline, a content-hash keyed disk cache that
// skips re-lowering unchanged files, and a parallel per-file compiler for
// directory-wide builds.
package driver

import (
	"istudio/internal/ast"
	"istudio/internal/backend"
	"istudio/internal/diag"
	"istudio/internal/ir"
	"istudio/internal/lexer"
	"istudio/internal/opt"
	"istudio/internal/parser"
	"istudio/internal/sema"
	"istudio/internal/source"
)

// Result is the outcome of compiling one file through every stage the
// backend is wired to run.
type Result struct {
	Path      string
	FileID    source.FileID
	Arena     *ast.Context
	Root      ast.NodeId
	Bag       *diag.Bag
	Module    *ir.Module
	Generated []backend.GeneratedFile
	// Cached reports whether Module came from the disk cache instead of a
	// fresh lex/parse/sema/lower run.
	Cached bool
}

// Options configures one pipeline run.
type Options struct {
	MaxDiagnostics int
	Backend        backend.Backend
	Profile        backend.TargetProfile
	Cache          *DiskCache
}

// CompileFile runs the full pipeline over one already-loaded file: lex,
// parse, sema, lower, constant-fold, and (if a Backend is set) emit. A
// structural parse error short-circuits the remaining stages and is
// recorded in the returned Bag as a single diagnostic.
func CompileFile(fs *source.FileSet, fileID source.FileID, path string, opts Options) *Result {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxOrDefault(opts.MaxDiagnostics))
	result := &Result{Path: path, FileID: fileID, Bag: bag}

	if opts.Cache != nil {
		contentHash := HashContent(file.Content)
		var cached CachedModule
		if found, err := opts.Cache.Get(contentHash, &cached); err == nil && found {
			result.Module = cached.toModule()
			result.Cached = true
			if opts.Backend != nil {
				generated, err := opts.Backend.Emit(result.Module, opts.Profile)
				if err == nil {
					result.Generated = generated
				}
			}
			return result
		}
	}

	stream := lexer.Lex(file, lexer.DefaultConfig())
	parsed, err := parser.ParseModule(stream)
	if err != nil {
		if pe, ok := err.(*parser.Error); ok {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.GenericNote,
				Message:  pe.Message,
				Primary:  pe.Span,
			})
		}
		return result
	}
	result.Arena = parsed.Arena
	result.Root = parsed.Root

	analyzer := sema.New(parsed.Arena, diag.BagReporter{Bag: bag})
	analyzer.Analyze(parsed.Root)

	module := ir.Lower(analyzer.Context(), moduleNameFor(path))
	passes := opt.NewPassManager()
	passes.AddPass(opt.ConstantFoldingPass{})
	passes.Run(module)
	result.Module = module

	if opts.Cache != nil {
		contentHash := HashContent(file.Content)
		_ = opts.Cache.Put(contentHash, fromModule(module))
	}

	if opts.Backend != nil {
		generated, emitErr := opts.Backend.Emit(module, opts.Profile)
		if emitErr != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.GenericNote,
				Message:  "emit: " + emitErr.Error(),
			})
			return result
		}
		result.Generated = generated
	}

	return result
}

func maxOrDefault(n int) int {
	if n <= 0 {
		return 1000
	}
	return n
}
