package cfamily

import (
	"sort"
	"strings"

	"istudio/internal/backend"
	"istudio/internal/ir"
)

type emitter struct {
	module         *ir.Module
	options        Options
	includes       map[string]bool
	sanitizedName  string
	headerFilename string
	sourceFilename string
}

func newEmitter(module *ir.Module, options Options) *emitter {
	name := sanitizeForFilename(module.Name)
	return &emitter{
		module:         module,
		options:        options,
		includes:       make(map[string]bool),
		sanitizedName:  name,
		headerFilename: name + options.HeaderSuffix,
		sourceFilename: name + options.SourceSuffix,
	}
}

func (e *emitter) emit() []backend.GeneratedFile {
	e.collectIncludes()

	var files []backend.GeneratedFile
	if e.options.EmitHeader {
		files = append(files, backend.GeneratedFile{Path: e.headerFilename, Contents: e.buildHeader()})
	}
	if e.options.EmitSource {
		files = append(files, backend.GeneratedFile{Path: e.sourceFilename, Contents: e.buildSource()})
	}
	return files
}

func (e *emitter) collectIncludes() {
	for _, s := range e.module.Structs {
		for _, field := range s.Fields {
			collectIncludesForType(field.Type, e.includes)
		}
	}
	for _, fn := range e.module.Functions {
		collectIncludesForType(fn.ReturnType, e.includes)
		for _, param := range fn.Parameters {
			collectIncludesForType(param.Type, e.includes)
		}
	}
}

func (e *emitter) sortedIncludes() []string {
	out := make([]string, 0, len(e.includes))
	for inc := range e.includes {
		out = append(out, inc)
	}
	sort.Strings(out)
	return out
}

func (e *emitter) openNamespace(b *strings.Builder) {
	if e.options.NamespaceName == "" {
		return
	}
	b.WriteString("namespace ")
	b.WriteString(e.options.NamespaceName)
	b.WriteString(" {\n\n")
}

func (e *emitter) closeNamespace(b *strings.Builder) {
	if e.options.NamespaceName == "" {
		return
	}
	b.WriteString("}  // namespace ")
	b.WriteString(e.options.NamespaceName)
	b.WriteString("\n")
}

func (e *emitter) emitStruct(s ir.Struct, b *strings.Builder) {
	if len(s.TemplateParams) > 0 {
		b.WriteString(formatTemplateParameters(s.TemplateParams))
	}
	if !s.IsPublic {
		b.WriteString("// internal\n")
	}
	b.WriteString("struct ")
	b.WriteString(s.Name)
	b.WriteString(" {\n")
	for _, field := range s.Fields {
		b.WriteString("  ")
		b.WriteString(typeToString(field.Type))
		b.WriteString(" ")
		b.WriteString(field.Name)
		b.WriteString(";\n")
	}
	b.WriteString("};\n\n")
}

func (e *emitter) emitFunctionDeclaration(fn ir.Function, b *strings.Builder) {
	if len(fn.TemplateParams) > 0 {
		b.WriteString(formatTemplateParameters(fn.TemplateParams))
	}
	b.WriteString(typeToString(fn.ReturnType))
	b.WriteString(" ")
	b.WriteString(fn.Name)
	b.WriteString("(")
	b.WriteString(formatParameterList(fn.Parameters))
	b.WriteString(");\n\n")
}

func (e *emitter) emitFunctionDefinition(fn ir.Function, b *strings.Builder) {
	if len(fn.TemplateParams) > 0 {
		b.WriteString(formatTemplateParameters(fn.TemplateParams))
	}
	b.WriteString(typeToString(fn.ReturnType))
	b.WriteString(" ")
	b.WriteString(fn.Name)
	b.WriteString("(")
	b.WriteString(formatParameterList(fn.Parameters))
	b.WriteString(") {\n")
	for _, line := range translateInstructions(fn) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func (e *emitter) buildHeader() string {
	var b strings.Builder

	b.WriteString("#pragma once\n\n")
	if includes := e.sortedIncludes(); len(includes) > 0 {
		for _, inc := range includes {
			b.WriteString("#include ")
			b.WriteString(inc)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	e.openNamespace(&b)
	for _, s := range e.module.Structs {
		e.emitStruct(s, &b)
	}
	for _, fn := range e.module.Functions {
		e.emitFunctionDeclaration(fn, &b)
	}
	e.closeNamespace(&b)
	return b.String()
}

func (e *emitter) buildSource() string {
	var b strings.Builder

	if e.options.EmitHeader {
		b.WriteString("#include \"")
		b.WriteString(e.headerFilename)
		b.WriteString("\"\n\n")
	} else {
		for _, inc := range e.sortedIncludes() {
			b.WriteString("#include ")
			b.WriteString(inc)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	e.openNamespace(&b)
	for _, fn := range e.module.Functions {
		e.emitFunctionDefinition(fn, &b)
	}
	e.closeNamespace(&b)
	return b.String()
}
