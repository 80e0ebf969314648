package cfamily

import (
	"istudio/internal/backend"
	"istudio/internal/ir"
)

// Backend is the C-family code emitter: it turns a lowered IR module into a
// header/source file pair of deterministic, whitespace-stable text.
type Backend struct {
	options Options
}

func New(options Options) *Backend {
	return &Backend{options: options}
}

func (*Backend) Name() string { return "cpp" }

func (b *Backend) Emit(module *ir.Module, _ backend.TargetProfile) ([]backend.GeneratedFile, error) {
	return newEmitter(module, b.options).emit(), nil
}
