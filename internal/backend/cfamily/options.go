// Package cfamily emits C-family (header + source) files from a lowered IR
// module.
package cfamily

// Options configures the emitted namespace, file suffixes, and which of the
// header/source pair to produce.
type Options struct {
	NamespaceName string
	HeaderSuffix  string
	SourceSuffix  string
	EmitHeader    bool
	EmitSource    bool
}

// DefaultOptions matches the original backend's defaults.
func DefaultOptions() Options {
	return Options{
		NamespaceName: "istudio::generated",
		HeaderSuffix:  ".hpp",
		SourceSuffix:  ".cpp",
		EmitHeader:    true,
		EmitSource:    true,
	}
}
