package cfamily

import "strings"

// sanitizeForFilename lower-cases name and replaces every run of
// non-alphanumeric characters with a single underscore, collapsing
// leading/trailing underscores. An empty result defaults to "module".
func sanitizeForFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			b.WriteByte(ch)
		case ch >= 'A' && ch <= 'Z':
			b.WriteByte(ch - 'A' + 'a')
		default:
			if s := b.String(); s != "" && s[len(s)-1] != '_' {
				b.WriteByte('_')
			}
		}
	}
	result := strings.Trim(b.String(), "_")
	if result == "" {
		return "module"
	}
	return result
}
