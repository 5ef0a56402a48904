package safety

import "strings"

// DocumentExt is the extension forced onto saved document filenames.
const DocumentExt = ".txt"

// SanitizeFilename normalizes a model-supplied filename into a flat, safe
// name: the document extension is appended when absent, and every character
// outside alphanumerics, dot, underscore, hyphen, and space is dropped.
// Stripping path separators this way also removes traversal sequences.
// The function is idempotent.
func SanitizeFilename(name string) string {
	if !strings.HasSuffix(name, DocumentExt) {
		name += DocumentExt
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-' || r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}
