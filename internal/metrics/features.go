// Package metrics derives basic local features from document text. Counts
// are deterministic and computed without touching the network.
package metrics

import (
	"strings"
	"unicode/utf8"
)

// Features summarizes a piece of document text.
type Features struct {
	Bytes int
	Runes int
	Words int
	Lines int
}

// CountFeatures returns byte, rune, word, and line counts for s. Words split
// on Unicode whitespace. Lines are 0 for the empty string, otherwise one plus
// the number of newlines.
func CountFeatures(s string) Features {
	f := Features{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
		Words: len(strings.Fields(s)),
	}
	if s != "" {
		f.Lines = 1 + strings.Count(s, "\n")
	}
	return f
}
