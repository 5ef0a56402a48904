// Package document holds the single piece of text a drafting session edits.
//
// One Store per session; the engine owns it and hands it to the tool layer.
// Content is replaced wholesale on every update; there is no history or
// versioning, and nothing is persisted except through an explicit save.
package document

import (
	"errors"
	"strings"
)

// ErrEmptyContent is returned when an update would leave the document blank.
var ErrEmptyContent = errors.New("cannot update document with empty content")

// Store is the in-memory document for one session. The zero value is an
// empty document ready for use.
type Store struct {
	content string
}

// NewStore returns an empty document store.
func NewStore() *Store {
	return &Store{}
}

// Content returns the current document text.
func (s *Store) Content() string {
	return s.content
}

// Empty reports whether the document currently has no text.
func (s *Store) Empty() bool {
	return strings.TrimSpace(s.content) == ""
}

// Replace swaps the whole document for the trimmed input and returns the
// stored text. Input that trims to nothing fails with ErrEmptyContent and
// leaves the prior content untouched.
func (s *Store) Replace(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ErrEmptyContent
	}
	s.content = trimmed
	return s.content, nil
}
