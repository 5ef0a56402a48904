// Package memory persists a plain-text transcript of a finished session.
//
// Persistence model:
//   - Only visible text is stored (role + text). Tool calls and results are
//     transient; the saved document itself is the durable artifact.
//   - The transcript is a write-once session record, not state to resume
//     from: a new session always starts with an empty document.
package memory

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/hammadafzall/drafter-agent/internal/conversation"
)

// Entry is one transcript line.
type Entry struct {
	Role string `json:"role"`
	Text string `json:"text,omitempty"`
}

// Transcript extracts the user/assistant text exchanges from a history,
// skipping tool results and messages with no visible text.
func Transcript(history []conversation.Message) []Entry {
	var out []Entry
	for _, m := range history {
		if m.Role == conversation.RoleToolResult || m.Text == "" {
			continue
		}
		out = append(out, Entry{Role: string(m.Role), Text: m.Text})
	}
	return out
}

// SaveTranscript writes entries as indented JSON to path.
func SaveTranscript(path string, entries []Entry) error {
	b, err := json.MarshalIndent(entries, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// LoadTranscript reads a transcript back; a missing file is not an error and
// yields a nil slice.
func LoadTranscript(path string) ([]Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
