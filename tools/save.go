package tools

import (
	"encoding/json"
	"fmt"

	"github.com/hammadafzall/drafter-agent/internal/document"
	"github.com/hammadafzall/drafter-agent/internal/fsops"
	"github.com/hammadafzall/drafter-agent/internal/safety"
)

type SaveInput struct {
	Filename string `json:"filename" jsonschema_description:"Name for the text file, with or without the .txt extension."`
}

var SaveInputSchema = GenerateSchema[SaveInput]()

// SaveDefinition returns the save tool bound to one session's document.
// The filename is sanitized to a flat name under the write sandbox. A failed
// write leaves the document intact so the save can be retried; an empty
// document still saves, with a warning in the result text.
func SaveDefinition(store *document.Store) ToolDefinition {
	return ToolDefinition{
		Name: "save",
		Description: `Save the current document to a text file and finish the session.

Provide a filename; the .txt extension is added when missing and unsafe characters are stripped.`,
		InputSchema: SaveInputSchema,
		Function: func(input json.RawMessage) (Outcome, error) {
			var in SaveInput
			if err := json.Unmarshal(input, &in); err != nil {
				return Outcome{}, err
			}

			name := safety.SanitizeFilename(in.Filename)
			empty := store.Empty()

			if err := fsops.WriteDocument(name, store.Content()); err != nil {
				return Outcome{}, fmt.Errorf("error saving document: %w", err)
			}

			text := fmt.Sprintf("Document has been saved successfully to '%s'.", name)
			if empty {
				text = "Warning: document is empty; saving empty document.\n" + text
			}
			return Outcome{Text: text, Saved: true}, nil
		},
	}
}
