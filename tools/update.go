package tools

import (
	"encoding/json"
	"fmt"

	"github.com/hammadafzall/drafter-agent/internal/document"
)

type UpdateInput struct {
	Content string `json:"content" jsonschema_description:"Complete new document content; replaces the current text entirely."`
}

var UpdateInputSchema = GenerateSchema[UpdateInput]()

// UpdateDefinition returns the update tool bound to one session's document.
// Empty or whitespace-only content is rejected and the document keeps its
// prior text.
func UpdateDefinition(store *document.Store) ToolDefinition {
	return ToolDefinition{
		Name: "update",
		Description: `Replace the document with the provided content.

Always pass the complete new document text; partial edits are not supported. The result echoes the stored content so the current state stays visible.`,
		InputSchema: UpdateInputSchema,
		Function: func(input json.RawMessage) (Outcome, error) {
			var in UpdateInput
			if err := json.Unmarshal(input, &in); err != nil {
				return Outcome{}, err
			}
			stored, err := store.Replace(in.Content)
			if err != nil {
				return Outcome{}, err
			}
			return Outcome{
				Text: fmt.Sprintf("Document has been updated successfully.\n\nCurrent content:\n%s", stored),
			}, nil
		},
	}
}
