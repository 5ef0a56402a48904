package tools

import (
	"encoding/json"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"
)

// ErrUnknownTool is returned when the model requests a tool that is not
// registered. It is surfaced as an error result, never as a session abort.
var ErrUnknownTool = errors.New("unknown tool")

// Outcome is what a tool hands back on success. Saved is set only by a
// completed save and is the engine's explicit termination signal.
type Outcome struct {
	Text  string
	Saved bool
}

// ToolDefinition binds a tool name and schema to its handler.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema anthropic.ToolInputSchemaParam
	Function    func(input json.RawMessage) (Outcome, error)
}

// GenerateSchema derives the JSON input schema for T from its struct tags.
func GenerateSchema[T any]() anthropic.ToolInputSchemaParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return anthropic.ToolInputSchemaParam{Properties: schema.Properties}
}
