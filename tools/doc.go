// Package tools defines the drafting tool contracts and implementations.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Document tools: update (replace content), save (persist to a file).
//   - Outcome.Saved is the flag the engine reads to end the session; the
//     result text is for the model and the user, never for control flow.
package tools
