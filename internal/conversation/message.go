// Package conversation defines the message model for a drafting session.
//
// A History is an append-only, insertion-ordered slice of Messages owned by
// exactly one engine. Tool calls appear only on assistant messages; each tool
// result names the call it answers.
package conversation

import "encoding/json"

// Role tags a message in the history.
type Role string

const (
	RoleUser       Role = "user"
	RoleAssistant  Role = "assistant"
	RoleToolResult Role = "tool_result"
)

// ToolCall is a model-issued request to run a named tool with JSON arguments.
type ToolCall struct {
	ID    string
	Name  string
	Input json.RawMessage
}

// ToolResult carries the outcome of one executed tool call. Saved is the
// explicit save-success flag the engine's termination check reads; it is
// never inferred from the result text.
type ToolResult struct {
	CallID  string
	Text    string
	IsError bool
	Saved   bool
}

// Message is a sum over roles: Text for user and assistant turns, ToolCalls
// populated only on assistant messages, Result only on tool_result messages.
type Message struct {
	Role      Role
	Text      string
	ToolCalls []ToolCall
	Result    *ToolResult
}

// User returns a user text message.
func User(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

// Assistant returns an assistant message with optional tool calls. Text may
// be empty when the model only issues calls.
func Assistant(text string, calls ...ToolCall) Message {
	return Message{Role: RoleAssistant, Text: text, ToolCalls: calls}
}

// ResultMessage wraps a tool outcome as a history message.
func ResultMessage(r ToolResult) Message {
	return Message{Role: RoleToolResult, Result: &r}
}
