package tools

import "github.com/hammadafzall/drafter-agent/internal/document"

// Registry returns the tool set wired to one session's document store.
func Registry(store *document.Store) []ToolDefinition {
	return []ToolDefinition{UpdateDefinition(store), SaveDefinition(store)}
}
