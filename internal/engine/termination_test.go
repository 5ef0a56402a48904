package engine_test

import (
	"testing"

	"github.com/hammadafzall/drafter-agent/internal/conversation"
	"github.com/hammadafzall/drafter-agent/internal/engine"
)

func savedResult(id string) conversation.Message {
	return conversation.ResultMessage(conversation.ToolResult{
		CallID: id,
		Text:   "Document has been saved successfully to 'poem.txt'.",
		Saved:  true,
	})
}

func failedSave(id string) conversation.Message {
	return conversation.ResultMessage(conversation.ToolResult{
		CallID:  id,
		Text:    "error saving document: disk full",
		IsError: true,
	})
}

func TestSessionComplete(t *testing.T) {
	updateResult := conversation.ResultMessage(conversation.ToolResult{
		CallID: "u1",
		Text:   "Document has been updated successfully.",
	})

	cases := []struct {
		name    string
		history []conversation.Message
		want    bool
	}{
		{"empty history", nil, false},
		{"text only", []conversation.Message{
			conversation.User("hi"),
			conversation.Assistant("hello"),
		}, false},
		{"update result is not a save", []conversation.Message{updateResult}, false},
		{"failed save only", []conversation.Message{failedSave("s1")}, false},
		{"successful save", []conversation.Message{savedResult("s1")}, true},
		{"success after earlier failures", []conversation.Message{
			failedSave("s1"),
			conversation.Assistant("retrying"),
			failedSave("s2"),
			savedResult("s3"),
		}, true},
		{"success buried under later chatter still counts", []conversation.Message{
			savedResult("s1"),
			conversation.Assistant("all done"),
		}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := engine.SessionComplete(tc.history); got != tc.want {
				t.Fatalf("SessionComplete = %v, want %v", got, tc.want)
			}
		})
	}
}
