package conversation_test

import (
	"strings"
	"testing"

	"github.com/hammadafzall/drafter-agent/internal/conversation"
)

func call(id, name string) conversation.ToolCall {
	return conversation.ToolCall{ID: id, Name: name, Input: []byte(`{}`)}
}

func result(id string) conversation.Message {
	return conversation.ResultMessage(conversation.ToolResult{CallID: id, Text: "ok"})
}

func TestValidatePairing_AcceptsWellFormedHistories(t *testing.T) {
	cases := []struct {
		name    string
		history []conversation.Message
	}{
		{"empty", nil},
		{"text only", []conversation.Message{
			conversation.User("hi"),
			conversation.Assistant("hello"),
		}},
		{"single call answered", []conversation.Message{
			conversation.User("write a haiku"),
			conversation.Assistant("", call("a", "update")),
			result("a"),
			conversation.Assistant("done"),
		}},
		{"batch of two answered in order", []conversation.Message{
			conversation.User("update then save"),
			conversation.Assistant("", call("a", "update"), call("b", "save")),
			result("a"),
			result("b"),
		}},
		{"batch answered out of order", []conversation.Message{
			conversation.Assistant("", call("a", "update"), call("b", "save")),
			result("b"),
			result("a"),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := conversation.ValidatePairing(tc.history); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePairing_RejectsBrokenHistories(t *testing.T) {
	cases := []struct {
		name    string
		history []conversation.Message
		wantErr string
	}{
		{"orphaned result", []conversation.Message{
			conversation.User("hi"),
			result("a"),
		}, "orphaned"},
		{"unknown call id", []conversation.Message{
			conversation.Assistant("", call("a", "update")),
			result("b"),
		}, "does not match"},
		{"duplicate result", []conversation.Message{
			conversation.Assistant("", call("a", "update")),
			result("a"),
			result("a"),
		}, "duplicate"},
		{"unanswered call at end", []conversation.Message{
			conversation.Assistant("", call("a", "update")),
		}, "no result"},
		{"batch interrupted by user message", []conversation.Message{
			conversation.Assistant("", call("a", "update"), call("b", "save")),
			result("a"),
			conversation.User("next"),
			result("b"),
		}, "no result"},
		{"empty call id", []conversation.Message{
			conversation.Assistant("", conversation.ToolCall{Name: "update"}),
		}, "empty ID"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := conversation.ValidatePairing(tc.history)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
