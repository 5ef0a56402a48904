// Package provider adapts the Anthropic Messages API to the engine's
// ModelClient contract: conversation messages in, one assistant message
// (text and/or tool calls) out.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/hammadafzall/drafter-agent/internal/conversation"
	"github.com/hammadafzall/drafter-agent/internal/telemetry"
	"github.com/hammadafzall/drafter-agent/tools"
)

// NewAnthropicClient returns an SDK client using the API key from the env.
func NewAnthropicClient() *anthropic.Client {
	c := anthropic.NewClient()
	return &c
}

// Client sends drafting conversations to the Messages API. Model, sampling
// temperature, and output cap are fixed for the session at construction.
type Client struct {
	api  *anthropic.Client
	cfg  Config
	defs []tools.ToolDefinition
}

// New returns a Client bound to one session's tool set.
func New(api *anthropic.Client, cfg Config, defs []tools.ToolDefinition) *Client {
	return &Client{api: api, cfg: cfg, defs: defs}
}

// Complete sends the system prompt plus the full history and returns the
// assistant's reply. The history must satisfy the tool-call pairing
// invariant; a malformed one fails fast locally instead of as an opaque API
// rejection.
func (c *Client) Complete(ctx context.Context, system string, history []conversation.Message) (conversation.Message, error) {
	if err := conversation.ValidatePairing(history); err != nil {
		return conversation.Message{}, fmt.Errorf("conversation history: %w", err)
	}

	params := anthropic.MessageNewParams{
		Model:       c.cfg.Model,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: anthropic.Float(c.cfg.Temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages:    toMessageParams(history),
		Tools:       c.anthropicTools(),
	}

	turnID, _ := telemetry.TurnIDFromContext(ctx)
	start := time.Now()
	msg, err := c.api.Messages.New(ctx, params)
	telemetry.Emit("model_call", map[string]any{
		"turn_id":     turnID,
		"model":       string(c.cfg.Model),
		"messages":    len(history),
		"duration_ms": time.Since(start).Milliseconds(),
		"error":       err != nil,
	})
	if err != nil {
		return conversation.Message{}, err
	}

	return fromResponse(msg), nil
}

func (c *Client) anthropicTools() []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(c.defs))
	for _, t := range c.defs {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}

// toMessageParams maps the conversation model onto SDK params. Tool results
// travel as user messages carrying tool_result blocks, per the Messages API.
func toMessageParams(history []conversation.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case conversation.RoleUser:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text)))
		case conversation.RoleAssistant:
			blocks := make([]anthropic.ContentBlockParamUnion, 0, 1+len(m.ToolCalls))
			if m.Text != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Text))
			}
			for _, call := range m.ToolCalls {
				blocks = append(blocks, anthropic.ContentBlockParamUnion{
					OfToolUse: &anthropic.ToolUseBlockParam{
						ID:    call.ID,
						Name:  call.Name,
						Input: json.RawMessage(call.Input),
					},
				})
			}
			out = append(out, anthropic.NewAssistantMessage(blocks...))
		case conversation.RoleToolResult:
			out = append(out, anthropic.NewUserMessage(
				anthropic.NewToolResultBlock(m.Result.CallID, m.Result.Text, m.Result.IsError),
			))
		}
	}
	return out
}

// fromResponse flattens the SDK response into one assistant message: text
// blocks joined with newlines, tool_use blocks in API order.
func fromResponse(msg *anthropic.Message) conversation.Message {
	var texts []string
	var calls []conversation.ToolCall
	for _, block := range msg.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			if v.Text != "" {
				texts = append(texts, v.Text)
			}
		case anthropic.ToolUseBlock:
			calls = append(calls, conversation.ToolCall{
				ID:    v.ID,
				Name:  v.Name,
				Input: json.RawMessage(v.JSON.Input.Raw()),
			})
		}
	}
	return conversation.Assistant(strings.Join(texts, "\n"), calls...)
}
