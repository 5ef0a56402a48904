package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hammadafzall/drafter-agent/internal/conversation"
	"github.com/hammadafzall/drafter-agent/internal/document"
	"github.com/hammadafzall/drafter-agent/internal/telemetry"
	"github.com/hammadafzall/drafter-agent/tools"
)

// State is the engine's position in the turn-taking loop.
type State int

const (
	StateAwaitingFirstInput State = iota
	StateAwaitingUserInput
	StateModelThinking
	StateExecutingTools
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingFirstInput:
		return "awaiting_first_input"
	case StateAwaitingUserInput:
		return "awaiting_user_input"
	case StateModelThinking:
		return "model_thinking"
	case StateExecutingTools:
		return "executing_tools"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Reason says why a session terminated.
type Reason int

const (
	// ReasonSaved: a save completed and the termination check fired.
	ReasonSaved Reason = iota
	// ReasonCancelled: the user interrupted or closed input before saving.
	ReasonCancelled
)

// ErrInputClosed is returned by an InputProvider when no more input will
// arrive (end of input or interrupt).
var ErrInputClosed = errors.New("input closed")

// ModelClient produces one assistant reply for a conversation. The system
// prompt is passed separately because it changes with the document.
type ModelClient interface {
	Complete(ctx context.Context, system string, history []conversation.Message) (conversation.Message, error)
}

// InputProvider supplies one line of user text per call. Implementations
// must honour ctx and return ErrInputClosed when input ends.
type InputProvider interface {
	ReadLine(ctx context.Context) (string, error)
}

// Engine drives one drafting session. One Engine owns one document store and
// one history; run concurrent sessions with separate Engines.
type Engine struct {
	client ModelClient
	store  *document.Store
	defs   []tools.ToolDefinition
	input  InputProvider
	out    io.Writer

	state   State
	history []conversation.Message
	turn    int
}

// New returns an Engine in its initial state. Conversational output goes to out.
func New(client ModelClient, store *document.Store, defs []tools.ToolDefinition, input InputProvider, out io.Writer) *Engine {
	return &Engine{
		client: client,
		store:  store,
		defs:   defs,
		input:  input,
		out:    out,
		state:  StateAwaitingFirstInput,
	}
}

// State returns the engine's current state.
func (e *Engine) State() State { return e.state }

// History returns the session history in insertion order. The returned slice
// must not be mutated.
func (e *Engine) History() []conversation.Message { return e.history }

// Run executes the session until a save completes or the user cancels.
// Model and tool failures are surfaced into the conversation and never end
// the session on their own.
func (e *Engine) Run(ctx context.Context) (Reason, error) {
	for {
		if ctx.Err() != nil {
			return e.cancel(), nil
		}

		switch e.state {
		case StateAwaitingFirstInput:
			// First turn: queue the fixed welcome as the opening user
			// message, no input read and no network call.
			e.history = append(e.history, conversation.User(WelcomeMessage))
			fmt.Fprintln(e.out, WelcomeMessage)
			e.state = StateModelThinking

		case StateAwaitingUserInput:
			fmt.Fprint(e.out, inputPrompt)
			line, err := e.input.ReadLine(ctx)
			if err != nil {
				return e.cancel(), nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				line = repromptMessage
			}
			e.history = append(e.history, conversation.User(line))
			e.state = StateModelThinking

		case StateModelThinking:
			e.turn++
			turnCtx := telemetry.WithTurnID(ctx, fmt.Sprintf("turn-%d", e.turn))
			telemetry.Emit("turn_started", map[string]any{
				"turn_id":  fmt.Sprintf("turn-%d", e.turn),
				"messages": len(e.history),
			})

			system := SystemPrompt(e.store.Content())
			reply, err := e.client.Complete(turnCtx, system, e.history)
			if err != nil {
				// A failed model call becomes a visible assistant message;
				// the session carries on.
				reply = conversation.Assistant(fmt.Sprintf("Error processing request: %v", err))
				e.history = append(e.history, reply)
				fmt.Fprintf(e.out, "\n%s\n", reply.Text)
				e.state = StateAwaitingUserInput
				continue
			}

			e.history = append(e.history, reply)
			if reply.Text != "" {
				fmt.Fprintf(e.out, "\nDrafter: %s\n", reply.Text)
			}
			if len(reply.ToolCalls) > 0 {
				names := make([]string, 0, len(reply.ToolCalls))
				for _, c := range reply.ToolCalls {
					names = append(names, c.Name)
				}
				fmt.Fprintf(e.out, "Using tools: %s\n", strings.Join(names, ", "))
				e.state = StateExecutingTools
			} else {
				e.state = StateAwaitingUserInput
			}

		case StateExecutingTools:
			turnCtx := telemetry.WithTurnID(ctx, fmt.Sprintf("turn-%d", e.turn))
			last := e.history[len(e.history)-1]
			// Execute the batch strictly in request order.
			for _, call := range last.ToolCalls {
				res := e.execTool(turnCtx, call)
				e.history = append(e.history, conversation.ResultMessage(res))
				if res.Text != "" {
					fmt.Fprintf(e.out, "%s\n", res.Text)
				}
			}
			// Re-evaluate termination over the full history after every
			// batch; tool results otherwise route back through the model.
			if SessionComplete(e.history) {
				e.state = StateTerminated
				telemetry.Emit("session_end", map[string]any{"reason": "saved"})
				return ReasonSaved, nil
			}
			e.state = StateModelThinking

		case StateTerminated:
			return ReasonSaved, nil
		}
	}
}

func (e *Engine) cancel() Reason {
	e.state = StateTerminated
	fmt.Fprintf(e.out, "\n%s\n", UnsavedNotice)
	telemetry.Emit("session_end", map[string]any{"reason": "cancelled"})
	return ReasonCancelled
}

// execTool dispatches one call against the closed tool set. Unknown names
// and handler errors become error results; nothing here aborts the session.
func (e *Engine) execTool(ctx context.Context, call conversation.ToolCall) conversation.ToolResult {
	turnID, _ := telemetry.TurnIDFromContext(ctx)
	start := time.Now()

	emit := func(outputSize int, errStr string) {
		fields := map[string]any{
			"tool_name":   call.Name,
			"duration_ms": time.Since(start).Milliseconds(),
			"input_size":  len(call.Input),
			"output_size": outputSize,
			"turn_id":     turnID,
		}
		if errStr != "" {
			fields["error"] = errStr
		} else {
			fields["error"] = nil
		}
		telemetry.Emit("tool_exec", fields)
	}

	var def *tools.ToolDefinition
	for i := range e.defs {
		if e.defs[i].Name == call.Name {
			def = &e.defs[i]
			break
		}
	}
	if def == nil {
		emit(0, "tool not found")
		return conversation.ToolResult{
			CallID:  call.ID,
			Text:    fmt.Sprintf("%v: %s", tools.ErrUnknownTool, call.Name),
			IsError: true,
		}
	}

	out, err := def.Function(call.Input)
	if err != nil {
		// Generic error string in telemetry; the detailed message goes back
		// to the model in the result content.
		emit(0, "tool error")
		return conversation.ToolResult{CallID: call.ID, Text: err.Error(), IsError: true}
	}

	emit(len(out.Text), "")
	telemetry.EmitDocumentFeatures(ctx, e.store.Content())
	return conversation.ToolResult{CallID: call.ID, Text: out.Text, Saved: out.Saved}
}

// SessionComplete is the termination check: scanning newest to oldest, it is
// true at the first tool result flagged as a completed save. It is a pure
// function of the history and is recomputed after every batch, never cached.
func SessionComplete(history []conversation.Message) bool {
	for i := len(history) - 1; i >= 0; i-- {
		m := history[i]
		if m.Role != conversation.RoleToolResult || m.Result == nil {
			continue
		}
		if m.Result.Saved && !m.Result.IsError {
			return true
		}
	}
	return false
}
