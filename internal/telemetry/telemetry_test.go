package telemetry_test

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammadafzall/drafter-agent/internal/telemetry"
)

// chdir isolates the .drafter output dir per test.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestEmit_DisabledByDefault(t *testing.T) {
	dir := chdir(t)
	t.Setenv("DRAFTER_OBSERVE_JSON", "")

	telemetry.Emit("tool_exec", map[string]any{"tool_name": "update"})

	if _, err := os.Stat(filepath.Join(dir, ".drafter", "events.jsonl")); !os.IsNotExist(err) {
		t.Fatalf("expected no events file, stat err: %v", err)
	}
}

func TestEmit_WritesJSONLines(t *testing.T) {
	dir := chdir(t)
	t.Setenv("DRAFTER_OBSERVE_JSON", "1")

	telemetry.Emit("turn_started", map[string]any{"turn_id": "turn-1"})
	telemetry.Emit("session_end", map[string]any{"reason": "saved"})

	f, err := os.Open(filepath.Join(dir, ".drafter", "events.jsonl"))
	if err != nil {
		t.Fatalf("open events: %v", err)
	}
	defer f.Close()

	var events []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]any
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("invalid JSONL line %q: %v", sc.Text(), err)
		}
		events = append(events, m)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0]["event"] != "turn_started" || events[0]["turn_id"] != "turn-1" {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1]["event"] != "session_end" || events[1]["reason"] != "saved" {
		t.Fatalf("unexpected second event: %+v", events[1])
	}
	for _, e := range events {
		if _, ok := e["time"].(string); !ok {
			t.Fatalf("event missing time: %+v", e)
		}
	}
}

func TestEmit_DoesNotMutateCallerFields(t *testing.T) {
	chdir(t)
	t.Setenv("DRAFTER_OBSERVE_JSON", "1")

	fields := map[string]any{"tool_name": "save"}
	telemetry.Emit("tool_exec", fields)
	if len(fields) != 1 {
		t.Fatalf("caller map mutated: %+v", fields)
	}
}

func TestTurnIDContext(t *testing.T) {
	if _, ok := telemetry.TurnIDFromContext(nil); ok {
		t.Fatal("nil context should carry no turn ID")
	}
	ctx := telemetry.WithTurnID(nil, "turn-42")
	id, ok := telemetry.TurnIDFromContext(ctx)
	if !ok || id != "turn-42" {
		t.Fatalf("got (%q, %v), want (turn-42, true)", id, ok)
	}
}
