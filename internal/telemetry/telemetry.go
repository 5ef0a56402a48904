// Package telemetry emits session events as JSON lines for offline
// inspection. Emission is off unless DRAFTER_OBSERVE_JSON is truthy; events
// land in .drafter/events.jsonl next to the process working directory.
//
// Event names used across the repo: turn_started, model_call, tool_exec,
// document_updated, session_end.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

const eventsDir = ".drafter"

// ObserveEnabled reports whether JSONL emission is on. Checked per call so
// tests can flip it with t.Setenv.
func ObserveEnabled() bool {
	return misc.Truthy(os.Getenv("DRAFTER_OBSERVE_JSON"))
}

// Emit writes a single JSON line to .drafter/events.jsonl when observation is
// enabled. Fields are augmented with RFC3339Nano time and the event name; the
// caller's map is never mutated. Emission failures are reported on stderr and
// otherwise ignored: telemetry must not break a session.
func Emit(name string, fields map[string]any) {
	if !ObserveEnabled() {
		return
	}

	m := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		m[k] = v
	}
	m["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["event"] = name

	b, err := json.Marshal(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: marshal: %v\n", err)
		return
	}

	if err := os.MkdirAll(eventsDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: mkdir %s: %v\n", eventsDir, err)
		return
	}

	path := filepath.Join(eventsDir, "events.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(b, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: write %s: %v\n", path, err)
	}
}
