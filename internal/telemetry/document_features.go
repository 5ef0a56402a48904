package telemetry

import (
	"context"

	"github.com/hammadafzall/drafter-agent/internal/metrics"
)

// EmitDocumentFeatures records size features of the document after an update.
// No document text leaves the process, only counts.
func EmitDocumentFeatures(ctx context.Context, content string) {
	if !ObserveEnabled() {
		return
	}
	turnID, _ := TurnIDFromContext(ctx)
	f := metrics.CountFeatures(content)
	Emit("document_updated", map[string]any{
		"turn_id": turnID,
		"document": map[string]any{
			"bytes": f.Bytes,
			"runes": f.Runes,
			"words": f.Words,
			"lines": f.Lines,
		},
	})
}
