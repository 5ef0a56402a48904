package telemetry

import "context"

type turnIDKey struct{}

// WithTurnID returns a child context carrying the turn ID so events produced
// anywhere in a turn correlate in the JSONL stream.
func WithTurnID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, turnIDKey{}, id)
}

// TurnIDFromContext returns the turn ID from ctx. The second return is false
// when no non-empty ID is present.
func TurnIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(turnIDKey{}).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
