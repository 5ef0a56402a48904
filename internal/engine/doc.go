// Package engine runs the drafting session: it collects user input, consults
// the model, dispatches requested tool calls, and decides after every batch
// whether the session is done.
//
// Invariants:
//   - The history is append-only and owned by one Engine; tool results stay
//     adjacent to the assistant message that requested them.
//   - The system prompt is rebuilt for every model call so it always embeds
//     the current document snapshot, never a stale one.
//   - Tool results always route back through the model before the user is
//     prompted again.
//
// Flow:
//
//	user(text) -> assistant(tool calls) -> tool results -> assistant(text) -> ...
//
// The session ends either on a completed save or on user cancellation.
package engine
