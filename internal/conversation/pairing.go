package conversation

import "fmt"

// ValidatePairing checks the tool-call pairing invariant over a history:
//   - every tool_result directly follows the assistant message that issued
//     the call it answers (results of one batch stay contiguous),
//   - each call ID is answered at most once and belongs to that assistant
//     message,
//   - once a non-result message appears, the batch is closed; unanswered
//     calls from it are an error.
//
// The provider runs this before building a request, so a malformed history
// fails fast locally instead of as an opaque API rejection.
func ValidatePairing(history []Message) error {
	// open is the set of call IDs from the most recent assistant message
	// still awaiting results; nil means no batch is open.
	var open map[string]bool
	openIdx := -1

	closeBatch := func() error {
		for id, answered := range open {
			if !answered {
				return fmt.Errorf("assistant message %d: tool call %q has no result", openIdx, id)
			}
		}
		open = nil
		return nil
	}

	for i, m := range history {
		switch m.Role {
		case RoleToolResult:
			if m.Result == nil {
				return fmt.Errorf("message %d: tool_result without result body", i)
			}
			if open == nil {
				return fmt.Errorf("message %d: orphaned tool_result %q", i, m.Result.CallID)
			}
			answered, known := open[m.Result.CallID]
			if !known {
				return fmt.Errorf("message %d: tool_result %q does not match an open call", i, m.Result.CallID)
			}
			if answered {
				return fmt.Errorf("message %d: duplicate tool_result %q", i, m.Result.CallID)
			}
			open[m.Result.CallID] = true
		case RoleAssistant:
			if err := closeBatch(); err != nil {
				return err
			}
			if len(m.ToolCalls) > 0 {
				open = make(map[string]bool, len(m.ToolCalls))
				openIdx = i
				for _, c := range m.ToolCalls {
					if c.ID == "" {
						return fmt.Errorf("message %d: tool call with empty ID", i)
					}
					open[c.ID] = false
				}
			}
		default:
			if err := closeBatch(); err != nil {
				return err
			}
		}
	}
	return closeBatch()
}
