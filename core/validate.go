package core

import "fmt"

// ValidateHistory checks the structural invariants of an inbound conversation
// before any provider call is made:
//
//   - the history must contain at least one message
//   - every role must be one of system, user, assistant, or tool
//   - a tool message must carry the tool-call ID it answers
//   - any other message must carry text content or a tool-call list
//
// The returned error describes the first violation found.
func ValidateHistory(msgs []Message) error {
	if len(msgs) == 0 {
		return ErrNoMessages
	}

	for i, msg := range msgs {
		if !KnownRole(msg.Role) {
			return fmt.Errorf("message %d: unknown role %q", i, msg.Role)
		}
		if msg.Role == RoleTool {
			if msg.ToolCallID == "" {
				return fmt.Errorf("message %d: tool message missing tool_call_id", i)
			}
			continue
		}
		if msg.Content == "" && len(msg.ToolCalls) == 0 {
			return fmt.Errorf("message %d: %s message has no content", i, msg.Role)
		}
	}

	return nil
}
