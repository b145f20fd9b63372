// Package core provides the canonical chat types shared by the sous server,
// the tool layer, and the upstream provider adapters.
package core

import "encoding/json"

// APIConvention identifies which upstream call convention a model uses.
type APIConvention string

const (
	// ConventionCompletions is the Chat Completions API (the legacy shape).
	ConventionCompletions APIConvention = "completions"
	// ConventionResponses is the Responses API (the structured-output shape).
	ConventionResponses APIConvention = "responses"
)

// ModelID is a string identifier for a model.
// Using string avoids coupling to provider-specific enums.
type ModelID string

// ModelInfo describes a model available from a provider.
type ModelInfo struct {
	ID          ModelID       `json:"id"`
	DisplayName string        `json:"display_name"`
	Convention  APIConvention `json:"convention,omitempty"` // defaults to completions
}

// GetConvention returns the call convention for the model, defaulting to completions.
func (m ModelInfo) GetConvention() APIConvention {
	if m.Convention == "" {
		return ConventionCompletions
	}
	return m.Convention
}

// Role represents a message participant role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool" // For tool result messages
)

// KnownRole reports whether r is one of the four conversation roles.
func KnownRole(r Role) bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleTool:
		return true
	}
	return false
}

// Message represents a single message in a conversation.
// The client resends the full ordered history on every turn; the server never
// stores it.
type Message struct {
	Role       Role       `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"` // set when Role is RoleTool
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // set on assistant messages requesting tools
}

// TokenUsage tracks token consumption for a request.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ToolCall represents a tool invocation requested by the model.
// Arguments MUST be valid JSON bytes and MUST preserve raw JSON (no reformatting).
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolResult represents the outcome of executing a tool.
// Content holds the success payload; Error holds the failure message when
// IsError is set. The two are mutually exclusive.
type ToolResult struct {
	CallID  string `json:"call_id"` // Must match ToolCall.ID from the response
	Content any    `json:"content,omitempty"`
	IsError bool   `json:"is_error"`
	Error   string `json:"error,omitempty"`
}

// Tool is the minimal tool surface the provider layer needs.
// The full interface (schema and execution) lives in the tools package.
type Tool interface {
	Name() string
	Description() string
}

// ChatRequest represents a request to a chat model.
type ChatRequest struct {
	Model       ModelID   `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float32  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
	Tools       []Tool    `json:"-"` // Tools are mapped by the provider adapters
}

// ChatResponse is the one canonical reply shape both upstream conventions
// normalize into.
type ChatResponse struct {
	ID        string     `json:"id"`
	Model     ModelID    `json:"model"`
	Output    string     `json:"output"`
	Usage     TokenUsage `json:"usage"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// HasToolCalls reports whether the response contains any tool calls.
func (r *ChatResponse) HasToolCalls() bool {
	return len(r.ToolCalls) > 0
}

// AssistantMessage converts the response into the message shape returned to
// the client.
func (r *ChatResponse) AssistantMessage() Message {
	return Message{
		Role:      RoleAssistant,
		Content:   r.Output,
		ToolCalls: r.ToolCalls,
	}
}
