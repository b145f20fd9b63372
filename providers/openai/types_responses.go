package openai

import "encoding/json"

// Responses API request/response types for OpenAI.

// responsesRequest represents a request to the OpenAI Responses API.
type responsesRequest struct {
	Model           string          `json:"model"`
	Input           responsesInput  `json:"input"`
	MaxOutputTokens *int            `json:"max_output_tokens,omitempty"`
	Temperature     *float32        `json:"temperature,omitempty"`
	Tools           []responsesTool `json:"tools,omitempty"`
	ToolChoice      string          `json:"tool_choice,omitempty"`
}

// responsesInput can be either a string or an array of input items.
// Custom marshaling handles both cases.
type responsesInput struct {
	Text  string
	Items []responsesInputItem
}

// MarshalJSON implements custom marshaling for responsesInput.
// If Text is set, marshals as a string. Otherwise, marshals Items as an array.
func (r responsesInput) MarshalJSON() ([]byte, error) {
	if r.Text != "" {
		return json.Marshal(r.Text)
	}
	return json.Marshal(r.Items)
}

// responsesInputItem is one item in the Responses API input list. The item
// kind decides the wire shape: a plain {role, content} message, a
// function_call echoing an earlier assistant tool request, or a
// function_call_output carrying a tool result.
type responsesInputItem struct {
	// For message items
	Role    string
	Content string

	// For function_call items
	CallID    string
	Name      string
	Arguments string

	// For function_call_output items
	Output string

	kind string
}

const (
	itemKindMessage            = "message"
	itemKindFunctionCall       = "function_call"
	itemKindFunctionCallOutput = "function_call_output"
)

// messageItem creates a plain role/content input item.
func messageItem(role, content string) responsesInputItem {
	return responsesInputItem{kind: itemKindMessage, Role: role, Content: content}
}

// functionCallItem echoes a model-requested function call back into the input.
func functionCallItem(callID, name, arguments string) responsesInputItem {
	return responsesInputItem{kind: itemKindFunctionCall, CallID: callID, Name: name, Arguments: arguments}
}

// functionCallOutputItem carries a tool result back to the model.
func functionCallOutputItem(callID, output string) responsesInputItem {
	return responsesInputItem{kind: itemKindFunctionCallOutput, CallID: callID, Output: output}
}

// MarshalJSON emits the wire shape for the item's kind.
func (i responsesInputItem) MarshalJSON() ([]byte, error) {
	switch i.kind {
	case itemKindFunctionCall:
		return json.Marshal(struct {
			Type      string `json:"type"`
			CallID    string `json:"call_id"`
			Name      string `json:"name"`
			Arguments string `json:"arguments"`
		}{
			Type:      itemKindFunctionCall,
			CallID:    i.CallID,
			Name:      i.Name,
			Arguments: i.Arguments,
		})
	case itemKindFunctionCallOutput:
		return json.Marshal(struct {
			Type   string `json:"type"`
			CallID string `json:"call_id"`
			Output string `json:"output"`
		}{
			Type:   itemKindFunctionCallOutput,
			CallID: i.CallID,
			Output: i.Output,
		})
	default:
		return json.Marshal(struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}{
			Role:    i.Role,
			Content: i.Content,
		})
	}
}

// responsesTool represents a tool in the Responses API. Unlike the Chat
// Completions shape, name and parameters sit at the top level.
type responsesTool struct {
	Type        string          `json:"type"`
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// responsesResponse represents a response from the OpenAI Responses API.
type responsesResponse struct {
	ID         string            `json:"id"`
	Object     string            `json:"object"`
	CreatedAt  int64             `json:"created_at"`
	Model      string            `json:"model"`
	Status     string            `json:"status"`
	Output     []responsesOutput `json:"output"`
	OutputText string            `json:"output_text,omitempty"`
	Usage      *responsesUsage   `json:"usage,omitempty"`
	Error      *responsesError   `json:"error,omitempty"`
}

// responsesOutput represents an output item in a Responses API response.
// The Type field determines which other fields are populated.
type responsesOutput struct {
	Type   string `json:"type"` // "message", "function_call"
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	Role   string `json:"role,omitempty"`

	// For message type
	Content []responsesMessageContent `json:"content,omitempty"`

	// For function_call type
	CallID    string `json:"call_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// responsesMessageContent represents content in a message output.
type responsesMessageContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// responsesUsage tracks token usage for a Responses API request.
type responsesUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// responsesError represents an error in the Responses API.
type responsesError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
