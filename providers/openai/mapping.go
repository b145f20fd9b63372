package openai

import (
	"encoding/json"

	"github.com/petal-labs/sous/core"
	"github.com/petal-labs/sous/tools"
)

// schemaProvider is an interface for tools that provide a JSON schema.
// This allows us to check if a core.Tool also implements the full tools.Tool interface.
type schemaProvider interface {
	Schema() tools.ToolSchema
}

// mapMessages converts canonical messages to OpenAI message format, including
// the tool-round shapes: an assistant message carrying tool_calls and role
// "tool" messages carrying a tool_call_id.
func mapMessages(msgs []core.Message) []openAIMessage {
	result := make([]openAIMessage, len(msgs))
	for i, msg := range msgs {
		out := openAIMessage{
			Role:       string(msg.Role),
			ToolCallID: msg.ToolCallID,
		}
		if msg.Content != "" || len(msg.ToolCalls) == 0 {
			content := msg.Content
			out.Content = &content
		}
		if len(msg.ToolCalls) > 0 {
			out.ToolCalls = mapRequestToolCalls(msg.ToolCalls)
		}
		result[i] = out
	}
	return result
}

// mapRequestToolCalls converts canonical tool calls back to the wire shape
// for resending an assistant message in the second completion round.
func mapRequestToolCalls(calls []core.ToolCall) []openAIToolCall {
	result := make([]openAIToolCall, len(calls))
	for i, call := range calls {
		result[i] = openAIToolCall{
			ID:   call.ID,
			Type: "function",
			Function: openAIFunctionCall{
				Name:      call.Name,
				Arguments: string(call.Arguments),
			},
		}
	}
	return result
}

// mapTools converts tool definitions to the OpenAI tool format. The execute
// capability never crosses the wire; only name, description, and parameter
// schema are exported.
func mapTools(defs []core.Tool) []openAITool {
	if len(defs) == 0 {
		return nil
	}

	result := make([]openAITool, len(defs))
	for i, t := range defs {
		var params json.RawMessage

		if sp, ok := t.(schemaProvider); ok {
			params = sp.Schema().JSONSchema
		}

		// Default to empty object if no schema
		if params == nil {
			params = json.RawMessage(`{}`)
		}

		result[i] = openAITool{
			Type: "function",
			Function: openAIFunction{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  params,
			},
		}
	}
	return result
}

// buildRequest creates an OpenAI API request from a core.ChatRequest.
func buildRequest(req *core.ChatRequest) *openAIRequest {
	oaiReq := &openAIRequest{
		Model:    string(req.Model),
		Messages: mapMessages(req.Messages),
	}

	if req.Temperature != nil {
		oaiReq.Temperature = req.Temperature
	}

	if req.MaxTokens != nil {
		oaiReq.MaxTokens = req.MaxTokens
	}

	if len(req.Tools) > 0 {
		oaiReq.Tools = mapTools(req.Tools)
		oaiReq.ToolChoice = "auto"
	}

	return oaiReq
}
