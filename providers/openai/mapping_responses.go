package openai

import (
	"encoding/json"

	"github.com/petal-labs/sous/core"
)

// buildResponsesRequest creates a Responses API request from a core.ChatRequest.
func buildResponsesRequest(req *core.ChatRequest) *responsesRequest {
	respReq := &responsesRequest{
		Model: string(req.Model),
		Input: buildResponsesInput(req.Messages),
	}

	if req.Temperature != nil {
		respReq.Temperature = req.Temperature
	}

	if req.MaxTokens != nil {
		respReq.MaxOutputTokens = req.MaxTokens
	}

	if len(req.Tools) > 0 {
		respReq.Tools = mapResponsesTools(req.Tools)
		respReq.ToolChoice = "auto"
	}

	return respReq
}

// buildResponsesInput converts canonical messages to the Responses API input
// list. A lone user message uses the simple text form; everything else becomes
// an item list, with tool-round history flattened into function_call and
// function_call_output items.
func buildResponsesInput(msgs []core.Message) responsesInput {
	if len(msgs) == 0 {
		return responsesInput{}
	}

	if len(msgs) == 1 && msgs[0].Role == core.RoleUser {
		return responsesInput{Text: msgs[0].Content}
	}

	items := make([]responsesInputItem, 0, len(msgs))
	for _, msg := range msgs {
		switch msg.Role {
		case core.RoleTool:
			items = append(items, functionCallOutputItem(msg.ToolCallID, msg.Content))

		case core.RoleAssistant:
			if msg.Content != "" {
				items = append(items, messageItem(string(msg.Role), msg.Content))
			}
			for _, call := range msg.ToolCalls {
				items = append(items, functionCallItem(call.ID, call.Name, string(call.Arguments)))
			}

		case core.RoleSystem:
			// Responses API uses "developer" instead of "system"
			items = append(items, messageItem("developer", msg.Content))

		default:
			items = append(items, messageItem(string(msg.Role), msg.Content))
		}
	}

	return responsesInput{Items: items}
}

// mapResponsesTools converts tool definitions to the Responses API format.
func mapResponsesTools(defs []core.Tool) []responsesTool {
	result := make([]responsesTool, 0, len(defs))

	for _, t := range defs {
		var params json.RawMessage

		if sp, ok := t.(schemaProvider); ok {
			params = sp.Schema().JSONSchema
		}

		// Default to empty object if no schema
		if params == nil {
			params = json.RawMessage(`{}`)
		}

		result = append(result, responsesTool{
			Type:        "function",
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  params,
		})
	}

	return result
}

// mapResponsesResponse converts a Responses API response to the canonical shape.
func mapResponsesResponse(resp *responsesResponse) *core.ChatResponse {
	result := &core.ChatResponse{
		ID:    resp.ID,
		Model: core.ModelID(resp.Model),
	}

	if resp.Usage != nil {
		result.Usage = core.TokenUsage{
			PromptTokens:     resp.Usage.InputTokens,
			CompletionTokens: resp.Usage.OutputTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	// Use output_text if available (simpler path)
	if resp.OutputText != "" {
		result.Output = resp.OutputText
	}

	var toolCalls []core.ToolCall
	for _, item := range resp.Output {
		switch item.Type {
		case "message":
			for _, content := range item.Content {
				if content.Type == "output_text" || content.Type == "text" {
					if result.Output == "" {
						result.Output = content.Text
					} else if resp.OutputText == "" {
						result.Output += content.Text
					}
				}
			}

		case "function_call":
			toolCalls = append(toolCalls, core.ToolCall{
				ID:        item.CallID,
				Name:      item.Name,
				Arguments: json.RawMessage(item.Arguments),
			})
		}
	}

	if len(toolCalls) > 0 {
		result.ToolCalls = toolCalls
	}

	return result
}
