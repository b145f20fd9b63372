package core_test

import (
	"encoding/json"
	"testing"

	"github.com/petal-labs/sous/core"
)

func TestModelInfoGetConvention(t *testing.T) {
	tests := []struct {
		name string
		info core.ModelInfo
		want core.APIConvention
	}{
		{
			name: "defaults to completions",
			info: core.ModelInfo{ID: "gpt-4o-mini"},
			want: core.ConventionCompletions,
		},
		{
			name: "explicit responses",
			info: core.ModelInfo{ID: "gpt-5.2", Convention: core.ConventionResponses},
			want: core.ConventionResponses,
		},
		{
			name: "explicit completions",
			info: core.ModelInfo{ID: "gpt-4o", Convention: core.ConventionCompletions},
			want: core.ConventionCompletions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.GetConvention(); got != tt.want {
				t.Errorf("GetConvention() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChatResponseHasToolCalls(t *testing.T) {
	resp := &core.ChatResponse{}
	if resp.HasToolCalls() {
		t.Error("HasToolCalls() = true for response without tool calls")
	}

	resp.ToolCalls = []core.ToolCall{
		{ID: "call_1", Name: "lookupRecipe", Arguments: json.RawMessage(`{"query":"stir fry"}`)},
		{ID: "call_2", Name: "lookupNutrition", Arguments: json.RawMessage(`{"food":"apple"}`)},
	}
	if !resp.HasToolCalls() {
		t.Error("HasToolCalls() = false for response with tool calls")
	}
}

func TestChatResponseAssistantMessage(t *testing.T) {
	resp := &core.ChatResponse{
		ID:     "resp_1",
		Output: "Carbonara is pasta with eggs, pancetta, and cheese.",
	}

	msg := resp.AssistantMessage()
	if msg.Role != core.RoleAssistant {
		t.Errorf("AssistantMessage().Role = %q, want %q", msg.Role, core.RoleAssistant)
	}
	if msg.Content != resp.Output {
		t.Errorf("AssistantMessage().Content = %q, want %q", msg.Content, resp.Output)
	}
	if msg.ToolCallID != "" {
		t.Errorf("AssistantMessage().ToolCallID = %q, want empty", msg.ToolCallID)
	}
}

func TestMessageJSONRoundTrip(t *testing.T) {
	msg := core.Message{
		Role:       core.RoleTool,
		Content:    `{"calories":95}`,
		ToolCallID: "call_9",
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got core.Message
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Role != msg.Role || got.Content != msg.Content || got.ToolCallID != msg.ToolCallID {
		t.Errorf("round trip = %+v, want %+v", got, msg)
	}
}
