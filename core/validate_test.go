package core_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/petal-labs/sous/core"
)

func TestValidateHistoryEmpty(t *testing.T) {
	err := core.ValidateHistory(nil)
	if !errors.Is(err, core.ErrNoMessages) {
		t.Errorf("ValidateHistory(nil) = %v, want ErrNoMessages", err)
	}

	err = core.ValidateHistory([]core.Message{})
	if !errors.Is(err, core.ErrNoMessages) {
		t.Errorf("ValidateHistory(empty) = %v, want ErrNoMessages", err)
	}
}

func TestValidateHistory(t *testing.T) {
	tests := []struct {
		name    string
		msgs    []core.Message
		wantErr string // substring of the expected error, empty for success
	}{
		{
			name: "single user message",
			msgs: []core.Message{
				{Role: core.RoleUser, Content: "What's in a carbonara?"},
			},
		},
		{
			name: "full tool round trip",
			msgs: []core.Message{
				{Role: core.RoleSystem, Content: "You are a cooking assistant."},
				{Role: core.RoleUser, Content: "Look up carbonara"},
				{Role: core.RoleAssistant, ToolCalls: []core.ToolCall{
					{ID: "call_1", Name: "lookupRecipe", Arguments: json.RawMessage(`{"query":"carbonara"}`)},
				}},
				{Role: core.RoleTool, ToolCallID: "call_1", Content: `{"name":"Pasta Carbonara"}`},
			},
		},
		{
			name: "unknown role",
			msgs: []core.Message{
				{Role: "narrator", Content: "hi"},
			},
			wantErr: "unknown role",
		},
		{
			name: "tool message without call id",
			msgs: []core.Message{
				{Role: core.RoleUser, Content: "hi"},
				{Role: core.RoleTool, Content: `{"ok":true}`},
			},
			wantErr: "missing tool_call_id",
		},
		{
			name: "assistant message with neither content nor tool calls",
			msgs: []core.Message{
				{Role: core.RoleUser, Content: "hi"},
				{Role: core.RoleAssistant},
			},
			wantErr: "no content",
		},
		{
			name: "assistant message with only tool calls is valid",
			msgs: []core.Message{
				{Role: core.RoleUser, Content: "hi"},
				{Role: core.RoleAssistant, ToolCalls: []core.ToolCall{
					{ID: "call_1", Name: "lookupNutrition", Arguments: json.RawMessage(`{"food":"apple"}`)},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.ValidateHistory(tt.msgs)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateHistory() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateHistory() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateHistory() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestKnownRole(t *testing.T) {
	for _, r := range []core.Role{core.RoleSystem, core.RoleUser, core.RoleAssistant, core.RoleTool} {
		if !core.KnownRole(r) {
			t.Errorf("KnownRole(%q) = false, want true", r)
		}
	}
	if core.KnownRole("moderator") {
		t.Error(`KnownRole("moderator") = true, want false`)
	}
}
