package tools_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/petal-labs/sous/tools"
)

// mockTool is a configurable Tool implementation for tests.
type mockTool struct {
	name        string
	description string
	schema      tools.ToolSchema
	callFn      func(ctx context.Context, args json.RawMessage) (any, error)
}

func (m *mockTool) Name() string             { return m.name }
func (m *mockTool) Description() string      { return m.description }
func (m *mockTool) Schema() tools.ToolSchema { return m.schema }

func (m *mockTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	if m.callFn == nil {
		return nil, nil
	}
	return m.callFn(ctx, args)
}

func newMockTool(name, description string) *mockTool {
	return &mockTool{
		name:        name,
		description: description,
		schema:      tools.ToolSchema{JSONSchema: json.RawMessage(`{}`)},
		callFn:      func(ctx context.Context, args json.RawMessage) (any, error) { return nil, nil },
	}
}

func TestNewRegistry(t *testing.T) {
	r := tools.NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	list := r.List()
	if len(list) != 0 {
		t.Errorf("New registry has %d tools, want 0", len(list))
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := tools.NewRegistry()
	tool := newMockTool("lookupRecipe", "Search recipes by name or ingredients")

	if err := r.Register(tool); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, ok := r.Get("lookupRecipe")
	if !ok {
		t.Fatal("Get() returned false, want true")
	}

	if got.Name() != "lookupRecipe" {
		t.Errorf("Get() returned tool with Name() = %q, want %q", got.Name(), "lookupRecipe")
	}
}

func TestRegistryGetNotFound(t *testing.T) {
	r := tools.NewRegistry()

	_, ok := r.Get("nonexistent")
	if ok {
		t.Error("Get() returned true for nonexistent tool, want false")
	}
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	r := tools.NewRegistry()
	tool1 := newMockTool("duplicate", "First tool")
	tool2 := newMockTool("duplicate", "Second tool")

	if err := r.Register(tool1); err != nil {
		t.Fatalf("First Register() error = %v", err)
	}

	err := r.Register(tool2)
	if err == nil {
		t.Fatal("Second Register() error = nil, want ErrDuplicateTool")
	}
	if !errors.Is(err, tools.ErrDuplicateTool) {
		t.Errorf("Second Register() error = %v, want ErrDuplicateTool", err)
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Second Register() error = %q, should name the duplicate tool", err)
	}

	// The first registration is what lookups observe.
	got, _ := r.Get("duplicate")
	if got.Description() != "First tool" {
		t.Errorf("Get() after duplicate Register() = %q, want the first definition", got.Description())
	}
	if len(r.List()) != 1 {
		t.Errorf("List() has %d tools after duplicate Register(), want 1", len(r.List()))
	}
}

func TestRegistryRegisterNil(t *testing.T) {
	r := tools.NewRegistry()

	err := r.Register(nil)
	if err == nil {
		t.Error("Register(nil) error = nil, want error")
	}
}

func TestRegistryGetMany(t *testing.T) {
	r := tools.NewRegistry()
	_ = r.Register(newMockTool("lookupRecipe", "recipes"))
	_ = r.Register(newMockTool("lookupNutrition", "nutrition"))
	_ = r.Register(newMockTool("convertUnits", "units"))

	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "order follows request, not insertion",
			names: []string{"lookupNutrition", "lookupRecipe"},
			want:  []string{"lookupNutrition", "lookupRecipe"},
		},
		{
			name:  "unknown names silently skipped",
			names: []string{"lookupRecipe", "noSuchTool", "convertUnits"},
			want:  []string{"lookupRecipe", "convertUnits"},
		},
		{
			name:  "all unknown",
			names: []string{"a", "b"},
			want:  []string{},
		},
		{
			name:  "empty input",
			names: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.GetMany(tt.names)
			if len(got) != len(tt.want) {
				t.Fatalf("GetMany() returned %d tools, want %d", len(got), len(tt.want))
			}
			for i, tool := range got {
				if tool.Name() != tt.want[i] {
					t.Errorf("GetMany()[%d] = %q, want %q", i, tool.Name(), tt.want[i])
				}
			}
		})
	}
}

func TestRegistryList(t *testing.T) {
	r := tools.NewRegistry()
	_ = r.Register(newMockTool("tool1", "First"))
	_ = r.Register(newMockTool("tool2", "Second"))
	_ = r.Register(newMockTool("tool3", "Third"))

	list := r.List()
	if len(list) != 3 {
		t.Errorf("List() returned %d tools, want 3", len(list))
	}

	names := make(map[string]bool)
	for _, tool := range list {
		names[tool.Name()] = true
	}
	for _, name := range []string{"tool1", "tool2", "tool3"} {
		if !names[name] {
			t.Errorf("List() missing tool %q", name)
		}
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := tools.NewRegistry()
	var wg sync.WaitGroup

	// Concurrent registrations
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			tool := newMockTool(fmt.Sprintf("tool-%d", n), "Tool")
			_ = r.Register(tool)
		}(i)
	}

	// Concurrent reads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.List()
			_, _ = r.Get("nonexistent")
			_ = r.GetMany([]string{"tool-1", "tool-2"})
		}()
	}

	wg.Wait()

	if len(r.List()) != 100 {
		t.Errorf("List() has %d tools after concurrent registration, want 100", len(r.List()))
	}
}
