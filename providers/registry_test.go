package providers

import (
	"context"
	"strings"
	"testing"

	"github.com/petal-labs/sous/core"
)

// mockProvider implements core.Provider for testing.
type mockProvider struct {
	id string
}

func (m *mockProvider) ID() string               { return m.id }
func (m *mockProvider) Models() []core.ModelInfo { return nil }
func (m *mockProvider) Chat(context.Context, *core.ChatRequest) (*core.ChatResponse, error) {
	return nil, nil
}

func TestRegister(t *testing.T) {
	Register("test-provider", func(apiKey string) core.Provider {
		return &mockProvider{id: "test-provider"}
	})

	if !IsRegistered("test-provider") {
		t.Error("expected test-provider to be registered")
	}

	if IsRegistered("nonexistent") {
		t.Error("expected nonexistent to not be registered")
	}
}

func TestGet(t *testing.T) {
	Register("get-test", func(apiKey string) core.Provider {
		return &mockProvider{id: "get-test"}
	})

	factory := Get("get-test")
	if factory == nil {
		t.Fatal("Get() returned nil for registered provider")
	}

	provider := factory("key")
	if provider.ID() != "get-test" {
		t.Errorf("factory produced provider %q, want %q", provider.ID(), "get-test")
	}

	if Get("missing") != nil {
		t.Error("Get() should return nil for unregistered provider")
	}
}

func TestCreate(t *testing.T) {
	Register("create-test", func(apiKey string) core.Provider {
		return &mockProvider{id: "create-test"}
	})

	provider, err := Create("create-test", "key")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if provider.ID() != "create-test" {
		t.Errorf("Create() produced provider %q, want %q", provider.ID(), "create-test")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-provider", "key")
	if err == nil {
		t.Fatal("Create() error = nil for unknown provider")
	}
	if !strings.Contains(err.Error(), "unknown provider") {
		t.Errorf("Create() error = %q, want an unknown-provider error", err)
	}
}

func TestListSorted(t *testing.T) {
	Register("zzz-provider", func(apiKey string) core.Provider {
		return &mockProvider{id: "zzz-provider"}
	})
	Register("aaa-provider", func(apiKey string) core.Provider {
		return &mockProvider{id: "aaa-provider"}
	})

	names := List()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() not sorted: %v", names)
			break
		}
	}
}
