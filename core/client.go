package core

import (
	"context"
	"time"
)

// Provider is the interface that LLM providers must implement.
// Providers SHOULD be safe for concurrent calls.
type Provider interface {
	// ID returns the provider identifier (e.g., "openai").
	ID() string

	// Models returns the list of models available from this provider.
	Models() []ModelInfo

	// Chat sends a non-streaming chat request and returns the normalized
	// response, regardless of which upstream convention served it.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// Client wraps a Provider with request validation and telemetry.
// Client is safe for concurrent use.
type Client struct {
	provider  Provider
	telemetry TelemetryHook
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new Client with the given provider and options.
func NewClient(p Provider, opts ...ClientOption) *Client {
	c := &Client{
		provider:  p,
		telemetry: NoopTelemetryHook{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithTelemetry sets the telemetry hook for the client.
func WithTelemetry(h TelemetryHook) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.telemetry = h
		}
	}
}

// Provider returns the underlying provider.
func (c *Client) Provider() Provider {
	return c.provider
}

// Chat validates the request and forwards it to the provider.
// Each call is a single attempt; the turn contract allows at most one attempt
// per completion step, so there is no retry loop here.
func (c *Client) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, ErrModelRequired
	}
	if len(req.Messages) == 0 {
		return nil, ErrNoMessages
	}

	start := time.Now()
	providerID := c.provider.ID()

	c.telemetry.OnRequestStart(RequestStartEvent{
		Provider: providerID,
		Model:    req.Model,
		Start:    start,
	})

	resp, err := c.provider.Chat(ctx, req)

	usage := TokenUsage{}
	if resp != nil {
		usage = resp.Usage
	}
	c.telemetry.OnRequestEnd(RequestEndEvent{
		Provider: providerID,
		Model:    req.Model,
		Start:    start,
		End:      time.Now(),
		Usage:    usage,
		Err:      err,
	})

	return resp, err
}
