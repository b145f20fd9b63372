// Package chat implements the turn orchestrator: the pipeline that turns one
// inbound message history into one assistant reply, dispatching any
// model-requested tool calls in between.
//
// A turn moves through validation, a first completion, an optional tool
// dispatch plus second completion, and a final respond step. The design makes
// exactly one tool round-trip per turn: if the second completion requests
// tools again, those requests are not honored.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/petal-labs/sous/core"
	"github.com/petal-labs/sous/tools"
)

// Logger is the minimal logging surface the orchestrator needs.
type Logger interface {
	Printf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Orchestrator drives chat turns against one provider and one tool registry.
// It holds no per-turn state and is safe for concurrent use.
type Orchestrator struct {
	client            *core.Client
	registry          *tools.Registry
	executor          *Executor
	model             core.ModelID
	exposedTools      []string
	completionTimeout time.Duration
	logger            Logger
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithExposedTools restricts which registered tools the model sees. The
// subset is resolved per turn in the order given; unknown names are skipped.
// Without this option every registered tool is exposed.
func WithExposedTools(names []string) OrchestratorOption {
	return func(o *Orchestrator) {
		o.exposedTools = names
	}
}

// WithCompletionTimeout bounds each provider round trip.
func WithCompletionTimeout(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		o.completionTimeout = d
	}
}

// WithLogger sets the orchestrator's logger.
func WithLogger(l Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewOrchestrator creates an orchestrator for the given client, registry,
// executor, and model.
func NewOrchestrator(client *core.Client, registry *tools.Registry, executor *Executor, model core.ModelID, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		client:   client,
		registry: registry,
		executor: executor,
		model:    model,
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// TurnResult is the outcome of a successful turn.
type TurnResult struct {
	// Message is the single final assistant message. It never carries the
	// intermediate tool-call metadata.
	Message core.Message

	// Usage aggregates token usage across both completion rounds.
	Usage core.TokenUsage

	// ToolRound reports whether a tool dispatch happened this turn.
	ToolRound bool
}

// Turn executes one chat turn over the given history. The caller owns history
// accumulation; nothing is persisted here. On failure the returned error is
// always a *TurnError.
func (o *Orchestrator) Turn(ctx context.Context, history []core.Message) (*TurnResult, error) {
	if err := core.ValidateHistory(history); err != nil {
		return nil, badRequest(err)
	}

	toolset := o.resolveTools()

	first, err := o.complete(ctx, history, toolset)
	if err != nil {
		return nil, classifyCompletionError(err)
	}

	usage := first.Usage

	if !first.HasToolCalls() {
		if first.Output == "" {
			return nil, &TurnError{
				Kind:    KindUpstreamMalformed,
				Message: "provider reply has neither text nor tool calls",
				Err:     core.ErrEmptyReply,
			}
		}
		return &TurnResult{
			Message: core.Message{Role: core.RoleAssistant, Content: first.Output},
			Usage:   usage,
		}, nil
	}

	// Upstreams occasionally omit call IDs. Assign them before dispatch so
	// the folded assistant message and the tool results carry the same
	// identifiers.
	for i := range first.ToolCalls {
		if first.ToolCalls[i].ID == "" {
			first.ToolCalls[i].ID = uuid.NewString()
		}
	}

	o.logger.Printf("turn: dispatching %d tool call(s)", len(first.ToolCalls))
	results := o.executor.ExecuteAll(ctx, first.ToolCalls)

	extended := foldToolRound(history, first, results)

	second, err := o.complete(ctx, extended, toolset)
	if err != nil {
		return nil, &TurnError{Kind: KindUpstreamMalformed, Message: "second completion failed", Err: err}
	}

	usage.PromptTokens += second.Usage.PromptTokens
	usage.CompletionTokens += second.Usage.CompletionTokens
	usage.TotalTokens += second.Usage.TotalTokens

	// One tool round per turn. A second round of tool requests is not
	// honored; only the text of the reply counts.
	if second.HasToolCalls() {
		o.logger.Printf("turn: second completion requested %d tool call(s); not honored", len(second.ToolCalls))
	}
	if second.Output == "" {
		return nil, &TurnError{
			Kind:    KindUpstreamMalformed,
			Message: "second completion produced no text",
			Err:     core.ErrEmptyReply,
		}
	}

	return &TurnResult{
		Message:   core.Message{Role: core.RoleAssistant, Content: second.Output},
		Usage:     usage,
		ToolRound: true,
	}, nil
}

// resolveTools selects the tool subset exposed to the model this turn.
func (o *Orchestrator) resolveTools() []core.Tool {
	var selected []tools.Tool
	if len(o.exposedTools) > 0 {
		selected = o.registry.GetMany(o.exposedTools)
	} else {
		selected = o.registry.List()
	}

	result := make([]core.Tool, len(selected))
	for i, t := range selected {
		result[i] = t
	}
	return result
}

// complete performs one provider round trip with the turn's tool schema and
// automatic tool choice.
func (o *Orchestrator) complete(ctx context.Context, msgs []core.Message, toolset []core.Tool) (*core.ChatResponse, error) {
	if o.completionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.completionTimeout)
		defer cancel()
	}

	return o.client.Chat(ctx, &core.ChatRequest{
		Model:    o.model,
		Messages: msgs,
		Tools:    toolset,
	})
}

// foldToolRound extends the history with the assistant's tool-call message
// followed by one role "tool" message per result, preserving request order.
func foldToolRound(history []core.Message, reply *core.ChatResponse, results []core.ToolResult) []core.Message {
	extended := make([]core.Message, 0, len(history)+1+len(results))
	extended = append(extended, history...)
	extended = append(extended, reply.AssistantMessage())

	for _, result := range results {
		extended = append(extended, core.Message{
			Role:       core.RoleTool,
			ToolCallID: result.CallID,
			Content:    serializeResult(result),
		})
	}

	return extended
}

// serializeResult renders a tool result as the JSON text the model reads:
// the success payload itself, or an {"error": ...} object on failure.
func serializeResult(result core.ToolResult) string {
	if result.IsError {
		data, _ := json.Marshal(map[string]string{"error": result.Error})
		return string(data)
	}

	data, err := json.Marshal(result.Content)
	if err != nil {
		data, _ = json.Marshal(map[string]string{"error": fmt.Sprintf("unserializable tool result: %v", err)})
	}
	return string(data)
}
