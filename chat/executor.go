package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/petal-labs/sous/core"
	"github.com/petal-labs/sous/tools"
)

// Executor runs model-requested tool calls against a registry.
//
// Every call in a batch executes independently: a failure in one call is
// recorded in that call's result and never delays, cancels, or corrupts the
// outcome of a sibling. Results come back in request order, correlated by
// call identifier.
type Executor struct {
	registry    *tools.Registry
	maxParallel int
	timeout     time.Duration
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithMaxParallel caps how many tool calls run at once. Zero means no cap.
func WithMaxParallel(n int) ExecutorOption {
	return func(e *Executor) {
		e.maxParallel = n
	}
}

// WithToolTimeout sets a per-call timeout. The expiring call fails with a
// deterministic error; in-flight siblings are unaffected.
func WithToolTimeout(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.timeout = d
	}
}

// NewExecutor creates an executor over the given registry.
func NewExecutor(registry *tools.Registry, opts ...ExecutorOption) *Executor {
	e := &Executor{registry: registry}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecuteAll runs every call concurrently and returns one result per call,
// in the same order as the input.
func (e *Executor) ExecuteAll(ctx context.Context, calls []core.ToolCall) []core.ToolResult {
	if len(calls) == 0 {
		return nil
	}

	results := make([]core.ToolResult, len(calls))

	semSize := len(calls)
	if e.maxParallel > 0 && e.maxParallel < semSize {
		semSize = e.maxParallel
	}
	sem := make(chan struct{}, semSize)

	var wg sync.WaitGroup
	for i, call := range calls {
		// Some upstreams omit call IDs; generate one so results still
		// correlate.
		if call.ID == "" {
			call.ID = uuid.NewString()
		}
		wg.Add(1)
		go func(idx int, c core.ToolCall) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = e.executeOne(ctx, c)
		}(i, call)
	}
	wg.Wait()

	return results
}

// executeOne resolves and runs a single call, converting every failure mode
// into an error result.
func (e *Executor) executeOne(ctx context.Context, call core.ToolCall) core.ToolResult {
	var parsed any
	if err := json.Unmarshal(call.Arguments, &parsed); err != nil {
		return errorResult(call.ID, fmt.Sprintf("Invalid tool arguments: %v", err))
	}

	tool, ok := e.registry.Get(call.Name)
	if !ok {
		return errorResult(call.ID, fmt.Sprintf("Tool not found: %s", call.Name))
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	content, err := safeCall(ctx, tool, call.Arguments)
	if err != nil {
		return errorResult(call.ID, err.Error())
	}
	if isEmptyResult(content) {
		return errorResult(call.ID, fmt.Sprintf("Tool %s returned no result", call.Name))
	}

	return core.ToolResult{CallID: call.ID, Content: content}
}

// safeCall invokes the tool and converts a panic into an error, so a broken
// tool cannot take down the batch.
func safeCall(ctx context.Context, tool tools.Tool, args json.RawMessage) (content any, err error) {
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("tool %s panicked: %v", tool.Name(), r)
		}
	}()
	return tool.Call(ctx, args)
}

func errorResult(callID, msg string) core.ToolResult {
	return core.ToolResult{CallID: callID, IsError: true, Error: msg}
}

// isEmptyResult reports whether a tool produced nothing usable.
func isEmptyResult(content any) bool {
	switch v := content.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}
