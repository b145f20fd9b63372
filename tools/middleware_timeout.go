package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// WithTimeout bounds each call to d. The tool body runs in its own goroutine,
// so a tool that ignores its context cannot hold the caller past the
// deadline; the abandoned body keeps its goroutine until it returns.
func WithTimeout(d time.Duration) Middleware {
	return func(next ToolCallFunc) ToolCallFunc {
		return func(ctx context.Context, args json.RawMessage) (any, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()

			type outcome struct {
				content any
				err     error
			}
			done := make(chan outcome, 1)

			go func() {
				content, err := next(ctx, args)
				done <- outcome{content: content, err: err}
			}()

			select {
			case out := <-done:
				return out.content, out.err
			case <-ctx.Done():
				return nil, fmt.Errorf("tool execution timeout after %v", d)
			}
		}
	}
}
