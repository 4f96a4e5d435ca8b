package llm

import "context"

// Provider answers a single prompt. The caller bounds the call with a
// request timeout via ctx; on failure the caller records the error text as
// the persisted answer instead of dropping the turn.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Close() error
}
