package llm

import (
	"context"
	"errors"
	"time"
)

// retryGenerator retries transient upstream failures with a short fixed
// backoff. Format errors are surfaced immediately.
type retryGenerator struct {
	inner       TextGenerator
	maxAttempts int
	wait        time.Duration
}

// WithRetry wraps a TextGenerator with bounded retry for transient
// failures.
func WithRetry(inner TextGenerator, maxAttempts int) TextGenerator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &retryGenerator{inner: inner, maxAttempts: maxAttempts, wait: 500 * time.Millisecond}
}

func (r *retryGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		text, err := r.inner.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !isTransient(err) {
			return "", err
		}
		if attempt == r.maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", &ErrUpstreamUnavailable{Err: ctx.Err()}
		case <-time.After(r.wait * time.Duration(attempt+1)):
		}
	}

	return "", lastErr
}

func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var unavail *ErrUpstreamUnavailable
	return errors.As(err, &unavail)
}
