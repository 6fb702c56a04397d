package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(inner TextGenerator) TextGenerator {
	return &retryGenerator{inner: inner, maxAttempts: 3, wait: time.Millisecond}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockGenerator(MockResponse{Text: "ok"})
	g := fastRetry(mock)

	text, err := g.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "ok" {
		t.Fatalf("unexpected text: %q", text)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockGenerator(
		MockResponse{Err: &ErrUpstreamUnavailable{Err: errors.New("down")}},
		MockResponse{Text: "ok"},
	)
	g := fastRetry(mock)

	text, err := g.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "ok" {
		t.Fatalf("unexpected text: %q", text)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockGenerator(
		MockResponse{Err: &ErrUpstreamUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrUpstreamUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrUpstreamUnavailable{Err: errors.New("down")}},
	)
	g := fastRetry(mock)

	_, err := g.Generate(context.Background(), "prompt")
	var unavail *ErrUpstreamUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_FormatErrorNotRetried(t *testing.T) {
	mock := NewMockGenerator(
		MockResponse{Err: &ErrFormatInvalid{Err: errors.New("bad shape")}},
		MockResponse{Text: "never reached"},
	)
	g := fastRetry(mock)

	_, err := g.Generate(context.Background(), "prompt")
	var format *ErrFormatInvalid
	if !errors.As(err, &format) {
		t.Fatalf("expected ErrFormatInvalid, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("format errors must not be retried, got %d calls", mock.CallCount())
	}
}
