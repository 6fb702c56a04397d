package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// GeminiGenerator implements TextGenerator using the Google Gemini SDK.
// One instance is built at startup and shared across requests; the SDK
// client is safe for concurrent use.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiGenerator creates the generator. The API key never appears in
// returned errors.
func NewGeminiGenerator(ctx context.Context, cfg Config) (*GeminiGenerator, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	text := result.Text()
	if text == "" {
		return "", &ErrFormatInvalid{Err: errors.New("empty reply from engine")}
	}
	return text, nil
}

// classifyGeminiError separates transport/availability problems from
// everything else so callers can decide whether to retry. Error strings
// from the SDK never include the key.
func classifyGeminiError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ErrUpstreamUnavailable{Err: err}
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return &ErrUpstreamUnavailable{Err: err}
		case apiErr.Code >= 500:
			return &ErrUpstreamUnavailable{Err: err}
		default:
			// 4xx other than rate limiting is a request problem, not an
			// availability one; retrying the same prompt cannot help.
			return fmt.Errorf("gemini request rejected: %w", err)
		}
	}

	return &ErrUpstreamUnavailable{Err: err}
}
