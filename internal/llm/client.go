package llm

import (
	"context"
	"time"
)

// TextGenerator is the narrow contract this service has with the
// external generative engine: prompt text in, reply text out. The reply
// is untrusted free-form text until ParseRecommendation has accepted it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds the generator settings from the THIRD_PARTY section.
type Config struct {
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxAttempts int
}

const (
	defaultModel    = "gemini-2.0-flash"
	defaultTimeout  = 60 * time.Second
	defaultAttempts = 3
)

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultAttempts
	}
	return c
}
