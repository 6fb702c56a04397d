package llm

import "fmt"

// ErrUpstreamUnavailable indicates the engine could not be reached or
// did not answer within the timeout. Retryable by callers.
type ErrUpstreamUnavailable struct {
	Err error
}

func (e *ErrUpstreamUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generative engine unavailable: %v", e.Err)
	}
	return "generative engine unavailable"
}

func (e *ErrUpstreamUnavailable) Unwrap() error { return e.Err }

// ErrFormatInvalid indicates the engine answered but its content failed
// schema validation after fence-stripping. Not retried: the same prompt
// would produce the same malformed shape.
type ErrFormatInvalid struct {
	Raw string
	Err error
}

func (e *ErrFormatInvalid) Error() string {
	return fmt.Sprintf("recommendation format invalid: %v", e.Err)
}

func (e *ErrFormatInvalid) Unwrap() error { return e.Err }
