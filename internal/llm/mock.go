package llm

import (
	"context"
	"errors"
	"sync"
)

// MockResponse is one scripted reply for the mock generator.
type MockResponse struct {
	Text string
	Err  error
}

// MockGenerator returns scripted responses in order. Used by tests and
// as an offline engine stand-in.
type MockGenerator struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     int
	prompts   []string
}

func NewMockGenerator(responses ...MockResponse) *MockGenerator {
	return &MockGenerator{responses: responses}
}

func (m *MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.prompts = append(m.prompts, prompt)

	if len(m.responses) == 0 {
		return "", errors.New("mock generator: no scripted responses left")
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp.Text, resp.Err
}

// CallCount reports how many times Generate was invoked.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Prompts returns the prompts seen so far, in call order.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}
