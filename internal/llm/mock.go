package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one scripted reply. A non-nil Err is returned as is.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted replies in order and records each request.
// It skips schema validation so tests can feed it malformed output.
type MockProvider struct {
	mu      sync.Mutex
	pending []MockResponse
	Calls   []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{pending: responses}
}

func (m *MockProvider) Name() string    { return "mock" }
func (m *MockProvider) ModelID() string { return "mock" }

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.pending) == 0 {
		return nil, &Error{Kind: KindUnavailable, Provider: "mock", Err: errors.New("no scripted response left")}
	}
	next := m.pending[0]
	m.pending = m.pending[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: "mock", StopReason: StopEnd}, nil
}

// AddResponse queues another scripted reply.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, resp)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
