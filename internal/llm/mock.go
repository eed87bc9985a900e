package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply for the MockProvider. Err, when set,
// is returned instead of a response.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for tests and offline use.
// Replies are served in FIFO order; every request is recorded in Calls.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse
	Calls []Request
}

// NewMockProvider creates a MockProvider preloaded with canned replies.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// Generate records the request and serves the next canned reply. An
// empty queue reports the provider as unavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}

	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned reply to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount returns the number of Generate calls made so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
