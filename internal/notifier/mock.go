package notifier

import (
	"context"
	"sync"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
type MockNotifier struct {
	mu sync.Mutex

	SendFunc func(ctx context.Context, message, recipient string) error

	SendCalls []struct {
		Message   string
		Recipient string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

// Reset clears all call records.
func (m *MockNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCalls = nil
}

func (m *MockNotifier) Send(ctx context.Context, message, recipient string) error {
	m.mu.Lock()
	m.SendCalls = append(m.SendCalls, struct {
		Message   string
		Recipient string
	}{message, recipient})
	m.mu.Unlock()
	if m.SendFunc != nil {
		return m.SendFunc(ctx, message, recipient)
	}
	return nil
}
