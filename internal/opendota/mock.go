package opendota

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the DotaClient interface for testing.
type MockClient struct {
	mu sync.Mutex

	GetRecentMatchesFunc func(ctx context.Context, playerID int64, limit int) ([]MatchSummary, error)

	GetRecentMatchesCalls []struct {
		PlayerID int64
		Limit    int
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetRecentMatchesCalls = nil
}

func (m *MockClient) GetRecentMatches(ctx context.Context, playerID int64, limit int) ([]MatchSummary, error) {
	m.mu.Lock()
	m.GetRecentMatchesCalls = append(m.GetRecentMatchesCalls, struct {
		PlayerID int64
		Limit    int
	}{playerID, limit})
	m.mu.Unlock()
	if m.GetRecentMatchesFunc != nil {
		return m.GetRecentMatchesFunc(ctx, playerID, limit)
	}
	return nil, nil
}
