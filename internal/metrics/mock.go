package metrics

import "sync"

// MockMetrics is a mock implementation of the Metrics interface for testing.
type MockMetrics struct {
	mu sync.Mutex

	CheckCycles         int
	PlayersChecked      int
	CycleDurations      []float64
	NotificationsSent   int
	NotificationsFailed int
	StartupTimes        []float64
}

// NewMock creates a new mock instance.
func NewMock() *MockMetrics {
	return &MockMetrics{}
}

// Reset clears all recorded values.
func (m *MockMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckCycles = 0
	m.PlayersChecked = 0
	m.CycleDurations = nil
	m.NotificationsSent = 0
	m.NotificationsFailed = 0
	m.StartupTimes = nil
}

func (m *MockMetrics) IncCheckCycles() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckCycles++
}

func (m *MockMetrics) IncPlayersChecked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayersChecked++
}

func (m *MockMetrics) ObserveCycleDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CycleDurations = append(m.CycleDurations, seconds)
}

func (m *MockMetrics) IncNotificationsSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotificationsSent++
}

func (m *MockMetrics) IncNotificationsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotificationsFailed++
}

func (m *MockMetrics) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, seconds)
}
