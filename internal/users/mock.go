package users

import "sync"

// MockStore is a mock implementation of the UserStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetUserFunc           func(userID int64) (*User, error)
	ListUsersFunc         func() ([]*User, error)
	UpsertUserFunc        func(user *User) (*User, error)
	AddFollowedPlayerFunc func(userID int64, player FollowedPlayer) (*User, error)
	UpdateLastMatchIDFunc func(userID, playerID int64, matchID string) (bool, error)

	// Call records
	ListUsersCalls         int
	UpsertUserCalls        []*User
	AddFollowedPlayerCalls []struct {
		UserID int64
		Player FollowedPlayer
	}
	UpdateLastMatchIDCalls []struct {
		UserID   int64
		PlayerID int64
		MatchID  string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListUsersCalls = 0
	m.UpsertUserCalls = nil
	m.AddFollowedPlayerCalls = nil
	m.UpdateLastMatchIDCalls = nil
}

func (m *MockStore) GetUser(userID int64) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetUserFunc != nil {
		return m.GetUserFunc(userID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) ListUsers() ([]*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListUsersCalls++
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc()
	}
	return nil, nil
}

func (m *MockStore) UpsertUser(user *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertUserCalls = append(m.UpsertUserCalls, user)
	if m.UpsertUserFunc != nil {
		return m.UpsertUserFunc(user)
	}
	return user, nil
}

func (m *MockStore) AddFollowedPlayer(userID int64, player FollowedPlayer) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddFollowedPlayerCalls = append(m.AddFollowedPlayerCalls, struct {
		UserID int64
		Player FollowedPlayer
	}{userID, player})
	if m.AddFollowedPlayerFunc != nil {
		return m.AddFollowedPlayerFunc(userID, player)
	}
	return nil, ErrNotFound
}

func (m *MockStore) UpdateLastMatchID(userID, playerID int64, matchID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateLastMatchIDCalls = append(m.UpdateLastMatchIDCalls, struct {
		UserID   int64
		PlayerID int64
		MatchID  string
	}{userID, playerID, matchID})
	if m.UpdateLastMatchIDFunc != nil {
		return m.UpdateLastMatchIDFunc(userID, playerID, matchID)
	}
	return true, nil
}
