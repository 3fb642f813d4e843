package users

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new UserStore backed by the given database.
func New(db *sql.DB) UserStore {
	return &store{db: db}
}

func (s *store) GetUser(userID int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getUserLocked(userID)
}

func (s *store) getUserLocked(userID int64) (*User, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, name, recipient_address, following_json, type
		FROM users WHERE user_id = ?`, userID)
	return scanUser(row)
}

func scanUser(scanner interface{ Scan(...any) error }) (*User, error) {
	var u User
	var followingJSON string

	err := scanner.Scan(&u.ID, &u.UserID, &u.Name, &u.Recipient, &followingJSON, &u.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if followingJSON != "" {
		if err := json.Unmarshal([]byte(followingJSON), &u.Following); err != nil {
			return nil, fmt.Errorf("failed to decode follow list for user %d: %w", u.UserID, err)
		}
	}
	if u.Following == nil {
		u.Following = []FollowedPlayer{}
	}
	return &u, nil
}

func (s *store) ListUsers() ([]*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, user_id, name, recipient_address, following_json, type
		FROM users WHERE type = 'user' ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Error("Failed to scan user row", "error", err)
			continue
		}
		all = append(all, u)
	}
	return all, rows.Err()
}

// UpsertUser stores the full user record, follow list included. A missing
// opaque ID is assigned on first insert.
func (s *store) UpsertUser(user *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Type == "" {
		user.Type = "user"
	}
	if user.Following == nil {
		user.Following = []FollowedPlayer{}
	}

	if err := s.writeUserLocked(user); err != nil {
		return nil, err
	}
	log.Info("Upserted user", "userID", user.UserID, "name", user.Name)
	return user, nil
}

// writeUserLocked rewrites the whole owning record. There is no independent
// storage for follow entries.
func (s *store) writeUserLocked(user *User) error {
	followingJSON, err := json.Marshal(user.Following)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO users (user_id, id, name, recipient_address, following_json, type)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			id = excluded.id,
			name = excluded.name,
			recipient_address = excluded.recipient_address,
			following_json = excluded.following_json,
			type = excluded.type;
	`, user.UserID, user.ID, user.Name, user.Recipient, string(followingJSON), user.Type)
	return err
}

func (s *store) AddFollowedPlayer(userID int64, player FollowedPlayer) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.getUserLocked(userID)
	if err != nil {
		return nil, err
	}

	for _, existing := range user.Following {
		if existing.PlayerID == player.PlayerID {
			log.Info("Player is already being followed", "userID", userID, "playerID", player.PlayerID)
			return user, nil
		}
	}

	user.Following = append(user.Following, player)
	if err := s.writeUserLocked(user); err != nil {
		return nil, err
	}
	log.Info("Added followed player", "userID", userID, "playerID", player.PlayerID)
	return user, nil
}

func (s *store) UpdateLastMatchID(userID, playerID int64, matchID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.getUserLocked(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Cannot update watermark, user not found", "userID", userID)
			return false, nil
		}
		return false, err
	}

	found := false
	for i := range user.Following {
		if user.Following[i].PlayerID == playerID {
			user.Following[i].LastMatchID = matchID
			found = true
			break
		}
	}
	if !found {
		log.Warn("Cannot update watermark, player not followed", "userID", userID, "playerID", playerID)
		return false, nil
	}

	if err := s.writeUserLocked(user); err != nil {
		return false, err
	}
	return true, nil
}
