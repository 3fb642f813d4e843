package users

import (
	"database/sql"
	"sync"
)

// FollowedPlayer is one entry in a user's follow list. LastMatchID is the
// watermark: the identifier of the most recent match already notified for
// this player. It only ever advances, and only after a successful
// notification.
type FollowedPlayer struct {
	PlayerID    int64  `json:"userId"`
	Name        string `json:"name"`
	LastMatchID string `json:"lastMatchId"`
}

// User is a registered user and the players they follow. ID is the opaque
// persisted key; UserID is the numeric identifier the record is keyed by.
// Recipient is the notification channel address, a Telegram chat ID or a
// Slack channel ID depending on the configured backend.
type User struct {
	ID        string           `json:"id"`
	UserID    int64            `json:"userId"`
	Name      string           `json:"name"`
	Recipient string           `json:"recipientAddress"`
	Following []FollowedPlayer `json:"following"`
	Type      string           `json:"type"`
}

// store handles all database operations for user records.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
