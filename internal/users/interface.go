package users

import "errors"

// ErrNotFound is returned when the requested user does not exist.
var ErrNotFound = errors.New("user not found")

// UserStore defines the repository for user records. The follow list is
// embedded in the user record, so every mutation rewrites the owning record
// as a whole.
type UserStore interface {
	GetUser(userID int64) (*User, error)
	ListUsers() ([]*User, error)
	UpsertUser(user *User) (*User, error)
	// AddFollowedPlayer is idempotent: adding an already-followed player
	// identifier returns the unchanged user.
	AddFollowedPlayer(userID int64, player FollowedPlayer) (*User, error)
	// UpdateLastMatchID advances the watermark for one followed player. It
	// returns false, not an error, when the user or the follow entry does
	// not exist.
	UpdateLastMatchID(userID, playerID int64, matchID string) (bool, error)
}
