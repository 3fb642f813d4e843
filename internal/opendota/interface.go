package opendota

import "context"

// DotaClient defines the operations needed from the match data provider.
type DotaClient interface {
	// GetRecentMatches returns the player's most recent matches, newest
	// first. A non-positive limit falls back to the provider default.
	GetRecentMatches(ctx context.Context, playerID int64, limit int) ([]MatchSummary, error)
}
