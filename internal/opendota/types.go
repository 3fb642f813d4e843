package opendota

import (
	"fmt"
	"net/http"
	"time"
)

// Slots 0-127 are Radiant, 128 and above are Dire.
const radiantSlotLimit = 128

// MatchSummary is a single match as returned by the recent-matches endpoint.
type MatchSummary struct {
	MatchID    int64 `json:"match_id"`
	PlayerSlot int   `json:"player_slot"`
	RadiantWin bool  `json:"radiant_win"`
	Duration   int   `json:"duration"`
	GameMode   int   `json:"game_mode"`
	LobbyType  int   `json:"lobby_type"`
	HeroID     int   `json:"hero_id"`
	StartTime  int64 `json:"start_time"`
	Kills      int   `json:"kills"`
	Deaths     int   `json:"deaths"`
	Assists    int   `json:"assists"`
}

// IsRadiant reports whether the tracked player was on the Radiant side.
func (m MatchSummary) IsRadiant() bool {
	return m.PlayerSlot < radiantSlotLimit
}

// PlayerWon reports whether the tracked player's side won the match.
func (m MatchSummary) PlayerWon() bool {
	if m.IsRadiant() {
		return m.RadiantWin
	}
	return !m.RadiantWin
}

// HeroName returns the localized name of the hero the player picked.
func (m MatchSummary) HeroName() string {
	return HeroName(m.HeroID)
}

// DurationString renders the match duration as total minutes and leftover
// seconds, e.g. "42m 17s".
func (m MatchSummary) DurationString() string {
	return fmt.Sprintf("%dm %ds", m.Duration/60, m.Duration%60)
}

// StartTimeUTC returns the match start time as a UTC timestamp.
func (m MatchSummary) StartTimeUTC() time.Time {
	return time.Unix(m.StartTime, 0).UTC()
}

// APIClient is the client for the OpenDota REST API.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}
