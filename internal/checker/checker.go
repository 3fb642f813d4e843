package checker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yuniersoad/dota2notify/internal/config"
	"github.com/yuniersoad/dota2notify/internal/metrics"
	"github.com/yuniersoad/dota2notify/internal/notifier"
	"github.com/yuniersoad/dota2notify/internal/opendota"
	"github.com/yuniersoad/dota2notify/internal/users"
)

// New creates a new Checker.
func New(store users.UserStore, dota opendota.DotaClient, notif notifier.Notifier, m metrics.Metrics, cfg config.MatchCheckConfig) *Checker {
	return &Checker{
		store:    store,
		dota:     dota,
		notifier: notif,
		metrics:  m,
		interval: cfg.Interval,
		enabled:  cfg.Enabled,
	}
}

// Run executes check cycles until the context is cancelled. When checking is
// disabled it returns immediately; cycles can still be triggered manually
// through the HTTP surface.
func (c *Checker) Run(ctx context.Context) {
	if !c.enabled {
		log.Info("Match checking is disabled")
		return
	}
	log.Info("Starting match check loop", "interval", c.interval)

	for {
		if ctx.Err() != nil {
			return
		}

		c.metrics.IncCheckCycles()
		start := time.Now()
		if _, err := c.RunCycle(ctx); err != nil {
			log.Error("Check cycle failed", "error", err)
		}
		c.metrics.ObserveCycleDuration(time.Since(start).Seconds())

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.interval):
		}
	}
}

// RunCycle checks every followed player of every user once. A failure to
// list users aborts the cycle; failures for individual players are recorded
// and the cycle continues.
func (c *Checker) RunCycle(ctx context.Context) ([]CheckResult, error) {
	all, err := c.store.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var results []CheckResult
	for _, user := range all {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		for i := range user.Following {
			result := c.checkPlayer(ctx, user, &user.Following[i])
			if result.Err != nil {
				log.Error("Failed to check player",
					"userID", result.UserID,
					"playerID", result.PlayerID,
					"error", result.Err)
			}
			results = append(results, result)
		}
	}
	return results, nil
}

func (c *Checker) checkPlayer(ctx context.Context, user *users.User, player *users.FollowedPlayer) CheckResult {
	result := CheckResult{UserID: user.UserID, PlayerID: player.PlayerID}
	c.metrics.IncPlayersChecked()

	matches, err := c.dota.GetRecentMatches(ctx, player.PlayerID, 1)
	if err != nil {
		result.Err = err
		return result
	}
	if len(matches) == 0 {
		log.Debug("No matches found for player", "playerID", player.PlayerID)
		return result
	}

	newest := matches[0]
	matchID := strconv.FormatInt(newest.MatchID, 10)
	if matchID == player.LastMatchID {
		log.Info("No new match for player", "playerID", player.PlayerID, "matchID", matchID)
		return result
	}

	message := composeMessage(player.Name, newest)
	if err := c.notifier.Send(ctx, message, user.Recipient); err != nil {
		result.Err = fmt.Errorf("failed to send notification: %w", err)
		return result
	}
	result.Notified = true

	ok, err := c.store.UpdateLastMatchID(user.UserID, player.PlayerID, matchID)
	if err != nil {
		result.Err = fmt.Errorf("failed to update watermark: %w", err)
		return result
	}
	if !ok {
		result.Err = fmt.Errorf("watermark not updated for user %d player %d", user.UserID, player.PlayerID)
		return result
	}
	player.LastMatchID = matchID

	log.Info("Notified about new match",
		"userID", user.UserID,
		"playerID", player.PlayerID,
		"matchID", matchID)
	return result
}

func composeMessage(playerName string, match opendota.MatchSummary) string {
	outcome := "lost"
	if match.PlayerWon() {
		outcome = "won"
	}
	return fmt.Sprintf("%s %s a match as %s with KDA %d/%d/%d. Match duration: %s. Match ID: %d",
		playerName, outcome, match.HeroName(),
		match.Kills, match.Deaths, match.Assists,
		match.DurationString(), match.MatchID)
}
