package checker

import (
	"time"

	"github.com/yuniersoad/dota2notify/internal/metrics"
	"github.com/yuniersoad/dota2notify/internal/notifier"
	"github.com/yuniersoad/dota2notify/internal/opendota"
	"github.com/yuniersoad/dota2notify/internal/users"
)

// Checker runs the periodic match check loop: for every user and every
// followed player, fetch the latest match and notify when it is newer than
// the stored watermark.
type Checker struct {
	store    users.UserStore
	dota     opendota.DotaClient
	notifier notifier.Notifier
	metrics  metrics.Metrics
	interval time.Duration
	enabled  bool
}

// CheckResult is the outcome of checking one followed player.
type CheckResult struct {
	UserID   int64
	PlayerID int64
	Notified bool
	Err      error
}
