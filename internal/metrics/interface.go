package metrics

// Metrics defines the interface for recording application metrics.
type Metrics interface {
	IncCheckCycles()
	IncPlayersChecked()
	ObserveCycleDuration(seconds float64)
	IncNotificationsSent()
	IncNotificationsFailed()
	SetStartupTime(seconds float64)
}
