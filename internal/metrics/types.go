package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service implements the Metrics interface using Prometheus collectors.
type Service struct {
	checkCycles         prometheus.Counter
	playersChecked      prometheus.Counter
	cycleDuration       prometheus.Histogram
	notificationsSent   prometheus.Counter
	notificationsFailed prometheus.Counter
	startupTime         prometheus.Gauge
}
