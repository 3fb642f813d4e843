package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewService creates a new metrics service. A custom registerer may be
// passed for testing; the default Prometheus registerer is used otherwise.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}
	factory := promauto.With(reg)

	return &Service{
		checkCycles: factory.NewCounter(prometheus.CounterOpts{
			Name: "dota2notify_check_cycles_total",
			Help: "Total number of match check cycles started.",
		}),
		playersChecked: factory.NewCounter(prometheus.CounterOpts{
			Name: "dota2notify_players_checked_total",
			Help: "Total number of followed players checked.",
		}),
		cycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dota2notify_check_duration_seconds",
			Help:    "Duration of match check cycles in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		notificationsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "dota2notify_notifications_sent_total",
			Help: "Total number of notifications delivered.",
		}),
		notificationsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "dota2notify_notifications_failed_total",
			Help: "Total number of notification delivery failures.",
		}),
		startupTime: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dota2notify_startup_duration_seconds",
			Help: "Time taken for the service to start in seconds.",
		}),
	}
}

// NewMetricsHandler returns the HTTP handler that exposes registered metrics.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	g := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		g = gatherer[0]
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func (s *Service) IncCheckCycles()                      { s.checkCycles.Inc() }
func (s *Service) IncPlayersChecked()                   { s.playersChecked.Inc() }
func (s *Service) ObserveCycleDuration(seconds float64) { s.cycleDuration.Observe(seconds) }
func (s *Service) IncNotificationsSent()                { s.notificationsSent.Inc() }
func (s *Service) IncNotificationsFailed()              { s.notificationsFailed.Inc() }
func (s *Service) SetStartupTime(seconds float64)       { s.startupTime.Set(seconds) }
