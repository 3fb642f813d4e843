package http

import (
	"net/http"

	"github.com/yuniersoad/dota2notify/internal/checker"
	"github.com/yuniersoad/dota2notify/internal/config"
	"github.com/yuniersoad/dota2notify/internal/metrics"
	"github.com/yuniersoad/dota2notify/internal/notifier"
	"github.com/yuniersoad/dota2notify/internal/opendota"
	"github.com/yuniersoad/dota2notify/internal/users"
)

// Server holds the dependencies for the HTTP surface.
type Server struct {
	Store          users.UserStore
	Dota           opendota.DotaClient
	Notifier       notifier.Notifier
	Checker        *checker.Checker
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
