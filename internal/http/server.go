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

// NewServer creates the HTTP server and registers all routes.
func NewServer(store users.UserStore, dota opendota.DotaClient, notif notifier.Notifier, chk *checker.Checker, m metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	s := &Server{
		Store:          store,
		Dota:           dota,
		Notifier:       notif,
		Checker:        chk,
		Metrics:        m,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.HandleFunc("/health", Chain(s.HealthCheckHandler, paramsMiddleware))
	s.Router.HandleFunc("/notify", Chain(s.NotifyHandler, paramsMiddleware))
	s.Router.HandleFunc("/matches", Chain(s.MatchesHandler, paramsMiddleware))
	s.Router.HandleFunc("/matches/default", Chain(s.DefaultMatchesHandler, paramsMiddleware))
	s.Router.HandleFunc("/users", Chain(s.UsersHandler, paramsMiddleware))
	s.Router.HandleFunc("/user", Chain(s.GetUserHandler, paramsMiddleware))
	s.Router.HandleFunc("/follow", Chain(s.FollowHandler, paramsMiddleware))
	s.Router.HandleFunc("/check", Chain(s.CheckHandler, paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
