package http

import (
	"net/http"

	"github.com/charmbracelet/log"
)

// Middleware wraps an http.HandlerFunc with extra behavior.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// Chain applies middlewares to a handler in the order given.
func Chain(h http.HandlerFunc, middlewares ...Middleware) http.HandlerFunc {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}

// paramsMiddleware logs every incoming request with its query parameters.
func paramsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logFn := log.Info
		if r.URL.Query().Get("verbose") == "true" {
			logFn = log.Debug
		}
		logFn("Incoming request", "method", r.Method, "path", r.URL.Path, "params", r.URL.RawQuery)
		next(w, r)
	}
}
