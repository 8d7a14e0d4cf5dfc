package http

import (
	"net/http"
	"runtime/debug"

	"logreport/internal/shared/loggers"
	"logreport/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates the observability router served while a run is in
// flight. It only exposes health and Prometheus metrics; the report itself
// never travels over HTTP.
func NewRouter(httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(mwRecoverer(httpLogger))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

// mwRecoverer converts handler panics into 500 responses instead of killing
// the run.
func mwRecoverer(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					httpLogger.Error().
						Interface("panic", rec).
						Str(loggers.FieldErrorStack, string(debug.Stack())).
						Msg("recovered from handler panic")
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
