package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/datamarket-backend/internal/transport/middleware"
)

// NewRouter mounts the health probes behind the request id, logging and
// recovery middleware.
func NewRouter(logger *slog.Logger, health *HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	return r
}
