package email

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/joao-fontenele/orderflow-email-confirmation/internal/telemetry"
)

// NewRouter mounts the confirmation endpoint at "/" for every method so the
// handler answers non-POST requests itself. metricsHandler may be nil.
func NewRouter(h *Handler, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		h.writeResponse(w, BuildResponse(ErrMethodNotAllowed))
	})

	r.Get("/healthz", telemetry.WithHTTPRoute(h.handleHealth))
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}
	r.HandleFunc("/", telemetry.WithHTTPRoute(h.HandleConfirm))

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		h.logger.Error("failed to encode health response", "error", err)
	}
}
