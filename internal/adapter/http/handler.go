package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-autopilot/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the registry, the
// production orchestrator and the email lifecycle under /api/v1.
type Handler struct {
	registry   port.AutopilotRegistry
	production port.ProductionOrchestrator
	emails     port.EmailLifecycle
	logger     *slog.Logger
	router     chi.Router
}

// Services bundles the use cases served over HTTP.
type Services struct {
	Registry   port.AutopilotRegistry
	Production port.ProductionOrchestrator
	Emails     port.EmailLifecycle
}

// NewHandler creates a handler with all routes configured. A positive
// timeout bounds every request.
func NewHandler(svc Services, logger *slog.Logger, timeout time.Duration) *Handler {
	h := &Handler{
		registry:   svc.Registry,
		production: svc.Production,
		emails:     svc.Emails,
		logger:     logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/autopilots", func(r chi.Router) {
			r.Post("/", h.handleCreateAutopilot)
			r.Get("/", h.handleListAutopilots)
			r.Post("/produce", h.handleRegisterAndProduce)
			r.Get("/conflicts", h.handleConflicts)
			r.Get("/{id}", h.handleGetAutopilot)
			r.Patch("/{id}", h.handleUpdateAutopilot)
			r.Delete("/{id}", h.handleDeleteAutopilot)
		})
		r.Post("/production", h.handleStartProduction)
		r.Route("/emails", func(r chi.Router) {
			r.Get("/", h.handleListEmails)
			r.Post("/approve", h.handleBulk(h.emails.BulkApprove))
			r.Post("/revert", h.handleBulk(h.emails.BulkRevert))
			r.Post("/delete", h.handleBulk(h.emails.BulkDelete))
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
