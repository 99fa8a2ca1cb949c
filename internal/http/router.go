package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"iscol-site/internal/handlers"
	"iscol-site/internal/middleware"
)

// RouterOptions carries the optional pieces of the route table.
type RouterOptions struct {
	// Auth guards /metrics and the admin endpoints when set.
	Auth *middleware.AuthMiddleware

	// LiveReload is registered at /ws/reload when set (dev mode).
	LiveReload http.Handler
}

// NewRouter wires the route table: operational endpoints first, then the
// content file server as the catch-all.
func NewRouter(pageHandler *handlers.PageHandler, healthHandler *handlers.HealthHandler, adminHandler *handlers.AdminHandler, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthHandler.GetHealth).Methods(http.MethodGet)

	metricsHandler := http.Handler(promhttp.Handler())
	revalidate := http.HandlerFunc(adminHandler.Revalidate)
	if opts.Auth != nil {
		metricsHandler = opts.Auth.RequireToken(metricsHandler)
		r.Handle("/api/admin/revalidate", opts.Auth.RequireToken(revalidate)).Methods(http.MethodPost)
	} else {
		r.Handle("/api/admin/revalidate", revalidate).Methods(http.MethodPost)
	}
	r.Handle("/metrics", metricsHandler).Methods(http.MethodGet)

	if opts.LiveReload != nil {
		r.Handle("/ws/reload", opts.LiveReload)
	}

	r.PathPrefix("/").Handler(pageHandler).Methods(http.MethodGet, http.MethodHead)

	return r
}
