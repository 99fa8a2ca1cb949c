package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"iscol-site/internal/config"
)

// NewCORS builds the CORS wrapper from the configured allowed origins.
// The site is public content, so the default is permissive GETs.
func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler
}
