package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"iscol-site/internal/auth"
	"iscol-site/internal/config"
	"iscol-site/internal/handlers"
	"iscol-site/internal/health"
	"iscol-site/internal/middleware"
)

func testRouter(t *testing.T, opts RouterOptions) http.Handler {
	t.Helper()
	content := fstest.MapFS{
		"index.html": {Data: []byte("<!DOCTYPE html><html><body><h1>ISCOL 2025</h1></body></html>")},
		"styles.css": {Data: []byte("body { margin: 0; }")},
	}
	return NewRouter(
		handlers.NewPageHandler(content),
		handlers.NewHealthHandler(health.NewHealthChecker(content, []string{"index.html", "styles.css"})),
		handlers.NewAdminHandler(content),
		opts,
	)
}

func TestRouterServesContent(t *testing.T) {
	router := testRouter(t, RouterOptions{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ISCOL 2025") {
		t.Error("expected the document at /")
	}
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := testRouter(t, RouterOptions{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /health, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON from /health, got %q", ct)
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := testRouter(t, RouterOptions{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /metrics, got %d", rec.Code)
	}
}

func TestRouterUnknownAsset(t *testing.T) {
	router := testRouter(t, RouterOptions{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.js", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown assets, got %d", rec.Code)
	}
}

func TestRouterRevalidateRequiresPOST(t *testing.T) {
	router := testRouter(t, RouterOptions{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/revalidate", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for POST revalidate, got %d", rec.Code)
	}
}

func TestRouterAuthGuardsOperationalEndpoints(t *testing.T) {
	cfg := &config.Config{}
	cfg.Admin.JWTSecret = "test-secret"
	cfg.Admin.TokenTTL = time.Hour
	manager := auth.NewJWTManager(cfg)
	token, err := manager.Generate("operator")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	router := testRouter(t, RouterOptions{Auth: middleware.NewAuthMiddleware(manager)})

	// No token: both guarded endpoints refuse.
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/metrics"},
		{http.MethodPost, "/api/admin/revalidate"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}

	// Valid token: allowed.
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /metrics with token: expected 200, got %d", rec.Code)
	}

	// The content surface stays public.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET / must not require a token, got %d", rec.Code)
	}
}
