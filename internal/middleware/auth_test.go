package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"iscol-site/internal/auth"
	"iscol-site/internal/config"
)

func testAuthMiddleware(t *testing.T) (*AuthMiddleware, string) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Admin.JWTSecret = "test-secret"
	cfg.Admin.TokenTTL = time.Hour

	manager := auth.NewJWTManager(cfg)
	token, err := manager.Generate("operator")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return NewAuthMiddleware(manager), token
}

func TestRequireTokenRejectsMissingHeader(t *testing.T) {
	m, _ := testAuthMiddleware(t)

	rec := httptest.NewRecorder()
	m.RequireToken(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", rec.Code)
	}
}

func TestRequireTokenRejectsInvalidToken(t *testing.T) {
	m, _ := testAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	m.RequireToken(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a bad token, got %d", rec.Code)
	}
}

func TestRequireTokenAcceptsValidToken(t *testing.T) {
	m, token := testAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.RequireToken(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with a valid token, got %d", rec.Code)
	}
}
