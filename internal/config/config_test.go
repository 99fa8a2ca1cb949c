package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.DevMode {
		t.Error("dev mode must default to off")
	}
	if cfg.Server.StaticDir != "static" {
		t.Errorf("expected default static dir %q, got %q", "static", cfg.Server.StaticDir)
	}
	if cfg.Admin.Enabled {
		t.Error("admin endpoints must default to unguarded-off")
	}
	if cfg.Admin.TokenTTL != 24*time.Hour {
		t.Errorf("expected default token TTL of 24h, got %v", cfg.Admin.TokenTTL)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("ISCOL_SERVER_PORT", "9090")
	t.Setenv("ISCOL_SERVER_DEV_MODE", "true")
	t.Setenv("ISCOL_DATABASE_URL", "postgres://localhost/iscol")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port override 9090, got %d", cfg.Server.Port)
	}
	if !cfg.Server.DevMode {
		t.Error("expected dev mode enabled via environment")
	}
	if cfg.Database.URL != "postgres://localhost/iscol" {
		t.Errorf("expected database URL override, got %q", cfg.Database.URL)
	}
}
