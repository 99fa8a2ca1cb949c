package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestShouldSkipMetrics(t *testing.T) {
	tests := []struct {
		path string
		skip bool
	}{
		{"/health", true},
		{"/metrics", true},
		{"/favicon.ico", true},
		{"/robots.txt", true},
		{"/", false},
		{"/styles.css", false},
	}
	for _, tc := range tests {
		if got := shouldSkipMetrics(tc.path); got != tc.skip {
			t.Errorf("shouldSkipMetrics(%q) = %v, expected %v", tc.path, got, tc.skip)
		}
	}
}

func TestSanitizePath(t *testing.T) {
	if got := sanitizePath("/index.html?utm=x"); got != "/index.html" {
		t.Errorf("expected query stripped, got %q", got)
	}
	long := "/" + strings.Repeat("a", 300)
	if got := sanitizePath(long); len(got) != 200 {
		t.Errorf("expected long path truncated to 200, got %d", len(got))
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	if got := clientIP(req); got != "10.0.0.1" {
		t.Errorf("expected RemoteAddr host, got %q", got)
	}

	req.Header.Set("X-Real-IP", "203.0.113.9")
	if got := clientIP(req); got != "203.0.113.9" {
		t.Errorf("expected X-Real-IP, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	if got := clientIP(req); got != "198.51.100.7" {
		t.Errorf("expected first X-Forwarded-For entry, got %q", got)
	}
}
