package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func testContent() fstest.MapFS {
	return fstest.MapFS{
		"index.html": {Data: []byte("<!DOCTYPE html><html><body><h1>ISCOL 2025</h1></body></html>")},
		"styles.css": {Data: []byte("body { margin: 0; }")},
	}
}

func TestPageHandlerServesDocument(t *testing.T) {
	handler := NewPageHandler(testContent())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ISCOL 2025") {
		t.Error("expected the document body to be served at /")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("expected an HTML content type, got %q", ct)
	}
}

func TestPageHandlerServesStylesheet(t *testing.T) {
	handler := NewPageHandler(testContent())

	req := httptest.NewRequest(http.MethodGet, "/styles.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Errorf("expected a CSS content type, got %q", ct)
	}
}

func TestPageHandlerCacheHeaders(t *testing.T) {
	handler := NewPageHandler(testContent())

	req := httptest.NewRequest(http.MethodGet, "/styles.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Errorf("stylesheet: expected max-age=3600, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=300" {
		t.Errorf("document: expected max-age=300, got %q", got)
	}
}

func TestPageHandlerUnknownAsset(t *testing.T) {
	handler := NewPageHandler(testContent())

	req := httptest.NewRequest(http.MethodGet, "/missing.js", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown assets, got %d", rec.Code)
	}
}
