package health

import (
	"testing"
	"testing/fstest"
)

func TestCheckBasicHealthy(t *testing.T) {
	content := fstest.MapFS{
		"index.html": {Data: []byte("<html></html>")},
		"styles.css": {Data: []byte("body{}")},
	}

	status := NewHealthChecker(content, []string{"index.html", "styles.css"}).CheckBasic()

	if status.Status != "healthy" {
		t.Errorf("expected healthy, got %q", status.Status)
	}
	if len(status.Content.Missing) != 0 {
		t.Errorf("expected no missing assets, got %v", status.Content.Missing)
	}
	if status.Goroutines <= 0 {
		t.Error("expected a positive goroutine count")
	}
}

func TestCheckBasicMissingAsset(t *testing.T) {
	content := fstest.MapFS{
		"index.html": {Data: []byte("<html></html>")},
	}

	status := NewHealthChecker(content, []string{"index.html", "styles.css"}).CheckBasic()

	if status.Status != "unhealthy" {
		t.Errorf("expected unhealthy, got %q", status.Status)
	}
	if len(status.Content.Missing) != 1 || status.Content.Missing[0] != "styles.css" {
		t.Errorf("expected styles.css reported missing, got %v", status.Content.Missing)
	}
}
