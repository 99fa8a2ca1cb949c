package livereload

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestSnapshotAndChanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	before := snapshot(dir)
	if len(before) != 1 {
		t.Fatalf("expected 1 file in snapshot, got %d", len(before))
	}
	if changed(before, snapshot(dir)) {
		t.Error("unchanged directory must not report a change")
	}

	// A new file counts as a change.
	if err := os.WriteFile(filepath.Join(dir, "styles.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if !changed(before, snapshot(dir)) {
		t.Error("expected a change after adding a file")
	}

	// So does touching an existing one.
	before = snapshot(dir)
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("failed to bump mtime: %v", err)
	}
	if !changed(before, snapshot(dir)) {
		t.Error("expected a change after an mtime bump")
	}
}

func TestWatchInvokesOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fired := make(chan struct{}, 1)
	stop := make(chan struct{})
	defer close(stop)

	go Watch(dir, 5*time.Millisecond, stop, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	// Give the watcher a tick to take its baseline, then edit.
	time.Sleep(20 * time.Millisecond)
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("failed to bump mtime: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not report the change")
	}
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	// The hub registers the connection during the upgrade handshake.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("connection never registered with the hub")
		}
		time.Sleep(5 * time.Millisecond)
	}

	hub.Broadcast()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read broadcast: %v", err)
	}
	if string(message) != "reload" {
		t.Errorf("expected %q, got %q", "reload", message)
	}
}

func TestHubDropsClosedConnections(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("closed connection never dropped from the hub")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
