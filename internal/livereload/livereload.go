// Package livereload pings connected browsers when the content directory
// changes, so editing the document or stylesheet refreshes the local preview.
// Dev mode only; the production server serves embedded content that cannot
// change.
package livereload

import (
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Hub tracks connected preview browsers.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			// Local authoring tool; the page is served from the same host.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP upgrades the connection and holds it until the browser goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	// Drain reads; the read loop exits when the peer closes.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast tells every connected browser to reload.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// ConnCount reports the number of connected browsers.
func (h *Hub) ConnCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Watch polls the content directory and invokes onChange when any file's
// mtime moves. Polling keeps this dependency-free and is plenty for a
// two-file site; stop by closing the stop channel.
func Watch(dir string, interval time.Duration, stop <-chan struct{}, onChange func()) {
	if interval <= 0 {
		interval = time.Second
	}

	last := snapshot(dir)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			current := snapshot(dir)
			if changed(last, current) {
				last = current
				onChange()
			}
		case <-stop:
			return
		}
	}
}

func snapshot(dir string) map[string]time.Time {
	mtimes := make(map[string]time.Time)
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := os.Stat(path); err == nil {
			mtimes[path] = info.ModTime()
		}
		return nil
	})
	return mtimes
}

func changed(a, b map[string]time.Time) bool {
	if len(a) != len(b) {
		return true
	}
	for path, mtime := range b {
		if prev, ok := a[path]; !ok || !prev.Equal(mtime) {
			return true
		}
	}
	return false
}
