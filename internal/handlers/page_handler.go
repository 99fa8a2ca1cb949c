package handlers

import (
	"io/fs"
	"net/http"
	"strings"
)

// PageHandler serves the site content: the document, the stylesheet and any
// generated pages. Content comes from the embedded filesystem in production
// and from the static directory on disk in dev mode.
type PageHandler struct {
	fileServer http.Handler
}

func NewPageHandler(content fs.FS) *PageHandler {
	return &PageHandler{
		fileServer: http.FileServer(http.FS(content)),
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// The stylesheet changes rarely; the document may be edited more often.
	if strings.HasSuffix(r.URL.Path, ".css") {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=300")
	}

	h.fileServer.ServeHTTP(w, r)
}
