package handlers

import (
	"encoding/json"
	"io/fs"
	"net/http"

	"iscol-site/internal/site"
)

// AdminHandler exposes operational actions over the content being served.
type AdminHandler struct {
	content fs.FS
}

func NewAdminHandler(content fs.FS) *AdminHandler {
	return &AdminHandler{content: content}
}

type validationResponse struct {
	Status  string   `json:"status"`
	Defects []string `json:"defects,omitempty"`
}

// Revalidate re-parses the served document and reports navigation contract
// defects. Useful in dev mode after editing the content on disk.
func (h *AdminHandler) Revalidate(w http.ResponseWriter, r *http.Request) {
	f, err := h.content.Open("index.html")
	if err != nil {
		http.Error(w, "index.html not found", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	page, err := site.Parse(f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := validationResponse{Status: "ok"}
	for _, defect := range page.Validate() {
		resp.Defects = append(resp.Defects, defect.Error())
	}
	if len(resp.Defects) > 0 {
		resp.Status = "defects"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
