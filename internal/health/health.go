package health

import (
	"io/fs"
	"runtime"
)

type HealthChecker struct {
	content fs.FS
	assets  []string
}

type HealthStatus struct {
	Status     string        `json:"status"`
	Content    ContentHealth `json:"content"`
	Goroutines int           `json:"goroutines"`
	Memory     MemoryStats   `json:"memory"`
}

type MemoryStats struct {
	AllocMB      float64 `json:"alloc_mb"`
	TotalAllocMB float64 `json:"total_alloc_mb"`
	SysMB        float64 `json:"sys_mb"`
	NumGC        uint32  `json:"num_gc"`
}

type ContentHealth struct {
	Status  string   `json:"status"`
	Missing []string `json:"missing,omitempty"`
}

// NewHealthChecker reports on the content filesystem the server is serving
// from. The assets are the files that must be present for the site to render.
func NewHealthChecker(content fs.FS, assets []string) *HealthChecker {
	return &HealthChecker{content: content, assets: assets}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	contentHealth := h.checkContent()

	status := "healthy"
	if contentHealth.Status != "healthy" {
		status = "unhealthy"
	}

	// Get runtime stats for goroutine leak detection
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return HealthStatus{
		Status:     status,
		Content:    contentHealth,
		Goroutines: runtime.NumGoroutine(),
		Memory: MemoryStats{
			AllocMB:      float64(memStats.Alloc) / 1024 / 1024,
			TotalAllocMB: float64(memStats.TotalAlloc) / 1024 / 1024,
			SysMB:        float64(memStats.Sys) / 1024 / 1024,
			NumGC:        memStats.NumGC,
		},
	}
}

func (h *HealthChecker) checkContent() ContentHealth {
	var missing []string
	for _, name := range h.assets {
		if _, err := fs.Stat(h.content, name); err != nil {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return ContentHealth{Status: "unhealthy", Missing: missing}
	}
	return ContentHealth{Status: "healthy"}
}
