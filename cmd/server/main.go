package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"iscol-site/internal/auth"
	"iscol-site/internal/config"
	"iscol-site/internal/handlers"
	h "iscol-site/internal/http"
	"iscol-site/internal/health"
	"iscol-site/internal/livereload"
	"iscol-site/internal/middleware"
	"iscol-site/internal/monitoring"
	"iscol-site/internal/site"
	"iscol-site/static"
)

func main() {
	// Parse command-line flags
	port := flag.Int("port", 0, "Server port (overrides config)")
	devMode := flag.Bool("dev", false, "Serve content from disk with live reload")
	flag.Parse()

	// Load .env if present, then configuration
	godotenv.Load()
	cfg := config.Load()

	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	// Pick the content source: embedded files in production, the static
	// directory on disk in dev mode.
	var content fs.FS = static.FS
	if cfg.Server.DevMode {
		log.Printf("Dev mode: serving content from %s", cfg.Server.StaticDir)
		content = os.DirFS(cfg.Server.StaticDir)
	}

	// The navigation contract is checked before the server takes traffic;
	// a dead link or missing section is an authoring defect, not something
	// to serve.
	if err := validateContent(content); err != nil {
		log.Fatalf("Content validation failed: %v", err)
	}

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(content)
	healthChecker := health.NewHealthChecker(content, []string{"index.html", "styles.css"})
	healthHandler := handlers.NewHealthHandler(healthChecker)
	adminHandler := handlers.NewAdminHandler(content)

	opts := h.RouterOptions{}

	if cfg.Admin.Enabled {
		jwtManager := auth.NewJWTManager(cfg)
		opts.Auth = middleware.NewAuthMiddleware(jwtManager)
	}

	if cfg.Server.DevMode {
		hub := livereload.NewHub()
		opts.LiveReload = hub
		go livereload.Watch(cfg.Server.StaticDir, time.Second, make(chan struct{}), func() {
			log.Println("Content changed, notifying connected browsers")
			hub.Broadcast()
		})
	}

	router := h.NewRouter(pageHandler, healthHandler, adminHandler, opts)

	// Middleware chain, outermost first
	var handler http.Handler = router
	handler = middleware.RequestMetrics(handler)
	handler = middleware.GzipCompression(handler)
	handler = middleware.NewRateLimiter(300, time.Minute).Middleware(handler)
	handler = middleware.SecurityHeaders(handler)
	handler = middleware.NewCORS(cfg)(handler)
	handler = middleware.HTTPSRedirect(cfg.Server.ForceHTTPS)(handler)

	// Start background host metrics collection
	monitor := monitoring.NewMonitoringService(10 * time.Second)
	monitor.StartCollection()
	defer monitor.Stop()

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server running on %s (dev mode: %v)", addr, cfg.Server.DevMode)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// validateContent parses the document and enforces the navigation contract.
func validateContent(content fs.FS) error {
	f, err := content.Open("index.html")
	if err != nil {
		return fmt.Errorf("opening index.html: %w", err)
	}
	defer f.Close()

	page, err := site.Parse(f)
	if err != nil {
		return err
	}

	defects := page.Validate()
	for _, defect := range defects {
		log.Printf("Content defect: %v", defect)
	}
	if len(defects) > 0 {
		return fmt.Errorf("%d content defect(s)", len(defects))
	}

	return nil
}
