package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/Imsleepyyy/MonitoRSS/pkg/store"
)

//go:generate moq -out mocks/stats_provider.go -pkg mocks -skip-ensure -fmt goimports . StatsProvider
//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher

// StatsProvider reports fleet-wide feed counters
type StatsProvider interface {
	Stats(ctx context.Context) (store.Stats, error)
}

// Refresher triggers an on-demand fetch for a single URL
type Refresher interface {
	RefreshURL(ctx context.Context, url string, rate int) error
}

// Server represents the ops HTTP server instance
type Server struct {
	stats     StatsProvider
	refresher Refresher
	listen    string
	timeout   time.Duration
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params holds server dependencies and settings
type Params struct {
	Stats     StatsProvider
	Refresher Refresher
	Listen    string
	Timeout   time.Duration
	Version   string
	Debug     bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		stats:     p.Stats,
		refresher: p.Refresher,
		listen:    p.Listen,
		timeout:   p.Timeout,
		version:   p.Version,
		debug:     p.Debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.listen,
		Handler:      s.router,
		ReadTimeout:  s.timeout,
		WriteTimeout: s.timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("monitorss", "Imsleepyyy", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, ops payloads are tiny
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /refresh", s.refreshHandler)
	})
}

// statusHandler returns server status with feed counters
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	st, err := s.stats.Stats(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get feed stats: %v", err)
		renderJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get feed stats"})
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"feeds": map[string]int64{
			"total":    st.Total,
			"disabled": st.Disabled,
		},
	})
}

// refreshHandler queues an on-demand fetch for a single URL
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL         string `json:"url"`
		RateSeconds int    `json:"rateSeconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		renderJSON(w, http.StatusBadRequest, map[string]string{"error": "url is required"})
		return
	}

	if err := s.refresher.RefreshURL(r.Context(), req.URL, req.RateSeconds); err != nil {
		lgr.Printf("[ERROR] failed to queue refresh for %s: %v", req.URL, err)
		renderJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to queue refresh"})
		return
	}

	renderJSON(w, http.StatusAccepted, map[string]string{"status": "queued", "url": req.URL})
}

// renderJSON sends a JSON response
func renderJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}
