// Package server exposes the aggregated explore feed over a REST API:
// section descriptors with their fetch state, per-section items,
// user-initiated refresh, blacklist management and history access.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/feedscout/pkg/domain"
	"github.com/umputun/feedscout/pkg/schema"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed.go -pkg mocks -skip-ensure -fmt goimports . Feed
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History
//go:generate moq -out mocks/blacklist.go -pkg mocks -skip-ensure -fmt goimports . Blacklist

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	feed      Feed
	history   History
	blacklist Blacklist
	version   string
	debug     bool

	sanitizer *bluemonday.Policy

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Feed is the schema-facing interface for feed operations
type Feed interface {
	Sections() []domain.Section
	Controller(id string) *schema.Controller
	Update(ctx context.Context, force bool) bool
}

// History interface for history endpoints
type History interface {
	List(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error)
	AddPage(ctx context.Context, url string) error
	RemoveEntry(ctx context.Context, url string) error
	RemoveAll(ctx context.Context) error
}

// Blacklist interface for section suppression endpoints
type Blacklist interface {
	Add(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	All() []string
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, feed Feed, history History, blacklist Blacklist, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		feed:      feed,
		history:   history,
		blacklist: blacklist,
		version:   version,
		debug:     debug,
		sanitizer: bluemonday.UGCPolicy(),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedscout", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /sections", s.sectionsHandler)
		r.HandleFunc("GET /sections/{id}", s.sectionHandler)
		r.HandleFunc("POST /sections/{id}/retry", s.sectionRetryHandler)
		r.HandleFunc("POST /refresh", s.refreshHandler)

		r.HandleFunc("GET /blacklist", s.blacklistListHandler)
		r.HandleFunc("POST /blacklist/{id}", s.blacklistAddHandler)
		r.HandleFunc("DELETE /blacklist/{id}", s.blacklistRemoveHandler)

		r.HandleFunc("GET /history", s.historyListHandler)
		r.HandleFunc("POST /history", s.historyAddHandler)
		r.HandleFunc("DELETE /history", s.historyRemoveHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
