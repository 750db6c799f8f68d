// Package server serves the landing page over HTTP together with its static
// assets, content documents and live reload socket.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/landing/internal/content"
	"github.com/ziadkadry99/landing/internal/fetch"
	"github.com/ziadkadry99/landing/internal/markdown"
	"github.com/ziadkadry99/landing/internal/page"
)

// Config holds server configuration.
type Config struct {
	Port          int
	AllowAll      bool     // allow all CORS origins (dev mode)
	StaticDir     string   // assets served under /static/
	StaticInclude []string // doublestar globs a static path must match
	ContentDir    string   // content documents served under /content/
	// BaseURL resolves relative content and prose URLs. Nil means
	// http://127.0.0.1:<Port>/. It never comes from the request.
	BaseURL *url.URL
}

// Server serves the landing page and the files it depends on.
type Server struct {
	cfg        Config
	base       *url.URL
	builder    *page.Builder
	live       *LiveReload
	logger     *log.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. live may be nil to disable the /live endpoint.
func New(cfg Config, builder *page.Builder, live *LiveReload, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	base := cfg.BaseURL
	if base == nil {
		base = &url.URL{Scheme: "http", Host: fmt.Sprintf("127.0.0.1:%d", cfg.Port), Path: "/"}
	}
	s := &Server{
		cfg:     cfg,
		base:    base,
		builder: builder,
		live:    live,
		logger:  logger,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The live socket is long-lived, so it stays outside the timeout group.
	if s.live != nil {
		r.Get("/live", s.live.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/", s.handlePage)
		r.Get("/assets/highlight.css", handleHighlightCSS)

		if s.cfg.StaticDir != "" {
			r.Get("/static/*", s.handleStatic(http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir)))))
		}
		if s.cfg.ContentDir != "" {
			r.Get("/content/*", http.StripPrefix("/content/", http.FileServer(http.Dir(s.cfg.ContentDir))).ServeHTTP)
		}
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// handlePage builds a fresh page per request against the configured base.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	p, err := s.builder.Build(r.Context(), s.base)
	if err != nil {
		s.logger.Printf("server: building page: %v", err)
		http.Error(w, "page unavailable", pageErrorStatus(err))
		return
	}
	if len(p.Warnings) > 0 {
		w.Header().Set("X-Landing-Warnings", strconv.Itoa(len(p.Warnings)))
	}

	out, err := p.HTML()
	if err != nil {
		s.logger.Printf("server: rendering page: %v", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(out))
}

// pageErrorStatus maps upstream content problems to 502 and everything else to 500.
func pageErrorStatus(err error) int {
	var fe *fetch.FetchError
	var pe *content.ParseError
	if errors.As(err, &fe) || errors.As(err, &pe) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// handleStatic only lets through paths matching the include globs.
func (s *Server) handleStatic(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		if !matchesInclude(rel, s.cfg.StaticInclude) {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// matchesInclude returns true if relPath matches any pattern. An empty
// pattern list includes everything.
func matchesInclude(relPath string, patterns []string) bool {
	if relPath == "" {
		return false
	}
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
	}
	return false
}

func handleHighlightCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if err := markdown.WriteHighlightCSS(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Printf("landing server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
