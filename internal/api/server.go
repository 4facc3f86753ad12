// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
catalogue handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/kaamelott/internal/core/actor"
	"github.com/taibuivan/kaamelott/internal/core/author"
	"github.com/taibuivan/kaamelott/internal/core/character"
	"github.com/taibuivan/kaamelott/internal/core/citation"
	"github.com/taibuivan/kaamelott/internal/core/episode"
	"github.com/taibuivan/kaamelott/internal/core/movie"
	"github.com/taibuivan/kaamelott/internal/core/season"
	"github.com/taibuivan/kaamelott/internal/core/show"
	"github.com/taibuivan/kaamelott/internal/platform/config"
	"github.com/taibuivan/kaamelott/internal/platform/constants"
	"github.com/taibuivan/kaamelott/internal/platform/middleware"
	"github.com/taibuivan/kaamelott/internal/platform/sec"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups the HTTP handler sets of every catalogue resource.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	Show      *show.Handler
	Season    *season.Handler
	Episode   *episode.Handler
	Movie     *movie.Handler
	Actor     *actor.Handler
	Author    *author.Handler
	Character *character.Handler
	Citation  *citation.Handler
}

// routeRegistrar is implemented by every catalogue handler.
type routeRegistrar interface {
	RegisterRoutes(router chi.Router, writes func(http.Handler) http.Handler)
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// A nil verifier leaves write routes open.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg, splitOrigins(cfg.ExtraOrigins)))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health checks for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Reads are public, writes need an editor token when auth is enabled.
	writes := middleware.Writes(verifier, sec.RoleEditor)

	r.Route("/api/v1", func(api chi.Router) {
		for prefix, handler := range map[string]routeRegistrar{
			"/shows":      h.Show,
			"/seasons":    h.Season,
			"/episodes":   h.Episode,
			"/movies":     h.Movie,
			"/actors":     h.Actor,
			"/authors":    h.Author,
			"/characters": h.Character,
			"/citations":  h.Citation,
		} {
			api.Route(prefix, func(resource chi.Router) {
				handler.RegisterRoutes(resource, writes)
			})
		}
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
