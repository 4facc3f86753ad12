// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Kaamelott catalogue HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis when configured.
//  5. Run database migrations when enabled.
//  6. Wire repositories, services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/kaamelott/internal/api"
	"github.com/taibuivan/kaamelott/internal/core/actor"
	"github.com/taibuivan/kaamelott/internal/core/author"
	"github.com/taibuivan/kaamelott/internal/core/character"
	"github.com/taibuivan/kaamelott/internal/core/citation"
	"github.com/taibuivan/kaamelott/internal/core/episode"
	"github.com/taibuivan/kaamelott/internal/core/movie"
	"github.com/taibuivan/kaamelott/internal/core/season"
	"github.com/taibuivan/kaamelott/internal/core/show"
	"github.com/taibuivan/kaamelott/internal/platform/cache"
	"github.com/taibuivan/kaamelott/internal/platform/config"
	"github.com/taibuivan/kaamelott/internal/platform/constants"
	"github.com/taibuivan/kaamelott/internal/platform/middleware"
	"github.com/taibuivan/kaamelott/internal/platform/migration"
	pgstore "github.com/taibuivan/kaamelott/internal/platform/postgres"
	redisstore "github.com/taibuivan/kaamelott/internal/platform/redis"
	"github.com/taibuivan/kaamelott/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("cache", cfg.CacheEnabled()),
		slog.Bool("auth", cfg.AuthEnabled()),
		slog.Bool("atomic_composite_writes", cfg.AtomicCompositeWrites),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, pgstore.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	}, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	health := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}

	// ── 4. Redis ──────────────────────────────────────────────────────────
	var records cache.Cache = cache.Noop{}
	if cfg.CacheEnabled() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		records = cache.NewRedis(rdb, cfg.CacheTTL, log)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if cfg.AutoMigrate {
		must(log, migration.RunUp(cfg.DatabaseURL, migration.Options{
			Dir:     cfg.MigrationPath,
			Verbose: cfg.Debug,
		}, log), "run migrations")
	}

	// ── 6. Authorization ──────────────────────────────────────────────────
	// Left as an untyped nil when disabled so that write routes stay open.
	var verifier middleware.TokenVerifier
	if cfg.AuthEnabled() {
		tokens, err := sec.LoadTokenService(cfg.JWTPubKeyPath, constants.AuthIssuer)
		must(log, err, "load jwt public key")
		verifier = tokens
	}

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	runner := pgstore.NewRunner(pool, cfg.AtomicCompositeWrites)
	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Show:      show.NewHandler(show.NewService(show.NewPostgresRepository(pool), records, log)),
		Season:    season.NewHandler(season.NewService(season.NewPostgresRepository(pool), records, log)),
		Episode:   episode.NewHandler(episode.NewService(episode.NewPostgresRepository(pool), records, log)),
		Movie:     movie.NewHandler(movie.NewService(movie.NewPostgresRepository(pool), records, log)),
		Actor:     actor.NewHandler(actor.NewService(actor.NewPostgresRepository(pool), runner, records, log)),
		Author:    author.NewHandler(author.NewService(author.NewPostgresRepository(pool), runner, records, log)),
		Character: character.NewHandler(character.NewService(character.NewPostgresRepository(pool), runner, records, log)),
		Citation:  citation.NewHandler(citation.NewService(citation.NewPostgresRepository(pool), runner, records, log)),
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
