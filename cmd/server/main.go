// Command server runs the CreatorHub backend: a JSON API that serves streamer
// profiles and their latest Twitch/YouTube content.
//
// Startup order:
//  1. Load .env (best effort) and environment configuration
//  2. Configure zerolog (level, optional pretty console)
//  3. Open the in-memory record store and seed the roster
//  4. Build the shared response cache and upstream clients
//  5. Wire routes and serve until SIGINT/SIGTERM, then drain gracefully
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/creatorhubtz/creatorhub-backend/internal/cache"
	"github.com/creatorhubtz/creatorhub-backend/internal/config"
	httpapi "github.com/creatorhubtz/creatorhub-backend/internal/http"
	"github.com/creatorhubtz/creatorhub-backend/internal/observability"
	"github.com/creatorhubtz/creatorhub-backend/internal/repo"
	"github.com/creatorhubtz/creatorhub-backend/internal/services"
	"github.com/creatorhubtz/creatorhub-backend/internal/sysutil"
	"github.com/creatorhubtz/creatorhub-backend/internal/upstream/twitch"
	"github.com/creatorhubtz/creatorhub-backend/internal/upstream/youtube"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	log.Info().
		Str("version", version).
		Str("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("creatorhub backend starting")

	// Tracing (no-op unless OTEL_ENABLED).
	otelShutdown, err := observability.SetupOTel(context.Background(), cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	// Record store: in-memory SQLite seeded with the streamer roster.
	db, err := repo.OpenMemory()
	if err != nil {
		log.Fatal().Err(err).Msg("open record store failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate record store failed")
	}
	if err := repo.Seed(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("seed record store failed")
	}

	// Shared response cache for content summaries and the Twitch app token.
	store := cache.New(cfg.ContentCacheTTL)

	// Upstream clients. Missing credentials are tolerated here; the affected
	// content endpoint fails per request instead of blocking startup.
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	if cfg.Twitch.ClientID == "" || cfg.Twitch.ClientSecret == "" {
		log.Warn().Msg("twitch credentials not configured; twitch content endpoint will fail")
	}
	if cfg.YouTube.APIKey == "" {
		log.Warn().Msg("youtube api key not configured; youtube content endpoint will fail")
	}

	tokens := twitch.NewTokenSource(cfg.Twitch.ClientID, cfg.Twitch.ClientSecret, twitch.DefaultTokenURL, store, cfg.TokenCacheTTL)
	twitchClient := twitch.NewClient(cfg.Twitch.ClientID, tokens, httpClient, "")

	ytClient, err := youtube.NewClient(context.Background(), cfg.YouTube.APIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("youtube client init failed")
	}

	twitchSvc := &services.TwitchService{
		DB:    db,
		API:   twitchClient,
		Cache: store,
		TTL:   cfg.ContentCacheTTL,
	}
	youtubeSvc := &services.YouTubeService{
		DB:    db,
		API:   ytClient,
		Cache: store,
		TTL:   cfg.ContentCacheTTL,
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg, twitchSvc, youtubeSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info().Str("addr", srv.Addr).Str("base_path", cfg.APIBasePath).Msg("listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if err := otelShutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown failed")
	}

	log.Info().Msg("shutdown complete")
}
