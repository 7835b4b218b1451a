package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/oac-maputo/supertaca/config"
	"github.com/oac-maputo/supertaca/db"
	"github.com/oac-maputo/supertaca/handlers"
	"github.com/oac-maputo/supertaca/live"
	"github.com/oac-maputo/supertaca/metrics"
	"github.com/oac-maputo/supertaca/middleware"
	"github.com/oac-maputo/supertaca/repositories"
	api "github.com/oac-maputo/supertaca/routes"
	"github.com/oac-maputo/supertaca/services"
	"github.com/oac-maputo/supertaca/storage"
)

const (
	draftSweepInterval = 5 * time.Minute
	draftMaxIdle       = 2 * time.Hour
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.Int("current_round", cfg.CurrentRound),
		slog.Bool("auth_enabled", cfg.JWTSecretKey != ""),
		slog.Bool("publishing_enabled", cfg.PublishingEnabled()))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	dbConn, err := db.Open(ctx, cfg.DatabaseURL, db.DefaultPoolConfig())
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.PublishingEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2BucketName))
	}

	hub := live.NewHub(logger)
	go hub.Run(ctx)
	logger.Info("live hub started")

	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	goalRepo := repositories.NewPostgresGoalRepository(dbConn)

	recorder := metrics.NewRecorder()

	referenceService := services.NewReferenceService(teamRepo, playerRepo, logger)
	registrationService := metrics.InstrumentRegistration(
		services.NewRegistrationService(matchRepo, goalRepo, hub, logger), recorder)
	statsService := services.NewStatsService(teamRepo, matchRepo, goalRepo)
	fixtureService := services.NewFixtureService(teamRepo, matchRepo)
	dashboardService := services.NewDashboardService(teamRepo, playerRepo, cfg.CurrentRound)
	publicationService := metrics.InstrumentPublication(
		services.NewPublicationService(statsService, uploader, cfg.CurrentRound, logger), recorder)
	drafts := services.NewDraftStore(cfg.CurrentRound)

	recorder.Gauge("open_drafts", "Match drafts held in memory.", func() float64 { return float64(drafts.Len()) })
	recorder.Gauge("live_clients", "Clients listening for live results.", func() float64 {
		return float64(hub.RoomSize(services.ResultsRoom))
	})

	go func() {
		ticker := time.NewTicker(draftSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := drafts.Sweep(draftMaxIdle); n > 0 {
					logger.Info("stale drafts removed", slog.Int("removed", n), slog.Int("remaining", drafts.Len()))
				}
			}
		}
	}()

	dashboardHandler := handlers.NewDashboardHandler(dashboardService, referenceService)
	statsHandler := handlers.NewStatsHandler(statsService, publicationService)
	fixtureHandler := handlers.NewFixtureHandler(fixtureService)
	registrationHandler := handlers.NewRegistrationHandler(drafts, registrationService, referenceService)
	webSocketHandler := handlers.NewWebSocketHandler(hub, cfg.CORSAllowedOrigins, logger)

	opts := api.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Metrics:        recorder,
		Ready:          db.ReadinessCheck(dbConn, 2*time.Second),
	}
	if cfg.JWTSecretKey != "" {
		opts.Auth = middleware.NewAuthenticator(cfg.JWTSecretKey)
	} else {
		logger.Warn("JWT_SECRET_KEY is empty, write routes are unauthenticated")
	}

	router := chi.NewRouter()
	api.SetupRoutes(router, opts, dashboardHandler, statsHandler, fixtureHandler, registrationHandler, webSocketHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stop()
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		// Websocket connections are hijacked and not tracked by Shutdown.
		stop()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
