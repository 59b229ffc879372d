package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/eligify/eligify-backend/internal/config"
	"github.com/eligify/eligify-backend/internal/database"
	"github.com/eligify/eligify-backend/internal/eligibility"
	"github.com/eligify/eligify-backend/internal/handler"
	"github.com/eligify/eligify-backend/internal/logger"
	"github.com/eligify/eligify-backend/internal/repository"
	"github.com/eligify/eligify-backend/internal/router"
	"github.com/eligify/eligify-backend/internal/service"
	"github.com/eligify/eligify-backend/internal/validator"
	"github.com/eligify/eligify-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Eligify Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	examRepo := repository.NewExamRepository(pool)
	checkRepo := repository.NewCheckRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	catalogService := service.NewCatalogService(examRepo, rdb, cfg, log)
	eligibilityService := service.NewEligibilityService(catalogService, eligibility.NewEngine(), rdb, log)
	marksheetService := service.NewMarksheetService(cfg, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Exam:        handler.NewExamHandler(catalogService),
		Eligibility: handler.NewEligibilityHandler(eligibilityService),
		Marksheet:   handler.NewMarksheetHandler(marksheetService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	recorderWorker := worker.NewCheckRecorderWorker(checkRepo, rdb, log)
	go recorderWorker.Start(workerCtx)

	// ─── Prewarm Catalog Snapshot ─────────────────────────────────────
	// Publish the exam catalog into Redis BEFORE accepting traffic so the
	// first eligibility checks never rebuild the snapshot under load.
	if err := catalogService.Prewarm(ctx); err != nil {
		log.Warn().Err(err).Msg("Catalog prewarm failed")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the recorder worker and wait for the queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
