package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/hireloop/intervu-backend/internal/config"
	"github.com/hireloop/intervu-backend/internal/database"
	"github.com/hireloop/intervu-backend/internal/genai"
	"github.com/hireloop/intervu-backend/internal/handler"
	"github.com/hireloop/intervu-backend/internal/interview"
	"github.com/hireloop/intervu-backend/internal/logger"
	"github.com/hireloop/intervu-backend/internal/question"
	"github.com/hireloop/intervu-backend/internal/resume"
	"github.com/hireloop/intervu-backend/internal/router"
	"github.com/hireloop/intervu-backend/internal/store"
	"github.com/hireloop/intervu-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("storage", cfg.StorageDriver).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Intervu Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Initialize Storage ────────────────────────────────────────────
	st, cleanup, err := buildStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("Failed to initialize storage")
	}
	defer cleanup()

	// ─── Initialize AI Client ──────────────────────────────────────────
	// Nil when no API key is configured: generation then serves the static
	// bank only and scoring uses the deterministic fallback.
	var ai genai.Client
	if cfg.GoogleAPIKey != "" {
		ai = genai.NewGemini(cfg.GoogleAPIKey, cfg.GeminiModel, cfg.GeminiTimeout, log)
		log.Info().Str("model", cfg.GeminiModel).Msg("Gemini client enabled")
	} else {
		log.Warn().Msg("GOOGLE_API_KEY not set; resume-grounded generation disabled")
	}

	// ─── Initialize Services ──────────────────────────────────────────
	provider := question.NewProvider(ai, log)
	evaluator := interview.NewEvaluator(ai, log)
	summarizer := interview.NewSummarizer(ai, log)
	interviewService := interview.NewService(st, provider, evaluator, summarizer, log)
	resumeService := resume.NewService(cfg, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Interview: handler.NewInterviewHandler(interviewService, provider),
		Candidate: handler.NewCandidateHandler(interviewService),
		Resume:    handler.NewResumeHandler(resumeService),
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// buildStore selects the session/candidate store backend from config. The
// returned cleanup closes any underlying connection pool.
func buildStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, func(), error) {
	switch cfg.StorageDriver {
	case "memory":
		return store.NewMemoryStore(), func() {}, nil

	case "file":
		fs, err := store.NewFileStore(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil

	case "postgres":
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgresStore(pool), pool.Close, nil

	case "redis":
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER: %q", cfg.StorageDriver)
	}
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
