package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/certlab/certquiz-backend/internal/config"
	"github.com/certlab/certquiz-backend/internal/database"
	"github.com/certlab/certquiz-backend/internal/handler"
	"github.com/certlab/certquiz-backend/internal/llm"
	"github.com/certlab/certquiz-backend/internal/logger"
	"github.com/certlab/certquiz-backend/internal/repository"
	"github.com/certlab/certquiz-backend/internal/router"
	"github.com/certlab/certquiz-backend/internal/service"
	"github.com/certlab/certquiz-backend/internal/validator"
	"github.com/certlab/certquiz-backend/internal/worker"
	"github.com/rs/zerolog"
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
		Msg("Starting CertQuiz Backend")

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

	// ─── Initialize Question Generator ─────────────────────────────────
	// Without an API key the quiz service runs entirely on the built-in
	// question bank.
	var provider llm.Provider
	if cfg.OpenAIAPIKey != "" {
		provider, err = llm.NewOpenAIProvider(llm.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize OpenAI provider")
		}
		log.Info().Str("model", provider.ModelID()).Msg("Question generation enabled")
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set — serving quizzes from the question bank")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	historyRepo := repository.NewHistoryRepository(pool)
	contactRepo := repository.NewContactRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	userService := service.NewUserService(userRepo, authService)
	quizService := service.NewQuizService(provider, rdb, cfg, log)
	resultService := service.NewResultService(pool, userRepo, historyRepo, rdb, log)
	historyService := service.NewHistoryService(historyRepo, rdb, log)
	contactService := service.NewContactService(contactRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(userService, authService),
		Quiz:    handler.NewQuizHandler(quizService),
		Result:  handler.NewResultHandler(resultService),
		History: handler.NewHistoryHandler(historyService),
		Contact: handler.NewContactHandler(contactService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	statsWorker := worker.NewStatsWorker(historyRepo, rdb, log)
	go statsWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

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

	// 2. Stop background workers and wait for the queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
