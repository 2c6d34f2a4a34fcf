package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/hireready/interview-api/internal/api"
	"github.com/hireready/interview-api/internal/cache"
	"github.com/hireready/interview-api/internal/config"
	"github.com/hireready/interview-api/internal/content"
	"github.com/hireready/interview-api/internal/database"
	"github.com/hireready/interview-api/internal/interview"
	"github.com/hireready/interview-api/internal/llm"
	"github.com/hireready/interview-api/internal/queue"
	"github.com/hireready/interview-api/internal/speech"
	"github.com/hireready/interview-api/internal/speech/stt"
	"github.com/hireready/interview-api/internal/speech/tts"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// The content store is the product; refuse to start without it.
	db, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, cfg.Database.MigrationsPath); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	// Redis backs the read cache and the ingestion queue; both degrade
	// gracefully when it is down.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, running without cache", "error", err)
	}
	defer rdb.Close()

	// No working model, no server.
	gateway, err := llm.NewGateway(cfg.LLM)
	if err != nil {
		slog.Error("LLM gateway init failed", "error", err)
		os.Exit(1)
	}

	sttProvider := newSTTProvider(cfg.STT)
	ttsProvider := newTTSProvider(cfg.TTS)
	synth := speech.NewSynthesizer(ttsProvider, cfg.Content.ChunkLimit, cfg.TTS.Voice)

	store := content.NewPgStore(db)
	assistant := content.NewAssistant(store, gateway, cache.New(rdb), cfg.LLM.DefaultModel)

	sessions := interview.NewManager(interview.DefaultQuestions)
	interviewSvc := interview.NewService(sessions, sttProvider, synth, gateway, cfg.LLM.DefaultModel)

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	router := api.NewRouter(api.Deps{
		DB:           db,
		Redis:        rdb,
		Config:       cfg,
		Assistant:    assistant,
		Gateway:      gateway,
		InterviewSvc: interviewSvc,
		QueueClient:  queueClient,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting API server",
			"addr", cfg.Addr(),
			"llm", cfg.LLM.DefaultProvider,
			"stt", sttProvider.Name(),
			"tts", ttsProvider.Name(),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}

func newSTTProvider(cfg config.STTConfig) stt.Provider {
	if cfg.Backend == "openai" {
		return stt.NewWhisper(stt.WhisperConfig{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		})
	}
	return stt.NewWhisper(stt.WhisperConfig{
		BaseURL: cfg.LocalBaseURL,
	})
}

func newTTSProvider(cfg config.TTSConfig) tts.Provider {
	if cfg.Backend == "openai" {
		return tts.NewOpenAI(tts.OpenAIConfig{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		})
	}
	return tts.NewPiper(tts.PiperConfig{
		BinPath:    cfg.LocalBinPath,
		ModelPath:  cfg.LocalModel,
		SampleRate: cfg.SampleRate,
	})
}
