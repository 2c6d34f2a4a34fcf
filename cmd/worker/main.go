package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/hireready/interview-api/internal/config"
	"github.com/hireready/interview-api/internal/content"
	"github.com/hireready/interview-api/internal/database"
	"github.com/hireready/interview-api/internal/llm"
	"github.com/hireready/interview-api/internal/queue"
	"github.com/hireready/interview-api/internal/queue/workers"
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

	db, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	gateway, err := llm.NewGateway(cfg.LLM)
	if err != nil {
		slog.Error("LLM gateway init failed", "error", err)
		os.Exit(1)
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 4,
		},
	)

	store := content.NewPgStore(db)
	parser := content.NewFilenameParser(cfg.Content.KnownCompanies)
	ingestWorker := workers.NewIngestWorker(store, gateway, parser, cfg.LLM.EmbeddingModel)

	registry := queue.NewHandlersRegistry()
	registry.Register(queue.TypeContentIngest, asynq.HandlerFunc(ingestWorker.ProcessTask))

	slog.Info("starting ingestion worker", "concurrency", 4)
	if err := srv.Run(registry.Mux()); err != nil {
		slog.Error("worker error", "error", err)
		os.Exit(1)
	}
}
