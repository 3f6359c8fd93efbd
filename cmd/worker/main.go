package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/planline/planboard/internal/queue/tasks"
	"github.com/planline/planboard/internal/store"
	"github.com/planline/planboard/pkg/config"
	"github.com/planline/planboard/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		},
		asynq.Config{
			Concurrency: cfg.AsynqConcurrency,
		},
	)

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		log.Fatal("failed to create export dir", zap.Error(err))
	}

	// The worker renders from its own board snapshot. With no shared
	// persistence the export reflects the seed data; a durable backend would
	// replace this with a loaded snapshot.
	st := store.New(store.WithActor(cfg.BoardActor))
	if cfg.SeedDemo {
		st.SeedDemo()
	}

	handler := tasks.NewExportTaskHandler(st, cfg.ExportDir)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBoardExport, handler.HandleExport)

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("asynq worker starting", zap.Int("concurrency", cfg.AsynqConcurrency))
		if err := srv.Run(mux); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.L().Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.L().Error("worker stopped with error", zap.Error(err))
	}

	srv.Shutdown()
}
