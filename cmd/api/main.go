package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/planline/planboard/internal/api"
	"github.com/planline/planboard/internal/api/handlers"
	"github.com/planline/planboard/internal/services"
	"github.com/planline/planboard/internal/store"
	"github.com/planline/planboard/internal/ws"
	"github.com/planline/planboard/pkg/config"
	"github.com/planline/planboard/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting Planboard API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	// In-memory entity store
	st := store.New(store.WithActor(cfg.BoardActor))
	if cfg.SeedDemo {
		st.SeedDemo()
		log.Info("demo board seeded")
	}

	// Live update hub
	hub := ws.NewHub()

	svc := services.NewBoardService(st, hub, cfg.BoardActor)

	// Asynq client for export jobs
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer asynqClient.Close()

	// Create router with dependencies
	router := api.NewRouter(api.Dependencies{
		BoardHandler:       handlers.NewBoardHandler(svc),
		ProjectsHandler:    handlers.NewProjectsHandler(svc),
		ResourcesHandler:   handlers.NewResourcesHandler(svc),
		AssignmentsHandler: handlers.NewAssignmentsHandler(svc),
		ExportHandler:      handlers.NewExportHandler(asynqClient),
		Hub:                hub,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}
