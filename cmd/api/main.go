package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pantrychef/config"
	"pantrychef/internal/database"
	"pantrychef/internal/server"
	"pantrychef/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	if err := database.Seed(db); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	llm, err := service.NewLLMClient(cfg)
	if err != nil {
		logger.Fatal("failed to configure generative API client", zap.Error(err))
	}

	// The normalization cache is best-effort; an unreachable Redis only
	// costs repeated upstream calls.
	cache, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, normalization cache disabled", zap.Error(err))
		cache = nil
	}

	srv := server.New(cfg, db, llm, cache, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.Stringer("signal", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
