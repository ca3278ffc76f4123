package server

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pantrychef/config"
	"pantrychef/internal/api"
	"pantrychef/internal/router"
	"pantrychef/internal/service"
	"pantrychef/internal/store"
)

// Server wires the store, the generative services and the HTTP router
// into a single listener.
type Server struct {
	cfg    *config.Config
	http   *http.Server
	logger *zap.Logger
}

// New creates a server instance. cache may be nil when Redis is not
// available; the normalization service then runs uncached.
func New(cfg *config.Config, db *gorm.DB, llm service.ChatCaller, cache *redis.Client, logger *zap.Logger) *Server {
	pantryStore := store.NewGormStore(db)
	factory := service.NewServiceFactory(llm, cache)

	pantryHandler := api.NewPantryHandler(pantryStore, logger)
	llmHandler := api.NewLLMHandler(factory, logger)

	engine := router.Setup(pantryHandler, llmHandler, logger)

	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
		logger: logger,
	}
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
