// Package apiserver implements the kinetra API server application.
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kinetra/kinetra/internal/apiserver/config"
	"github.com/kinetra/kinetra/internal/apiserver/handler/middleware"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant"
	"github.com/kinetra/kinetra/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type apiServer struct {
	engine *gin.Engine
	server *http.Server

	assistantModule *assistant.Module
}

type preparedAPIServer struct {
	*apiServer
}

func createAPIServer(cfg *config.Config) (*apiServer, error) {
	// Initialize assistant module (K8S-style: Config → Complete → New).
	assistantCfg := &assistant.Config{
		Provider:          cfg.AIOptions.Provider,
		AnthropicAPIKey:   cfg.AIOptions.AnthropicAPIKey,
		AnthropicModel:    cfg.AIOptions.AnthropicModel,
		OpenAIAPIKey:      cfg.AIOptions.OpenAIAPIKey,
		OpenAIModel:       cfg.AIOptions.OpenAIModel,
		OpenAIVisionModel: cfg.AIOptions.OpenAIVisionModel,
		OpenAIBaseURL:     cfg.AIOptions.OpenAIBaseURL,
		StoreType:         cfg.StoreOptions.Type,
		BoltDBPath:        cfg.StoreOptions.BoltDBPath,
	}
	assistantModule, err := assistantCfg.Complete().New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant module: %w", err)
	}
	logger.Info("[APIServer] assistant module initialized successfully")

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	server := &apiServer{
		engine: engine,
		server: &http.Server{
			Addr:    cfg.ServingOptions.Addr(),
			Handler: engine,
		},
		assistantModule: assistantModule,
	}

	return server, nil
}

func (s *apiServer) PrepareRun(cfg *config.Config) preparedAPIServer {
	initRouter(s.engine, &routerDeps{
		assistantModule: s.assistantModule,
		authConfig: &middleware.AuthConfig{
			Enabled: cfg.AuthOptions.Enabled,
			Token:   cfg.AuthOptions.Token,
		},
	})
	return preparedAPIServer{s}
}

func (s preparedAPIServer) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("[APIServer] serving on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.assistantModule.Close()
		return err
	case sig := <-quit:
		logger.Info("[APIServer] received signal %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		logger.Error("[APIServer] graceful shutdown failed: %v", err)
	}
	return s.assistantModule.Close()
}
