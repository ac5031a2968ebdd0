package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"guardian/internal/assist"
	"guardian/internal/gateway/config"
	"guardian/internal/gateway/handler"
	"guardian/internal/gateway/server"
	"guardian/internal/llmclient"
)

type App struct {
	server *server.Server
	log    *zap.Logger
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	client, err := newClient(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to build model client: %w", err)
	}

	dispatcher := assist.NewDispatcher(client, log)
	assistHandler := handler.NewAssistHandler(dispatcher, log)
	feedHandler := handler.NewFeedHandler()

	mux := server.NewMux(assistHandler, feedHandler)
	srv := server.New(cfg.Port, mux)

	return &App{server: srv, log: log}, nil
}

// newClient selects the completion backend. The Minimax client defers its
// credential check to call time so a missing key surfaces as a per-request
// configuration error instead of preventing startup; the Gemini SDK needs
// its key at construction.
func newClient(ctx context.Context, cfg config.LLMConfig) (llmclient.Client, error) {
	switch cfg.Provider {
	case "minimax":
		return llmclient.NewMinimaxClient(cfg.MinimaxKey, cfg.Model), nil
	case "gemini":
		return llmclient.NewGeminiClient(ctx, cfg.GeminiKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	_ = a.log.Sync()
	return err
}
