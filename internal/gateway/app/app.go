package app

import (
	"context"
	"fmt"
	"log"

	"fantassist/internal/assistant"
	"fantassist/internal/gateway/config"
	"fantassist/internal/gateway/handler"
	"fantassist/internal/gateway/server"
	"fantassist/internal/llmclient"
	"fantassist/internal/roster"
	"fantassist/internal/session"
)

type App struct {
	server *server.Server
	llm    llmclient.TextClient
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// A missing or bad API key is not fatal at startup: the app comes
	// up and the failure surfaces on the first model call.
	var llm llmclient.TextClient
	llm, err = llmclient.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Printf("gemini client unavailable: %v", err)
		llm = &llmclient.Unavailable{Reason: err}
	}

	store := roster.NewStore()
	sess := session.New(store, assistant.New(llm))

	h := handler.New(store, sess)
	mux := server.NewMux(h)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
		llm:    llm,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.llm.Close(); err != nil {
		log.Printf("close llm client: %v", err)
	}
	return a.server.Shutdown(ctx)
}
