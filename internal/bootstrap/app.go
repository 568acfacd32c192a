package bootstrap

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"docqa/internal/ai"
	"docqa/internal/config"
	"docqa/internal/store"
)

type App struct {
	Config    *config.Config
	Store     *store.DocumentStore
	LLMClient *ai.OpenAICompatibleClient

	StartedAt time.Time
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	if cfg.LLM.APIKey == "" {
		log.Warn().Msg("LLM_API_KEY is not set, /ask requests will fail against the provider")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("llm_model", cfg.LLM.Model).
		Str("llm_base_url", cfg.LLM.BaseURL).
		Msg("configuration loaded")

	return &App{
		Config:    cfg,
		Store:     store.NewDocumentStore(),
		LLMClient: ai.NewOpenAICompatibleClient(),
		StartedAt: time.Now(),
	}, nil
}

// ChatConfig returns the provider settings for chat completions.
func (a *App) ChatConfig() ai.ChatConfig {
	return ai.ChatConfig{
		BaseURL: a.Config.LLM.BaseURL,
		APIKey:  a.Config.LLM.APIKey,
		Model:   a.Config.LLM.Model,
	}
}
