package service

import (
	"context"
	"fmt"
	"strings"
)

const (
	PROVIDER_GEMINI = "gemini"
	PROVIDER_OPENAI = "openai"
)

// AIService sends a single prompt to a text generation model and returns its reply.
type AIService interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

type AIServiceConfig struct {
	Provider   string
	Model      string
	APIKey     string
	AIEndpoint string // base URL, only used by the openai provider
}

// NewAIService builds the client for the configured provider.
func NewAIService(cfg AIServiceConfig) (AIService, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", PROVIDER_GEMINI:
		return NewGeminiService(cfg.APIKey, cfg.Model)
	case PROVIDER_OPENAI:
		return NewOpenAIService(cfg.AIEndpoint, cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}
