package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mystudbud/studbud/internal/provider"
	"github.com/mystudbud/studbud/internal/server"
	"github.com/mystudbud/studbud/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load .env if present, then configuration
	_ = godotenv.Load()

	path := os.Getenv("STUDBUD_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", path))
	}

	// Initialize the chat provider. A missing credential is not fatal for
	// the process: onboarding stays usable and the condition is surfaced
	// on the first chat initialization attempt.
	chatProvider := buildProvider(cfg, logger)

	srv := server.New(chatProvider, logger)
	logger.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := srv.Run(cfg.Server.Port); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

func buildProvider(cfg *config.Config, logger *zap.Logger) provider.ChatProvider {
	switch cfg.Provider.Name {
	case "openai":
		p, err := provider.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.Temperature, cfg.OpenAI.MaxTokens)
		if err != nil {
			logger.Warn("OpenAI provider unavailable, chat features disabled", zap.Error(err))
			return nil
		}
		logger.Info("Using OpenAI provider", zap.String("model", p.Model()))
		return p
	case "mock":
		logger.Info("Using mock provider")
		return provider.NewMockProvider()
	default:
		p, err := provider.NewGeminiProvider(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Temperature)
		if err != nil {
			logger.Warn("Gemini provider unavailable, chat features disabled", zap.Error(err))
			return nil
		}
		logger.Info("Using Gemini provider", zap.String("model", p.Model()))
		return p
	}
}
