package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Provider ProviderConfig `mapstructure:"provider"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// ProviderConfig selects the conversational backend: gemini (default),
// openai, or mock for offline development.
type ProviderConfig struct {
	Name string `mapstructure:"name"`
}

type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// LoadConfig reads configuration from an optional YAML file and the
// environment. A missing file is not an error; env-only deployments are
// the common case. A missing provider credential is also not an error
// here: it surfaces on the first chat initialization, leaving the
// onboarding flow functional.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", "8080")
	v.SetDefault("provider.name", "gemini")
	v.SetDefault("gemini.model", "gemini-3-flash-preview")
	v.SetDefault("gemini.temperature", 0.7)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("openai.max_tokens", 1024)

	// Enable environment variable support
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Environment overrides for secrets and deployment settings
	if key := v.GetString("GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if key := v.GetString("OPENAI_API_KEY"); key != "" {
		config.OpenAI.APIKey = key
	}
	if port := v.GetString("PORT"); port != "" {
		config.Server.Port = port
	}
	if name := v.GetString("CHAT_PROVIDER"); name != "" {
		config.Provider.Name = name
	}

	return &config, nil
}
