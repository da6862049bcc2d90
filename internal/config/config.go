// Package config loads configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Provider selects which backend drives character dialogue.
type Provider string

const (
	ProviderGemini  Provider = "gemini"
	ProviderGrok    Provider = "grok"
	ProviderOpenAI  Provider = "openai"
	ProviderOffline Provider = "offline"
)

// Config holds runtime settings. Missing API keys are not fatal; the
// game degrades to canned dialogue and bundled art.
type Config struct {
	Provider     Provider
	GoogleAPIKey string
	XAIAPIKey    string
	OpenAIAPIKey string
	LLMModel     string
	ImageModel   string
	Seed         int64
}

// Load reads env vars and applies defaults.
func Load() Config {
	cfg := Config{
		Provider:     Provider(os.Getenv("DIALOGUE_PROVIDER")),
		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		XAIAPIKey:    os.Getenv("XAI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		LLMModel:     os.Getenv("LLM_MODEL"),
		ImageModel:   os.Getenv("IMAGE_MODEL"),
		Seed:         getEnvInt64("GAME_SEED", 0),
	}

	if cfg.Provider == "" {
		switch {
		case cfg.GoogleAPIKey != "":
			cfg.Provider = ProviderGemini
		case cfg.XAIAPIKey != "":
			cfg.Provider = ProviderGrok
		case cfg.OpenAIAPIKey != "":
			cfg.Provider = ProviderOpenAI
		default:
			cfg.Provider = ProviderOffline
		}
	}

	if cfg.LLMModel == "" {
		switch cfg.Provider {
		case ProviderGrok:
			cfg.LLMModel = "grok-4-fast"
		case ProviderOpenAI:
			cfg.LLMModel = "gpt-4o-mini"
		default:
			cfg.LLMModel = "gemini-2.5-flash"
		}
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = "gemini-2.5-flash-image"
	}

	return cfg
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}
