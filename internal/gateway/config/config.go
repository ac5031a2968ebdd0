package config

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string
	LLM  LLMConfig
}

type LLMConfig struct {
	// Provider selects the completion backend: "minimax" (default) or "gemini".
	Provider string
	// Model overrides the provider's fixed default model when non-empty.
	Model      string
	MinimaxKey string
	GeminiKey  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port: *port,
		Env:  env,
		LLM:  loadLLMConfig(),
	}, nil
}

func loadLLMConfig() LLMConfig {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	if provider == "" {
		provider = "minimax"
	}
	return LLMConfig{
		Provider:   provider,
		Model:      strings.TrimSpace(os.Getenv("LLM_MODEL")),
		MinimaxKey: strings.TrimSpace(os.Getenv("MINIMAX_API_KEY")),
		GeminiKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}
}
