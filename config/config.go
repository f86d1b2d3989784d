package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings read from the environment.
// Missing credentials are a configuration error, fatal to startup and
// distinct from any data-absence condition at run time.
type Config struct {
	AppPort          int
	SerpApiKey       string
	OpenAIKey        string
	AnalysisFilePath string
}

// Load reads the environment (after an optional .env file) into a Config.
func Load() (*Config, error) {
	// Absence of a .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	appPort, err := strconv.Atoi(getEnvDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	serpKey, err := getEnv("SERPAPI_API_KEY")
	if err != nil {
		return nil, err
	}
	openAIKey, err := getEnv("OPENAI_API_KEY")
	if err != nil {
		return nil, err
	}

	return &Config{
		AppPort:          appPort,
		SerpApiKey:       serpKey,
		OpenAIKey:        openAIKey,
		AnalysisFilePath: os.Getenv("ANALYSIS_CONFIG_PATH"),
	}, nil
}

func getEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("environment variable %s is required but not set", key)
	}
	return value, nil
}

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
