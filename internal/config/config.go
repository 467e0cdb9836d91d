package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	LogLevel     string
	LogFormat    string
	DateFormat   string
	ScenarioPath string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// Log level, parsed later by the logger (default: info)
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// Log format: text or json (default: text)
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be \"text\" or \"json\"", cfg.LogFormat)
	}

	// Date layout for scenario scripts and reports (default: dd/MM/yyyy)
	cfg.DateFormat = getEnv("DATE_FORMAT", "02/01/2006")

	// Optional scenario script; the built-in demo runs when unset
	cfg.ScenarioPath = getEnv("SCENARIO_PATH", "")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
