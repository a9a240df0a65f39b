package config

import (
	"errors"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type Config struct {
	DatabaseURL string
	Port        string
	LogLevel    string
	CorsConfig  cors.Options
}

// Load reads configuration from the environment. A .env file is loaded first
// if present. DATABASE_URL has no fallback; without it the process must not
// start.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL must be set")
	}

	return &Config{
		DatabaseURL: databaseURL,
		Port:        getEnv("PORT", "5555"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CorsConfig:  CorsConfig(),
	}, nil
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func CorsConfig() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}
}
