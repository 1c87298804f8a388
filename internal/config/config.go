package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	GinMode       string
	FxBaseURL     string
	FxTimeout     time.Duration
	FxDefaultFrom string
	FxDefaultTo   string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		FxBaseURL:     getEnv("FX_BASE_URL", "https://api.frankfurter.dev/v1"),
		FxTimeout:     time.Duration(getEnvInt("FX_TIMEOUT_SECONDS", 8)) * time.Second,
		FxDefaultFrom: getEnv("FX_DEFAULT_FROM", "USD"),
		FxDefaultTo:   getEnv("FX_DEFAULT_TO", "BRL"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
