package config

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	API         APIConfig
	Credentials CredentialsConfig
	Environment string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CredentialsConfig struct {
	Path string
}

func Load() Config {
	return Config{
		API: APIConfig{
			BaseURL: getenv("API_URL", "http://localhost:8000"),
			Timeout: getDuration("HTTP_TIMEOUT", 10*time.Second),
		},
		Credentials: CredentialsConfig{
			Path: getenv("TASKMAN_CREDENTIALS", defaultCredentialsPath()),
		},
		Environment: getenv("ENVIRONMENT", "development"),
	}
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".taskman", "credentials.json")
	}
	return filepath.Join(home, ".taskman", "credentials.json")
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}
