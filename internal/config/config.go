package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Client  ClientConfig
	Retry   RetryConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	URL   string
	Token string
}

type ClientConfig struct {
	UserID string
	DBPath string
}

type RetryConfig struct {
	Attempts    int
	Backoff     time.Duration
	JitterRatio float64
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	godotenv.Load()

	backoff, err := time.ParseDuration(getEnv("SHARESYNC_RETRY_BACKOFF", "350ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHARESYNC_RETRY_BACKOFF: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			URL:   getEnv("SHARESYNC_SERVER_URL", "http://localhost:8080"),
			Token: getEnv("SHARESYNC_TOKEN", ""),
		},
		Client: ClientConfig{
			UserID: getEnv("SHARESYNC_USER_ID", ""),
			DBPath: getEnv("SHARESYNC_DB_PATH", "sharesync-client.db"),
		},
		Retry: RetryConfig{
			Attempts:    getEnvAsInt("SHARESYNC_RETRY_ATTEMPTS", 3),
			Backoff:     backoff,
			JitterRatio: getEnvAsFloat("SHARESYNC_RETRY_JITTER", 0.25),
		},
		Logging: LoggingConfig{
			Level: getEnv("SHARESYNC_LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
