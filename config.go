package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for SendMo.
type Config struct {
	Port             string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	EasyPostAPIKey   string
	MarkupMultiplier float64
	MaxDisplayPrice  float64
	RedisURL         string
	QuoteCacheTTL    time.Duration
	LabelSNSTopicARN string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8094"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		EasyPostAPIKey:   os.Getenv("EASYPOST_API_KEY"),
		MarkupMultiplier: getEnvFloat("MARKUP_MULTIPLIER", 1.15),
		MaxDisplayPrice:  getEnvFloat("MAX_DISPLAY_PRICE", 200.0),
		RedisURL:         os.Getenv("REDIS_URL"),
		QuoteCacheTTL:    getEnvDuration("QUOTE_CACHE_TTL", 5*time.Minute),
		LabelSNSTopicARN: os.Getenv("LABEL_SNS_TOPIC_ARN"),
	}

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" || cfg.PostgresHost == "" {
		return nil, fmt.Errorf("database config incomplete")
	}
	if cfg.MarkupMultiplier < 1.0 {
		return nil, fmt.Errorf("MARKUP_MULTIPLIER must be at least 1.0, got %v", cfg.MarkupMultiplier)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
