// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"normalai/internal/ai"
	"normalai/internal/storage"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible) backs the shared rate limiter. Empty host
	// means an in-process limiter.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// AI provider settings
	AIProvider       string // "openai", "gemini", "claude", "mistral"
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	OpenAIImageModel string
	GeminiAPIKey     string
	GeminiBaseURL    string
	GeminiModel      string
	ClaudeAPIKey     string
	ClaudeBaseURL    string
	ClaudeModel      string
	MistralAPIKey    string
	MistralBaseURL   string
	MistralModel     string

	// Object storage
	StorageDriver string // "s3", "minio"
	S3Endpoint    string
	S3Region      string
	S3AccessKey   string
	S3SecretKey   string
	S3Bucket      string
	S3PublicURL   string
	S3Secure      bool

	// Pipeline
	ArchetypesDir      string
	ArchetypeMatching  bool
	ModerateInput      bool // screen user text before paid completions
	MockupConcurrency  int
	RateLimitPerMinute int
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "normalai"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "normalai"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AIProvider:       envOrDefault("AI_PROVIDER", "openai"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:      envOrDefault("OPENAI_MODEL", ai.DefaultOpenAIModel),
		OpenAIImageModel: envOrDefault("OPENAI_IMAGE_MODEL", ai.DefaultOpenAIImageModel),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:    os.Getenv("GEMINI_BASE_URL"),
		GeminiModel:      envOrDefault("GEMINI_MODEL", ai.DefaultGeminiModel),
		ClaudeAPIKey:     os.Getenv("CLAUDE_API_KEY"),
		ClaudeBaseURL:    os.Getenv("CLAUDE_BASE_URL"),
		ClaudeModel:      envOrDefault("CLAUDE_MODEL", ai.DefaultClaudeModel),
		MistralAPIKey:    os.Getenv("MISTRAL_API_KEY"),
		MistralBaseURL:   os.Getenv("MISTRAL_BASE_URL"),
		MistralModel:     envOrDefault("MISTRAL_MODEL", ai.DefaultMistralModel),

		StorageDriver: envOrDefault("STORAGE_DRIVER", storage.DriverS3),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		S3Region:      envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		S3Bucket:      envOrDefault("S3_BUCKET", storage.DefaultBucket),
		S3PublicURL:   os.Getenv("S3_PUBLIC_URL"),

		ArchetypesDir: os.Getenv("ARCHETYPES_DIR"),
	}

	var err error
	if cfg.S3Secure, err = envBool("S3_SECURE", true); err != nil {
		return nil, err
	}
	if cfg.ArchetypeMatching, err = envBool("ARCHETYPE_MATCHING", false); err != nil {
		return nil, err
	}
	if cfg.ModerateInput, err = envBool("MODERATE_INPUT", true); err != nil {
		return nil, err
	}
	if cfg.MockupConcurrency, err = envInt("MOCKUP_CONCURRENCY", 1); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = envInt("RATE_LIMIT_PER_MINUTE", 30); err != nil {
		return nil, err
	}

	if cfg.MockupConcurrency < 1 {
		return nil, fmt.Errorf("MOCKUP_CONCURRENCY must be at least 1")
	}
	if cfg.RateLimitPerMinute < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	switch cfg.StorageDriver {
	case storage.DriverS3, storage.DriverMinIO:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", storage.DriverS3, storage.DriverMinIO, cfg.StorageDriver)
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction reports whether error details must be hidden from clients.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UseValkey reports whether a shared Valkey counter is configured.
func (c *Config) UseValkey() bool {
	return c.ValkeyHost != ""
}

// AIProviders returns per-provider settings for ai.NewRegistry.
func (c *Config) AIProviders() map[string]ai.ProviderConfig {
	return map[string]ai.ProviderConfig{
		"openai": {
			APIKey:     c.OpenAIAPIKey,
			Model:      c.OpenAIModel,
			ImageModel: c.OpenAIImageModel,
			BaseURL:    c.OpenAIBaseURL,
		},
		"gemini": {
			APIKey:  c.GeminiAPIKey,
			Model:   c.GeminiModel,
			BaseURL: c.GeminiBaseURL,
		},
		"claude": {
			APIKey:  c.ClaudeAPIKey,
			Model:   c.ClaudeModel,
			BaseURL: c.ClaudeBaseURL,
		},
		"mistral": {
			APIKey:  c.MistralAPIKey,
			Model:   c.MistralModel,
			BaseURL: c.MistralBaseURL,
		},
	}
}

// Storage returns the object storage settings.
func (c *Config) Storage() storage.Config {
	return storage.Config{
		Driver:    c.StorageDriver,
		Endpoint:  c.S3Endpoint,
		Region:    c.S3Region,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Bucket:    c.S3Bucket,
		PublicURL: c.S3PublicURL,
		Secure:    c.S3Secure,
	}
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt reads an integer environment variable.
func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, v)
	}
	return n, nil
}

// envBool reads a boolean environment variable ("true", "1", "false", ...).
func envBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, v)
	}
	return b, nil
}
