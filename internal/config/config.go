package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrMissingCredentials indicates SPEECH_KEY or SPEECH_REGION is absent.
// The Azure Speech service cannot be reached without both.
var ErrMissingCredentials = errors.New("SPEECH_KEY and SPEECH_REGION environment variables are required")

// Config holds the session configuration for one CLI run.
// Constructed once at startup and immutable afterwards.
type Config struct {
	// Azure Speech service credentials
	SpeechKey    string `envconfig:"SPEECH_KEY"`
	SpeechRegion string `envconfig:"SPEECH_REGION"`

	// Default voice used when no --voice flag is given.
	// Accepts a fully-qualified Azure voice name (e.g. en-US-AvaNeural).
	DefaultVoice string `envconfig:"VOICE_NAME" default:""`

	// Observability configuration
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"` // Log level: debug, info, warn, error
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"true"`
}

// Load reads configuration from environment variables.
// It first attempts to load from .env file if it exists, then from environment.
// No network call happens here; validation is purely local presence checks.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return LoadFromEnv()
}

// LoadFromEnv loads configuration directly from environment variables
// without attempting to load .env file.
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.SpeechKey == "" || cfg.SpeechRegion == "" {
		return nil, fmt.Errorf("%w: set them in your .env file or environment", ErrMissingCredentials)
	}

	return &cfg, nil
}

// GetEnv returns the value of an environment variable or a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
