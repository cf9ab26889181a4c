package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL   string        `mapstructure:"DATABASE_URL"`
	ServerAddr    string        `mapstructure:"SERVER_ADDR"`
	ContentTable  string        `mapstructure:"CONTENT_TABLE"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
	WebhookSecret string        `mapstructure:"WEBHOOK_SECRET"`
	OTelEndpoint  string        `mapstructure:"OTEL_ENDPOINT"`
	OTelSample    float64       `mapstructure:"OTEL_SAMPLE_RATIO"`
	GinMode       string        `mapstructure:"GIN_MODE"`
}

// ErrMissingDatabaseURL is returned by Validate when no DSN is configured.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

var AppConfig *Config

// Viper only unmarshals keys it knows about, so every env key needs a default.
var defaults = map[string]any{
	"DATABASE_URL":      "",
	"SERVER_ADDR":       ":8080",
	"CONTENT_TABLE":     "portfolio_content",
	"CACHE_TTL":         time.Minute,
	"WEBHOOK_SECRET":    "",
	"OTEL_ENDPOINT":     "",
	"OTEL_SAMPLE_RATIO": 1.0,
	"GIN_MODE":          "release",
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() error {
	cfg, err := Load(viper.New(), ".")
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// Load reads the configuration using v, looking for a .env file in path.
func Load(v *viper.Viper, path string) (*Config, error) {
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	switch c.GinMode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	if c.OTelSample < 0 || c.OTelSample > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATIO must be within [0, 1], got %v", c.OTelSample)
	}
	return nil
}
