package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidCapacity        = errors.New("the table capacity has to be strictly positive")
	ErrInvalidEntryLifetime   = errors.New("the entry lifetime must not be negative")
	ErrInvalidCleanupInterval = errors.New("the cleanup interval has to be positive if entries expire")
)

// Config represents the application configuration structure
type Config struct {
	Environment     string        `default:"development"`
	LogLevel        string        `split_words:"true"`
	Capacity        int           `default:"64"`
	EntryLifetime   time.Duration `split_words:"true" default:"0"`
	CleanupInterval time.Duration `split_words:"true" default:"10s"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("ht", config); err != nil {
		return nil, errors.Wrap(err, "could not process the environment")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration values for consistency
func (config *Config) Validate() error {
	if config.Capacity <= 0 {
		return errors.Wrapf(ErrInvalidCapacity, "HT_CAPACITY=%d", config.Capacity)
	}
	if config.EntryLifetime < 0 {
		return errors.Wrapf(ErrInvalidEntryLifetime, "HT_ENTRY_LIFETIME=%s", config.EntryLifetime)
	}
	if config.Expires() && config.CleanupInterval <= 0 {
		return errors.Wrapf(ErrInvalidCleanupInterval, "HT_CLEANUP_INTERVAL=%s", config.CleanupInterval)
	}
	if _, err := config.Level(); err != nil {
		return err
	}
	return nil
}

// IsEnvProduction returns whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return strings.ToLower(config.Environment) == "production"
}

// Expires returns whether table entries are configured to expire
func (config *Config) Expires() bool {
	return config.EntryLifetime > 0
}

// Level returns the configured log level.
// If no level is configured explicitly, production environments log on info level and all others on debug level.
func (config *Config) Level() (zerolog.Level, error) {
	if config.LogLevel == "" {
		if config.IsEnvProduction() {
			return zerolog.InfoLevel, nil
		}
		return zerolog.DebugLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "HT_LOG_LEVEL=%s", config.LogLevel)
	}
	return level, nil
}
