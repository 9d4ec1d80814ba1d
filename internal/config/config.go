package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
)

// Reference sources
const (
	ReferenceSourceFile  = "file"
	ReferenceSourceRedis = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Redis     RedisConfig
	Reference ReferenceConfig
	Export    ExportConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL"`

	// DraftTTL expires stored drafts; zero keeps them forever
	DraftTTL time.Duration `env:"SAVEGEN_DRAFT_TTL"`
}

// ReferenceConfig selects where display-name tables come from
type ReferenceConfig struct {
	Source string `env:"SAVEGEN_REFERENCE_SOURCE" envDefault:"file"`
	File   string `env:"SAVEGEN_REFERENCE_FILE"`
}

// ExportConfig holds defaults for the export command
type ExportConfig struct {
	OutputDir string `env:"SAVEGEN_OUTPUT_DIR" envDefault:"."`
	Strict    bool   `env:"SAVEGEN_STRICT"`
	Quiet     bool   `env:"SAVEGEN_QUIET"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return LoadFrom(env.ToMap(os.Environ()))
}

// LoadFrom loads configuration from the given variables instead of the
// process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that depend on each other
func (c *Config) Validate() error {
	switch c.Reference.Source {
	case ReferenceSourceFile:
	case ReferenceSourceRedis:
		if c.Redis.URL == "" {
			return dnderr.InvalidArgument("REDIS_URL is required when SAVEGEN_REFERENCE_SOURCE is redis")
		}
	default:
		return dnderr.InvalidArgumentf("unknown SAVEGEN_REFERENCE_SOURCE %q", c.Reference.Source)
	}

	if c.Redis.DraftTTL < 0 {
		return dnderr.InvalidArgument("SAVEGEN_DRAFT_TTL cannot be negative")
	}
	return nil
}
