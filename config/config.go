package config

import (
	"errors"
	"os"
)

// DevSecret is the fallback signing key outside production. It is not a
// secret; anyone can forge tokens under it. Dev/test only.
const DevSecret = "dev-key-only"

type Config struct {
	Env       string
	SecretKey string
	DSN       string
	Port      string
	LogFile   string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the configuration from the environment. In production a
// missing SECRET_KEY is a startup error; otherwise DevSecret is used.
func Load() (*Config, error) {
	cfg := &Config{
		Env:       os.Getenv("APP_ENV"),
		SecretKey: os.Getenv("SECRET_KEY"),
		DSN:       os.Getenv("DSN"),
		Port:      os.Getenv("PORT"),
		LogFile:   os.Getenv("LOG_FILE"),
	}

	if cfg.SecretKey == "" {
		if cfg.IsProduction() {
			return nil, errors.New("SECRET_KEY environment variable is required in production")
		}
		cfg.SecretKey = DevSecret
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "logs/secure-notes.log"
	}

	return cfg, nil
}
