package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load resolves the config file from CONFIG_PATH and delegates to LoadFile.
// An unset CONFIG_PATH falls back to ./config.yaml, and a missing fallback
// file is not an error: ENV and env-default tags are enough to start.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		return LoadFile(path)
	}

	if _, err := os.Stat(defaultPath); errors.Is(err, fs.ErrNotExist) {
		return loadEnv()
	}
	return LoadFile(defaultPath)
}

// LoadFile reads the YAML file at path, overlays ENV and validates.
// Priority: ENV > YAML > defaults.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

func loadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
