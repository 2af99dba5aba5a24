package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigPath is tried when CONFIG_PATH is unset. Its absence is not
// an error: a bare invocation converts with defaults.
const defaultConfigPath = "./config.yaml"

// Load reads converter settings from an optional YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
// A file named by CONFIG_PATH must exist; ./config.yaml is optional.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.LookupEnv("CONFIG_PATH")
	explicit = explicit && path != ""
	if !explicit {
		path = defaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("converter config %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("converter config %s (from CONFIG_PATH): %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("converter config from env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("converter config: %w", err)
	}

	return &cfg, nil
}
