package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// EnvPrefix is prepended to every variable name, e.g. TRACKER_DATABASE_URL.
const EnvPrefix = "TRACKER"

// Config holds application configuration loaded from environment variables.
type Config struct {
	DatabaseURL   string `envconfig:"DATABASE_URL" default:"project_tracker.db"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFile       string `envconfig:"LOG_FILE" default:""`
	LogMaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"10"`
	LogMaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
}

// Load reads an optional .env file from the working directory and then
// populates a Config from the environment. Variables already set in the
// environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, err
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	if cfg.LogMaxSizeMB < 1 {
		return nil, fmt.Errorf("%s_LOG_MAX_SIZE_MB must be positive, got %d", EnvPrefix, cfg.LogMaxSizeMB)
	}

	return &cfg, nil
}
