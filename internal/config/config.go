package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from CRICKET_* environment variables.
type Config struct {
	TablesDir      string        `envconfig:"TABLES_DIR"`
	Competition    string        `envconfig:"COMPETITION"`
	GRPCAddr       string        `envconfig:"GRPC_ADDR" default:":9090"`
	HTTPAddr       string        `envconfig:"HTTP_ADDR" default:":8080"`
	ReloadInterval time.Duration `envconfig:"RELOAD_INTERVAL" default:"5s"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	Workers        int           `envconfig:"WORKERS" default:"0"`
}

// Load reads an optional .env file (the environment wins over it) and
// then the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	var c Config
	if err := envconfig.Process("cricket", &c); err != nil {
		return nil, err
	}
	if _, err := c.Level(); err != nil {
		return nil, err
	}
	if c.Workers < 0 {
		return nil, fmt.Errorf("CRICKET_WORKERS must be >= 0, got %d", c.Workers)
	}
	return &c, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("CRICKET_LOG_LEVEL: %w", err)
	}
	return l, nil
}
