package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port        string `env:"PORT"                   envDefault:"8080"`
	LogLevel    string `env:"PORTFOLIO_LOG_LEVEL"    envDefault:"info"`
	LogHuman    bool   `env:"PORTFOLIO_LOG_HUMAN"    envDefault:"false"`
	ProfilePath string `env:"PORTFOLIO_PROFILE"`
	StaticDir   string `env:"PORTFOLIO_STATIC_DIR"`
	ProjectsURL string `env:"PORTFOLIO_PROJECTS_URL"`
	BaseURL     string `env:"PORTFOLIO_BASE_URL"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}
