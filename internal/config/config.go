// Package config loads run settings for the command-line front end. The
// file is YAML; every field is optional and CLI flags win over file values.
package config

import (
	"fmt"
	"os"
	"time"

	yaml "go.yaml.in/yaml/v3"
)

type SolverConfig struct {
	// TimeLimit is a Go duration string (e.g. "10s", "2m"). Empty disables
	// the wall-clock budget.
	TimeLimit string `yaml:"time_limit"`
	Workers   int32  `yaml:"workers"`
}

type Config struct {
	Solver   SolverConfig `yaml:"solver"`
	Horizon  int64        `yaml:"horizon"`
	LogLevel string       `yaml:"log_level"`
}

func Default() Config {
	return Config{LogLevel: "info"}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}
	if _, err := cfg.TimeLimit(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg Config) TimeLimit() (time.Duration, error) {
	if cfg.Solver.TimeLimit == "" {
		return 0, nil
	}
	limit, err := time.ParseDuration(cfg.Solver.TimeLimit)
	if err != nil {
		return 0, fmt.Errorf("invalid solver time_limit %q: %w", cfg.Solver.TimeLimit, err)
	}
	return limit, nil
}
