// Package config loads search and experiment settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wataruto/game"
	"wataruto/searcher"
)

type ExperimentConfig struct {
	Games     int `yaml:"games"`
	BoardSize int `yaml:"boardSize"`
}

type Config struct {
	Search     searcher.Config  `yaml:"search"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

func Default() Config {
	return Config{
		Search: searcher.DefaultConfig(),
		Experiment: ExperimentConfig{
			Games:     10,
			BoardSize: game.DefaultBoardSize,
		},
	}
}

// Parse decodes a YAML document over the defaults, so absent fields keep
// their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Experiment.BoardSize < game.MinBlockSize {
		return Config{}, fmt.Errorf("invalid config: board size %d", cfg.Experiment.BoardSize)
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}
