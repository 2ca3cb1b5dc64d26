package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chainreaction/meta"
)

// Player kinds accepted in a configuration.
const (
	KindHuman  = "human"
	KindAI     = "ai"
	KindRandom = "random"
)

// Config is the run configuration for the command-line driver.
type Config struct {
	Size  int    `yaml:"size"`
	Depth int    `yaml:"depth"`
	Seed  uint64 `yaml:"seed"`
	Color bool   `yaml:"color"`
	Red   string `yaml:"red"`
	Blue  string `yaml:"blue"`
}

// Default returns the built-in configuration: a human playing Red against
// the AI on the default board.
func Default() Config {
	return Config{
		Size:  meta.DefaultSize,
		Depth: meta.SearchDepth,
		Seed:  uint64(os.Getpid()),
		Color: true,
		Red:   KindHuman,
		Blue:  KindAI,
	}
}

// Load reads a YAML configuration file. Fields absent from the file keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("board size %d too small", c.Size)
	}
	if c.Depth < 1 {
		return fmt.Errorf("search depth %d too small", c.Depth)
	}
	for _, kind := range []string{c.Red, c.Blue} {
		switch kind {
		case KindHuman, KindAI, KindRandom:
		default:
			return fmt.Errorf("unknown player kind %q", kind)
		}
	}
	return nil
}
