package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the sandbox settings: world shape, generation seed, and
// front-end tuning.
type Config struct {
	Width     int   `yaml:"width"`
	Height    int   `yaml:"height"`
	Depth     int   `yaml:"depth"`
	ChunkSize int   `yaml:"chunk_size"`
	Seed      int64 `yaml:"seed"`
	TickRate  int   `yaml:"tick_rate"`
	Scale     int   `yaml:"scale"` // screen pixels per world column
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Width:     96,
		Height:    64,
		Depth:     96,
		ChunkSize: 16,
		Seed:      1,
		TickRate:  60,
		Scale:     8,
	}
}

// Load reads a YAML config file. A missing file is not an error; the
// returned Config then just carries the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded values into cfg, but only for fields that were
// NOT explicitly set via CLI flags. explicitFlags holds the flag names
// given on the command line.
func Merge(cfg, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["depth"] {
		cfg.Depth = fromFile.Depth
	}
	if !explicitFlags["chunk-size"] {
		cfg.ChunkSize = fromFile.ChunkSize
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["tick-rate"] {
		cfg.TickRate = fromFile.TickRate
	}
	if !explicitFlags["scale"] {
		cfg.Scale = fromFile.Scale
	}
}

// Validate rejects settings the engine would fail fast on anyway, with a
// friendlier message.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Depth <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %dx%dx%d", c.Width, c.Height, c.Depth)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	return nil
}
