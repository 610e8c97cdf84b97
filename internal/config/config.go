// Package config loads the optional kiltergen.yaml server configuration.
// Flags override file values; the file overrides built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/kiltergen/internal/domain"
)

// Defaults mirror the original application's slider defaults.
var defaultParams = domain.GenerationParams{
	MinMoves:         2,
	MaxMoves:         12,
	MinReach:         2,
	MaxReach:         12,
	AllowTwoFinishes: true,
}

// Config models kiltergen.yaml.
type Config struct {
	Addr       string                  `yaml:"addr"`
	LayoutPath string                  `yaml:"layout"`
	PersistDir string                  `yaml:"persist"`
	Params     domain.GenerationParams `yaml:"params"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:       ":8080",
		LayoutPath: "kilterBoardLayout.txt",
		PersistDir: "./data",
		Params:     defaultParams,
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
