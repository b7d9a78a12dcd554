package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hysym/internal/symbolic"
)

const (
	DefaultSystem   = "thermostat"
	DefaultBoundary = "drop"
	DefaultOutDir   = "out"
)

type Config struct {
	System   string       `yaml:"system"`
	Boundary string       `yaml:"boundary"`
	OutDir   string       `yaml:"out_dir"`
	Database string       `yaml:"database"`
	Modes    []ModeConfig `yaml:"modes"`
}

// ModeConfig overrides the built-in discretization of one mode. Zero
// fields keep the benchmark default.
type ModeConfig struct {
	DX      []float64 `yaml:"dx"`
	DU      []float64 `yaml:"du"`
	Dt      float64   `yaml:"dt"`
	Horizon float64   `yaml:"horizon"`
}

func DefaultConfig() *Config {
	return &Config{
		System:   DefaultSystem,
		Boundary: DefaultBoundary,
		OutDir:   DefaultOutDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BoundaryPolicy maps the config string onto the builder policy.
func (c *Config) BoundaryPolicy() (symbolic.BoundaryPolicy, error) {
	switch c.Boundary {
	case "", "drop":
		return symbolic.Drop, nil
	case "snap":
		return symbolic.Snap, nil
	default:
		return symbolic.Drop, fmt.Errorf("config: unknown boundary policy %q", c.Boundary)
	}
}
