package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds packspectre configuration loaded from .packspectre.yaml.
// Zero values defer to the built-in defaults.
type Config struct {
	IdleCPUPercent float64 `yaml:"idle_cpu_percent"`
	LowCPUPercent  float64 `yaml:"low_cpu_percent"`
	MinSamples     int     `yaml:"min_samples"`
	LowTTLSeconds  int64   `yaml:"low_ttl_seconds"`
	Format         string  `yaml:"format"`
	Output         string  `yaml:"output"`
}

// Load searches for .packspectre.yaml or .packspectre.yml in the given
// directory and returns the parsed config. Returns an empty Config if no
// file is found.
func Load(dir string) (Config, error) {
	candidates := []string{
		filepath.Join(dir, ".packspectre.yaml"),
		filepath.Join(dir, ".packspectre.yml"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	return Config{}, nil
}
