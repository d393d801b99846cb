package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

const defaultConfigFile = "lvn.yaml"

// FileConfig is the structure of an lvn.yaml file. Command line flags
// override it.
type FileConfig struct {
	Indent   int    `yaml:"indent"`
	Color    *bool  `yaml:"color"`
	Compact  bool   `yaml:"compact"`
	LogLevel string `yaml:"logLevel"`
}

func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Indent:   2,
		LogLevel: "warn",
	}
}

// LoadConfig reads a configuration file. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultFileConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Indent < 0 {
		return nil, fmt.Errorf("config file %s: negative indent %d", path, cfg.Indent)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// loadDefaultConfig loads lvn.yaml from the working directory if present.
func loadDefaultConfig() (*FileConfig, error) {
	cfg, err := LoadConfig(defaultConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultFileConfig(), nil
	}
	return cfg, err
}
