package app

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the YAML config file schema. File values only fill fields
// the flags left unset.
type FileConfig struct {
	Input   string `yaml:"input"`
	RefDate string `yaml:"refDate"`
	HTML    bool   `yaml:"html"`
	Verbose bool   `yaml:"verbose"`
}

// LoadConfigFile reads and decodes a YAML config file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

// Merge applies file values underneath cfg; flags take precedence.
func Merge(cfg Config, fc FileConfig) Config {
	if cfg.InputPath == "" {
		cfg.InputPath = fc.Input
	}
	if cfg.RefDate == "" {
		cfg.RefDate = fc.RefDate
	}
	if !cfg.HTML {
		cfg.HTML = fc.HTML
	}
	if !cfg.Verbose {
		cfg.Verbose = fc.Verbose
	}
	return cfg
}
