package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish
// "unset" from an explicit false.
type fileConfig struct {
	DryRun    *bool            `yaml:"dry_run"`
	Verbose   *bool            `yaml:"verbose"`
	Color     string           `yaml:"color"`
	LogFile   string           `yaml:"log_file"`
	Blacklist []BlacklistEntry `yaml:"blacklist"`
}

// LoadFile reads the YAML config at path into cfg. Keys absent from the file
// leave cfg untouched; blacklist entries are appended.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.SetStrict(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if fc.DryRun != nil {
		cfg.DryRun = *fc.DryRun
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Color != "" {
		mode, err := ParseColorMode(fc.Color)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.ColorMode = mode
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	cfg.ExtraBlacklist = append(cfg.ExtraBlacklist, fc.Blacklist...)
	return nil
}
