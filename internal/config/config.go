// Package config holds runtime configuration: defaults, CLI flag parsing,
// the optional YAML config file, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUsage marks a malformed command line. Callers print usage and exit
// non-zero without touching the filesystem.
var ErrUsage = errors.New("usage error")

// ErrHelp is returned by [ParseFlags] after printing help on request.
var ErrHelp = errors.New("help requested")

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// BlacklistEntry is a user-supplied blacklist pattern from the config file.
type BlacklistEntry struct {
	Label   string `yaml:"label"`
	Pattern string `yaml:"pattern"`
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [LoadFile] and [ParseFlags], and passed by pointer to the packages
// that need it.
type Config struct {
	// Download directory (single positional arg).
	Dir string

	// Behavior flags.
	DryRun        bool
	ShowBlacklist bool // Print blacklist labels and exit.
	ShowVersion   bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.

	// Config file path and the extra blacklist it contributed.
	ConfigFile     string
	ExtraBlacklist []BlacklistEntry
}

// DefaultConfig returns the settings used when no flag or file overrides them.
func DefaultConfig() Config {
	return Config{
		DryRun:    false,
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and, unless only the blacklist is being
// printed, that a directory was given.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	for _, b := range c.ExtraBlacklist {
		if b.Label == "" || b.Pattern == "" {
			return fmt.Errorf("blacklist entry needs both label and pattern (got %q, %q)", b.Label, b.Pattern)
		}
	}

	if c.ShowBlacklist || c.ShowVersion {
		return nil
	}
	if c.Dir == "" {
		return fmt.Errorf("%w: need exactly one download directory", ErrUsage)
	}
	return nil
}
