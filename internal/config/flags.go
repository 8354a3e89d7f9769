package config

// This file implements CLI flag parsing and help text.
// Short and long spellings share one destination; --no-color/--color are
// applied after Parse and after the config file so they always win.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseFlags parses args (without the program name) into cfg. When --config
// is given the file is loaded first and explicit flags override it.
// It returns [ErrHelp] after printing help, and an error wrapping [ErrUsage]
// for unknown flags or a wrong number of positional args.
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("dlcleanup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var n negatedFlags
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &n)
	defineUtilityFlags(fs, cfg, &n)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stderr, version)
			return ErrHelp
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if n.showHelp {
		printUsage(os.Stderr, version)
		return ErrHelp
	}

	if cfg.ConfigFile != "" {
		cli := *cfg
		if err := LoadFile(cfg.ConfigFile, cfg); err != nil {
			return err
		}
		cfg.DryRun = cfg.DryRun || cli.DryRun
		cfg.Verbose = cfg.Verbose || cli.Verbose
		if cli.LogFile != "" {
			cfg.LogFile = cli.LogFile
		}
	}
	applyNegatedFlags(cfg, &n)

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor bool
	noColor    bool
	showHelp   bool
}

// defineBehaviorFlags registers -d/--dry-run, -B/--show-blacklist and --config.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Do a dry-run; don't delete any files")
	fs.BoolVar(&cfg.DryRun, "d", cfg.DryRun, "Same as --dry-run")
	fs.BoolVar(&cfg.ShowBlacklist, "show-blacklist", false, "Show the blacklist and exit")
	fs.BoolVar(&cfg.ShowBlacklist, "B", false, "Same as --show-blacklist")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML config file")
}

// defineDisplayFlags registers --color, --no-color, verbose and --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")
	fs.BoolVar(&cfg.ShowVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies color overrides into cfg; --no-color beats --color.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Dir from the single positional arg. It is not
// required when only printing the blacklist or version.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if (cfg.ShowBlacklist || cfg.ShowVersion) && len(args) == 0 {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: need exactly one download directory (got %d args)", ErrUsage, len(args))
	}
	cfg.Dir = NormalizeDirArg(args[0])
	return nil
}

// PrintUsage writes the help text to w.
func PrintUsage(w io.Writer, version string) { printUsage(w, version) }

// printUsage writes the help text. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "dlcleanup v" + version + " - download directory cleanup utility"},
		{"", "Delete all but the very last version of the program tarballs."},
		{"", ""},
		{"  dlcleanup [OPTIONS] <path/to/dl>", ""},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Do a dry-run; don't delete any files"},
		{"  -B, --show-blacklist", "Show the blacklist and exit"},
		{"  --config <path>", "YAML config file (flags override it)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// ParseColorMode validates a color mode string, case-insensitively.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
}
