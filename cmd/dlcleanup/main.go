// Command dlcleanup prunes a download directory, deleting all but the
// newest version of every source archive.
//
// It parses flags, validates configuration, and either prints the blacklist
// (-B) or runs one cleanup pass over the given directory.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/dlcleanup/internal/blacklist"
	"github.com/backmassage/dlcleanup/internal/config"
	"github.com/backmassage/dlcleanup/internal/logging"
	"github.com/backmassage/dlcleanup/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr. Usage errors never touch the download directory.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, args); err != nil {
		if errors.Is(err, config.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "dlcleanup: %v\n", err)
		if errors.Is(err, config.ErrUsage) {
			config.PrintUsage(os.Stderr, version)
		}
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "dlcleanup: %v\n", err)
		return 1
	}

	if cfg.ShowVersion {
		fmt.Fprintf(os.Stdout, "dlcleanup v%s (%s)\n", version, commit)
		return 0
	}

	bl, err := buildBlacklist(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlcleanup: %v\n", err)
		return 1
	}
	if cfg.ShowBlacklist {
		for _, label := range bl.Labels() {
			fmt.Fprintln(os.Stdout, label)
		}
		return 0
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dlcleanup: %v\n", err)
		return 1
	}
	defer log.Close()

	log.Info("=== dlcleanup v%s (%s) run %s ===", version, commit, log.RunID())
	log.Info("Dir: %s", cfg.Dir)
	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be deleted")
	}

	stats, err := pipeline.Run(&cfg, pipeline.OSFS{}, bl, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// buildBlacklist extends the built-in blacklist with entries from the
// config file.
func buildBlacklist(cfg *config.Config) (*blacklist.List, error) {
	bl := blacklist.Default()
	if len(cfg.ExtraBlacklist) == 0 {
		return bl, nil
	}
	extra := make([]blacklist.Rule, 0, len(cfg.ExtraBlacklist))
	for _, b := range cfg.ExtraBlacklist {
		r, err := blacklist.Compile(b.Label, b.Pattern)
		if err != nil {
			return nil, err
		}
		extra = append(extra, r)
	}
	return bl.With(extra...), nil
}
