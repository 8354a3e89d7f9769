package pipeline

import (
	"fmt"

	"github.com/backmassage/dlcleanup/internal/blacklist"
	"github.com/backmassage/dlcleanup/internal/config"
	"github.com/backmassage/dlcleanup/internal/display"
	"github.com/backmassage/dlcleanup/internal/naming"
	"github.com/backmassage/dlcleanup/internal/retention"
)

// Logger is the logging interface a run reports through. Defined here so
// that tests can record output without the console logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Run performs one cleanup pass over cfg.Dir. The only error it returns is
// a failure to list the directory; removal failures end up in the stats.
func Run(cfg *config.Config, fsys FS, bl *blacklist.List, log Logger) (RunStats, error) {
	var stats RunStats

	names, err := fsys.List(cfg.Dir)
	if err != nil {
		return stats, fmt.Errorf("list %s: %w", cfg.Dir, err)
	}

	entries := Classify(cfg, names, bl, log, &stats)
	decisions := retention.Select(entries)
	stats.Packages = len(decisions)

	for _, d := range decisions {
		prune(cfg, fsys, log, d, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// Classify turns a directory listing into entries. Blacklisted names and
// names without a known extension or version are counted and skipped.
func Classify(cfg *config.Config, names []string, bl *blacklist.List, log Logger, stats *RunStats) []naming.Entry {
	entries := make([]naming.Entry, 0, len(names))
	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		stats.Scanned++

		if label, ok := bl.Match(name); ok {
			stats.Blacklisted++
			if cfg.DryRun || cfg.Verbose {
				log.Info("%s is blacklisted (%s)", name, label)
			}
			continue
		}

		e, err := naming.Parse(cfg.Dir, name)
		if err != nil {
			stats.Ignored++
			log.Debug("Ignoring %v", err)
			continue
		}
		log.Debug("%s: package %q version %s (rule %s)", name, e.Package(), e.Version(), e.Rule())
		entries = append(entries, e)
	}
	return entries
}

// prune removes every loser of one decision. Each removal stands alone: a
// failure is recorded and the next file is still tried.
func prune(cfg *config.Config, fsys FS, log Logger, d retention.Decision, stats *RunStats) {
	for _, e := range d.Delete {
		// Size is informational; an unreadable size counts as zero.
		size, _ := fsys.Size(e.Dir(), e.Filename())

		if cfg.DryRun {
			log.Info("[DRY] Would delete %s", e.Path())
			stats.Deleted++
			stats.BytesReclaimed += size
			continue
		}

		log.Info("Deleting %s", e.Path())
		if err := fsys.Remove(e.Dir(), e.Filename()); err != nil {
			derr := &DeleteError{Path: e.Path(), Err: err}
			log.Error("%v", derr)
			stats.Failed++
			stats.Failures = append(stats.Failures, derr)
			continue
		}
		stats.Deleted++
		stats.BytesReclaimed += size
	}

	stats.Kept++
	if cfg.DryRun || cfg.Verbose {
		log.Info("Keeping %s", d.Keep.Filename())
	}
}

func logSummary(cfg *config.Config, log Logger, stats *RunStats) {
	log.Info("Scanned %s: %d blacklisted, %d ignored, %s",
		display.Count(stats.Scanned, "file", "files"),
		stats.Blacklisted, stats.Ignored,
		display.Count(stats.Packages, "package", "packages"))

	deleted := display.Count(stats.Deleted, "file", "files")
	freed := display.FormatBytes(stats.BytesReclaimed)
	switch {
	case cfg.DryRun:
		log.Success("[DRY] Would delete %s (%s)", deleted, freed)
	case stats.Failed > 0:
		log.Warn("Deleted %s (%s), %d failed", deleted, freed, stats.Failed)
	default:
		log.Success("Deleted %s (%s)", deleted, freed)
	}
}
