// Package retention decides which archive of each package survives a prune.
//
// Selection is pure: it partitions parsed entries into one survivor and a
// delete set per package and leaves every side effect to the caller.
package retention

import (
	"sort"

	"github.com/backmassage/dlcleanup/internal/naming"
)

// Decision is the outcome for one package group.
type Decision struct {
	Package string
	Keep    naming.Entry
	Delete  []naming.Entry
}

// Group buckets entries by package name, preserving input order within
// each bucket.
func Group(entries []naming.Entry) map[string][]naming.Entry {
	groups := make(map[string][]naming.Entry)
	for _, e := range entries {
		groups[e.Package()] = append(groups[e.Package()], e)
	}
	return groups
}

// Survivor returns the entry with the highest version. On a tie the entry
// that comes later in group wins. ok is false for an empty group.
func Survivor(group []naming.Entry) (keep naming.Entry, ok bool) {
	for i, e := range group {
		if i == 0 || e.Version().Compare(keep.Version()) >= 0 {
			keep = e
		}
	}
	return keep, len(group) > 0
}

// Decide partitions one group. Entries sharing the survivor's filename are
// kept along with it.
func Decide(pkg string, group []naming.Entry) (Decision, bool) {
	keep, ok := Survivor(group)
	if !ok {
		return Decision{}, false
	}
	d := Decision{Package: pkg, Keep: keep}
	for _, e := range group {
		if !e.Equal(keep) {
			d.Delete = append(d.Delete, e)
		}
	}
	return d, true
}

// Select groups entries and decides every group. Decisions are sorted by
// package name.
func Select(entries []naming.Entry) []Decision {
	groups := Group(entries)
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	decisions := make([]Decision, 0, len(names))
	for _, name := range names {
		if d, ok := Decide(name, groups[name]); ok {
			decisions = append(decisions, d)
		}
	}
	return decisions
}
