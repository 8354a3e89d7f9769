// Package pipeline runs one cleanup pass over a download directory.
//
// A run lists the directory once, drops blacklisted and unparseable names,
// asks [retention.Select] for the survivor of each package, and then removes
// the losers one by one. A failed removal is logged and counted but does not
// stop the run; in dry-run mode nothing is removed and the same decisions
// are reported.
package pipeline
