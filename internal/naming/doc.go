// Package naming turns download-directory filenames into versioned entries.
//
// A filename is first stripped of a known archive extension ([StripExtension]),
// then the remaining stem is run through the ordered [Rules] table. The first
// rule whose pattern matches the whole stem yields the package name and a
// packed [Ordinal] that orders versions produced by the same rule.
//
// Files that do not fit are reported with [ErrNoExtensionMatch] or
// [ErrNoVersionMatch]. Callers are expected to skip them: a download
// directory always holds files these heuristics do not understand.
package naming
