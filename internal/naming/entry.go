package naming

import "path/filepath"

// Entry is one successfully parsed archive in a download directory.
// The zero value is not a valid entry; build one with [Parse].
type Entry struct {
	dir      string
	filename string
	pkg      string
	version  Ordinal
	rule     string
}

// Parse strips the archive extension from filename and matches the stem
// against [Rules]. dir is recorded as given and not checked.
func Parse(dir, filename string) (Entry, error) {
	stem, err := StripExtension(filename)
	if err != nil {
		return Entry{}, err
	}
	m, err := MatchVersion(stem)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		dir:      dir,
		filename: filename,
		pkg:      m.Package,
		version:  m.Version,
		rule:     m.Rule,
	}, nil
}

func (e Entry) Dir() string      { return e.dir }
func (e Entry) Filename() string { return e.filename }
func (e Entry) Package() string  { return e.pkg }
func (e Entry) Version() Ordinal { return e.version }

// Rule names the version rule that produced the entry.
func (e Entry) Rule() string { return e.rule }

// Path joins the directory and filename.
func (e Entry) Path() string { return filepath.Join(e.dir, e.filename) }

// Equal reports whether e and other name the same file.
func (e Entry) Equal(other Entry) bool { return e.filename == other.filename }
