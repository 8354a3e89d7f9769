package pipeline

import (
	"os"
	"path/filepath"
)

// FS is the filesystem boundary a run works against.
type FS interface {
	// List returns the names of the regular files directly inside dir.
	List(dir string) ([]string, error)
	// Remove deletes one file.
	Remove(dir, filename string) error
	// Size returns the size of one file in bytes.
	Size(dir, filename string) (int64, error)
}

// OSFS implements [FS] on the local filesystem.
type OSFS struct{}

// List returns regular-file names in dir, sorted by name. Subdirectories
// are skipped; the download directory is flat.
func (OSFS) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (OSFS) Remove(dir, filename string) error {
	return os.Remove(filepath.Join(dir, filename))
}

func (OSFS) Size(dir, filename string) (int64, error) {
	fi, err := os.Lstat(filepath.Join(dir, filename))
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
