package naming

import (
	"fmt"
	"strings"
)

// Extensions lists the recognized archive suffixes in the order they are
// tried. Longer suffixes come before the shorter ones they end with, so
// "foo-1.0.orig.tar.gz" loses ".orig.tar.gz" rather than just ".tar.gz".
var Extensions = []string{
	".orig.tar.gz",
	".orig.tar.bz2",
	".tar.gz",
	".tar.bz2",
	".zip",
	".tgz",
	".tbz",
}

// StripExtension removes the first matching suffix from [Extensions] and
// returns the stem. It fails with [ErrNoExtensionMatch] when none applies or
// when nothing would be left of the name.
func StripExtension(filename string) (string, error) {
	for _, ext := range Extensions {
		if stem, ok := strings.CutSuffix(filename, ext); ok && stem != "" {
			return stem, nil
		}
	}
	return "", fmt.Errorf("%s: %w", filename, ErrNoExtensionMatch)
}
