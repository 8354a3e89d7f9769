package logging

import (
	"os"
	"strings"

	"github.com/backmassage/dlcleanup/internal/config"
)

// ANSI color codes. Empty when colors are disabled, making concatenation a no-op.
var (
	Red    = ""
	Green  = ""
	Yellow = ""
	Blue   = ""
	Cyan   = ""
	NC     = "" // Reset sequence.
)

// configureColors resolves mode and sets the package-level ANSI variables.
func configureColors(mode config.ColorMode) bool {
	if resolveColor(mode) {
		Red = "\033[1;91m"
		Green = "\033[1;92m"
		Yellow = "\033[1;93m"
		Blue = "\033[1;94m"
		Cyan = "\033[1;96m"
		NC = "\033[0m"
		return true
	}
	Red, Green, Yellow, Blue, Cyan, NC = "", "", "", "", "", ""
	return false
}

// resolveColor honors the NO_COLOR env var (https://no-color.org) and dumb
// terminals in auto mode.
func resolveColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return isTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
