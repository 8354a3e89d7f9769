package naming

import "errors"

// Sentinel errors returned by [Parse]. Both are wrapped with the offending
// filename; test with errors.Is.
var (
	ErrNoExtensionMatch = errors.New("no known archive extension")
	ErrNoVersionMatch   = errors.New("no version pattern matched")
)
