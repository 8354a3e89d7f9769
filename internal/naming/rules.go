package naming

import (
	"fmt"
	"regexp"
	"strconv"
)

// Rule pairs a whole-stem pattern with an extraction function. Rules are
// evaluated in order by [MatchVersion]; the first rule whose Pattern matches
// and whose Valid (when set) accepts the submatches wins.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Valid   func(matches []string) bool
	Extract func(matches []string) (pkg string, version Ordinal, err error)
}

// --- Compiled rule patterns (order matters) ---
//
// The package name group is greedy, so the version is always the shortest
// trailing run the pattern allows: "foo-1.2-1.3.0" is package "foo-1.2".

var (
	reVer1234 = regexp.MustCompile(`^(.+)[-_](\d+)\.(\d+)\.(\d+)\.(\d+)$`)
	reVerYMD  = regexp.MustCompile(`^(.+)[-_](\d{4})-?(\d{2})-?(\d{2})$`)
	reVer123  = regexp.MustCompile(`^(.+)[-_](\d+)\.(\d+)\.(\d+)([A-Za-z]?)$`)
	reVer12   = regexp.MustCompile(`^(.+)[-_](\d+)\.(\d+)([A-Za-z]?)$`)
	reVerRev  = regexp.MustCompile(`^(.+)[-_]r?(\d+)$`)
)

// Rules is the ordered version-rule table. First match wins.
var Rules = []Rule{
	{Name: "1.2.3.4", Pattern: reVer1234, Extract: extract1234},
	{Name: "YYYY-MM-DD", Pattern: reVerYMD, Valid: isCalendarDate, Extract: extractYMD},
	{Name: "1.2.3a", Pattern: reVer123, Extract: extract123},
	{Name: "1.2a", Pattern: reVer12, Extract: extract12},
	{Name: "r1234", Pattern: reVerRev, Extract: extractRev},
}

// Match is the result of a successful [MatchVersion].
type Match struct {
	Package string
	Version Ordinal
	Rule    string
}

// MatchVersion runs stem through [Rules]. A stem no rule accepts, or whose
// components do not fit the ordinal fields, fails with [ErrNoVersionMatch].
func MatchVersion(stem string) (Match, error) {
	for _, rule := range Rules {
		m := rule.Pattern.FindStringSubmatch(stem)
		if m == nil {
			continue
		}
		if rule.Valid != nil && !rule.Valid(m) {
			continue
		}
		pkg, ver, err := rule.Extract(m)
		if err != nil {
			return Match{}, fmt.Errorf("%s: %w (rule %s: %v)", stem, ErrNoVersionMatch, rule.Name, err)
		}
		return Match{Package: pkg, Version: ver, Rule: rule.Name}, nil
	}
	return Match{}, fmt.Errorf("%s: %w", stem, ErrNoVersionMatch)
}

// --- Component parsing ---

func parseMajor(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("component %q out of range", s)
	}
	return n, nil
}

func parseField(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("component %q exceeds %d", s, maxField)
	}
	return uint16(n), nil
}

// parseFields parses a major component followed by up to three field components.
func parseFields(major string, fields ...string) (c1 uint64, out [3]uint16, err error) {
	if c1, err = parseMajor(major); err != nil {
		return 0, out, err
	}
	for i, f := range fields {
		if out[i], err = parseField(f); err != nil {
			return 0, out, err
		}
	}
	return c1, out, nil
}

// patchCode returns the character code of a trailing patch letter, 0 if none.
func patchCode(s string) uint16 {
	if s == "" {
		return 0
	}
	return uint16(s[0])
}

// isCalendarDate rejects date-shaped runs such as "12345678" whose month or
// day cannot be real, leaving them to the later rules.
func isCalendarDate(m []string) bool {
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[4])
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// --- Extract functions (one per rule) ---

func extract1234(m []string) (string, Ordinal, error) {
	c1, f, err := parseFields(m[2], m[3], m[4], m[5])
	if err != nil {
		return "", Ordinal{}, err
	}
	return m[1], PackOrdinal(c1, f[0], f[1], f[2]), nil
}

func extractYMD(m []string) (string, Ordinal, error) {
	c1, f, err := parseFields(m[2], m[3], m[4])
	if err != nil {
		return "", Ordinal{}, err
	}
	return m[1], PackOrdinal(c1, f[0], f[1], 0), nil
}

func extract123(m []string) (string, Ordinal, error) {
	c1, f, err := parseFields(m[2], m[3], m[4])
	if err != nil {
		return "", Ordinal{}, err
	}
	return m[1], PackOrdinal(c1, f[0], f[1], patchCode(m[5])), nil
}

func extract12(m []string) (string, Ordinal, error) {
	c1, f, err := parseFields(m[2], m[3])
	if err != nil {
		return "", Ordinal{}, err
	}
	return m[1], PackOrdinal(c1, f[0], 0, patchCode(m[4])), nil
}

func extractRev(m []string) (string, Ordinal, error) {
	c1, _, err := parseFields(m[2])
	if err != nil {
		return "", Ordinal{}, err
	}
	return m[1], PackOrdinal(c1, 0, 0, 0), nil
}
