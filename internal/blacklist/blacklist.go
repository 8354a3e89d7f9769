// Package blacklist holds the filename patterns that are never pruned.
//
// Some downloads are never rotated (kernel and compiler tarballs, firmware
// blobs) or carry names the version rules would misread. A filename matching
// any pattern is dropped before it reaches the version parser.
package blacklist

import (
	"fmt"
	"regexp"
)

// Rule is one labelled blacklist pattern. Pattern is anchored at the start of
// the filename but not at its end.
type Rule struct {
	Label   string
	Pattern *regexp.Regexp
}

// Compile builds a Rule from an unanchored pattern string.
func Compile(label, pattern string) (Rule, error) {
	if label == "" {
		return Rule{}, fmt.Errorf("blacklist pattern %q has no label", pattern)
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return Rule{}, fmt.Errorf("blacklist %s: %w", label, err)
	}
	return Rule{Label: label, Pattern: re}, nil
}

func mustCompile(label, pattern string) Rule {
	r, err := Compile(label, pattern)
	if err != nil {
		panic(err)
	}
	return r
}

var defaults = []Rule{
	mustCompile("linux", `linux-.*`),
	mustCompile("gcc", `gcc-.*`),
	mustCompile("boost", `boost.*`),
	mustCompile("wl_apsta", `wl_apsta.*`),
	mustCompile(".fw", `.*\.fw`),
	mustCompile(".arm", `.*\.arm`),
	mustCompile(".bin", `.*\.bin`),
	mustCompile("rt-firmware", `RT\d+_Firmware.*`),
}

// List is an immutable, ordered set of rules.
type List struct {
	rules []Rule
}

// Default returns the built-in blacklist.
func Default() *List {
	return &List{rules: defaults}
}

// With returns a new List holding l's rules followed by extra.
func (l *List) With(extra ...Rule) *List {
	rules := make([]Rule, 0, len(l.rules)+len(extra))
	rules = append(rules, l.rules...)
	rules = append(rules, extra...)
	return &List{rules: rules}
}

// Match reports whether filename is blacklisted and by which label.
func (l *List) Match(filename string) (string, bool) {
	for _, r := range l.rules {
		if r.Pattern.MatchString(filename) {
			return r.Label, true
		}
	}
	return "", false
}

// Labels returns the rule labels in order.
func (l *List) Labels() []string {
	labels := make([]string, len(l.rules))
	for i, r := range l.rules {
		labels[i] = r.Label
	}
	return labels
}

// Rules returns a copy of the rules in order.
func (l *List) Rules() []Rule {
	return append([]Rule(nil), l.rules...)
}
