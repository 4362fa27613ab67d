// Package filter decides whether a test file's group runs or is skipped.
package filter

import "strings"

// Decision is the outcome of filtering a test file.
type Decision int

const (
	Run  Decision = iota // Register the group normally
	Skip                 // Register the group as skipped
)

// String returns the string representation of Decision
func (d Decision) String() string {
	switch d {
	case Run:
		return "run"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// RunOnlySource provides the current allow-list.
type RunOnlySource interface {
	RunOnly() []string
}

// Suffixes are stripped from a test file's base name, first match wins.
var Suffixes = []string{
	".e2e.ts", ".e2e.tsx", ".e2e.js",
	"_e2e_test.go", "_test.go",
	".e2e.yaml", ".e2e.yml",
	".go", ".yaml", ".yml",
}

// BareName strips directories and a known test-file suffix from identifier.
//
//	BareName("/app/e2e/home.e2e.ts")   // "home"
//	BareName("pkg/settings_test.go")   // "settings"
func BareName(identifier string) string {
	name := identifier
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	for _, suffix := range Suffixes {
		if strings.HasSuffix(name, suffix) {
			if len(name) == len(suffix) {
				return name
			}
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}

// Decide returns Run when the allow-list is empty or holds the bare name
// of identifier, Skip otherwise. Matching is exact and case-sensitive.
func Decide(src RunOnlySource, identifier string) Decision {
	if src == nil {
		return Run
	}
	runOnly := src.RunOnly()
	if len(runOnly) == 0 {
		return Run
	}
	name := BareName(identifier)
	for _, allowed := range runOnly {
		if allowed == name {
			return Run
		}
	}
	return Skip
}

// List is a fixed allow-list.
type List []string

// RunOnly returns the list itself.
func (l List) RunOnly() []string { return l }
