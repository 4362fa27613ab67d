package localize

import (
	"regexp"
	"strings"
)

// MissingVariable replaces variable placeholders when the entry's variable
// has no value.
const MissingVariable = "__NO VARIABLE ARGUMENT PROVIDED__"

var (
	namedPattern    = regexp.MustCompile(`\{\{([^}]+)\}\}`)
	variablePattern = regexp.MustCompile(`(\{\{|@@)(.+?)(@@|\}\})`)
)

// TableSource provides the current translation table.
type TableSource interface {
	Translations() Table
}

// Resolver resolves selectors against the table held by Source, read at
// call time.
type Resolver struct {
	Source TableSource
}

// Resolve resolves sel against the source's current table.
func (r Resolver) Resolve(sel Selector, values Values) string {
	var table Table
	if r.Source != nil {
		table = r.Source.Translations()
	}
	return Resolve(table, sel, values)
}

// Resolve selects an entry from table and interpolates values into it.
//
// Named placeholders {{name}} are replaced when name is present in values
// and left verbatim otherwise. For templated entries every remaining
// {{...}} or @@...@@ span is then replaced by the value of the entry's
// variable, or MissingVariable. Plain entries skip that pass, so their
// @@...@@ spans are kept verbatim too. Asterisks are stripped from the result.
// Resolve never fails; misses degrade to verbatim text or the sentinel.
func Resolve(table Table, sel Selector, values Values) string {
	var entry Entry
	if sel != nil {
		entry = sel(table)
	}

	s := replaceNamed(entry.Template, values)
	if entry.IsTemplated() {
		s = replaceVariable(s, entry.Variable, values)
	}
	return strings.ReplaceAll(s, "*", "")
}

func replaceNamed(s string, values Values) string {
	if len(values) == 0 {
		return s
	}
	return namedPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-2]
		if v, ok := values[name]; ok {
			return v
		}
		return match
	})
}

func replaceVariable(s, variable string, values Values) string {
	replacement := MissingVariable
	if variable != "" {
		if v, ok := values[variable]; ok {
			replacement = v
		}
	}
	return variablePattern.ReplaceAllLiteralString(s, replacement)
}
