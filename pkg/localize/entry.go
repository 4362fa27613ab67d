// Package localize resolves localized display strings for UI assertions.
package localize

import "gopkg.in/yaml.v3"

// Table maps a context (screen, feature) to its string entries.
type Table map[string]map[string]Entry

// Values maps placeholder names to replacement text.
type Values map[string]string

// Entry is a single localized string: either plain text or a template
// paired with the name of the value that feeds its variable placeholder.
type Entry struct {
	Template string
	Variable string

	templated bool
}

// Plain returns an entry holding text as-is.
func Plain(text string) Entry {
	return Entry{Template: text}
}

// Templated returns an entry whose variable placeholders are filled from
// the value named variable.
func Templated(template, variable string) Entry {
	return Entry{Template: template, Variable: variable, templated: true}
}

// IsTemplated reports whether the entry carries a variable key.
func (e Entry) IsTemplated() bool { return e.templated }

// FromValue converts a loosely typed value into an Entry.
// A slice with a non-empty first element becomes a templated entry, a
// string becomes a plain entry, anything else yields the zero Entry.
func FromValue(v interface{}) Entry {
	switch val := v.(type) {
	case string:
		return Plain(val)
	case []string:
		if len(val) > 0 && val[0] != "" {
			variable := ""
			if len(val) > 1 {
				variable = val[1]
			}
			return Templated(val[0], variable)
		}
	case []interface{}:
		if len(val) > 0 && truthy(val[0]) {
			template, _ := val[0].(string)
			variable := ""
			if len(val) > 1 {
				variable, _ = val[1].(string)
			}
			return Templated(template, variable)
		}
	}
	return Entry{}
}

func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	}
	return true
}

// UnmarshalYAML allows an Entry to be written as a scalar string or as a
// [template, variable] sequence.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*e = FromValue(raw)
	return nil
}

// Selector picks one entry out of a table.
type Selector func(Table) Entry

// Key returns a selector for table[context][key]. Missing entries resolve
// to the zero Entry.
func Key(context, key string) Selector {
	return func(t Table) Entry {
		return t[context][key]
	}
}

// Text returns a selector that ignores the table and yields a plain entry.
func Text(text string) Selector {
	return func(Table) Entry { return Plain(text) }
}

// Template returns a selector that ignores the table and yields a
// templated entry.
func Template(template, variable string) Selector {
	return func(Table) Entry { return Templated(template, variable) }
}
