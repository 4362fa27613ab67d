package flow

// Selector identifies the element an action targets.
// Exactly one field is normally set.
type Selector struct {
	ID    string // testID / accessibility identifier
	Text  string // Visible text
	Label string // Accessibility label
}

// ByID selects an element by its test ID.
func ByID(id string) Selector { return Selector{ID: id} }

// ByText selects an element by its visible text.
func ByText(text string) Selector { return Selector{Text: text} }

// ByLabel selects an element by its accessibility label.
func ByLabel(label string) Selector { return Selector{Label: label} }

// IsEmpty returns true if no selector properties are set.
func (s Selector) IsEmpty() bool {
	return s.ID == "" && s.Text == "" && s.Label == ""
}

// Describe returns a human-readable description.
func (s Selector) Describe() string {
	switch {
	case s.ID != "":
		return "#" + s.ID
	case s.Text != "":
		return s.Text
	case s.Label != "":
		return "label:" + s.Label
	default:
		return ""
	}
}

// DescribeQuoted returns a quoted description like id="value" or text="value".
func (s Selector) DescribeQuoted() string {
	switch {
	case s.ID != "":
		return "id=\"" + s.ID + "\""
	case s.Text != "":
		return "text=\"" + s.Text + "\""
	case s.Label != "":
		return "label=\"" + s.Label + "\""
	default:
		return ""
	}
}
