package helpers

import (
	"time"

	"github.com/devicelab-dev/e2e-helpers/pkg/flow"
)

// ReloadApp reloads the app's JS bundle. Much faster than relaunching the
// app when only in-app state needs resetting.
func (h *Helpers) ReloadApp() error {
	return h.run(flow.NewReloadApp())
}

// TapElement taps the element with the given test ID.
func (h *Helpers) TapElement(elementID string) error {
	return h.run(flow.NewTapOn(flow.ByID(elementID)))
}

// TapText taps the element showing text.
func (h *Helpers) TapText(text string) error {
	return h.run(flow.NewTapOn(flow.ByText(text)))
}

// AssertElementIsVisible asserts the element is at least 75% visible.
func (h *Helpers) AssertElementIsVisible(elementID string) error {
	return h.run(flow.NewAssertVisible(flow.ByID(elementID)))
}

// AssertElementExists asserts the element is in the view hierarchy.
func (h *Helpers) AssertElementExists(elementID string) error {
	return h.run(flow.NewAssertExists(flow.ByID(elementID)))
}

// AssertElementIsNotVisible asserts the element is not visible.
func (h *Helpers) AssertElementIsNotVisible(elementID string) error {
	return h.run(flow.NewAssertNotVisible(flow.ByID(elementID)))
}

// AssertToggleValue asserts a switch or checkbox has value.
func (h *Helpers) AssertToggleValue(elementID string, value bool) error {
	return h.run(flow.NewAssertToggle(flow.ByID(elementID), value))
}

// TextIsVisible asserts the element labelled text is at least 75% visible.
func (h *Helpers) TextIsVisible(text string) error {
	return h.run(flow.NewAssertVisible(flow.ByLabel(text)))
}

// ElementHasText asserts the element's text equals text.
func (h *Helpers) ElementHasText(elementID, text string) error {
	return h.run(flow.NewAssertText(flow.ByID(elementID), text))
}

// ClearText clears a text input.
func (h *Helpers) ClearText(elementID string) error {
	return h.run(flow.NewClearText(flow.ByID(elementID)))
}

// TypeText types text into an input using the keyboard.
func (h *Helpers) TypeText(elementID, text string) error {
	return h.run(flow.NewInputText(flow.ByID(elementID), text))
}

// ReplaceText replaces the content of an input without typing, like a paste.
func (h *Helpers) ReplaceText(elementID, text string) error {
	return h.run(flow.NewReplaceText(flow.ByID(elementID), text))
}

// TapReturnKey submits a text input.
func (h *Helpers) TapReturnKey(elementID string) error {
	return h.run(flow.NewTapReturnKey(flow.ByID(elementID)))
}

// Swipe swipes the element in direction. A positive offset scrolls by that
// distance instead.
func (h *Helpers) Swipe(elementID string, direction flow.Direction, offset int) error {
	if offset > 0 {
		return h.run(flow.NewScroll(flow.ByID(elementID), offset, direction))
	}
	return h.run(flow.NewSwipe(flow.ByID(elementID), direction))
}

// WaitForElement waits until the element is visible. A zero timeout means
// DefaultWaitTimeout.
func (h *Helpers) WaitForElement(elementID string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	return h.run(flow.NewWaitUntilVisible(flow.ByID(elementID), timeout))
}

// ScrollTo scrolls a container to one of its edges.
func (h *Helpers) ScrollTo(elementID string, edge flow.Edge) error {
	return h.run(flow.NewScrollToEdge(flow.ByID(elementID), edge))
}
