// Package flow describes single UI actions handed to an automation driver.
package flow

import (
	"fmt"
	"time"
)

// StepType represents the type of step.
type StepType string

// Step type constants.
const (
	// Interaction
	StepTapOn         StepType = "tapOn"
	StepSwipe         StepType = "swipe"
	StepScroll        StepType = "scroll"
	StepScrollToEdge  StepType = "scrollToEdge"
	StepTapReturnKey  StepType = "tapReturnKey"
	StepInputText     StepType = "inputText"
	StepReplaceText   StepType = "replaceText"
	StepClearText     StepType = "clearText"
	StepReloadApp     StepType = "reloadApp"
	StepWaitUntilSeen StepType = "waitUntilVisible"

	// Assertions
	StepAssertVisible    StepType = "assertVisible"
	StepAssertNotVisible StepType = "assertNotVisible"
	StepAssertExists     StepType = "assertExists"
	StepAssertToggle     StepType = "assertToggleValue"
	StepAssertText       StepType = "assertText"
)

// Direction is a swipe or scroll direction.
type Direction string

// Direction values
const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// Edge is a container edge to scroll to.
type Edge string

// Edge values
const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// Step is the interface for all steps.
type Step interface {
	Type() StepType
	Describe() string
}

// BaseStep contains common fields for all steps.
type BaseStep struct {
	StepType StepType
}

// Type returns the step type.
func (b *BaseStep) Type() StepType { return b.StepType }

// Describe returns a human-readable description.
func (b *BaseStep) Describe() string { return string(b.StepType) }

// ElementStep is embedded by steps that target one element.
type ElementStep struct {
	BaseStep
	Selector Selector
}

// Target returns the targeted element.
func (e *ElementStep) Target() Selector { return e.Selector }

// Describe returns e.g. tapOn #submit.
func (e *ElementStep) Describe() string {
	return fmt.Sprintf("%s %s", e.StepType, e.Selector.Describe())
}

// Targeted is implemented by steps that act on an element.
type Targeted interface {
	Step
	Target() Selector
}

func element(t StepType, sel Selector) ElementStep {
	return ElementStep{BaseStep: BaseStep{StepType: t}, Selector: sel}
}

// ============================================
// Interaction Steps
// ============================================

// TapOnStep taps on an element.
type TapOnStep struct {
	ElementStep
}

// NewTapOn returns a tap on sel.
func NewTapOn(sel Selector) *TapOnStep {
	return &TapOnStep{element(StepTapOn, sel)}
}

// SwipeStep swipes an element.
type SwipeStep struct {
	ElementStep
	Direction Direction
}

// NewSwipe returns a swipe on sel.
func NewSwipe(sel Selector, dir Direction) *SwipeStep {
	return &SwipeStep{ElementStep: element(StepSwipe, sel), Direction: dir}
}

// Describe returns e.g. swipe #list left.
func (s *SwipeStep) Describe() string {
	return fmt.Sprintf("%s %s", s.ElementStep.Describe(), s.Direction)
}

// ScrollStep scrolls inside an element by a distance in points.
type ScrollStep struct {
	ElementStep
	Offset    int
	Direction Direction
}

// NewScroll returns a scroll of offset inside sel.
func NewScroll(sel Selector, offset int, dir Direction) *ScrollStep {
	return &ScrollStep{ElementStep: element(StepScroll, sel), Offset: offset, Direction: dir}
}

// Describe returns e.g. scroll #list 200 down.
func (s *ScrollStep) Describe() string {
	return fmt.Sprintf("%s %d %s", s.ElementStep.Describe(), s.Offset, s.Direction)
}

// ScrollToEdgeStep scrolls a container to one of its edges.
type ScrollToEdgeStep struct {
	ElementStep
	Edge Edge
}

// NewScrollToEdge returns a scroll of sel to edge.
func NewScrollToEdge(sel Selector, edge Edge) *ScrollToEdgeStep {
	return &ScrollToEdgeStep{ElementStep: element(StepScrollToEdge, sel), Edge: edge}
}

// Describe returns e.g. scrollToEdge #list bottom.
func (s *ScrollToEdgeStep) Describe() string {
	return fmt.Sprintf("%s %s", s.ElementStep.Describe(), s.Edge)
}

// TapReturnKeyStep submits a text input.
type TapReturnKeyStep struct {
	ElementStep
}

// NewTapReturnKey returns a return-key tap on sel.
func NewTapReturnKey(sel Selector) *TapReturnKeyStep {
	return &TapReturnKeyStep{element(StepTapReturnKey, sel)}
}

// InputTextStep types text using the keyboard.
type InputTextStep struct {
	ElementStep
	Text string
}

// NewInputText returns a typing step.
func NewInputText(sel Selector, text string) *InputTextStep {
	return &InputTextStep{ElementStep: element(StepInputText, sel), Text: text}
}

// ReplaceTextStep replaces the content of a text input without typing.
type ReplaceTextStep struct {
	ElementStep
	Text string
}

// NewReplaceText returns a replace step.
func NewReplaceText(sel Selector, text string) *ReplaceTextStep {
	return &ReplaceTextStep{ElementStep: element(StepReplaceText, sel), Text: text}
}

// ClearTextStep clears a text input.
type ClearTextStep struct {
	ElementStep
}

// NewClearText returns a clear step.
func NewClearText(sel Selector) *ClearTextStep {
	return &ClearTextStep{element(StepClearText, sel)}
}

// ReloadAppStep reloads the app's JS bundle without relaunching it.
type ReloadAppStep struct {
	BaseStep
}

// NewReloadApp returns a reload step.
func NewReloadApp() *ReloadAppStep {
	return &ReloadAppStep{BaseStep{StepType: StepReloadApp}}
}

// WaitUntilVisibleStep waits for an element to become visible.
type WaitUntilVisibleStep struct {
	ElementStep
	Timeout time.Duration
}

// NewWaitUntilVisible returns a wait step.
func NewWaitUntilVisible(sel Selector, timeout time.Duration) *WaitUntilVisibleStep {
	return &WaitUntilVisibleStep{ElementStep: element(StepWaitUntilSeen, sel), Timeout: timeout}
}

// Describe returns e.g. waitUntilVisible #home 5s.
func (s *WaitUntilVisibleStep) Describe() string {
	return fmt.Sprintf("%s %s", s.ElementStep.Describe(), s.Timeout)
}

// ============================================
// Assertion Steps
// ============================================

// AssertVisibleStep asserts an element is at least 75% visible.
type AssertVisibleStep struct {
	ElementStep
}

// NewAssertVisible returns a visibility assertion.
func NewAssertVisible(sel Selector) *AssertVisibleStep {
	return &AssertVisibleStep{element(StepAssertVisible, sel)}
}

// AssertNotVisibleStep asserts an element is not visible.
type AssertNotVisibleStep struct {
	ElementStep
}

// NewAssertNotVisible returns a negated visibility assertion.
func NewAssertNotVisible(sel Selector) *AssertNotVisibleStep {
	return &AssertNotVisibleStep{element(StepAssertNotVisible, sel)}
}

// AssertExistsStep asserts an element is in the view hierarchy.
type AssertExistsStep struct {
	ElementStep
}

// NewAssertExists returns an existence assertion.
func NewAssertExists(sel Selector) *AssertExistsStep {
	return &AssertExistsStep{element(StepAssertExists, sel)}
}

// AssertToggleStep asserts a switch or checkbox value.
type AssertToggleStep struct {
	ElementStep
	Value bool
}

// NewAssertToggle returns a toggle assertion.
func NewAssertToggle(sel Selector, value bool) *AssertToggleStep {
	return &AssertToggleStep{ElementStep: element(StepAssertToggle, sel), Value: value}
}

// Describe returns e.g. assertToggleValue #dark-mode true.
func (s *AssertToggleStep) Describe() string {
	return fmt.Sprintf("%s %t", s.ElementStep.Describe(), s.Value)
}

// AssertTextStep asserts an element's text.
type AssertTextStep struct {
	ElementStep
	Text string
}

// NewAssertText returns a text assertion.
func NewAssertText(sel Selector, text string) *AssertTextStep {
	return &AssertTextStep{ElementStep: element(StepAssertText, sel), Text: text}
}

// Describe returns e.g. assertText #title "Home".
func (s *AssertTextStep) Describe() string {
	return fmt.Sprintf("%s %q", s.ElementStep.Describe(), s.Text)
}
