// Package mock provides a recording driver for testing without a real device.
package mock

import (
	"fmt"
	"sync"
	"time"

	"github.com/devicelab-dev/e2e-helpers/pkg/core"
	"github.com/devicelab-dev/e2e-helpers/pkg/flow"
)

// Driver is a mock implementation of core.Driver that records every step.
type Driver struct {
	// Configuration
	Config Config

	mu        sync.Mutex
	steps     []flow.Step
	stepCount int
}

// Config configures mock driver behavior.
type Config struct {
	// FailOnStep makes step N fail (1-indexed). 0 = never fail.
	FailOnStep int
	// Fail decides per step whether it fails; a non-nil error fails the step.
	Fail func(step flow.Step) error
	// StepDelay adds artificial delay per step
	StepDelay time.Duration
	// Platform info to report
	Platform string
	DeviceID string
}

// supported lists the step types the mock executes; anything else fails
// with core.ErrUnsupportedStep.
var supported = map[flow.StepType]bool{
	flow.StepTapOn:            true,
	flow.StepSwipe:            true,
	flow.StepScroll:           true,
	flow.StepScrollToEdge:     true,
	flow.StepTapReturnKey:     true,
	flow.StepInputText:        true,
	flow.StepReplaceText:      true,
	flow.StepClearText:        true,
	flow.StepReloadApp:        true,
	flow.StepWaitUntilSeen:    true,
	flow.StepAssertVisible:    true,
	flow.StepAssertNotVisible: true,
	flow.StepAssertExists:     true,
	flow.StepAssertToggle:     true,
	flow.StepAssertText:       true,
}

// New creates a new mock driver.
func New(cfg Config) *Driver {
	if cfg.Platform == "" {
		cfg.Platform = "mock"
	}
	if cfg.DeviceID == "" {
		cfg.DeviceID = "mock-device"
	}
	return &Driver{Config: cfg}
}

// Execute records the step and simulates running it.
func (d *Driver) Execute(step flow.Step) *core.CommandResult {
	d.mu.Lock()
	d.stepCount++
	n := d.stepCount
	d.steps = append(d.steps, step)
	d.mu.Unlock()

	start := time.Now()

	// Simulate delay
	if d.Config.StepDelay > 0 {
		time.Sleep(d.Config.StepDelay)
	}

	if !supported[step.Type()] {
		err := core.ErrUnsupportedStep.WithDetails(map[string]interface{}{"step": string(step.Type())})
		return &core.CommandResult{
			Success:  false,
			Duration: time.Since(start),
			Error:    err,
			Message:  fmt.Sprintf("%s: %s", err.Message, step.Type()),
		}
	}

	// Check if this step should fail
	if d.Config.FailOnStep > 0 && n == d.Config.FailOnStep {
		return &core.CommandResult{
			Success:  false,
			Duration: time.Since(start),
			Error:    core.ErrCommandFailed.WithMessage(fmt.Sprintf("mock failure on step %d", n)),
			Message:  fmt.Sprintf("Simulated failure on step %d (%s)", n, step.Type()),
		}
	}
	if d.Config.Fail != nil {
		if err := d.Config.Fail(step); err != nil {
			return &core.CommandResult{
				Success:  false,
				Duration: time.Since(start),
				Error:    err,
				Message:  err.Error(),
			}
		}
	}

	result := &core.CommandResult{
		Success:  true,
		Duration: time.Since(start),
		Message:  fmt.Sprintf("Mock executed: %s", step.Describe()),
	}

	// Add mock element for steps that target one
	if t, ok := step.(flow.Targeted); ok {
		sel := t.Target()
		result.Element = &core.ElementInfo{
			ID:                 sel.ID,
			Text:               sel.Text,
			AccessibilityLabel: sel.Label,
			Visible:            true,
			Enabled:            true,
			Bounds:             core.Bounds{X: 100, Y: 200, Width: 200, Height: 50},
		}
	}

	return result
}

// Steps returns the executed steps in order.
func (d *Driver) Steps() []flow.Step {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]flow.Step(nil), d.steps...)
}

// Descriptions returns Describe() of every executed step.
func (d *Driver) Descriptions() []string {
	steps := d.Steps()
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Describe()
	}
	return out
}

// Reset forgets recorded steps.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.steps = nil
	d.stepCount = 0
}

// GetPlatformInfo returns mock platform info.
func (d *Driver) GetPlatformInfo() *core.PlatformInfo {
	return &core.PlatformInfo{
		Platform:    d.Config.Platform,
		DeviceID:    d.Config.DeviceID,
		DeviceName:  "Mock Device",
		OSVersion:   "1.0",
		IsSimulator: true,
	}
}
