// Package core defines the contract between the e2e helpers and the UI
// automation driver that performs each action on a device.
package core

import (
	"time"

	"github.com/devicelab-dev/e2e-helpers/pkg/flow"
)

// Driver executes UI actions on a device.
// Implementations wrap a real automation engine (Detox, Appium, XCUITest,
// UIAutomator2); the helpers only forward steps to it.
type Driver interface {
	// Execute runs a single step and returns the result. It blocks until
	// the action or assertion has been resolved.
	Execute(step flow.Step) *CommandResult

	// GetPlatformInfo returns device/platform information
	GetPlatformInfo() *PlatformInfo
}

// CommandResult represents the outcome of executing a single command
type CommandResult struct {
	// Core outcome
	Success  bool          `json:"success"`
	Error    error         `json:"-"`
	Duration time.Duration `json:"duration"`

	// Human-readable output
	Message string `json:"message,omitempty"`

	// Element information (for tap, assert, scroll, etc.)
	Element *ElementInfo `json:"element,omitempty"`
}

// Err returns nil for a successful result and the driver's error otherwise.
// A failed result without an error is reported as ErrCommandFailed.
func (r *CommandResult) Err() error {
	if r == nil {
		return ErrNoResult
	}
	if r.Success {
		return nil
	}
	if r.Error != nil {
		return r.Error
	}
	if r.Message != "" {
		return ErrCommandFailed.WithMessage(r.Message)
	}
	return ErrCommandFailed
}

// ElementInfo represents information about a UI element
type ElementInfo struct {
	ID                 string `json:"id,omitempty"`
	Text               string `json:"text,omitempty"`
	Bounds             Bounds `json:"bounds"`
	Visible            bool   `json:"visible"`
	Enabled            bool   `json:"enabled"`
	Checked            bool   `json:"checked,omitempty"`
	AccessibilityLabel string `json:"accessibilityLabel,omitempty"`
}

// Bounds represents element position and size
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the center point of the bounds
func (b Bounds) Center() (int, int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// PlatformInfo contains device and platform details
type PlatformInfo struct {
	Platform    string `json:"platform"`        // ios, android
	OSVersion   string `json:"osVersion"`       // e.g., "17.0", "14"
	DeviceName  string `json:"deviceName"`      // e.g., "iPhone 15 Pro", "Pixel 8"
	DeviceID    string `json:"deviceId"`        // Unique device identifier
	IsSimulator bool   `json:"isSimulator"`     // Simulator/emulator vs real device
	AppID       string `json:"appId,omitempty"` // Bundle ID / Package name
}
