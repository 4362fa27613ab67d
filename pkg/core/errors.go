package core

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies the type of error for better debugging and reporting
type ErrorCategory int

const (
	ErrCategoryNone       ErrorCategory = iota // No error
	ErrCategoryAssertion                       // Element not found, text mismatch, visibility check failed
	ErrCategoryTimeout                         // Operation timed out
	ErrCategoryConnection                      // Device/server connection lost
	ErrCategoryApp                             // App crashed, not responding
	ErrCategoryDriver                          // Driver rejected or could not run the command
)

// String returns the string representation of ErrorCategory
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryNone:
		return "none"
	case ErrCategoryAssertion:
		return "assertion"
	case ErrCategoryTimeout:
		return "timeout"
	case ErrCategoryConnection:
		return "connection"
	case ErrCategoryApp:
		return "app"
	case ErrCategoryDriver:
		return "driver"
	default:
		return "unknown"
	}
}

// ExecutionError represents a structured error with category and details
type ExecutionError struct {
	Category ErrorCategory
	Code     string                 // Machine-readable code: element_not_found, timeout, etc.
	Message  string                 // Human-readable message
	Details  map[string]interface{} // Additional context
	Cause    error                  // Underlying error
}

// Error implements the error interface
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Is matches execution errors by code, so copies made with WithCause,
// WithMessage or WithDetails still match the predefined errors.
func (e *ExecutionError) Is(target error) bool {
	t, ok := target.(*ExecutionError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithCause returns a copy of the error with the given cause
func (e *ExecutionError) WithCause(cause error) *ExecutionError {
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *ExecutionError) WithMessage(msg string) *ExecutionError {
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Details:  e.Details,
		Cause:    e.Cause,
	}
}

// WithDetails returns a copy of the error with additional details
func (e *ExecutionError) WithDetails(details map[string]interface{}) *ExecutionError {
	merged := make(map[string]interface{})
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  merged,
		Cause:    e.Cause,
	}
}

// Predefined errors. Drivers return these (or copies) so tests can match
// failures with errors.Is.
var (
	// Assertion errors
	ErrElementNotFound = &ExecutionError{
		Category: ErrCategoryAssertion,
		Code:     "element_not_found",
		Message:  "element not found",
	}
	ErrElementNotVisible = &ExecutionError{
		Category: ErrCategoryAssertion,
		Code:     "element_not_visible",
		Message:  "element not visible",
	}
	ErrElementVisible = &ExecutionError{
		Category: ErrCategoryAssertion,
		Code:     "element_visible",
		Message:  "element is visible",
	}
	ErrTextMismatch = &ExecutionError{
		Category: ErrCategoryAssertion,
		Code:     "text_mismatch",
		Message:  "text does not match expected value",
	}
	ErrToggleMismatch = &ExecutionError{
		Category: ErrCategoryAssertion,
		Code:     "toggle_mismatch",
		Message:  "toggle value does not match expected value",
	}

	// Timeout errors
	ErrTimeout = &ExecutionError{
		Category: ErrCategoryTimeout,
		Code:     "timeout",
		Message:  "operation timed out",
	}
	ErrWaitTimeout = &ExecutionError{
		Category: ErrCategoryTimeout,
		Code:     "wait_timeout",
		Message:  "wait condition timed out",
	}

	// Connection errors
	ErrDeviceDisconnected = &ExecutionError{
		Category: ErrCategoryConnection,
		Code:     "device_disconnected",
		Message:  "device connection lost",
	}

	// App errors
	ErrAppCrashed = &ExecutionError{
		Category: ErrCategoryApp,
		Code:     "app_crashed",
		Message:  "application crashed",
	}

	// Driver errors
	ErrCommandFailed = &ExecutionError{
		Category: ErrCategoryDriver,
		Code:     "command_failed",
		Message:  "command failed",
	}
	ErrUnsupportedStep = &ExecutionError{
		Category: ErrCategoryDriver,
		Code:     "unsupported_step",
		Message:  "step not supported by driver",
	}
	ErrNoResult = &ExecutionError{
		Category: ErrCategoryDriver,
		Code:     "no_result",
		Message:  "driver returned no result",
	}
)

// NewExecutionError creates a new ExecutionError with the given parameters
func NewExecutionError(category ErrorCategory, code, message string) *ExecutionError {
	return &ExecutionError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// CategoryOf returns the category of the first ExecutionError in err's
// chain, or ErrCategoryNone.
func CategoryOf(err error) ErrorCategory {
	var e *ExecutionError
	if errors.As(err, &e) {
		return e.Category
	}
	return ErrCategoryNone
}
