// Package errors provides a lightweight structured error type (HookError)
// for category-based classification across the CLI and its internals.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a readmepin error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// External system integration errors
	CategoryGit ErrorCategory = "git"

	// Processing errors
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime errors
	CategoryRuntime ErrorCategory = "runtime"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// HookError is a structured error with category, severity, and context
type HookError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for HookError
type ContextFields map[string]any

// Error implements the error interface
func (e *HookError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *HookError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *HookError) WithContext(key string, value any) *HookError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new HookError
func New(category ErrorCategory, severity ErrorSeverity, message string) *HookError {
	return &HookError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new HookError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *HookError {
	return &HookError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if he, ok := err.(*HookError); ok {
		return he.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryRuntime if not a HookError
func GetCategory(err error) ErrorCategory {
	if he, ok := err.(*HookError); ok {
		return he.Category
	}
	return CategoryRuntime
}
