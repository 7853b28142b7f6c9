package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents different types of errors the engine can report
type ErrorCategory string

const (
	// Parameter problems, rejected before any computation starts
	ErrorCategoryParameter ErrorCategory = "PARAMETER"

	// Input series problems, rejected at ingestion
	ErrorCategoryData ErrorCategory = "DATA"

	// Reporting/output problems, after the series was computed
	ErrorCategoryOutput ErrorCategory = "OUTPUT"
)

// Sentinel errors for the engine's failure taxonomy. Callers match these
// with errors.Is; the wrapping EngineError carries the context.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInsufficientData = errors.New("insufficient data")
	ErrMalformedInput   = errors.New("malformed input")
)

// EngineError is a categorized error with component/operation context
type EngineError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for errors.Is/errors.As matching
func (e *EngineError) Unwrap() error {
	return e.Underlying
}

// NewEngineError creates a new categorized engine error
func NewEngineError(category ErrorCategory, component, operation, message string) *EngineError {
	return &EngineError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
	}
}

// WrapError wraps an existing error with engine error context
func WrapError(err error, category ErrorCategory, component, operation string) *EngineError {
	if err == nil {
		return nil
	}
	return &EngineError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
	}
}

// NewInvalidParameterError reports a non-positive period, multiplier or
// similar bad parameter. Always detected before computation begins.
func NewInvalidParameterError(component, operation, message string) *EngineError {
	return &EngineError{
		Category:   ErrorCategoryParameter,
		Component:  component,
		Operation:  operation,
		Message:    message,
		Underlying: ErrInvalidParameter,
	}
}

// NewInsufficientDataError reports an input series shorter than the
// warm-up length the requested parameters need.
func NewInsufficientDataError(component, operation string, got, need int) *EngineError {
	return &EngineError{
		Category:   ErrorCategoryData,
		Component:  component,
		Operation:  operation,
		Message:    fmt.Sprintf("have %d bars, need at least %d", got, need),
		Underlying: ErrInsufficientData,
	}
}

// NewMalformedInputError reports a structurally invalid input series
// (non-monotonic timestamps, high < low). Detected at ingestion; no
// partial series is ever returned.
func NewMalformedInputError(component, operation, message string) *EngineError {
	return &EngineError{
		Category:   ErrorCategoryData,
		Component:  component,
		Operation:  operation,
		Message:    message,
		Underlying: ErrMalformedInput,
	}
}
