// Package errors provides structured error types for the subplots module.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//
// # Error Codes
//
// Each failure mode of a subplot grid has its own code:
//   - INVALID_CONFIG: bad shape, type or range of any grid argument
//   - SPAN_OUT_OF_RANGE: a colspan/rowspan runs past the grid edge
//   - CELL_OUT_OF_RANGE: a 1-based (row, col) outside the grid
//   - EMPTY_CELL: an operation targets a cell without a subplot
//   - INCOMPATIBLE_TRACE: the trace cannot bind to the cell's subplot kind
//   - UNKNOWN_SUBPLOT_TYPE: an unrecognized subplot kind
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "rows must be > 0, got %v (%T)", rows, rows)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "read grid file %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Grid construction errors
	ErrCodeInvalidConfig      Code = "INVALID_CONFIG"
	ErrCodeSpanOutOfRange     Code = "SPAN_OUT_OF_RANGE"
	ErrCodeUnknownSubplotType Code = "UNKNOWN_SUBPLOT_TYPE"

	// Lookup and binding errors
	ErrCodeCellOutOfRange    Code = "CELL_OUT_OF_RANGE"
	ErrCodeEmptyCell         Code = "EMPTY_CELL"
	ErrCodeIncompatibleTrace Code = "INCOMPATIBLE_TRACE"

	// Input errors (files, flags)
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Config is shorthand for New(ErrCodeInvalidConfig, ...).
func Config(format string, args ...any) *Error {
	return New(ErrCodeInvalidConfig, format, args...)
}
