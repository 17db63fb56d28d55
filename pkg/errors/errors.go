// Package errors provides structured error types for the labelforge
// application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP preview server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly one-line error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The render pipeline has a closed error taxonomy. Every failure is terminal
// for the current render pass; nothing is retried and nothing is downgraded
// to a default bitmap.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeBarcodeEncoding, "EAN code can only contain numbers.")
//	if errors.Is(err, errors.ErrCodeBarcodeEncoding) {
//	    // Handle encoding error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeUnreadableImage, origErr, "cannot identify image file %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeLengthConflict Code = "LENGTH_CONFLICT"

	// Render pipeline errors
	ErrCodeNoContent        Code = "NO_CONTENT"
	ErrCodeCapacityExceeded Code = "QR_CAPACITY_EXCEEDED"
	ErrCodeBarcodeEncoding  Code = "BARCODE_ENCODING"
	ErrCodeLengthOverflow   Code = "LENGTH_OVERFLOW"

	// Resource errors
	ErrCodePictureMissing  Code = "PICTURE_PATH_MISSING"
	ErrCodeUnreadableImage Code = "UNREADABLE_IMAGE"
	ErrCodeFontNotFound    Code = "FONT_NOT_FOUND"

	// Device errors
	ErrCodeNoDevices   Code = "NO_DEVICES"
	ErrCodeDeviceWrite Code = "DEVICE_WRITE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
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
// For *Error types, returns the message without the cause chain.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
