package traceix

import (
	"errors"
	"fmt"
)

// Error codes for machine-readable error classification.
const (
	CodeMissingAPIKey     = "missing_api_key"
	CodeInvalidSearchType = "invalid_search_type"
	CodeMissingUUID       = "missing_uuid"
	CodeFile              = "file_error"
	CodeTransport         = "transport_error"
	CodeDecode            = "decode_error"
)

// Error is the base error type for all SDK errors.
type Error struct {
	// Code is a machine-readable error code.
	Code string
	// Message is a human-readable error description.
	Message string
	// StatusCode is the HTTP status code, when one was received.
	StatusCode int
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the human-readable error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewMissingAPIKeyError creates an error indicating no API key was available.
func NewMissingAPIKeyError(msg string, cause error) *Error {
	return &Error{
		Code:    CodeMissingAPIKey,
		Message: msg,
		Cause:   cause,
	}
}

// NewInvalidSearchTypeError creates an error indicating an unrecognized
// hash-search type.
func NewInvalidSearchTypeError(msg string, cause error) *Error {
	return &Error{
		Code:    CodeInvalidSearchType,
		Message: msg,
		Cause:   cause,
	}
}

// NewMissingUUIDError creates an error indicating the status endpoint was
// called without a UUID.
func NewMissingUUIDError(msg string, cause error) *Error {
	return &Error{
		Code:    CodeMissingUUID,
		Message: msg,
		Cause:   cause,
	}
}

// NewFileError creates an error indicating an upload file could not be read.
func NewFileError(msg string, cause error) *Error {
	return &Error{
		Code:    CodeFile,
		Message: msg,
		Cause:   cause,
	}
}

// NewTransportError creates an error indicating the request never produced a
// usable response. Transport errors are swallowed at the public API boundary.
func NewTransportError(msg string, cause error) *Error {
	return &Error{
		Code:    CodeTransport,
		Message: msg,
		Cause:   cause,
	}
}

// NewDecodeError creates an error indicating the response body was not valid
// JSON. Decode errors are swallowed at the public API boundary.
func NewDecodeError(msg string, statusCode int, cause error) *Error {
	return &Error{
		Code:       CodeDecode,
		Message:    msg,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// IsMissingAPIKeyError reports whether err is or wraps a missing_api_key error.
func IsMissingAPIKeyError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == CodeMissingAPIKey
	}
	return false
}

// IsInvalidSearchTypeError reports whether err is or wraps an
// invalid_search_type error.
func IsInvalidSearchTypeError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == CodeInvalidSearchType
	}
	return false
}

// IsMissingUUIDError reports whether err is or wraps a missing_uuid error.
func IsMissingUUIDError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == CodeMissingUUID
	}
	return false
}

// IsFileError reports whether err is or wraps a file_error.
func IsFileError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == CodeFile
	}
	return false
}

// IsTransportError reports whether err is or wraps a transport_error.
func IsTransportError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == CodeTransport
	}
	return false
}

// IsDecodeError reports whether err is or wraps a decode_error.
func IsDecodeError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == CodeDecode
	}
	return false
}
