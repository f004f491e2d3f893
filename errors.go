package eventsource

import (
	"errors"
	"fmt"
)

// ErrorCode classifies eventsource errors.
type ErrorCode int

const (
	// ErrCodeBadStatus indicates the response status was not 200.
	ErrCodeBadStatus ErrorCode = iota
	// ErrCodeBadContentType indicates a missing or mismatched Content-Type.
	ErrCodeBadContentType
	// ErrCodeTransport indicates an I/O failure while reading the stream.
	ErrCodeTransport
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeBadStatus:
		return "bad_status"
	case ErrCodeBadContentType:
		return "bad_content_type"
	case ErrCodeTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is a structured eventsource error with classification.
//
// Validation errors (bad status, bad content type) are returned before any
// body byte is read; transport errors surface from Stream.Next while
// reading the stream.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the observed HTTP status (validation errors only).
	StatusCode int
	// ContentType is the observed Content-Type header value (validation
	// errors only). Empty when the header was absent.
	ContentType string
	// Message describes the error.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("eventsource: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewBadStatusError creates a validation error for a non-200 status.
func NewBadStatusError(statusCode int) *Error {
	return &Error{
		Code:       ErrCodeBadStatus,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("expecting status code 200, found %d", statusCode),
	}
}

// NewBadContentTypeError creates a validation error for a missing or
// mismatched Content-Type header.
func NewBadContentTypeError(contentType string) *Error {
	msg := fmt.Sprintf("expecting %q content type, found %q", mimeEventStream, contentType)
	if contentType == "" {
		msg = fmt.Sprintf("expecting %q content type, found none", mimeEventStream)
	}
	return &Error{
		Code:        ErrCodeBadContentType,
		StatusCode:  200,
		ContentType: contentType,
		Message:     msg,
	}
}

// NewTransportError creates a transport error from an underlying I/O error.
func NewTransportError(err error) *Error {
	return &Error{
		Code:    ErrCodeTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// IsBadStatus checks if an error is a bad-status validation error.
func IsBadStatus(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeBadStatus
}

// IsBadContentType checks if an error is a content-type validation error.
func IsBadContentType(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeBadContentType
}

// IsValidation checks if an error is a response validation error.
func IsValidation(err error) bool {
	return IsBadStatus(err) || IsBadContentType(err)
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}
