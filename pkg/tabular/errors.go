package tabular

import (
	"errors"
	"fmt"
)

// ErrorType discriminates the failure classes of this package.
type ErrorType string

const (
	ErrTypeNotFound       ErrorType = "NOT_FOUND"
	ErrTypeFormat         ErrorType = "FORMAT"
	ErrTypeParse          ErrorType = "PARSE"
	ErrTypeColumnNotFound ErrorType = "COLUMN_NOT_FOUND"
	ErrTypeInvalidNumber  ErrorType = "INVALID_NUMBER"
	ErrTypeNoData         ErrorType = "NO_DATA"
)

// Error is the error value returned by every operation in this package.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new error of the given type
func NewError(errType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Helper constructors for the failure classes

// NewNotFoundError reports a source file that could not be opened.
func NewNotFoundError(path string, cause error) *Error {
	return NewError(ErrTypeNotFound, fmt.Sprintf("file %q not found", path), cause).
		WithContext("path", path)
}

// NewFormatError reports an unsupported file extension or document shape.
func NewFormatError(message string, cause error) *Error {
	return NewError(ErrTypeFormat, message, cause)
}

// NewParseError reports malformed CSV or JSON content.
func NewParseError(message string, cause error) *Error {
	return NewError(ErrTypeParse, message, cause)
}

// NewColumnNotFoundError reports a requested column that matched no column
// of the record set.
func NewColumnNotFoundError(column string, available []string) *Error {
	return NewError(ErrTypeColumnNotFound, fmt.Sprintf("column %q not found", column), nil).
		WithContext("column", column).
		WithContext("available", available)
}

// NewInvalidNumberError reports a value that failed numeric parsing during
// a numeric aggregation.
func NewInvalidNumberError(column, value string, cause error) *Error {
	return NewError(ErrTypeInvalidNumber, fmt.Sprintf("column %q holds non-numeric value %q", column, value), cause).
		WithContext("column", column).
		WithContext("value", value)
}

// NewNoDataError reports a strict average over zero participating values.
func NewNoDataError(column string) *Error {
	return NewError(ErrTypeNoData, fmt.Sprintf("column %q has no values to average", column), nil).
		WithContext("column", column)
}

// hasType reports whether err or anything it wraps is an *Error of type t.
func hasType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// IsNotFound reports whether err is a missing-file error.
func IsNotFound(err error) bool { return hasType(err, ErrTypeNotFound) }

// IsFormat reports whether err is an unsupported-format error.
func IsFormat(err error) bool { return hasType(err, ErrTypeFormat) }

// IsParse reports whether err is a malformed-content error.
func IsParse(err error) bool { return hasType(err, ErrTypeParse) }

// IsColumnNotFound reports whether err is a missing-column error.
func IsColumnNotFound(err error) bool { return hasType(err, ErrTypeColumnNotFound) }

// IsInvalidNumber reports whether err is a non-numeric-value error.
func IsInvalidNumber(err error) bool { return hasType(err, ErrTypeInvalidNumber) }

// IsNoData reports whether err is an empty-average error.
func IsNoData(err error) bool { return hasType(err, ErrTypeNoData) }
