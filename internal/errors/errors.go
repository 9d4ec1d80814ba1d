package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code categorizes an error so callers can branch without string matching
type Code string

const (
	// CodeUnknown is used for foreign errors wrapped without a code
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed a bad argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a draft or reference table does not exist
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates a draft with the same ID is already stored
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates a storage or encoding failure
	CodeInternal Code = "internal"

	// CodeUnavailable indicates a backing store could not be reached
	CodeUnavailable Code = "unavailable"

	// CodeValidation indicates a survivor failed semantic validation
	CodeValidation Code = "validation"
)

// Error is an application error with a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a key/value pair and returns the same error for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. The code of an existing *Error is preserved.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    cloneMeta(appErr.Meta),
		}
	}

	return &Error{Code: CodeUnknown, Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

func Validationf(format string, args ...any) *Error { return Newf(CodeValidation, format, args...) }

// Is reports whether err carries the given code anywhere in its chain
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool { return Is(err, CodeNotFound) }

func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }

func IsAlreadyExists(err error) bool { return Is(err, CodeAlreadyExists) }

func IsValidation(err error) bool { return Is(err, CodeValidation) }

// GetCode returns the code of err, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata attached to err, if any
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// FieldErrors collects per-field validation failures into one validation error
type FieldErrors struct {
	fields []string
	msgs   []string
}

// Add records a failure for field
func (f *FieldErrors) Add(field, format string, args ...any) {
	f.fields = append(f.fields, field)
	f.msgs = append(f.msgs, fmt.Sprintf(format, args...))
}

// Len returns the number of recorded failures
func (f *FieldErrors) Len() int {
	return len(f.fields)
}

// Err returns nil when nothing was recorded, otherwise a CodeValidation error
// whose Meta maps each failing field to its message.
func (f *FieldErrors) Err() error {
	if len(f.fields) == 0 {
		return nil
	}

	parts := make([]string, len(f.fields))
	for i := range f.fields {
		parts[i] = f.fields[i] + ": " + f.msgs[i]
	}

	err := Validationf("survivor is invalid: %s", strings.Join(parts, "; "))
	for i, field := range f.fields {
		err.WithMeta(field, f.msgs[i])
	}
	return err
}

func cloneMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}
