package errors

import "fmt"

// AppError represents an application error with a stable code and optional
// wrapped cause.
type AppError struct {
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Internal error       `json:"-"`
	Details  interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

// Unwrap returns the internal error for errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Internal
}

// Common error codes
const (
	ErrCodeConfig     = "CONFIG_ERROR"
	ErrCodeParse      = "PARSE_ERROR"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an error with an AppError
func Wrap(err error, code, message string) *AppError {
	return &AppError{Code: code, Message: message, Internal: err}
}

// WithDetails adds details to an AppError
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// ConfigError creates a fatal configuration error
func ConfigError(message string, err error) *AppError {
	return Wrap(err, ErrCodeConfig, message)
}

// ParseError creates a template or config parse error
func ParseError(message string, err error) *AppError {
	return Wrap(err, ErrCodeParse, message)
}

// ValidationError creates a validation error with field details
func ValidationError(message string, details interface{}) *AppError {
	return New(ErrCodeValidation, message).WithDetails(details)
}

// NotFound creates a not found error
func NotFound(what string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", what))
}

// Internal creates an internal error
func Internal(message string, err error) *AppError {
	return Wrap(err, ErrCodeInternal, message)
}
