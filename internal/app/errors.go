package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// LoadFailed indicates the configuration could not be loaded.
	LoadFailed AppErrorType = iota
	// InvalidOptions indicates run options were invalid.
	InvalidOptions
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewLoadError creates a config load error.
func NewLoadError(message string, cause error) *AppError {
	return &AppError{Type: LoadFailed, Message: message, Cause: cause}
}

// NewInvalidOptionsError creates an invalid options error.
func NewInvalidOptionsError(message string, cause error) *AppError {
	return &AppError{Type: InvalidOptions, Message: message, Cause: cause}
}
