package writer

import "fmt"

// WriteError represents a filesystem write failure.
type WriteError struct {
	// Message is the error message.
	Message string
	// File is the file path related to the error.
	File string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
	}
	return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// newWriteError creates a new WriteError.
func newWriteError(message, file string, cause error) *WriteError {
	return &WriteError{
		Message: message,
		File:    file,
		Cause:   cause,
	}
}
