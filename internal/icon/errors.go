package icon

import "fmt"

// FetchErrorType represents the type of fetch error.
type FetchErrorType int

const (
	// FetchRequestFailed indicates the HTTP request could not be completed.
	FetchRequestFailed FetchErrorType = iota
	// FetchBadStatus indicates the server answered with a non-success status.
	FetchBadStatus
	// FetchNotDownloaded indicates SVG content was used before it was fetched.
	FetchNotDownloaded
)

// String returns the string representation of the error type.
func (t FetchErrorType) String() string {
	switch t {
	case FetchRequestFailed:
		return "RequestFailed"
	case FetchBadStatus:
		return "BadStatus"
	case FetchNotDownloaded:
		return "NotDownloaded"
	default:
		return "Unknown"
	}
}

// FetchError represents a per-icon download error.
type FetchError struct {
	// Type is the error type classification.
	Type FetchErrorType
	// Icon is the icon name the error relates to.
	Icon string
	// URL is the raw-content URL that was requested, if any.
	URL string
	// StatusCode is the HTTP status code for BadStatus errors.
	StatusCode int
	// Status is the HTTP status text for BadStatus errors.
	Status string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	switch e.Type {
	case FetchBadStatus:
		return fmt.Sprintf("failed to download icon %q from %s: %s (status %d)",
			e.Icon, e.URL, e.Status, e.StatusCode)
	case FetchNotDownloaded:
		return fmt.Sprintf("icon %q has no SVG content yet: download must run first", e.Icon)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("failed to download icon %q from %s: %v", e.Icon, e.URL, e.Cause)
		}
		return fmt.Sprintf("failed to download icon %q from %s", e.Icon, e.URL)
	}
}

// Unwrap returns the underlying cause for error wrapping.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewRequestError creates a request failed error.
func NewRequestError(icon, url string, cause error) *FetchError {
	return &FetchError{Type: FetchRequestFailed, Icon: icon, URL: url, Cause: cause}
}

// NewHTTPStatusError creates a non-success status error.
func NewHTTPStatusError(icon, url string, code int, status string) *FetchError {
	return &FetchError{Type: FetchBadStatus, Icon: icon, URL: url, StatusCode: code, Status: status}
}

// NewNotFetchedError creates an error for content accessed before download.
func NewNotFetchedError(icon string) *FetchError {
	return &FetchError{Type: FetchNotDownloaded, Icon: icon}
}
