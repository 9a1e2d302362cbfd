package repos

import (
	"fmt"
	"strings"
)

// UnknownRepositoryError indicates a config referenced a preset name
// that is not registered in the table.
type UnknownRepositoryError struct {
	// Name is the unresolved repository name.
	Name string
	// Known lists the registered preset names.
	Known []string
}

// Error implements the error interface.
func (e *UnknownRepositoryError) Error() string {
	return fmt.Sprintf("unknown icon repository %q (known: %s)",
		e.Name, strings.Join(e.Known, ", "))
}

// NewUnknownRepositoryError creates an UnknownRepositoryError.
func NewUnknownRepositoryError(name string, known []string) *UnknownRepositoryError {
	return &UnknownRepositoryError{Name: name, Known: known}
}

// InvalidVariantError indicates a variant name outside the preset's
// accepted variant set.
type InvalidVariantError struct {
	// Repository is the preset name.
	Repository string
	// Variant is the rejected variant name.
	Variant string
	// Allowed lists the accepted variant names.
	Allowed []string
}

// Error implements the error interface.
func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("invalid variant %q for repository %q (allowed: %s)",
		e.Variant, e.Repository, strings.Join(e.Allowed, ", "))
}

// NewInvalidVariantError creates an InvalidVariantError.
func NewInvalidVariantError(repository, variant string, allowed []string) *InvalidVariantError {
	return &InvalidVariantError{Repository: repository, Variant: variant, Allowed: allowed}
}
