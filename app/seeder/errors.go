package seeder

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingReference is matched by every *MissingReferenceError.
	ErrMissingReference = errors.New("missing reference")
	// ErrInvalidDataset is returned when seed data fails validation before
	// anything is written.
	ErrInvalidDataset = errors.New("invalid dataset")
)

// MissingReferenceError reports a slug that does not match any row created
// earlier in the run.
type MissingReferenceError struct {
	Kind string // "tag", "product category", ...
	Slug string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Slug)
}

func (e *MissingReferenceError) Is(target error) bool {
	return target == ErrMissingReference
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDataset, fmt.Sprintf(format, args...))
}
