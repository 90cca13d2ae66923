package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch reports that no charity cleared the acceptance threshold.
	// It is an expected outcome, not a failure.
	ErrNoMatch = errors.New("no matching charity found")

	// ErrEmptyCatalog reports a catalog with zero valid charities.
	ErrEmptyCatalog = errors.New("charity catalog is empty")
)

// ValidationError reports a malformed or missing onboarding field, an invalid
// enumerated value, or an invalid charity record. Surfaced at the boundary so
// invalid states never reach the scoring stages.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
