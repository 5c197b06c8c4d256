package plans

import (
	"errors"
	"fmt"
)

// ErrPlanNotFound signals that the referenced plan id does not exist.
var ErrPlanNotFound = errors.New("plan not found")

// ValidationError describes a user-correctable problem with a write payload.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidationError reports whether err is a payload validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
