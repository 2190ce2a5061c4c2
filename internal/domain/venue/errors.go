package venue

import (
	"errors"
	"fmt"

	"venuebooking/internal/pkg/validator"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrVenueNotFound = errors.New("venue not found")
)

// QueryError carries the field-level failures of a listing query.
type QueryError struct {
	Details []validator.FieldError
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid venue query: %d field error(s)", len(e.Details))
}

func (e *QueryError) Unwrap() error { return ErrValidation }
