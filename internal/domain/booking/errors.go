package booking

import (
	"errors"
	"fmt"

	"venuebooking/internal/domain"
	"venuebooking/internal/pkg/validator"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrNotAvailable    = errors.New("venue not available")
	ErrVenueNotFound   = errors.New("venue not found")
	ErrBookingNotFound = errors.New("booking inquiry not found")
)

// ValidationError carries the field-level failures of a booking inquiry.
type ValidationError struct {
	Details []validator.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking inquiry: %d field error(s)", len(e.Details))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

type CapacityError struct {
	AttendeeCount int
	Capacity      int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Attendee count (%d) exceeds venue capacity (%d)", e.AttendeeCount, e.Capacity)
}

func (e *CapacityError) Unwrap() error { return ErrValidation }

// ConflictError lists the active inquiries that overlap the requested range.
// Conflicts is empty when the overlap was rejected by the storage constraint.
type ConflictError struct {
	Conflicts []domain.BookingInquiry
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("venue not available: %d conflicting booking(s)", len(e.Conflicts))
}

func (e *ConflictError) Unwrap() error { return ErrNotAvailable }
