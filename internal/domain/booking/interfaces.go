package booking

import (
	"context"

	"venuebooking/internal/domain"
)

// BookingRepository defines the storage operations used by the booking workflow.
type BookingRepository interface {
	ConflictFinder
	Create(ctx context.Context, b *domain.BookingInquiry) error
	List(ctx context.Context) ([]domain.BookingInquiry, error)
	GetByID(ctx context.Context, id string) (*domain.BookingInquiry, error)
	// LockVenue loads the venue and holds a row lock on it until the
	// surrounding transaction ends.
	LockVenue(ctx context.Context, venueID string) (*domain.Venue, error)
	// WithinTransaction runs fn against a repository bound to one transaction.
	WithinTransaction(ctx context.Context, fn func(repo BookingRepository) error) error
}
