package booking

import (
	"context"
	"time"

	"venuebooking/internal/domain"
)

// Overlaps reports whether the candidate range [start, end) intersects the
// existing range [existingStart, existingEnd). Ranges that only touch at an
// endpoint do not overlap.
func Overlaps(start, end, existingStart, existingEnd time.Time) bool {
	// candidate starts inside the existing booking
	if !existingStart.After(start) && existingEnd.After(start) {
		return true
	}
	// candidate ends inside the existing booking
	if existingStart.Before(end) && !existingEnd.Before(end) {
		return true
	}
	// candidate contains the existing booking
	return !start.After(existingStart) && !existingEnd.After(end)
}

type Availability struct {
	IsAvailable bool
	Conflicts   []domain.BookingInquiry
}

// ConflictFinder returns the active inquiries of a venue that may overlap a range.
type ConflictFinder interface {
	FindConflicts(ctx context.Context, venueID string, start, end time.Time, excludeID string) ([]domain.BookingInquiry, error)
}

type Checker struct {
	finder ConflictFinder
}

func NewChecker(finder ConflictFinder) *Checker {
	return &Checker{finder: finder}
}

// CheckAvailability reports whether no active inquiry for venueID overlaps
// [start, end). excludeID, when non-empty, is left out of consideration.
// The caller guarantees start < end and that the venue exists.
func (c *Checker) CheckAvailability(ctx context.Context, venueID string, start, end time.Time, excludeID string) (*Availability, error) {
	candidates, err := c.finder.FindConflicts(ctx, venueID, start, end, excludeID)
	if err != nil {
		return nil, err
	}

	conflicts := make([]domain.BookingInquiry, 0, len(candidates))
	for _, b := range candidates {
		if b.ID == excludeID && excludeID != "" {
			continue
		}
		if !b.Status.IsActive() {
			continue
		}
		if Overlaps(start, end, b.StartDate, b.EndDate) {
			conflicts = append(conflicts, b)
		}
	}

	return &Availability{
		IsAvailable: len(conflicts) == 0,
		Conflicts:   conflicts,
	}, nil
}
