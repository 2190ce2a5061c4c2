package testfixtures

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"venuebooking/internal/domain"
)

// ReferenceTime is the shared anchor for fixture dates.
func ReferenceTime() time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// Day returns midnight UTC of the given calendar date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// VenueOption customises a fixture venue before it is inserted.
type VenueOption func(*domain.Venue)

func WithLocation(location string) VenueOption {
	return func(v *domain.Venue) { v.Location = location }
}

func WithCapacity(capacity int) VenueOption {
	return func(v *domain.Venue) { v.Capacity = capacity }
}

func WithPrice(price float64) VenueOption {
	return func(v *domain.Venue) { v.PricePerNight = price }
}

func WithCreatedAt(at time.Time) VenueOption {
	return func(v *domain.Venue) { v.CreatedAt = at }
}

func CreateVenue(tb testing.TB, db *gorm.DB, name string, opts ...VenueOption) *domain.Venue {
	tb.Helper()

	v := &domain.Venue{
		Name:          name,
		Description:   fmt.Sprintf("%s description", name),
		Location:      "Denver",
		Address:       "123 Mountain Rd",
		Capacity:      50,
		PricePerNight: 2500,
		Amenities:     []string{"WiFi", "Catering"},
		ImageURL:      "https://example.com/venue.jpg",
	}
	for _, opt := range opts {
		opt(v)
	}
	if err := db.Create(v).Error; err != nil {
		tb.Fatalf("failed to create venue %q: %v", name, err)
	}
	return v
}

func CreateBooking(tb testing.TB, db *gorm.DB, venueID string, start, end time.Time, status domain.BookingStatus) *domain.BookingInquiry {
	tb.Helper()

	b := &domain.BookingInquiry{
		VenueID:       venueID,
		CompanyName:   "Acme",
		Email:         "team@acme.test",
		StartDate:     start.UTC(),
		EndDate:       end.UTC(),
		AttendeeCount: 10,
		Status:        status,
	}
	if err := db.Create(b).Error; err != nil {
		tb.Fatalf("failed to create booking: %v", err)
	}
	return b
}
