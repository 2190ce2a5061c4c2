package booking

import (
	"context"
	"time"

	"venuebooking/internal/domain"
)

type Service struct {
	bookings BookingRepository
	checker  *Checker
}

func NewService(bookings BookingRepository) *Service {
	return &Service{
		bookings: bookings,
		checker:  NewChecker(bookings),
	}
}

// CreateBooking validates the inquiry, checks capacity and availability and
// stores it as pending. The venue row stays locked from lookup to insert so
// concurrent inquiries for the same venue cannot both pass the check.
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (*domain.BookingInquiry, error) {
	req, err := in.Parse()
	if err != nil {
		return nil, err
	}

	var created *domain.BookingInquiry
	err = s.bookings.WithinTransaction(ctx, func(repo BookingRepository) error {
		venue, err := repo.LockVenue(ctx, req.VenueID)
		if err != nil {
			return err
		}

		if req.AttendeeCount > venue.Capacity {
			return &CapacityError{AttendeeCount: req.AttendeeCount, Capacity: venue.Capacity}
		}

		availability, err := NewChecker(repo).CheckAvailability(ctx, venue.ID, req.StartDate, req.EndDate, "")
		if err != nil {
			return err
		}
		if !availability.IsAvailable {
			return &ConflictError{Conflicts: availability.Conflicts}
		}

		b := &domain.BookingInquiry{
			VenueID:       venue.ID,
			CompanyName:   req.CompanyName,
			Email:         req.Email,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			AttendeeCount: req.AttendeeCount,
			Status:        domain.BookingPending,
		}
		if err := repo.Create(ctx, b); err != nil {
			return err
		}

		b.Venue = venue
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CheckAvailability is the read-only availability query outside of booking creation.
func (s *Service) CheckAvailability(ctx context.Context, venueID string, start, end time.Time, excludeID string) (*Availability, error) {
	return s.checker.CheckAvailability(ctx, venueID, start, end, excludeID)
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.BookingInquiry, error) {
	return s.bookings.List(ctx)
}

func (s *Service) GetBooking(ctx context.Context, id string) (*domain.BookingInquiry, error) {
	return s.bookings.GetByID(ctx, id)
}
