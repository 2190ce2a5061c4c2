package venue

import (
	"context"

	"venuebooking/internal/domain"
	"venuebooking/internal/pkg/pagination"
)

type Service struct {
	venues VenueRepository
}

func NewService(venues VenueRepository) *Service {
	return &Service{venues: venues}
}

func (s *Service) ListVenues(ctx context.Context, q ListQuery) (*ListResult, error) {
	p, err := q.Parse()
	if err != nil {
		return nil, err
	}

	venues, total, err := s.venues.List(ctx, p.Filters, p.Limit, pagination.Offset(p.Page, p.Limit))
	if err != nil {
		return nil, err
	}
	if venues == nil {
		venues = []domain.Venue{}
	}

	return &ListResult{
		Data:       venues,
		Pagination: pagination.NewMeta(p.Page, p.Limit, total),
	}, nil
}

// GetVenue returns the venue with its pending and confirmed bookings.
func (s *Service) GetVenue(ctx context.Context, id string) (*VenueDetail, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slots, err := s.venues.ActiveBookings(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	return &VenueDetail{Venue: *v, BookingInquiries: slots}, nil
}
