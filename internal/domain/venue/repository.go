package venue

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"venuebooking/internal/domain"
)

type VenueRepository interface {
	List(ctx context.Context, f Filters, limit, offset int) ([]domain.Venue, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	ActiveBookings(ctx context.Context, venueID string) ([]BookingSlot, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

// withFilters composes the listing predicates with AND semantics. Zero values
// disable a filter.
func withFilters(f Filters) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.Location != "" {
			q = q.Where("LOWER(location) = LOWER(?)", f.Location)
		}
		if f.MinCapacity > 0 {
			q = q.Where("capacity >= ?", f.MinCapacity)
		}
		if f.MaxPricePerNight > 0 {
			q = q.Where("price_per_night <= ?", f.MaxPricePerNight)
		}
		return q
	}
}

func (r *venueRepository) List(ctx context.Context, f Filters, limit, offset int) ([]domain.Venue, int64, error) {
	var (
		venues []domain.Venue
		total  int64
	)

	q := r.db.WithContext(ctx).
		Model(&domain.Venue{}).
		Scopes(withFilters(f))

	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Order("created_at DESC").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&venues).Error
	if err != nil {
		return nil, 0, err
	}
	return venues, total, nil
}

func (r *venueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	var v domain.Venue
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *venueRepository) ActiveBookings(ctx context.Context, venueID string) ([]BookingSlot, error) {
	slots := make([]BookingSlot, 0)
	err := r.db.WithContext(ctx).
		Model(&domain.BookingInquiry{}).
		Select("start_date, end_date, status").
		Where("venue_id = ?", venueID).
		Where("status IN ?", domain.ActiveStatusValues()).
		Order("start_date").
		Scan(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}
