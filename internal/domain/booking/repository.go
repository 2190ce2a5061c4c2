package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"venuebooking/internal/domain"
)

// SQLSTATE exclusion_violation, raised by the optional no-overlap constraint.
const pgExclusionViolation = "23P01"

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// overlapPredicate matches rows whose [start_date, end_date) intersects the
// candidate range. Arguments: start, start, end, end, start, end.
const overlapPredicate = `(
     (start_date <= ? AND end_date > ?)
  OR (start_date < ? AND end_date >= ?)
  OR (start_date >= ? AND end_date <= ?)
)`

func (r *bookingRepository) FindConflicts(ctx context.Context, venueID string, start, end time.Time, excludeID string) ([]domain.BookingInquiry, error) {
	start, end = start.UTC(), end.UTC()

	q := r.db.WithContext(ctx).
		Model(&domain.BookingInquiry{}).
		Where("venue_id = ?", venueID).
		Where("status IN ?", domain.ActiveStatusValues()).
		Where(overlapPredicate, start, start, end, end, start, end)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var rows []domain.BookingInquiry
	if err := q.Order("start_date").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.BookingInquiry) error {
	b.StartDate = b.StartDate.UTC()
	b.EndDate = b.EndDate.UTC()

	return mapCreateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error)
}

// mapCreateError turns an exclusion-constraint violation into a ConflictError.
func mapCreateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
		return &ConflictError{}
	}
	return err
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.BookingInquiry, error) {
	var rows []domain.BookingInquiry
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Order("created_at DESC").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.BookingInquiry, error) {
	var b domain.BookingInquiry
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Where("id = ?", id).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) LockVenue(ctx context.Context, venueID string) (*domain.Venue, error) {
	var v domain.Venue
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", venueID).
		First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *bookingRepository) WithinTransaction(ctx context.Context, fn func(repo BookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&bookingRepository{db: tx})
	})
}
