package venue

import (
	"strings"
	"time"

	"venuebooking/internal/domain"
	"venuebooking/internal/pkg/pagination"
	"venuebooking/internal/pkg/validator"
)

// ListQuery is the raw listing query. Nil pointers mean the parameter was not sent.
type ListQuery struct {
	Location         string   `form:"location"`
	MinCapacity      *int     `form:"minCapacity" validate:"omitempty,gt=0"`
	MaxPricePerNight *float64 `form:"maxPricePerNight" validate:"omitempty,gt=0"`
	Page             *int     `form:"page" validate:"omitempty,gt=0,max=1000000"`
	Limit            *int     `form:"limit" validate:"omitempty,gt=0,max=100"`
}

var queryMessages = map[string]string{
	"minCapacity":      "minCapacity must be a positive integer",
	"maxPricePerNight": "maxPricePerNight must be a positive number",
	"page.max":         "page must not exceed 1000000",
	"page":             "page must be a positive integer",
	"limit.max":        "limit must not exceed 100",
	"limit":            "limit must be a positive integer",
}

type Filters struct {
	Location         string
	MinCapacity      int
	MaxPricePerNight float64
}

type ListParams struct {
	Filters Filters
	Page    int
	Limit   int
}

// Parse validates the query and applies defaults. A limit above
// pagination.MaxLimit is rejected rather than clamped.
func (q ListQuery) Parse() (*ListParams, error) {
	if details := validator.Validate(q, queryMessages); len(details) > 0 {
		return nil, &QueryError{Details: details}
	}

	p := &ListParams{
		Filters: Filters{Location: strings.TrimSpace(q.Location)},
		Page:    pagination.DefaultPage,
		Limit:   pagination.DefaultLimit,
	}
	if q.MinCapacity != nil {
		p.Filters.MinCapacity = *q.MinCapacity
	}
	if q.MaxPricePerNight != nil {
		p.Filters.MaxPricePerNight = *q.MaxPricePerNight
	}
	if q.Page != nil {
		p.Page = *q.Page
	}
	if q.Limit != nil {
		p.Limit = *q.Limit
	}
	return p, nil
}

type ListResult struct {
	Data       []domain.Venue  `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

// BookingSlot is the public view of an active booking on a venue page.
type BookingSlot struct {
	StartDate time.Time            `json:"startDate" gorm:"column:start_date"`
	EndDate   time.Time            `json:"endDate" gorm:"column:end_date"`
	Status    domain.BookingStatus `json:"status" gorm:"column:status"`
}

type VenueDetail struct {
	domain.Venue
	BookingInquiries []BookingSlot `json:"bookingInquiries"`
}
