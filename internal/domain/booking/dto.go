package booking

import (
	"strings"
	"time"

	"venuebooking/internal/domain"
	"venuebooking/internal/pkg/validator"
)

// CreateBookingInput is the raw booking inquiry as submitted by a client.
type CreateBookingInput struct {
	VenueID       string `json:"venueId" validate:"required"`
	CompanyName   string `json:"companyName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	StartDate     string `json:"startDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate       string `json:"endDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	AttendeeCount int    `json:"attendeeCount" validate:"required,gt=0"`
}

var inputMessages = map[string]string{
	"venueId":       "Venue ID is required",
	"companyName":   "Company name is required",
	"email":         "Valid email is required",
	"startDate":     "Start date must be a valid ISO 8601 datetime",
	"endDate":       "End date must be a valid ISO 8601 datetime",
	"attendeeCount": "Attendee count must be a positive number",
}

// BookingRequest is a validated CreateBookingInput.
type BookingRequest struct {
	VenueID       string
	CompanyName   string
	Email         string
	StartDate     time.Time
	EndDate       time.Time
	AttendeeCount int
}

// Parse validates the input and converts it into a BookingRequest. It fails
// with a *ValidationError listing every failed field. Dates may carry any
// RFC 3339 offset and are converted to UTC.
func (in CreateBookingInput) Parse() (*BookingRequest, error) {
	in.VenueID = strings.TrimSpace(in.VenueID)
	in.Email = strings.TrimSpace(in.Email)

	if details := validator.Validate(in, inputMessages); len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	start, err := time.Parse(time.RFC3339, in.StartDate)
	if err != nil {
		return nil, &ValidationError{Details: []validator.FieldError{{Field: "startDate", Rule: "datetime", Message: inputMessages["startDate"]}}}
	}
	end, err := time.Parse(time.RFC3339, in.EndDate)
	if err != nil {
		return nil, &ValidationError{Details: []validator.FieldError{{Field: "endDate", Rule: "datetime", Message: inputMessages["endDate"]}}}
	}
	if !end.After(start) {
		return nil, &ValidationError{Details: []validator.FieldError{{
			Field:   "endDate",
			Rule:    "gtfield",
			Message: "End date must be after start date",
		}}}
	}

	return &BookingRequest{
		VenueID:       in.VenueID,
		CompanyName:   in.CompanyName,
		Email:         in.Email,
		StartDate:     start.UTC(),
		EndDate:       end.UTC(),
		AttendeeCount: in.AttendeeCount,
	}, nil
}

type VenueSummary struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	PricePerNight *float64 `json:"pricePerNight,omitempty"`
	Capacity      *int     `json:"capacity,omitempty"`
}

type BookingResponse struct {
	ID            string               `json:"id"`
	VenueID       string               `json:"venueId"`
	CompanyName   string               `json:"companyName"`
	Email         string               `json:"email"`
	StartDate     time.Time            `json:"startDate"`
	EndDate       time.Time            `json:"endDate"`
	AttendeeCount int                  `json:"attendeeCount"`
	Status        domain.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	Venue         *VenueSummary        `json:"venue,omitempty"`
}

func toBookingResponse(b *domain.BookingInquiry) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		VenueID:       b.VenueID,
		CompanyName:   b.CompanyName,
		Email:         b.Email,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		AttendeeCount: b.AttendeeCount,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// toCreatedResponse includes the venue fields shown after submitting an inquiry.
func toCreatedResponse(b *domain.BookingInquiry) BookingResponse {
	out := toBookingResponse(b)
	if b.Venue != nil {
		price := b.Venue.PricePerNight
		out.Venue = &VenueSummary{Name: b.Venue.Name, Location: b.Venue.Location, PricePerNight: &price}
	}
	return out
}

// toListItem includes the venue fields shown in the inquiry list.
func toListItem(b *domain.BookingInquiry) BookingResponse {
	out := toBookingResponse(b)
	if b.Venue != nil {
		capacity := b.Venue.Capacity
		out.Venue = &VenueSummary{Name: b.Venue.Name, Location: b.Venue.Location, Capacity: &capacity}
	}
	return out
}
