package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// ActiveBookingStatuses are the statuses that occupy a venue's calendar.
var ActiveBookingStatuses = []BookingStatus{BookingPending, BookingConfirmed}

func (s BookingStatus) IsActive() bool {
	return s == BookingPending || s == BookingConfirmed
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// ActiveStatusValues returns ActiveBookingStatuses as plain strings for SQL IN clauses.
func ActiveStatusValues() []string {
	out := make([]string, 0, len(ActiveBookingStatuses))
	for _, s := range ActiveBookingStatuses {
		out = append(out, string(s))
	}
	return out
}

type BookingInquiry struct {
	ID            string        `json:"id" gorm:"type:varchar(36);primaryKey"`
	VenueID       string        `json:"venueId" gorm:"type:varchar(36);not null;index:idx_booking_inquiries_venue_status,priority:1"`
	CompanyName   string        `json:"companyName" gorm:"not null"`
	Email         string        `json:"email" gorm:"not null"`
	StartDate     time.Time     `json:"startDate" gorm:"not null"`
	EndDate       time.Time     `json:"endDate" gorm:"not null"`
	AttendeeCount int           `json:"attendeeCount" gorm:"not null;check:attendee_count > 0"`
	Status        BookingStatus `json:"status" gorm:"type:varchar(16);not null;default:'pending';index:idx_booking_inquiries_venue_status,priority:2;check:status IN ('pending','confirmed','cancelled')"`
	CreatedAt     time.Time     `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time     `json:"updatedAt"`

	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (BookingInquiry) TableName() string {
	return "booking_inquiries"
}

func (b *BookingInquiry) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingPending
	}
	return nil
}
