package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venue struct {
	ID            string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Location      string    `json:"location" gorm:"not null;index"`
	Address       string    `json:"address"`
	Capacity      int       `json:"capacity" gorm:"not null;check:capacity > 0"`
	PricePerNight float64   `json:"pricePerNight" gorm:"not null"`
	Amenities     []string  `json:"amenities" gorm:"type:text;serializer:json"`
	ImageURL      string    `json:"imageUrl"`
	CreatedAt     time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Venue) TableName() string {
	return "venues"
}

func (v *Venue) BeforeCreate(_ *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
