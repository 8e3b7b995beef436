package domain

import (
	"strconv"
	"time"
)

type HotelCategory string

const (
	CategoryStandard HotelCategory = "Standard"
	CategoryPremium  HotelCategory = "Premium"
	CategoryLuxury   HotelCategory = "Luxury"
)

type Hotel struct {
	ID           int64         `json:"hotelId" gorm:"primaryKey"`
	Name         string        `json:"name" validate:"required"`
	Location     string        `json:"location"`
	Address      string        `json:"address,omitempty"`
	ContactPhone string        `json:"contactPhone,omitempty"`
	Category     HotelCategory `json:"category"`
	// Rating stays a string numeral on the wire; consumers parse it
	// with a zero fallback.
	Rating    string    `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}

// RatingValue parses the string rating, falling back to 0 on garbage.
func (h *Hotel) RatingValue() float64 {
	v, err := strconv.ParseFloat(h.Rating, 64)
	if err != nil {
		return 0
	}
	return v
}
