package domain

import "time"

type Room struct {
	ID       int64  `json:"roomId" gorm:"primaryKey"`
	HotelID  int64  `json:"hotelId" gorm:"index" validate:"required"`
	RoomType string `json:"roomType"`
	// PricePerNight is kept as a string end to end so display never
	// suffers float rounding.
	PricePerNight string    `json:"pricePerNight"`
	Capacity      int       `json:"capacity"`
	Amenities     string    `json:"amenities,omitempty" gorm:"type:text"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
