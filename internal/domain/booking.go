package domain

import "time"

type Booking struct {
	ID     int64 `json:"bookingId" gorm:"primaryKey"`
	UserID int64 `json:"userId" gorm:"index" validate:"required"`
	// RoomID travels as a string on the wire (the server issues it, the
	// client copies it back verbatim).
	RoomID string `json:"roomId" validate:"required"`
	// Dates are ISO day strings ("2006-01-02"); they become time values
	// only when something needs arithmetic on them.
	CheckInDate  string    `json:"checkInDate" validate:"required"`
	CheckOutDate string    `json:"checkOutDate" validate:"required"`
	TotalAmount  float64   `json:"totalAmount"`
	IsConfirmed  bool      `json:"isConfirmed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
