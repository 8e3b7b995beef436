package room

import "errors"

var (
	ErrNotFound      = errors.New("room not found")
	ErrHotelNotFound = errors.New("hotel not found")
	ErrValidation    = errors.New("validation error")
)
