package hotel

import "errors"

var (
	ErrNotFound   = errors.New("hotel not found")
	ErrValidation = errors.New("validation error")
)
