package payment

import "errors"

var (
	ErrNotFound         = errors.New("payment not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrValidation       = errors.New("validation error")
	ErrForbidden        = errors.New("not allowed")
	ErrMpesaUnavailable = errors.New("mpesa gateway is not configured")
)
