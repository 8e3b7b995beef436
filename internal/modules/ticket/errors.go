package ticket

import "errors"

var (
	ErrNotFound      = errors.New("ticket not found")
	ErrInvalidStatus = errors.New("invalid ticket status")
	ErrForbidden     = errors.New("forbidden")
)
