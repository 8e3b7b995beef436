package usermgmt

import "errors"

var (
	ErrNotFound   = errors.New("user not found")
	ErrValidation = errors.New("validation error")
)
