package services

import "errors"

// Service errors, mapped to HTTP statuses by the controllers.
var (
	ErrDuplicateAccount   = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid OTP")
	ErrExpiredCode        = errors.New("OTP expired")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
)
