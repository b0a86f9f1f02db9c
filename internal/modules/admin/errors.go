package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConfigured      = errors.New("admin credentials not configured")
	ErrAlreadyApproved    = errors.New("booking already approved")
	ErrNotFound           = errors.New("booking not found")
)
