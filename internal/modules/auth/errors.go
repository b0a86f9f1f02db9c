package auth

import "errors"

var (
	ErrRollNoRequired = errors.New("roll number is required")
	ErrInvalidSession = errors.New("invalid session")
)
