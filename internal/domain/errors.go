package domain

import "errors"

// Sentinel errors returned by services, mapped to HTTP status codes by the
// handlers.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailExists        = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleMismatch       = errors.New("invalid role for this account")
	ErrSlotUnavailable    = errors.New("time slot is no longer available")
)
