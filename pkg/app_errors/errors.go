package app_errors

import "errors"

var (
	// auth
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRoleMismatch       = errors.New("role does not match login portal")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrForbidden          = errors.New("forbidden")

	// catalog / ledger
	ErrUserNotFound      = errors.New("user not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrRSVPNotFound      = errors.New("rsvp not found")
	ErrInvalidRSVPStatus = errors.New("invalid rsvp status")
	ErrEventPast         = errors.New("event date has already passed")
	ErrConflict          = errors.New("conflict")

	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
