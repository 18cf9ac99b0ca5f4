package models

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrAlreadyReviewed    = errors.New("you have already reviewed this place")
	ErrOwnReview          = errors.New("you cannot review your own place")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrOwnerNotFound      = errors.New("owner not found")
	ErrAmenityNotFound    = errors.New("amenity not found")
	ErrDuplicateAmenity   = errors.New("amenity with this name already exists")
	ErrForbidden          = errors.New("unauthorized action")
	ErrAdminOnly          = errors.New("admin privileges required")
	ErrCredentialChange   = errors.New("you cannot modify email or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// ValidationError reports a malformed field in a request payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
