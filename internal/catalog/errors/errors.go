package errors

import "errors"

var (
	ErrVenueNotFound = errors.New("venue not found")

	ErrEventNotFound = errors.New("event not found")

	ErrAttendeeNotFound = errors.New("attendee not found")

	// ErrCapacityFull means the event's venue has no open slots left.
	ErrCapacityFull = errors.New("event capacity full")

	// ErrInvalidEmail means the email contained no "@" after normalization.
	ErrInvalidEmail = errors.New("invalid email address")
)
