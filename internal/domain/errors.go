package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidGrade is returned when a review grade is not one of
	// again, hard, good or easy.
	ErrInvalidGrade = errors.New("invalid review grade")

	// ErrInvalidCardState is returned when a card state is not valid.
	ErrInvalidCardState = errors.New("invalid card state")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
