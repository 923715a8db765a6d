// Package srs defines the contract between the training scheduler and the
// external forgetting-curve model. The scheduler never inspects the model's
// internals; it builds a transient Card view of a progress record, asks the
// model for the next card, and copies the result back wholesale.
package srs

import (
	"errors"
	"time"

	"github.com/glossa-app/glossa-api/internal/domain"
)

// Common errors for memory model implementations.
var (
	// ErrInvalidGrade indicates the grade passed to the model was not valid.
	ErrInvalidGrade = errors.New("memory model: invalid grade")

	// ErrModelFailure indicates the model could not compute the next card.
	// Callers must treat this as recoverable: the progress record that
	// produced the card stays untouched.
	ErrModelFailure = errors.New("memory model: scheduling computation failed")
)

// Card is the transient memory-model view of a progress record's numeric
// state. LastReview is nil for a truly first exposure.
type Card struct {
	Due           time.Time
	Stability     float64
	Difficulty    float64
	ElapsedDays   int
	ScheduledDays int
	Reps          int
	Lapses        int
	State         domain.CardState
	LastReview    *time.Time
}

// MemoryModel computes the next card from the current one, the review time
// and the learner's grade. Implementations are pure functions over the
// explicit card parameters.
type MemoryModel interface {
	Next(card Card, now time.Time, grade domain.Grade) (Card, error)
}
