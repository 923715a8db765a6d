package training

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/domain"
)

// StudyItem pairs a vocabulary word with the learner's scheduling state for it.
type StudyItem struct {
	Word     domain.Word          `json:"word"`
	Progress *domain.WordProgress `json:"progress"`
}

// TrainingService provides the daily study workflow: which words to show
// today, recording graded answers, and repairing over-assigned days.
type TrainingService interface {
	// WordsForToday computes the study set for the current day.
	//
	// Progress records are seeded lazily: any catalog word the user has no
	// record for gets a fresh new-state record before selection runs. At most
	// dailyNewLimit new words are admitted per calendar day; words due for
	// repetition are always included. Admissions are persisted so repeated
	// calls within the same day return the same set.
	WordsForToday(ctx context.Context, userID uuid.UUID, dailyNewLimit int) ([]StudyItem, error)

	// SubmitAnswer applies a graded answer to one word and persists the
	// memory model's next scheduling state.
	//
	// Returns ErrProgressNotFound if the user has no record for the word,
	// ErrInvalidGrade for an unknown grade, and ErrSchedulingUnavailable
	// when the memory model fails; in the latter case the stored record is
	// left untouched.
	SubmitAnswer(
		ctx context.Context,
		userID uuid.UUID,
		wordID string,
		grade domain.Grade,
	) (*domain.WordProgress, error)

	// TrimAssigned un-assigns new words beyond dailyNewLimit for the current
	// day, returning the records that were released back into the candidate
	// pool. Used after a limit decrease or a concurrent over-assignment.
	TrimAssigned(
		ctx context.Context,
		userID uuid.UUID,
		dailyNewLimit int,
	) ([]*domain.WordProgress, error)
}

// Common error types for TrainingService
var (
	// ErrProgressNotFound indicates no progress record exists for the word.
	ErrProgressNotFound = errors.New("word progress not found")

	// ErrInvalidGrade indicates an unknown grade value was provided.
	ErrInvalidGrade = errors.New("invalid grade")

	// ErrSchedulingUnavailable indicates the memory model failed to compute
	// the next review state. The caller may retry; no state was changed.
	ErrSchedulingUnavailable = errors.New("scheduling unavailable")
)

// ServiceError wraps errors from the training service with additional context.
// This allows consumers to differentiate between different types of service errors
// using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "words_for_today", "submit_answer")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
