package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CardState is the memory-model stage of a word. It drives all scheduling
// branching. The in-memory representation is a tagged string; the storage
// layer encodes it as a versioned integer code.
type CardState string

// Possible card states.
const (
	CardStateNew        CardState = "new"
	CardStateLearning   CardState = "learning"
	CardStateReview     CardState = "review"
	CardStateRelearning CardState = "relearning"
)

// IsValid reports whether s is one of the four known states.
func (s CardState) IsValid() bool {
	switch s {
	case CardStateNew, CardStateLearning, CardStateReview, CardStateRelearning:
		return true
	default:
		return false
	}
}

// Grade is a learner's self-assessed recall quality for one word.
type Grade string

// Possible grade values, from complete failure to effortless recall.
const (
	GradeAgain Grade = "again"
	GradeHard  Grade = "hard"
	GradeGood  Grade = "good"
	GradeEasy  Grade = "easy"
)

// IsValid reports whether g is one of the four known grades.
func (g Grade) IsValid() bool {
	switch g {
	case GradeAgain, GradeHard, GradeGood, GradeEasy:
		return true
	default:
		return false
	}
}

// Common validation errors for WordProgress.
var (
	ErrEmptyProgressUserID = errors.New("word progress user ID cannot be empty")
	ErrEmptyProgressWordID = errors.New("word progress word ID cannot be empty")
	ErrNegativeStability   = errors.New("stability cannot be negative")
	ErrNegativeDifficulty  = errors.New("difficulty cannot be negative")
	ErrNegativeDays        = errors.New("elapsed and scheduled days cannot be negative")
	ErrNegativeCounters    = errors.New("repetitions and lapses cannot be negative")
)

// DueNever is the due sentinel for records that have never been scheduled.
// It is far enough in the past that such a record counts as due the moment
// it leaves the new state.
var DueNever = time.Unix(0, 0).UTC()

// WordProgress tracks one learner's spaced-repetition state for one word.
//
// Stability and difficulty are opaque memory-model parameters; the scheduler
// only passes them through. AssignedDate is day-truncated and marks when the
// word was admitted into a daily "new" cohort; nil means never admitted.
// LastReview is nil for records that have never been graded.
type WordProgress struct {
	UserID        uuid.UUID  `json:"user_id"`
	WordID        string     `json:"word_id"` // composite "<groupID>_<localID>"
	State         CardState  `json:"state"`
	Stability     float64    `json:"stability"`
	Difficulty    float64    `json:"difficulty"`
	ElapsedDays   int        `json:"elapsed_days"`
	ScheduledDays int        `json:"scheduled_days"`
	Due           time.Time  `json:"due"`
	LastReview    *time.Time `json:"last_review,omitempty"`
	AssignedDate  *time.Time `json:"assigned_date,omitempty"`
	Repetitions   int        `json:"repetitions"`
	Lapses        int        `json:"lapses"`
	Seen          bool       `json:"seen"`
	Learned       bool       `json:"learned"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewWordProgress creates a fresh progress record for a word the learner
// has never studied: state new, all counters zero, due set to the far-past
// sentinel.
func NewWordProgress(userID uuid.UUID, wordID string) (*WordProgress, error) {
	now := time.Now().UTC()
	progress := &WordProgress{
		UserID:    userID,
		WordID:    wordID,
		State:     CardStateNew,
		Due:       DueNever,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := progress.Validate(); err != nil {
		return nil, err
	}

	return progress, nil
}

// Validate checks if the WordProgress has valid data.
func (p *WordProgress) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyProgressUserID
	}
	if p.WordID == "" {
		return ErrEmptyProgressWordID
	}
	if !p.State.IsValid() {
		return ErrInvalidCardState
	}
	if p.Stability < 0 {
		return ErrNegativeStability
	}
	if p.Difficulty < 0 {
		return ErrNegativeDifficulty
	}
	if p.ElapsedDays < 0 || p.ScheduledDays < 0 {
		return ErrNegativeDays
	}
	if p.Repetitions < 0 || p.Lapses < 0 {
		return ErrNegativeCounters
	}
	return nil
}

// Clone returns a deep copy of the record. Scheduling code mutates copies
// and hands the changed subset back to the store, never shared instances.
func (p *WordProgress) Clone() *WordProgress {
	out := *p
	if p.LastReview != nil {
		v := *p.LastReview
		out.LastReview = &v
	}
	if p.AssignedDate != nil {
		v := *p.AssignedDate
		out.AssignedDate = &v
	}
	return &out
}

// AssignedOn reports whether the record was admitted into the new-word
// cohort of the given day. The day argument must be day-truncated.
func (p *WordProgress) AssignedOn(day time.Time) bool {
	return p.AssignedDate != nil && p.AssignedDate.Equal(day)
}
