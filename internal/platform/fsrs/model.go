// Package fsrs adapts the open-spaced-repetition FSRS library to the
// srs.MemoryModel contract. The scheduler core never imports the library
// directly; all type conversion between the domain card view and the FSRS
// card lives here.
package fsrs

import (
	"fmt"
	"time"

	gofsrs "github.com/open-spaced-repetition/go-fsrs/v3"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/domain/srs"
)

// Config holds the tunable FSRS parameters we expose. Everything else uses
// the library defaults.
type Config struct {
	// RequestRetention is the target recall probability at review time.
	RequestRetention float64

	// EnableFuzz randomizes intervals slightly to avoid review pile-ups.
	// Kept off for reproducible schedules.
	EnableFuzz bool

	// EnableShortTerm keeps sub-day learning steps instead of promoting
	// cards straight to day-granularity intervals.
	EnableShortTerm bool
}

// DefaultConfig returns the parameters the original application shipped
// with: 90% target retention, no fuzz, short-term steps enabled.
func DefaultConfig() Config {
	return Config{
		RequestRetention: 0.9,
		EnableFuzz:       false,
		EnableShortTerm:  true,
	}
}

// Model implements srs.MemoryModel using the FSRS forgetting-curve model.
type Model struct {
	engine *gofsrs.FSRS
}

// Ensure Model implements srs.MemoryModel
var _ srs.MemoryModel = (*Model)(nil)

// NewModel creates a Model with the given configuration.
func NewModel(cfg Config) *Model {
	params := gofsrs.DefaultParam()
	if cfg.RequestRetention > 0 {
		params.RequestRetention = cfg.RequestRetention
	}
	params.EnableFuzz = cfg.EnableFuzz
	params.EnableShortTerm = cfg.EnableShortTerm

	return &Model{engine: gofsrs.NewFSRS(params)}
}

// Next implements srs.MemoryModel. It schedules the card for every rating
// and picks the branch matching the learner's grade.
func (m *Model) Next(card srs.Card, now time.Time, grade domain.Grade) (srs.Card, error) {
	rating, err := toRating(grade)
	if err != nil {
		return srs.Card{}, err
	}

	engineCard, err := toEngineCard(card)
	if err != nil {
		return srs.Card{}, err
	}

	record := m.engine.Repeat(engineCard, now)
	info, ok := record[rating]
	if !ok {
		return srs.Card{}, fmt.Errorf("%w: no schedule for rating %d", srs.ErrModelFailure, rating)
	}

	return fromEngineCard(info.Card), nil
}

func toRating(grade domain.Grade) (gofsrs.Rating, error) {
	switch grade {
	case domain.GradeAgain:
		return gofsrs.Again, nil
	case domain.GradeHard:
		return gofsrs.Hard, nil
	case domain.GradeGood:
		return gofsrs.Good, nil
	case domain.GradeEasy:
		return gofsrs.Easy, nil
	default:
		return 0, fmt.Errorf("%w: %q", srs.ErrInvalidGrade, grade)
	}
}

func toEngineState(state domain.CardState) (gofsrs.State, error) {
	switch state {
	case domain.CardStateNew:
		return gofsrs.New, nil
	case domain.CardStateLearning:
		return gofsrs.Learning, nil
	case domain.CardStateReview:
		return gofsrs.Review, nil
	case domain.CardStateRelearning:
		return gofsrs.Relearning, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidCardState, state)
	}
}

func fromEngineState(state gofsrs.State) domain.CardState {
	switch state {
	case gofsrs.Learning:
		return domain.CardStateLearning
	case gofsrs.Review:
		return domain.CardStateReview
	case gofsrs.Relearning:
		return domain.CardStateRelearning
	default:
		return domain.CardStateNew
	}
}

func toEngineCard(card srs.Card) (gofsrs.Card, error) {
	state, err := toEngineState(card.State)
	if err != nil {
		return gofsrs.Card{}, err
	}

	out := gofsrs.Card{
		Due:           card.Due,
		Stability:     card.Stability,
		Difficulty:    card.Difficulty,
		ElapsedDays:   toDays(card.ElapsedDays),
		ScheduledDays: toDays(card.ScheduledDays),
		Reps:          toCount(card.Reps),
		Lapses:        toCount(card.Lapses),
		State:         state,
	}
	if card.LastReview != nil {
		out.LastReview = *card.LastReview
	}
	return out, nil
}

func fromEngineCard(card gofsrs.Card) srs.Card {
	out := srs.Card{
		Due:           card.Due,
		Stability:     card.Stability,
		Difficulty:    card.Difficulty,
		ElapsedDays:   int(card.ElapsedDays),
		ScheduledDays: int(card.ScheduledDays),
		Reps:          int(card.Reps),
		Lapses:        int(card.Lapses),
		State:         fromEngineState(card.State),
	}
	if !card.LastReview.IsZero() {
		last := card.LastReview
		out.LastReview = &last
	}
	return out
}

func toDays(v int) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

func toCount(v int) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}
