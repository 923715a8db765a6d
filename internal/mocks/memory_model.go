package mocks

import (
	"sync"
	"time"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/domain/srs"
)

// MemoryModel implements srs.MemoryModel for testing.
type MemoryModel struct {
	// NextFn overrides the default behavior when set.
	NextFn func(card srs.Card, now time.Time, grade domain.Grade) (srs.Card, error)

	// Err is returned by the default behavior when set.
	Err error

	// Call tracking for verification
	NextCalls struct {
		mu     sync.Mutex
		Count  int
		Cards  []srs.Card
		Grades []domain.Grade
	}
}

// Next implements the srs.MemoryModel interface. The default behavior is a
// crude but deterministic state machine: again demotes review cards to
// relearning, everything else advances towards review with a one-day
// interval per repetition.
func (m *MemoryModel) Next(card srs.Card, now time.Time, grade domain.Grade) (srs.Card, error) {
	m.NextCalls.mu.Lock()
	m.NextCalls.Count++
	m.NextCalls.Cards = append(m.NextCalls.Cards, card)
	m.NextCalls.Grades = append(m.NextCalls.Grades, grade)
	m.NextCalls.mu.Unlock()

	if m.NextFn != nil {
		return m.NextFn(card, now, grade)
	}
	if m.Err != nil {
		return srs.Card{}, m.Err
	}

	next := card
	next.Reps = card.Reps + 1
	last := now
	next.LastReview = &last

	switch {
	case grade == domain.GradeAgain && card.State == domain.CardStateReview:
		next.State = domain.CardStateRelearning
		next.Lapses = card.Lapses + 1
		next.Due = now.Add(10 * time.Minute)
	case grade == domain.GradeAgain:
		next.State = domain.CardStateLearning
		next.Due = now.Add(10 * time.Minute)
	case card.State == domain.CardStateNew:
		next.State = domain.CardStateLearning
		next.Due = now.Add(time.Hour)
	default:
		next.State = domain.CardStateReview
		next.ScheduledDays = next.Reps
		next.Due = now.AddDate(0, 0, next.Reps)
	}
	return next, nil
}
