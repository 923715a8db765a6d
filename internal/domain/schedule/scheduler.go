// Package schedule implements the spaced-repetition training scheduler:
// which words a learner studies today, how many new words a single day may
// introduce, and how a graded answer moves a word through the memory-model
// state machine.
package schedule

import (
	"fmt"
	"time"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/domain/srs"
)

// Scheduler computes daily study sets and next-review states. It is a pure
// computation over the records it is given; persistence of the mutated
// subset is the caller's job.
type Scheduler struct {
	model srs.MemoryModel
}

// NewScheduler creates a Scheduler backed by the given memory model.
func NewScheduler(model srs.MemoryModel) *Scheduler {
	if model == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("model cannot be nil")
	}
	return &Scheduler{model: model}
}

// Selection is the result of one daily selection pass.
type Selection struct {
	// Words is today's study set: newly and previously admitted new words
	// first, then everything due for repetition.
	Words []*domain.WordProgress

	// Assigned holds the records this pass admitted into today's new-word
	// cohort. Their AssignedDate was mutated and must be persisted so that
	// re-invocation within the same day is idempotent.
	Assigned []*domain.WordProgress
}

// SelectToday computes the study set for the day containing now.
//
// New words are admitted up to dailyNewLimit per day, counting every record
// already assigned today regardless of its current state. Candidates are
// new-state records never assigned, or assigned on a past day and still not
// studied (postponed new); they are taken in input order, so a store that
// lists records deterministically yields a deterministic admission order.
// Learning records are always due; review and relearning records are due
// once their due time has passed. A negative limit is treated as zero.
func (s *Scheduler) SelectToday(
	records []*domain.WordProgress,
	dailyNewLimit int,
	now time.Time,
) Selection {
	if dailyNewLimit < 0 {
		dailyNewLimit = 0
	}
	today := StartOfDay(now)

	var assignedTodayCount int
	var todaysNew []*domain.WordProgress
	for _, p := range records {
		if !p.AssignedOn(today) {
			continue
		}
		assignedTodayCount++
		if p.State == domain.CardStateNew {
			todaysNew = append(todaysNew, p)
		}
	}

	var newlyAssigned []*domain.WordProgress
	if assignedTodayCount < dailyNewLimit {
		remaining := dailyNewLimit - assignedTodayCount
		for _, p := range records {
			if remaining == 0 {
				break
			}
			if p.State != domain.CardStateNew {
				continue
			}
			if p.AssignedOn(today) {
				continue
			}
			day := today
			p.AssignedDate = &day
			newlyAssigned = append(newlyAssigned, p)
			todaysNew = append(todaysNew, p)
			remaining--
		}
	}

	var due []*domain.WordProgress
	for _, p := range records {
		if p.State == domain.CardStateLearning {
			due = append(due, p)
			continue
		}
		if p.State != domain.CardStateNew && !p.Due.After(now) {
			due = append(due, p)
		}
	}

	words := make([]*domain.WordProgress, 0, len(todaysNew)+len(due))
	words = append(words, todaysNew...)
	words = append(words, due...)

	return Selection{Words: words, Assigned: newlyAssigned}
}

// TrimAssigned un-assigns excess new words when more than dailyNewLimit
// new-state records carry today's assignment date, which can happen when a
// vocabulary sync or a concurrent selection pass lands between selection
// and persistence. The excess is taken from the tail of the assigned set in
// input order; trimmed records return to the unassigned candidate pool.
// It returns the records whose AssignedDate was cleared.
func (s *Scheduler) TrimAssigned(
	records []*domain.WordProgress,
	dailyNewLimit int,
	now time.Time,
) []*domain.WordProgress {
	if dailyNewLimit < 0 {
		dailyNewLimit = 0
	}
	today := StartOfDay(now)

	var newAssigned []*domain.WordProgress
	for _, p := range records {
		if p.AssignedOn(today) && p.State == domain.CardStateNew {
			newAssigned = append(newAssigned, p)
		}
	}

	if len(newAssigned) <= dailyNewLimit {
		return nil
	}

	trimmed := newAssigned[dailyNewLimit:]
	for _, p := range trimmed {
		p.AssignedDate = nil
	}
	return trimmed
}

// NextReview applies a grade to one progress record and returns the next
// record computed by the memory model. The input record is never mutated:
// on success a fully replaced copy is returned, and on model failure the
// input is returned unchanged together with the error, so a scheduling
// fault can never corrupt progress state.
func (s *Scheduler) NextReview(
	progress *domain.WordProgress,
	grade domain.Grade,
	now time.Time,
) (*domain.WordProgress, error) {
	if !grade.IsValid() {
		return progress, fmt.Errorf("%w: %q", domain.ErrInvalidGrade, grade)
	}

	// Records migrated without a true last-review timestamp fall back to
	// the previously computed due date as a proxy for last-seen time.
	lastReview := progress.LastReview
	if lastReview == nil && progress.State != domain.CardStateNew {
		due := progress.Due
		lastReview = &due
	}

	card := srs.Card{
		Due:           progress.Due,
		Stability:     progress.Stability,
		Difficulty:    progress.Difficulty,
		ElapsedDays:   progress.ElapsedDays,
		ScheduledDays: progress.ScheduledDays,
		Reps:          progress.Repetitions,
		Lapses:        progress.Lapses,
		State:         progress.State,
		LastReview:    lastReview,
	}

	next, err := s.model.Next(card, now, grade)
	if err != nil {
		return progress, fmt.Errorf("%w: %v", srs.ErrModelFailure, err)
	}

	updated := &domain.WordProgress{
		UserID:        progress.UserID,
		WordID:        progress.WordID,
		State:         next.State,
		Stability:     next.Stability,
		Difficulty:    next.Difficulty,
		ElapsedDays:   next.ElapsedDays,
		ScheduledDays: next.ScheduledDays,
		Due:           next.Due,
		LastReview:    next.LastReview,
		Repetitions:   next.Reps,
		Lapses:        next.Lapses,
		Seen:          true,
		Learned:       next.State == domain.CardStateReview,
		CreatedAt:     progress.CreatedAt,
		UpdatedAt:     now,
	}

	// Grading never changes admission bookkeeping.
	if progress.AssignedDate != nil {
		day := *progress.AssignedDate
		updated.AssignedDate = &day
	}

	return updated, nil
}

// StartOfDay truncates t to the beginning of its calendar day, keeping the
// location so "assigned today" comparisons are exact-day equality.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
