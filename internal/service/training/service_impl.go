package training

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/domain/schedule"
	"github.com/glossa-app/glossa-api/internal/domain/srs"
	"github.com/glossa-app/glossa-api/internal/platform/logger"
	"github.com/glossa-app/glossa-api/internal/store"
)

// Verify interface compliance at compile time
var _ TrainingService = (*trainingServiceImpl)(nil)

// trainingServiceImpl implements the TrainingService interface.
type trainingServiceImpl struct {
	progressRepo ProgressRepository
	wordRepo     WordRepository
	scheduler    *schedule.Scheduler
	logger       *slog.Logger
	timeFunc     func() time.Time // Injectable for testing
}

// NewTrainingService creates a new TrainingService implementation.
func NewTrainingService(
	progressRepo ProgressRepository,
	wordRepo WordRepository,
	scheduler *schedule.Scheduler,
	logger *slog.Logger,
) TrainingService {
	if progressRepo == nil {
		panic("progressRepo cannot be nil")
	}
	if wordRepo == nil {
		panic("wordRepo cannot be nil")
	}
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &trainingServiceImpl{
		progressRepo: progressRepo,
		wordRepo:     wordRepo,
		scheduler:    scheduler,
		logger:       logger.With(slog.String("component", "training_service")),
		timeFunc:     time.Now,
	}
}

// WordsForToday implements TrainingService.WordsForToday.
func (s *trainingServiceImpl) WordsForToday(
	ctx context.Context,
	userID uuid.UUID,
	dailyNewLimit int,
) ([]StudyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.timeFunc().UTC()

	log.Debug("computing today's study set",
		slog.String("user_id", userID.String()),
		slog.Int("daily_new_limit", dailyNewLimit))

	var items []StudyItem
	err := s.runInTransaction(
		ctx,
		func(ctx context.Context, progressRepo ProgressRepository, wordRepo WordRepository) error {
			words, err := wordRepo.ListWords(ctx)
			if err != nil {
				return fmt.Errorf("failed to list words: %w", err)
			}

			records, err := progressRepo.ListByUser(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to list progress: %w", err)
			}

			records, err = s.seedMissing(ctx, progressRepo, userID, words, records)
			if err != nil {
				return err
			}

			selection := s.scheduler.SelectToday(records, dailyNewLimit, now)

			if len(selection.Assigned) > 0 {
				if err := progressRepo.SaveAll(ctx, selection.Assigned); err != nil {
					return fmt.Errorf("failed to persist assignments: %w", err)
				}
			}

			wordByID := make(map[string]domain.Word, len(words))
			for i := range words {
				wordByID[words[i].CompositeID()] = words[i]
			}

			items = make([]StudyItem, 0, len(selection.Words))
			for _, p := range selection.Words {
				word, ok := wordByID[p.WordID]
				if !ok {
					// Progress for a word removed from the catalog stays
					// dormant until a sync restores the word.
					continue
				}
				items = append(items, StudyItem{Word: word, Progress: p})
			}
			return nil
		},
	)

	if err != nil {
		log.Error("failed to compute study set",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, &ServiceError{
			Operation: "words_for_today",
			Message:   "failed to compute study set",
			Err:       err,
		}
	}

	log.Debug("study set computed",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(items)))
	return items, nil
}

// SubmitAnswer implements TrainingService.SubmitAnswer.
func (s *trainingServiceImpl) SubmitAnswer(
	ctx context.Context,
	userID uuid.UUID,
	wordID string,
	grade domain.Grade,
) (*domain.WordProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.timeFunc().UTC()

	log.Debug("processing graded answer",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID),
		slog.String("grade", string(grade)))

	if !grade.IsValid() {
		log.Warn("invalid grade submitted",
			slog.String("user_id", userID.String()),
			slog.String("word_id", wordID),
			slog.String("grade", string(grade)))
		return nil, ErrInvalidGrade
	}

	var updated *domain.WordProgress
	err := s.runInTransaction(
		ctx,
		func(ctx context.Context, progressRepo ProgressRepository, _ WordRepository) error {
			progress, err := progressRepo.Get(ctx, userID, wordID)
			if err != nil {
				if errors.Is(err, store.ErrProgressNotFound) {
					return ErrProgressNotFound
				}
				return fmt.Errorf("failed to get progress: %w", err)
			}

			next, err := s.scheduler.NextReview(progress, grade, now)
			if err != nil {
				if errors.Is(err, srs.ErrModelFailure) {
					return fmt.Errorf("%w: %v", ErrSchedulingUnavailable, err)
				}
				if errors.Is(err, domain.ErrInvalidGrade) {
					return ErrInvalidGrade
				}
				return fmt.Errorf("failed to compute next review: %w", err)
			}

			if err := progressRepo.Update(ctx, next); err != nil {
				return fmt.Errorf("failed to save progress: %w", err)
			}

			updated = next
			return nil
		},
	)

	if err != nil {
		if errors.Is(err, ErrProgressNotFound) ||
			errors.Is(err, ErrInvalidGrade) ||
			errors.Is(err, ErrSchedulingUnavailable) {
			return nil, err
		}

		log.Error("failed to submit answer",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("word_id", wordID))
		return nil, &ServiceError{
			Operation: "submit_answer",
			Message:   "failed to submit answer",
			Err:       err,
		}
	}

	log.Debug("graded answer processed",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID),
		slog.String("state", string(updated.State)),
		slog.Time("due", updated.Due))
	return updated, nil
}

// TrimAssigned implements TrainingService.TrimAssigned.
func (s *trainingServiceImpl) TrimAssigned(
	ctx context.Context,
	userID uuid.UUID,
	dailyNewLimit int,
) ([]*domain.WordProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.timeFunc().UTC()

	var trimmed []*domain.WordProgress
	err := s.runInTransaction(
		ctx,
		func(ctx context.Context, progressRepo ProgressRepository, _ WordRepository) error {
			records, err := progressRepo.ListByUser(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to list progress: %w", err)
			}

			trimmed = s.scheduler.TrimAssigned(records, dailyNewLimit, now)
			if len(trimmed) == 0 {
				return nil
			}

			if err := progressRepo.SaveAll(ctx, trimmed); err != nil {
				return fmt.Errorf("failed to persist trimmed records: %w", err)
			}
			return nil
		},
	)

	if err != nil {
		log.Error("failed to trim assignments",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, &ServiceError{
			Operation: "trim_assigned",
			Message:   "failed to trim assignments",
			Err:       err,
		}
	}

	if len(trimmed) > 0 {
		log.Info("excess assignments trimmed",
			slog.String("user_id", userID.String()),
			slog.Int("count", len(trimmed)))
	}
	return trimmed, nil
}

// seedMissing creates fresh new-state progress records for catalog words the
// user has never been scheduled. Returns the combined record list in stable
// word-ID order.
func (s *trainingServiceImpl) seedMissing(
	ctx context.Context,
	progressRepo ProgressRepository,
	userID uuid.UUID,
	words []domain.Word,
	records []*domain.WordProgress,
) ([]*domain.WordProgress, error) {
	known := make(map[string]struct{}, len(records))
	for _, p := range records {
		known[p.WordID] = struct{}{}
	}

	var seeded []*domain.WordProgress
	for i := range words {
		id := words[i].CompositeID()
		if _, ok := known[id]; ok {
			continue
		}
		progress, err := domain.NewWordProgress(userID, id)
		if err != nil {
			return nil, fmt.Errorf("failed to build progress record: %w", err)
		}
		seeded = append(seeded, progress)
	}

	if len(seeded) == 0 {
		return records, nil
	}

	if err := progressRepo.CreateBatch(ctx, seeded); err != nil {
		return nil, fmt.Errorf("failed to seed progress records: %w", err)
	}

	records = append(records, seeded...)
	sort.Slice(records, func(i, j int) bool {
		return records[i].WordID < records[j].WordID
	})
	return records, nil
}

// runInTransaction runs the given function against transactional repositories.
// A repository without a backing connection runs the function directly.
func (s *trainingServiceImpl) runInTransaction(
	ctx context.Context,
	fn func(context.Context, ProgressRepository, WordRepository) error,
) error {
	db := s.progressRepo.DB()
	if db == nil {
		return fn(ctx, s.progressRepo, s.wordRepo)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	progressRepo := s.progressRepo.WithTx(tx)
	wordRepo := s.wordRepo.WithTx(tx)

	err = fn(ctx, progressRepo, wordRepo)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
