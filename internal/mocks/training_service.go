package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/service/training"
)

// MockTrainingService implements training.TrainingService for testing.
type MockTrainingService struct {
	WordsForTodayFn func(ctx context.Context, userID uuid.UUID, dailyNewLimit int) ([]training.StudyItem, error)
	SubmitAnswerFn  func(ctx context.Context, userID uuid.UUID, wordID string, grade domain.Grade) (*domain.WordProgress, error)
	TrimAssignedFn  func(ctx context.Context, userID uuid.UUID, dailyNewLimit int) ([]*domain.WordProgress, error)

	// Defaults used when the function fields are nil.
	Items    []training.StudyItem
	Progress *domain.WordProgress
	Trimmed  []*domain.WordProgress
	Err      error
}

func (m *MockTrainingService) WordsForToday(
	ctx context.Context,
	userID uuid.UUID,
	dailyNewLimit int,
) ([]training.StudyItem, error) {
	if m.WordsForTodayFn != nil {
		return m.WordsForTodayFn(ctx, userID, dailyNewLimit)
	}
	return m.Items, m.Err
}

func (m *MockTrainingService) SubmitAnswer(
	ctx context.Context,
	userID uuid.UUID,
	wordID string,
	grade domain.Grade,
) (*domain.WordProgress, error) {
	if m.SubmitAnswerFn != nil {
		return m.SubmitAnswerFn(ctx, userID, wordID, grade)
	}
	return m.Progress, m.Err
}

func (m *MockTrainingService) TrimAssigned(
	ctx context.Context,
	userID uuid.UUID,
	dailyNewLimit int,
) ([]*domain.WordProgress, error) {
	if m.TrimAssignedFn != nil {
		return m.TrimAssignedFn(ctx, userID, dailyNewLimit)
	}
	return m.Trimmed, m.Err
}
