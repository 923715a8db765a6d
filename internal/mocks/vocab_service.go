package mocks

import (
	"context"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/service/vocab"
)

// MockVocabService implements vocab.VocabService for testing.
type MockVocabService struct {
	SyncCatalogFn   func(ctx context.Context) (*vocab.SyncResult, error)
	ListGroupsFn    func(ctx context.Context) ([]domain.WordGroup, error)
	WordsForGroupFn func(ctx context.Context, groupID int) ([]domain.Word, error)

	// Defaults used when the function fields are nil.
	Result *vocab.SyncResult
	Groups []domain.WordGroup
	Words  []domain.Word
	Err    error
}

func (m *MockVocabService) SyncCatalog(ctx context.Context) (*vocab.SyncResult, error) {
	if m.SyncCatalogFn != nil {
		return m.SyncCatalogFn(ctx)
	}
	return m.Result, m.Err
}

func (m *MockVocabService) ListGroups(ctx context.Context) ([]domain.WordGroup, error) {
	if m.ListGroupsFn != nil {
		return m.ListGroupsFn(ctx)
	}
	return m.Groups, m.Err
}

func (m *MockVocabService) WordsForGroup(
	ctx context.Context,
	groupID int,
) ([]domain.Word, error) {
	if m.WordsForGroupFn != nil {
		return m.WordsForGroupFn(ctx, groupID)
	}
	return m.Words, m.Err
}
