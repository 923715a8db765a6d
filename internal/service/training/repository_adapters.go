package training

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/store"
)

// ProgressRepository defines the interface for repositories that can provide
// word progress data and support transactions.
type ProgressRepository interface {
	// ListByUser returns all progress records for a user in stable order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.WordProgress, error)

	// Get retrieves the record for one user and word.
	Get(ctx context.Context, userID uuid.UUID, wordID string) (*domain.WordProgress, error)

	// CreateBatch inserts fresh records when seeding new vocabulary.
	CreateBatch(ctx context.Context, records []*domain.WordProgress) error

	// Update replaces an existing record.
	Update(ctx context.Context, progress *domain.WordProgress) error

	// SaveAll updates the given records.
	SaveAll(ctx context.Context, records []*domain.WordProgress) error

	// WithTx returns a new repository instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ProgressRepository

	// DB returns the underlying database connection.
	DB() *sql.DB
}

// WordRepository defines the interface for repositories that can provide
// vocabulary catalog data.
type WordRepository interface {
	// ListWords returns the full catalog in stable order.
	ListWords(ctx context.Context) ([]domain.Word, error)

	// WithTx returns a new repository instance that uses the provided transaction.
	WithTx(tx *sql.Tx) WordRepository
}

// NewProgressRepositoryAdapter creates a new adapter that allows a
// store.ProgressStore to be used where a ProgressRepository is expected.
func NewProgressRepositoryAdapter(progressStore store.ProgressStore, db *sql.DB) ProgressRepository {
	return &progressRepositoryAdapter{
		progressStore: progressStore,
		db:            db,
	}
}

// progressRepositoryAdapter adapts a store.ProgressStore to the ProgressRepository interface
type progressRepositoryAdapter struct {
	progressStore store.ProgressStore
	db            *sql.DB
}

func (a *progressRepositoryAdapter) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.WordProgress, error) {
	return a.progressStore.ListByUser(ctx, userID)
}

func (a *progressRepositoryAdapter) Get(
	ctx context.Context,
	userID uuid.UUID,
	wordID string,
) (*domain.WordProgress, error) {
	return a.progressStore.Get(ctx, userID, wordID)
}

func (a *progressRepositoryAdapter) CreateBatch(
	ctx context.Context,
	records []*domain.WordProgress,
) error {
	return a.progressStore.CreateBatch(ctx, records)
}

func (a *progressRepositoryAdapter) Update(
	ctx context.Context,
	progress *domain.WordProgress,
) error {
	return a.progressStore.Update(ctx, progress)
}

func (a *progressRepositoryAdapter) SaveAll(
	ctx context.Context,
	records []*domain.WordProgress,
) error {
	return a.progressStore.SaveAll(ctx, records)
}

func (a *progressRepositoryAdapter) WithTx(tx *sql.Tx) ProgressRepository {
	return &progressRepositoryAdapter{
		progressStore: a.progressStore.WithTx(tx),
		db:            a.db,
	}
}

func (a *progressRepositoryAdapter) DB() *sql.DB {
	return a.db
}

// NewWordRepositoryAdapter creates a new adapter that allows a
// store.WordStore to be used where a WordRepository is expected.
func NewWordRepositoryAdapter(wordStore store.WordStore) WordRepository {
	return &wordRepositoryAdapter{wordStore: wordStore}
}

// wordRepositoryAdapter adapts a store.WordStore to the WordRepository interface
type wordRepositoryAdapter struct {
	wordStore store.WordStore
}

func (a *wordRepositoryAdapter) ListWords(ctx context.Context) ([]domain.Word, error) {
	return a.wordStore.ListWords(ctx)
}

func (a *wordRepositoryAdapter) WithTx(tx *sql.Tx) WordRepository {
	return &wordRepositoryAdapter{wordStore: a.wordStore.WithTx(tx)}
}
