package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/domain"
)

// ProgressStore defines the interface for word progress persistence.
// Each record tracks one user's scheduling state for one word.
type ProgressStore interface {
	// ListByUser returns all progress records for the user ordered by
	// word ID. The ordering is stable so daily selection and trimming
	// see candidates in a deterministic sequence.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.WordProgress, error)

	// Get retrieves the progress record for one user and word.
	// Returns ErrProgressNotFound if no record exists.
	Get(ctx context.Context, userID uuid.UUID, wordID string) (*domain.WordProgress, error)

	// Create saves a new progress record.
	// Returns ErrProgressExists if a record already exists for the
	// user and word combination.
	Create(ctx context.Context, progress *domain.WordProgress) error

	// CreateBatch inserts the given records in one statement. Used when
	// seeding a user's progress for newly synced vocabulary.
	CreateBatch(ctx context.Context, records []*domain.WordProgress) error

	// Update replaces an existing progress record.
	// Returns ErrProgressNotFound if the record does not exist.
	Update(ctx context.Context, progress *domain.WordProgress) error

	// SaveAll updates the given records, typically after a scheduling
	// pass mutated assignment dates. Records must already exist.
	SaveAll(ctx context.Context, records []*domain.WordProgress) error

	// WithTx returns a new ProgressStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ProgressStore
}
