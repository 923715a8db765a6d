package store

import (
	"context"
	"database/sql"

	"github.com/glossa-app/glossa-api/internal/domain"
)

// WordStore defines the interface for vocabulary catalog persistence.
// The catalog is shared across users and mutated only by vocabulary sync.
type WordStore interface {
	// ListGroups returns all word groups ordered by ID.
	ListGroups(ctx context.Context) ([]domain.WordGroup, error)

	// GetGroup retrieves a single word group by ID.
	// Returns ErrWordGroupNotFound if the group does not exist.
	GetGroup(ctx context.Context, groupID int) (*domain.WordGroup, error)

	// ListWordsByGroup returns all words in a group ordered by local ID.
	// Returns ErrWordGroupNotFound if the group does not exist.
	ListWordsByGroup(ctx context.Context, groupID int) ([]domain.Word, error)

	// ListWords returns every word in the catalog, ordered by group ID
	// then local ID. Used when seeding progress records for a user.
	ListWords(ctx context.Context) ([]domain.Word, error)

	// GetWord retrieves a single word by its composite "group_local" ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetWord(ctx context.Context, wordID string) (*domain.Word, error)

	// UpsertGroup inserts the group or updates its metadata when the ID
	// already exists.
	UpsertGroup(ctx context.Context, group *domain.WordGroup) error

	// ReplaceGroupWords deletes the group's current words and inserts the
	// given set. Callers run this inside a transaction together with
	// UpsertGroup so a sync failure never leaves a half-updated group.
	ReplaceGroupWords(ctx context.Context, groupID int, words []domain.Word) error

	// WithTx returns a new WordStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) WordStore
}
