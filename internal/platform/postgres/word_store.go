package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/platform/logger"
	"github.com/glossa-app/glossa-api/internal/store"
)

// PostgresWordStore implements the store.WordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordStore creates a new PostgreSQL implementation of the WordStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresWordStore(db store.DBTX, logger *slog.Logger) *PostgresWordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Ensure PostgresWordStore implements store.WordStore interface
var _ store.WordStore = (*PostgresWordStore)(nil)

// ListGroups implements store.WordStore.ListGroups
func (s *PostgresWordStore) ListGroups(ctx context.Context) ([]domain.WordGroup, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, version, name_en, name_ru, created_at, updated_at
		FROM word_groups
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query word groups",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	groups := []domain.WordGroup{}
	for rows.Next() {
		var group domain.WordGroup
		err := rows.Scan(
			&group.ID,
			&group.Version,
			&group.NameEN,
			&group.NameRU,
			&group.CreatedAt,
			&group.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan word group row",
				slog.String("error", err.Error()))
			return nil, err
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return groups, nil
}

// GetGroup implements store.WordStore.GetGroup
// Returns store.ErrWordGroupNotFound if the group does not exist.
func (s *PostgresWordStore) GetGroup(ctx context.Context, groupID int) (*domain.WordGroup, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, version, name_en, name_ru, created_at, updated_at
		FROM word_groups
		WHERE id = $1
	`

	var group domain.WordGroup
	err := s.db.QueryRowContext(ctx, query, groupID).Scan(
		&group.ID,
		&group.Version,
		&group.NameEN,
		&group.NameRU,
		&group.CreatedAt,
		&group.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("word group not found", slog.Int("group_id", groupID))
			return nil, store.ErrWordGroupNotFound
		}
		log.Error("failed to get word group",
			slog.String("error", err.Error()),
			slog.Int("group_id", groupID))
		return nil, err
	}

	return &group, nil
}

// ListWordsByGroup implements store.WordStore.ListWordsByGroup
// Returns store.ErrWordGroupNotFound if the group does not exist.
func (s *PostgresWordStore) ListWordsByGroup(ctx context.Context, groupID int) ([]domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	query := `
		SELECT group_id, local_id, greek, english, russian
		FROM words
		WHERE group_id = $1
		ORDER BY local_id
	`

	rows, err := s.db.QueryContext(ctx, query, groupID)
	if err != nil {
		log.Error("failed to query words by group",
			slog.String("error", err.Error()),
			slog.Int("group_id", groupID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	return scanWords(rows, log)
}

// ListWords implements store.WordStore.ListWords
func (s *PostgresWordStore) ListWords(ctx context.Context) ([]domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT group_id, local_id, greek, english, russian
		FROM words
		ORDER BY group_id, local_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query words",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	return scanWords(rows, log)
}

// GetWord implements store.WordStore.GetWord
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) GetWord(ctx context.Context, wordID string) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	groupID, localID, err := domain.ParseWordCompositeID(wordID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT group_id, local_id, greek, english, russian
		FROM words
		WHERE group_id = $1 AND local_id = $2
	`

	var word domain.Word
	err = s.db.QueryRowContext(ctx, query, groupID, localID).Scan(
		&word.GroupID,
		&word.LocalID,
		&word.Greek,
		&word.English,
		&word.Russian,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("word not found", slog.String("word_id", wordID))
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID))
		return nil, err
	}

	return &word, nil
}

// UpsertGroup implements store.WordStore.UpsertGroup
func (s *PostgresWordStore) UpsertGroup(ctx context.Context, group *domain.WordGroup) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := group.Validate(); err != nil {
		log.Warn("word group validation failed during upsert",
			slog.String("error", err.Error()),
			slog.Int("group_id", group.ID))
		return err
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO word_groups (id, version, name_en, name_ru, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (id) DO UPDATE
		SET version = EXCLUDED.version,
		    name_en = EXCLUDED.name_en,
		    name_ru = EXCLUDED.name_ru,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		group.ID,
		group.Version,
		group.NameEN,
		group.NameRU,
		now,
	)

	if err != nil {
		log.Error("failed to upsert word group",
			slog.String("error", err.Error()),
			slog.Int("group_id", group.ID))
		return err
	}

	log.Info("word group upserted",
		slog.Int("group_id", group.ID),
		slog.Int("version", group.Version))
	return nil
}

// ReplaceGroupWords implements store.WordStore.ReplaceGroupWords
func (s *PostgresWordStore) ReplaceGroupWords(ctx context.Context, groupID int, words []domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for i := range words {
		if err := words[i].Validate(); err != nil {
			log.Warn("word validation failed during replace",
				slog.String("error", err.Error()),
				slog.String("word_id", words[i].CompositeID()))
			return err
		}
	}

	deleteQuery := `DELETE FROM words WHERE group_id = $1`
	if _, err := s.db.ExecContext(ctx, deleteQuery, groupID); err != nil {
		log.Error("failed to delete group words",
			slog.String("error", err.Error()),
			slog.Int("group_id", groupID))
		return err
	}

	insertQuery := `
		INSERT INTO words (group_id, local_id, greek, english, russian)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i := range words {
		w := &words[i]
		_, err := s.db.ExecContext(ctx, insertQuery, w.GroupID, w.LocalID, w.Greek, w.English, w.Russian)
		if err != nil {
			if IsForeignKeyViolation(err) {
				return store.ErrWordGroupNotFound
			}
			log.Error("failed to insert word",
				slog.String("error", err.Error()),
				slog.String("word_id", w.CompositeID()))
			return err
		}
	}

	log.Info("group words replaced",
		slog.Int("group_id", groupID),
		slog.Int("count", len(words)))
	return nil
}

// WithTx implements store.WordStore.WithTx
// It returns a new WordStore that uses the provided transaction.
func (s *PostgresWordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &PostgresWordStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanWords reads all word rows from the result set.
func scanWords(rows *sql.Rows, log *slog.Logger) ([]domain.Word, error) {
	words := []domain.Word{}
	for rows.Next() {
		var word domain.Word
		err := rows.Scan(
			&word.GroupID,
			&word.LocalID,
			&word.Greek,
			&word.English,
			&word.Russian,
		)
		if err != nil {
			log.Error("failed to scan word row",
				slog.String("error", err.Error()))
			return nil, err
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return words, nil
}
