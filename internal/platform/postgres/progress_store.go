package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/platform/logger"
	"github.com/glossa-app/glossa-api/internal/store"
)

// PostgresProgressStore implements the store.ProgressStore interface
// using a PostgreSQL database as the storage backend. Card states are
// persisted as smallint codes; see cardstate.go for the mapping.
type PostgresProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of the ProgressStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProgressStore(db store.DBTX, logger *slog.Logger) *PostgresProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Ensure PostgresProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*PostgresProgressStore)(nil)

const progressColumns = `
	user_id, word_id, state, stability, difficulty,
	elapsed_days, scheduled_days, due, last_review, assigned_date,
	repetitions, lapses, seen, learned, created_at, updated_at
`

// ListByUser implements store.ProgressStore.ListByUser
// Records are ordered by word ID so scheduling passes see a stable sequence.
func (s *PostgresProgressStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.WordProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + progressColumns + `
		FROM word_progress
		WHERE user_id = $1
		ORDER BY word_id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query word progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	records := []*domain.WordProgress{}
	for rows.Next() {
		progress, err := scanProgress(rows.Scan)
		if err != nil {
			log.Error("failed to scan word progress row",
				slog.String("error", err.Error()))
			return nil, err
		}
		records = append(records, progress)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}

// Get implements store.ProgressStore.Get
// Returns store.ErrProgressNotFound if no record exists.
func (s *PostgresProgressStore) Get(
	ctx context.Context,
	userID uuid.UUID,
	wordID string,
) (*domain.WordProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + progressColumns + `
		FROM word_progress
		WHERE user_id = $1 AND word_id = $2
	`

	row := s.db.QueryRowContext(ctx, query, userID, wordID)
	progress, err := scanProgress(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("word progress not found",
				slog.String("user_id", userID.String()),
				slog.String("word_id", wordID))
			return nil, store.ErrProgressNotFound
		}
		log.Error("failed to get word progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("word_id", wordID))
		return nil, err
	}

	return progress, nil
}

// Create implements store.ProgressStore.Create
// Returns store.ErrProgressExists if a record already exists for the
// user and word combination.
func (s *PostgresProgressStore) Create(ctx context.Context, progress *domain.WordProgress) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := progress.Validate(); err != nil {
		log.Warn("word progress validation failed during create",
			slog.String("error", err.Error()),
			slog.String("word_id", progress.WordID))
		return err
	}

	stateCode, err := encodeCardState(progress.State)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO word_progress (` + progressColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		progress.UserID,
		progress.WordID,
		stateCode,
		progress.Stability,
		progress.Difficulty,
		progress.ElapsedDays,
		progress.ScheduledDays,
		progress.Due,
		progress.LastReview,
		progress.AssignedDate,
		progress.Repetitions,
		progress.Lapses,
		progress.Seen,
		progress.Learned,
		progress.CreatedAt,
		progress.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", store.ErrProgressExists, progress.WordID)
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, progress.UserID)
		}
		log.Error("failed to create word progress",
			slog.String("error", err.Error()),
			slog.String("user_id", progress.UserID.String()),
			slog.String("word_id", progress.WordID))
		return err
	}

	return nil
}

// CreateBatch implements store.ProgressStore.CreateBatch
func (s *PostgresProgressStore) CreateBatch(
	ctx context.Context,
	records []*domain.WordProgress,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, progress := range records {
		if err := s.Create(ctx, progress); err != nil {
			return err
		}
	}

	log.Info("word progress batch created",
		slog.Int("count", len(records)))
	return nil
}

// Update implements store.ProgressStore.Update
// Returns store.ErrProgressNotFound if the record does not exist.
func (s *PostgresProgressStore) Update(ctx context.Context, progress *domain.WordProgress) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := progress.Validate(); err != nil {
		log.Warn("word progress validation failed during update",
			slog.String("error", err.Error()),
			slog.String("word_id", progress.WordID))
		return err
	}

	stateCode, err := encodeCardState(progress.State)
	if err != nil {
		return err
	}

	query := `
		UPDATE word_progress
		SET state = $3, stability = $4, difficulty = $5,
		    elapsed_days = $6, scheduled_days = $7, due = $8,
		    last_review = $9, assigned_date = $10,
		    repetitions = $11, lapses = $12, seen = $13, learned = $14,
		    updated_at = $15
		WHERE user_id = $1 AND word_id = $2
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		progress.UserID,
		progress.WordID,
		stateCode,
		progress.Stability,
		progress.Difficulty,
		progress.ElapsedDays,
		progress.ScheduledDays,
		progress.Due,
		progress.LastReview,
		progress.AssignedDate,
		progress.Repetitions,
		progress.Lapses,
		progress.Seen,
		progress.Learned,
		progress.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to update word progress",
			slog.String("error", err.Error()),
			slog.String("user_id", progress.UserID.String()),
			slog.String("word_id", progress.WordID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("word_id", progress.WordID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("word progress not found for update",
			slog.String("user_id", progress.UserID.String()),
			slog.String("word_id", progress.WordID))
		return store.ErrProgressNotFound
	}

	return nil
}

// SaveAll implements store.ProgressStore.SaveAll
func (s *PostgresProgressStore) SaveAll(
	ctx context.Context,
	records []*domain.WordProgress,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, progress := range records {
		if err := s.Update(ctx, progress); err != nil {
			return err
		}
	}

	log.Debug("word progress batch saved",
		slog.Int("count", len(records)))
	return nil
}

// WithTx implements store.ProgressStore.WithTx
// It returns a new ProgressStore that uses the provided transaction.
func (s *PostgresProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return &PostgresProgressStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanProgress reads one progress row via the given scan function and
// decodes the stored card-state code.
func scanProgress(scan func(dest ...any) error) (*domain.WordProgress, error) {
	var progress domain.WordProgress
	var stateCode int16
	var lastReview sql.NullTime
	var assignedDate sql.NullTime

	err := scan(
		&progress.UserID,
		&progress.WordID,
		&stateCode,
		&progress.Stability,
		&progress.Difficulty,
		&progress.ElapsedDays,
		&progress.ScheduledDays,
		&progress.Due,
		&lastReview,
		&assignedDate,
		&progress.Repetitions,
		&progress.Lapses,
		&progress.Seen,
		&progress.Learned,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	state, err := decodeCardState(stateCode)
	if err != nil {
		return nil, err
	}
	progress.State = state

	if lastReview.Valid {
		t := lastReview.Time.UTC()
		progress.LastReview = &t
	}
	if assignedDate.Valid {
		t := assignedDate.Time.UTC()
		progress.AssignedDate = &t
	}
	progress.Due = progress.Due.UTC()

	return &progress, nil
}
