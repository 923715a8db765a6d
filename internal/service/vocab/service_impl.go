package vocab

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/platform/logger"
	"github.com/glossa-app/glossa-api/internal/platform/vocabsource"
	"github.com/glossa-app/glossa-api/internal/store"
)

// Verify interface compliance at compile time
var _ VocabService = (*vocabServiceImpl)(nil)

// vocabServiceImpl implements the VocabService interface.
type vocabServiceImpl struct {
	source    CatalogSource
	wordStore store.WordStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewVocabService creates a new VocabService implementation.
// The db handle is used for per-group sync transactions; it may be nil only
// when the word store itself is transactional or in-memory.
func NewVocabService(
	source CatalogSource,
	wordStore store.WordStore,
	db *sql.DB,
	logger *slog.Logger,
) VocabService {
	if source == nil {
		panic("source cannot be nil")
	}
	if wordStore == nil {
		panic("wordStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &vocabServiceImpl{
		source:    source,
		wordStore: wordStore,
		db:        db,
		logger:    logger.With(slog.String("component", "vocab_service")),
	}
}

// SyncCatalog implements VocabService.SyncCatalog.
func (s *vocabServiceImpl) SyncCatalog(ctx context.Context) (*SyncResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	groups, err := s.source.FetchCatalog(ctx)
	if err != nil {
		log.Error("failed to fetch upstream catalog",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	existing, err := s.wordStore.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}
	versions := make(map[int]int, len(existing))
	for _, g := range existing {
		versions[g.ID] = g.Version
	}

	result := &SyncResult{}
	for _, payload := range groups {
		result.GroupsChecked++

		if version, ok := versions[payload.ID]; ok && version == payload.Version {
			continue
		}

		if err := s.syncGroup(ctx, payload); err != nil {
			log.Error("failed to sync word group",
				slog.String("error", err.Error()),
				slog.Int("group_id", payload.ID))
			return nil, fmt.Errorf("%w: group %d: %v", ErrSyncFailed, payload.ID, err)
		}

		result.GroupsUpdated++
		result.WordsWritten += len(payload.Words)
	}

	log.Info("vocabulary catalog synced",
		slog.Int("groups_checked", result.GroupsChecked),
		slog.Int("groups_updated", result.GroupsUpdated),
		slog.Int("words_written", result.WordsWritten))
	return result, nil
}

// syncGroup writes one group and its words atomically.
func (s *vocabServiceImpl) syncGroup(ctx context.Context, payload vocabsource.GroupPayload) error {
	group := &domain.WordGroup{
		ID:      payload.ID,
		Version: payload.Version,
		NameEN:  payload.Name.EN,
		NameRU:  payload.Name.RU,
	}
	words := make([]domain.Word, 0, len(payload.Words))
	for _, w := range payload.Words {
		words = append(words, domain.Word{
			GroupID: payload.ID,
			LocalID: w.ID,
			Greek:   w.Greek,
			English: w.English,
			Russian: w.Russian,
		})
	}

	write := func(ctx context.Context, ws store.WordStore) error {
		if err := ws.UpsertGroup(ctx, group); err != nil {
			return fmt.Errorf("failed to upsert group: %w", err)
		}
		if err := ws.ReplaceGroupWords(ctx, group.ID, words); err != nil {
			return fmt.Errorf("failed to replace group words: %w", err)
		}
		return nil
	}

	if s.db == nil {
		return write(ctx, s.wordStore)
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return write(ctx, s.wordStore.WithTx(tx))
	})
}

// ListGroups implements VocabService.ListGroups.
func (s *vocabServiceImpl) ListGroups(ctx context.Context) ([]domain.WordGroup, error) {
	groups, err := s.wordStore.ListGroups(ctx)
	if err != nil {
		return nil, &ServiceError{
			Operation: "list_groups",
			Message:   "failed to list word groups",
			Err:       err,
		}
	}
	return groups, nil
}

// WordsForGroup implements VocabService.WordsForGroup.
func (s *vocabServiceImpl) WordsForGroup(ctx context.Context, groupID int) ([]domain.Word, error) {
	words, err := s.wordStore.ListWordsByGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, store.ErrWordGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, &ServiceError{
			Operation: "words_for_group",
			Message:   "failed to list group words",
			Err:       err,
		}
	}
	return words, nil
}
