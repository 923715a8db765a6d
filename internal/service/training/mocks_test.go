package training_test

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/service/training"
	"github.com/glossa-app/glossa-api/internal/store"
)

// fakeProgressRepo is an in-memory ProgressRepository. It hands out clones
// and copies on write, so a test can tell persisted changes from records
// the service merely mutated in memory.
type fakeProgressRepo struct {
	mu      sync.Mutex
	records map[string]*domain.WordProgress // keyed by wordID

	listErr   error
	getErr    error
	createErr error
	updateErr error
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[string]*domain.WordProgress)}
}

func (f *fakeProgressRepo) put(records ...*domain.WordProgress) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range records {
		f.records[p.WordID] = p.Clone()
	}
}

func (f *fakeProgressRepo) get(wordID string) *domain.WordProgress {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.records[wordID]; ok {
		return p.Clone()
	}
	return nil
}

func (f *fakeProgressRepo) ListByUser(
	_ context.Context,
	userID uuid.UUID,
) ([]*domain.WordProgress, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*domain.WordProgress, 0, len(f.records))
	for _, p := range f.records {
		if p.UserID == userID {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WordID < out[j].WordID })
	return out, nil
}

func (f *fakeProgressRepo) Get(
	_ context.Context,
	userID uuid.UUID,
	wordID string,
) (*domain.WordProgress, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.records[wordID]
	if !ok || p.UserID != userID {
		return nil, store.ErrProgressNotFound
	}
	return p.Clone(), nil
}

func (f *fakeProgressRepo) CreateBatch(_ context.Context, records []*domain.WordProgress) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range records {
		if _, ok := f.records[p.WordID]; ok {
			return store.ErrProgressExists
		}
		f.records[p.WordID] = p.Clone()
	}
	return nil
}

func (f *fakeProgressRepo) Update(_ context.Context, progress *domain.WordProgress) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.records[progress.WordID]; !ok {
		return store.ErrProgressNotFound
	}
	f.records[progress.WordID] = progress.Clone()
	return nil
}

func (f *fakeProgressRepo) SaveAll(ctx context.Context, records []*domain.WordProgress) error {
	for _, p := range records {
		if err := f.Update(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeProgressRepo) WithTx(_ *sql.Tx) training.ProgressRepository { return f }

func (f *fakeProgressRepo) DB() *sql.DB { return nil }

// fakeWordRepo is an in-memory WordRepository.
type fakeWordRepo struct {
	words   []domain.Word
	listErr error
}

func (f *fakeWordRepo) ListWords(_ context.Context) ([]domain.Word, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Word, len(f.words))
	copy(out, f.words)
	return out, nil
}

func (f *fakeWordRepo) WithTx(_ *sql.Tx) training.WordRepository { return f }
