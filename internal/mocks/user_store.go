package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/store"
)

// MockUserStore implements store.UserStore with an in-memory map.
type MockUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User

	// Forced errors; nil means the in-memory behavior applies.
	CreateErr error
	GetErr    error
}

// NewMockUserStore creates an empty in-memory user store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
