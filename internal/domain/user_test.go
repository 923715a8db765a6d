package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("maria@example.com", "securepassword123")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "maria@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
	})

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "securepassword123", ErrEmptyEmail},
		{"malformed email", "not-an-email", "securepassword123", ErrInvalidEmail},
		{"short password", "maria@example.com", "short", ErrPasswordTooShort},
		{"long password", "maria@example.com", strings.Repeat("x", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewUser(tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	user := &User{
		ID:             uuid.New(),
		Email:          "maria@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	require.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
