package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/glossa-app/glossa-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		expect error
	}{
		{
			name:   "nil error stays nil",
			err:    nil,
			expect: nil,
		},
		{
			name:   "no rows maps to not found",
			err:    sql.ErrNoRows,
			expect: store.ErrNotFound,
		},
		{
			name:   "unique violation maps to duplicate",
			err:    &pgconn.PgError{Code: uniqueViolationCode},
			expect: store.ErrDuplicate,
		},
		{
			name:   "foreign key violation maps to invalid entity",
			err:    &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "fk_user"},
			expect: store.ErrInvalidEntity,
		},
		{
			name:   "check violation maps to invalid entity",
			err:    &pgconn.PgError{Code: checkViolationCode},
			expect: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mapped := MapError(tc.err)
			if tc.expect == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.expect)
		})
	}
}

func TestMapErrorPassesThroughUnknown(t *testing.T) {
	t.Parallel()

	original := errors.New("connection reset")
	assert.Equal(t, original, MapError(original))
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: uniqueViolationCode}))
}
