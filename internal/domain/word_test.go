package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordCompositeID(t *testing.T) {
	t.Parallel()

	word := Word{GroupID: 3, LocalID: 17, Greek: "νερό", English: "water"}
	assert.Equal(t, "3_17", word.CompositeID())
	assert.Equal(t, "3_17", WordCompositeID(3, 17))
}

func TestParseWordCompositeID(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		groupID, localID, err := ParseWordCompositeID("3_17")
		require.NoError(t, err)
		assert.Equal(t, 3, groupID)
		assert.Equal(t, 17, localID)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		for _, id := range []string{
			"",
			"3",
			"3_",
			"_17",
			"a_17",
			"3_b",
			"0_17",
			"3_0",
			"-1_17",
		} {
			_, _, err := ParseWordCompositeID(id)
			assert.ErrorIs(t, err, ErrInvalidID, "id %q", id)
		}
	})

	t.Run("roundtrip", func(t *testing.T) {
		t.Parallel()

		groupID, localID, err := ParseWordCompositeID(WordCompositeID(12, 345))
		require.NoError(t, err)
		assert.Equal(t, 12, groupID)
		assert.Equal(t, 345, localID)
	})
}

func TestWordValidate(t *testing.T) {
	t.Parallel()

	valid := Word{GroupID: 1, LocalID: 1, Greek: "ψωμί", English: "bread", Russian: "хлеб"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(w *Word)
		wantErr error
	}{
		{"zero group ID", func(w *Word) { w.GroupID = 0 }, ErrWordGroupIDInvalid},
		{"zero local ID", func(w *Word) { w.LocalID = 0 }, ErrWordLocalIDInvalid},
		{"empty greek", func(w *Word) { w.Greek = "" }, ErrWordTextEmpty},
		{"empty english", func(w *Word) { w.English = "" }, ErrWordTextEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			word := valid
			tt.mutate(&word)
			assert.ErrorIs(t, word.Validate(), tt.wantErr)
		})
	}
}

func TestWordGroupValidate(t *testing.T) {
	t.Parallel()

	valid := WordGroup{ID: 1, Version: 2, NameEN: "Family", NameRU: "Семья"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(g *WordGroup)
		wantErr error
	}{
		{"zero ID", func(g *WordGroup) { g.ID = 0 }, ErrWordGroupIDInvalid},
		{"negative version", func(g *WordGroup) { g.Version = -1 }, ErrGroupVersionInvalid},
		{"empty english name", func(g *WordGroup) { g.NameEN = "" }, ErrGroupNameEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			group := valid
			tt.mutate(&group)
			assert.ErrorIs(t, group.Validate(), tt.wantErr)
		})
	}
}
