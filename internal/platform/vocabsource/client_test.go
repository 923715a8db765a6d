package vocabsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogFixture = `{
	"vocabulary": {
		"groups": [
			{
				"id": 1,
				"name": {"en": "Family", "ru": "Семья"},
				"version": 3,
				"words": [
					{"id": 1, "gr": "μητέρα", "en": "mother", "ru": "мать"},
					{"id": 2, "gr": "πατέρας", "en": "father", "ru": "отец"}
				]
			},
			{
				"id": 2,
				"name": {"en": "Food", "ru": "Еда"},
				"version": 1,
				"words": [
					{"id": 1, "gr": "ψωμί", "en": "bread", "ru": "хлеб"}
				]
			}
		]
	}
}`

func TestFetchCatalog(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	groups, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, 1, groups[0].ID)
	assert.Equal(t, 3, groups[0].Version)
	assert.Equal(t, "Family", groups[0].Name.EN)
	assert.Equal(t, "Семья", groups[0].Name.RU)
	require.Len(t, groups[0].Words, 2)
	assert.Equal(t, "μητέρα", groups[0].Words[0].Greek)
	assert.Equal(t, "mother", groups[0].Words[0].English)

	assert.Equal(t, "ψωμί", groups[1].Words[0].Greek)
}

func TestFetchCatalogServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestFetchCatalogMalformedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.FetchCatalog(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCatalogUnavailable)
}

func TestFetchCatalogConnectionRefused(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}
