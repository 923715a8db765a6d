package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/mocks"
	"github.com/glossa-app/glossa-api/internal/service/vocab"
)

func TestListGroups(t *testing.T) {
	t.Parallel()

	t.Run("returns groups", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockVocabService{
			Groups: []domain.WordGroup{
				{ID: 1, Version: 2, NameEN: "Family", NameRU: "Семья"},
				{ID: 2, Version: 1, NameEN: "Food", NameRU: "Еда"},
			},
		}
		handler := NewVocabHandler(svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/vocab/groups", nil)
		rr := httptest.NewRecorder()
		handler.ListGroups(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp []WordGroupResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "Family", resp[0].NameEN)
		assert.Equal(t, 2, resp[0].Version)
	})

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()

		handler := NewVocabHandler(&mocks.MockVocabService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/vocab/groups", nil)
		rr := httptest.NewRecorder()
		handler.ListGroups(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestGroupWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		groupID    string
		words      []domain.Word
		serviceErr error
		wantStatus int
		wantLen    int
	}{
		{
			name:    "returns words",
			groupID: "1",
			words: []domain.Word{
				{GroupID: 1, LocalID: 1, Greek: "μητέρα", English: "mother", Russian: "мать"},
				{GroupID: 1, LocalID: 2, Greek: "πατέρας", English: "father", Russian: "отец"},
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
		{
			name:       "unknown group",
			groupID:    "42",
			serviceErr: vocab.ErrGroupNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-numeric group ID",
			groupID:    "family",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-positive group ID",
			groupID:    "0",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.MockVocabService{Words: tt.words, Err: tt.serviceErr}
			handler := NewVocabHandler(svc, nil)

			req := httptest.NewRequest(http.MethodGet, "/vocab/groups/"+tt.groupID+"/words", nil)
			req = withURLParam(req, "groupID", tt.groupID)
			rr := httptest.NewRecorder()
			handler.GroupWords(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var resp []WordResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.Len(t, resp, tt.wantLen)
				assert.Equal(t, "1_1", resp[0].WordID)
				assert.Equal(t, "μητέρα", resp[0].Greek)
			}
		})
	}
}

func TestSyncCatalog(t *testing.T) {
	t.Parallel()

	t.Run("reports sync result", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockVocabService{
			Result: &vocab.SyncResult{GroupsChecked: 3, GroupsUpdated: 1, WordsWritten: 12},
		}
		handler := NewVocabHandler(svc, nil)

		req := httptest.NewRequest(http.MethodPost, "/vocab/sync", nil)
		rr := httptest.NewRecorder()
		handler.SyncCatalog(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp vocab.SyncResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.GroupsChecked)
		assert.Equal(t, 1, resp.GroupsUpdated)
		assert.Equal(t, 12, resp.WordsWritten)
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockVocabService{Err: vocab.ErrSyncFailed}
		handler := NewVocabHandler(svc, nil)

		req := httptest.NewRequest(http.MethodPost, "/vocab/sync", nil)
		rr := httptest.NewRecorder()
		handler.SyncCatalog(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
