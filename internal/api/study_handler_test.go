package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossa-app/glossa-api/internal/api/shared"
	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/mocks"
	"github.com/glossa-app/glossa-api/internal/service/training"
)

func newStudyRequest(
	t *testing.T,
	method, target string,
	body string,
	userID uuid.UUID,
) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != uuid.Nil {
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
		req = req.WithContext(ctx)
	}
	return req
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func sampleProgress(wordID string) *domain.WordProgress {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	assigned := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &domain.WordProgress{
		WordID:       wordID,
		State:        domain.CardStateLearning,
		Stability:    1.2,
		Difficulty:   5.4,
		Due:          now.Add(10 * time.Minute),
		LastReview:   &now,
		AssignedDate: &assigned,
		Repetitions:  1,
		Seen:         true,
	}
}

func TestGetTodayWords(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	word := domain.Word{GroupID: 1, LocalID: 2, Greek: "ψωμί", English: "bread", Russian: "хлеб"}

	tests := []struct {
		name           string
		target         string
		userID         uuid.UUID
		items          []training.StudyItem
		serviceErr     error
		wantStatus     int
		wantCount      int
		wantLimitParam int
	}{
		{
			name:           "returns study set",
			target:         "/study/today",
			userID:         userID,
			items:          []training.StudyItem{{Word: word, Progress: sampleProgress("1_2")}},
			wantStatus:     http.StatusOK,
			wantCount:      1,
			wantLimitParam: 20,
		},
		{
			name:           "limit override",
			target:         "/study/today?limit=5",
			userID:         userID,
			items:          nil,
			wantStatus:     http.StatusOK,
			wantCount:      0,
			wantLimitParam: 5,
		},
		{
			name:       "invalid limit",
			target:     "/study/today?limit=abc",
			userID:     userID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing user",
			target:     "/study/today",
			userID:     uuid.Nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "scheduling unavailable",
			target:     "/study/today",
			userID:     userID,
			serviceErr: training.ErrSchedulingUnavailable,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotLimit int
			svc := &mocks.MockTrainingService{
				WordsForTodayFn: func(ctx context.Context, id uuid.UUID, limit int) ([]training.StudyItem, error) {
					gotLimit = limit
					return tt.items, tt.serviceErr
				},
			}
			handler := NewStudyHandler(svc, 20, nil)

			req := newStudyRequest(t, http.MethodGet, tt.target, "", tt.userID)
			rr := httptest.NewRecorder()
			handler.GetTodayWords(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantLimitParam, gotLimit)

				var resp StudySetResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCount, resp.Count)
				assert.Len(t, resp.Words, tt.wantCount)
				if tt.wantCount > 0 {
					assert.Equal(t, "1_2", resp.Words[0].WordID)
					assert.Equal(t, "ψωμί", resp.Words[0].Greek)
					assert.Equal(t, "learning", resp.Words[0].Progress.State)
				}
			}
		})
	}
}

func TestSubmitAnswer(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		wordID     string
		body       string
		userID     uuid.UUID
		serviceErr error
		wantStatus int
	}{
		{
			name:       "valid answer",
			wordID:     "1_2",
			body:       `{"grade":"good"}`,
			userID:     userID,
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed word ID",
			wordID:     "not-a-word",
			body:       `{"grade":"good"}`,
			userID:     userID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown grade rejected by validation",
			wordID:     "1_2",
			body:       `{"grade":"perfect"}`,
			userID:     userID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			wordID:     "1_2",
			body:       `{"grade":`,
			userID:     userID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no progress record",
			wordID:     "9_9",
			body:       `{"grade":"again"}`,
			userID:     userID,
			serviceErr: training.ErrProgressNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "model failure",
			wordID:     "1_2",
			body:       `{"grade":"easy"}`,
			userID:     userID,
			serviceErr: training.ErrSchedulingUnavailable,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "missing user",
			wordID:     "1_2",
			body:       `{"grade":"good"}`,
			userID:     uuid.Nil,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotGrade domain.Grade
			svc := &mocks.MockTrainingService{
				SubmitAnswerFn: func(ctx context.Context, id uuid.UUID, wordID string, grade domain.Grade) (*domain.WordProgress, error) {
					gotGrade = grade
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return sampleProgress(wordID), nil
				},
			}
			handler := NewStudyHandler(svc, 20, nil)

			req := newStudyRequest(
				t,
				http.MethodPost,
				"/study/words/"+tt.wordID+"/answer",
				tt.body,
				tt.userID,
			)
			req = withURLParam(req, "id", tt.wordID)
			rr := httptest.NewRecorder()
			handler.SubmitAnswer(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, domain.GradeGood, gotGrade)

				var resp ProgressResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.wordID, resp.WordID)
				assert.Equal(t, "learning", resp.State)
				assert.True(t, resp.Seen)
			}
		})
	}
}

func TestTrimAssigned(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("returns trimmed word IDs", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockTrainingService{
			Trimmed: []*domain.WordProgress{
				{WordID: "1_3"},
				{WordID: "1_4"},
			},
		}
		handler := NewStudyHandler(svc, 20, nil)

		req := newStudyRequest(t, http.MethodPost, "/study/trim?limit=1", "", userID)
		rr := httptest.NewRecorder()
		handler.TrimAssigned(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp TrimResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, []string{"1_3", "1_4"}, resp.Trimmed)
	})

	t.Run("nothing to trim", func(t *testing.T) {
		t.Parallel()

		handler := NewStudyHandler(&mocks.MockTrainingService{}, 20, nil)

		req := newStudyRequest(t, http.MethodPost, "/study/trim", "", userID)
		rr := httptest.NewRecorder()
		handler.TrimAssigned(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp TrimResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Zero(t, resp.Count)
		assert.Empty(t, resp.Trimmed)
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()

		handler := NewStudyHandler(&mocks.MockTrainingService{}, 20, nil)

		req := newStudyRequest(t, http.MethodPost, "/study/trim", "", uuid.Nil)
		rr := httptest.NewRecorder()
		handler.TrimAssigned(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
