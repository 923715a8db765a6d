package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossa-app/glossa-api/internal/config"
	"github.com/glossa-app/glossa-api/internal/mocks"
	"github.com/glossa-app/glossa-api/internal/service/auth"
)

func newTestApplication() *application {
	return &application{
		config: &config.Config{
			Server:    config.ServerConfig{Port: 8080, LogLevel: "info"},
			Scheduler: config.SchedulerConfig{DailyNewLimit: 20},
		},
		logger: slog.Default(),
		userStore: mocks.NewMockUserStore(),
		jwtService: &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: uuid.New()},
		},
		passwordHasher:   &mocks.MockPasswordHasher{},
		passwordVerifier: &mocks.MockPasswordVerifier{ShouldSucceed: true},
		trainingService:  &mocks.MockTrainingService{},
		vocabService:     &mocks.MockVocabService{},
	}
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/study/today"},
		{http.MethodPost, "/api/study/words/1_2/answer"},
		{http.MethodPost, "/api/study/trim"},
		{http.MethodGet, "/api/vocab/groups"},
		{http.MethodGet, "/api/vocab/groups/1/words"},
		{http.MethodPost, "/api/vocab/sync"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code,
			"%s %s should require authentication", route.method, route.path)
	}
}

func TestAuthenticatedStudyRequest(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/study/today", nil)
	req.Header.Set("Authorization", "Bearer some-valid-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
