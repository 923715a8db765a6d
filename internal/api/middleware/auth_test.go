package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossa-app/glossa-api/internal/api/shared"
	"github.com/glossa-app/glossa-api/internal/mocks"
	"github.com/glossa-app/glossa-api/internal/service/auth"
)

func TestAuthMiddlewareAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedUserID uuid.UUID
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectedUserID: userID,
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "refresh token used as access token",
			authHeader:     "Bearer refresh-token",
			validateErr:    auth.ErrWrongTokenType,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}
			middleware := NewAuthMiddleware(jwtService)

			var capturedUserID uuid.UUID
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if id, ok := GetUserID(r); ok {
					capturedUserID = id
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUserID, capturedUserID)
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	testUserID := uuid.New()

	t.Run("context with user ID", func(t *testing.T) {
		t.Parallel()

		req, err := http.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, err)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, testUserID)
		req = req.WithContext(ctx)

		userID, ok := GetUserID(req)
		assert.True(t, ok)
		assert.Equal(t, testUserID, userID)
	})

	t.Run("context without user ID", func(t *testing.T) {
		t.Parallel()

		req, err := http.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, err)

		userID, ok := GetUserID(req)
		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, userID)
	})
}
