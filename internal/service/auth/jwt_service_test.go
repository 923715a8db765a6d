package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossa-app/glossa-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   "test-secret-thatislongenoughforhmac256",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	}
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.JWTSecret = "tooshort"
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateRefreshToken(context.Background(), userID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestTokenTypeEnforcement(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	userID := uuid.New()
	access, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(context.Background(), userID)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = svc.ValidateToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	t.Parallel()

	svc1, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "another-secret-thatisalsolongenough12345"
	svc2, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := svc1.GenerateToken(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = svc2.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	impl := svc.(*hmacJWTService)

	token, err := svc.GenerateToken(context.Background(), uuid.New())
	require.NoError(t, err)

	// Move validation time past the token lifetime plus clock skew.
	impl.timeFunc = func() time.Time {
		return time.Now().Add(impl.tokenLifetime + impl.clockSkew + time.Minute)
	}

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestBcryptVerifierRoundTrip(t *testing.T) {
	t.Parallel()

	verifier := NewBcryptVerifier()
	hashed, err := verifier.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	assert.NoError(t, verifier.Compare(hashed, "correct horse battery staple"))
	assert.Error(t, verifier.Compare(hashed, "wrong password"))
}
