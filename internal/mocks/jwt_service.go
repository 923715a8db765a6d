package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	GenerateTokenFn        func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn        func(ctx context.Context, tokenString string) (*auth.Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Defaults used when the function fields are nil.
	Token        string
	RefreshToken string
	Err          error
	ValidateErr  error
	Claims       *auth.Claims
}

func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

func (m *MockJWTService) GenerateRefreshToken(
	ctx context.Context,
	userID uuid.UUID,
) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, userID)
	}
	return m.RefreshToken, m.Err
}

func (m *MockJWTService) ValidateRefreshToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
