package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/api/shared"
	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/service/auth"
	"github.com/glossa-app/glossa-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /auth/register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data")
		return
	}

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create user", err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email already exists")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create user", err)
		return
	}

	h.respondWithTokens(w, r, user.ID, http.StatusCreated)
}

// Login handles POST /auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to authenticate user", err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.respondWithTokens(w, r, user.ID, http.StatusOK)
}

// RefreshToken handles POST /auth/refresh requests.
// It exchanges a valid refresh token for a new token pair.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	accessToken, err := h.jwtService.GenerateToken(r.Context(), claims.UserID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), claims.UserID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate refresh token", err)
		return
	}

	resp := RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	if accessClaims, err := h.jwtService.ValidateToken(r.Context(), accessToken); err == nil {
		resp.ExpiresAt = accessClaims.ExpiresAt.UTC().Format(time.RFC3339)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// respondWithTokens issues a fresh token pair for the user.
func (h *AuthHandler) respondWithTokens(
	w http.ResponseWriter,
	r *http.Request,
	userID uuid.UUID,
	status int,
) {
	accessToken, err := h.jwtService.GenerateToken(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate refresh token", err)
		return
	}

	shared.RespondWithJSON(w, r, status, AuthResponse{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
