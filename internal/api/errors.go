package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/glossa-app/glossa-api/internal/api/shared"
	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/service/auth"
	"github.com/glossa-app/glossa-api/internal/service/training"
	"github.com/glossa-app/glossa-api/internal/service/vocab"
	"github.com/glossa-app/glossa-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrWordNotFound),
		errors.Is(err, store.ErrWordGroupNotFound),
		errors.Is(err, training.ErrProgressNotFound),
		errors.Is(err, vocab.ErrGroupNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, training.ErrInvalidGrade),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Upstream failures
	case errors.Is(err, training.ErrSchedulingUnavailable),
		errors.Is(err, vocab.ErrSyncFailed):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, auth.ErrMissingToken):
		return "Authentication token is missing"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, store.ErrWordGroupNotFound),
		errors.Is(err, vocab.ErrGroupNotFound):
		return "Word group not found"

	case errors.Is(err, training.ErrProgressNotFound):
		return "Word progress not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, training.ErrInvalidGrade):
		return "Invalid grade"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid word ID"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	case errors.Is(err, training.ErrSchedulingUnavailable):
		return "Scheduling temporarily unavailable"

	case errors.Is(err, vocab.ErrSyncFailed):
		return "Vocabulary sync failed"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message, logs the
// detailed error, and writes the sanitized response. An explicit message
// overrides the derived one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
