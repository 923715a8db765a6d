package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/api/shared"
)

// getUserIDFromContext extracts the authenticated user's UUID from the request context.
// The user ID is expected to be placed in the context by the authentication middleware.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getQueryLimit reads the "limit" query parameter, falling back to def when
// the parameter is absent. Returns ok=false for a malformed value.
func getQueryLimit(r *http.Request, def int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return limit, true
}
