package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/glossa-app/glossa-api/internal/api/shared"
	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/platform/logger"
	"github.com/glossa-app/glossa-api/internal/service/training"
)

// StudyHandler handles the daily training HTTP requests.
type StudyHandler struct {
	trainingService training.TrainingService
	dailyNewLimit   int
	validator       *validator.Validate
	logger          *slog.Logger
}

// NewStudyHandler creates a new StudyHandler.
// dailyNewLimit is the configured per-day cap on newly introduced words;
// requests may override it with the "limit" query parameter.
func NewStudyHandler(
	trainingService training.TrainingService,
	dailyNewLimit int,
	logger *slog.Logger,
) *StudyHandler {
	if trainingService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("trainingService cannot be nil for StudyHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StudyHandler{
		trainingService: trainingService,
		dailyNewLimit:   dailyNewLimit,
		validator:       validator.New(),
		logger:          logger.With(slog.String("component", "study_handler")),
	}
}

// GetTodayWords handles GET /study/today requests.
// It returns the authenticated user's study set for the current day.
func (h *StudyHandler) GetTodayWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	limit, ok := getQueryLimit(r, h.dailyNewLimit)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	items, err := h.trainingService.WordsForToday(r.Context(), userID, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute study set")
		return
	}

	words := make([]StudyWordResponse, 0, len(items))
	for _, item := range items {
		words = append(words, studyItemToResponse(item))
	}

	log.Debug("study set returned",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(words)))
	shared.RespondWithJSON(w, r, http.StatusOK, StudySetResponse{
		Words: words,
		Count: len(words),
	})
}

// SubmitAnswer handles POST /study/words/{id}/answer requests.
// It applies the graded answer and returns the next scheduling state.
func (h *StudyHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	wordID := chi.URLParam(r, "id")
	if _, _, err := domain.ParseWordCompositeID(wordID); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID")
		return
	}

	var req SubmitAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	updated, err := h.trainingService.SubmitAnswer(
		r.Context(),
		userID,
		wordID,
		domain.Grade(req.Grade),
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("answer recorded",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID),
		slog.String("state", string(updated.State)))
	shared.RespondWithJSON(w, r, http.StatusOK, progressToResponse(updated))
}

// TrimAssigned handles POST /study/trim requests.
// It releases new-word assignments beyond the daily limit.
func (h *StudyHandler) TrimAssigned(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	limit, ok := getQueryLimit(r, h.dailyNewLimit)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	trimmed, err := h.trainingService.TrimAssigned(r.Context(), userID, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to trim assignments")
		return
	}

	ids := make([]string, 0, len(trimmed))
	for _, p := range trimmed {
		ids = append(ids, p.WordID)
	}

	log.Debug("assignments trimmed",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(ids)))
	shared.RespondWithJSON(w, r, http.StatusOK, TrimResponse{
		Trimmed: ids,
		Count:   len(ids),
	})
}
