package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/glossa-app/glossa-api/internal/api/shared"
	"github.com/glossa-app/glossa-api/internal/platform/logger"
	"github.com/glossa-app/glossa-api/internal/service/vocab"
)

// VocabHandler handles vocabulary catalog HTTP requests.
type VocabHandler struct {
	vocabService vocab.VocabService
	logger       *slog.Logger
}

// NewVocabHandler creates a new VocabHandler.
func NewVocabHandler(vocabService vocab.VocabService, logger *slog.Logger) *VocabHandler {
	if vocabService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("vocabService cannot be nil for VocabHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &VocabHandler{
		vocabService: vocabService,
		logger:       logger.With(slog.String("component", "vocab_handler")),
	}
}

// ListGroups handles GET /vocab/groups requests.
func (h *VocabHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.vocabService.ListGroups(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list word groups")
		return
	}

	resp := make([]WordGroupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, WordGroupResponse{
			ID:      g.ID,
			Version: g.Version,
			NameEN:  g.NameEN,
			NameRU:  g.NameRU,
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GroupWords handles GET /vocab/groups/{groupID}/words requests.
func (h *VocabHandler) GroupWords(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.Atoi(chi.URLParam(r, "groupID"))
	if err != nil || groupID <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid group ID")
		return
	}

	words, err := h.vocabService.WordsForGroup(r.Context(), groupID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list group words")
		return
	}

	resp := make([]WordResponse, 0, len(words))
	for i := range words {
		word := &words[i]
		resp = append(resp, WordResponse{
			WordID:  word.CompositeID(),
			Greek:   word.Greek,
			English: word.English,
			Russian: word.Russian,
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// SyncCatalog handles POST /vocab/sync requests.
// The sync runs synchronously; large catalogs still finish well inside the
// request timeout because only version-bumped groups are rewritten.
func (h *VocabHandler) SyncCatalog(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	result, err := h.vocabService.SyncCatalog(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Catalog sync failed")
		return
	}

	log.Info("catalog sync finished",
		slog.Int("groups_checked", result.GroupsChecked),
		slog.Int("groups_updated", result.GroupsUpdated),
		slog.Int("words_written", result.WordsWritten))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
