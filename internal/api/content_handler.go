package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/api/shared"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/service"
)

// ContentHandler handles the seeded content endpoints.
type ContentHandler struct {
	content *service.ContentService
	logger  *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(content *service.ContentService, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentHandler{
		content: content,
		logger:  logger.With(slog.String("component", "content_handler")),
	}
}

// GetSubjects handles GET /api/v1/subjects.
func (h *ContentHandler) GetSubjects(w http.ResponseWriter, r *http.Request) {
	groups, err := h.content.ListTopicsGrouped(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if groups == nil {
		groups = []domain.SubjectGroup{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, groups)
}

// GetTopicCards handles GET /api/v1/topics/{topicID}/cards. An
// unknown topic returns an empty card list.
func (h *ContentHandler) GetTopicCards(w http.ResponseWriter, r *http.Request) {
	topicID := chi.URLParam(r, "topicID")
	if topicID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Topic ID is required")
		return
	}

	cards, err := h.content.ListCardsForTopic(r.Context(), topicID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if cards == nil {
		cards = []domain.Card{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, TopicCardsResponse{TopicID: topicID, Cards: cards})
}
