package api

import (
	"log/slog"
	"net/http"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/api/shared"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/service"
)

// ReviewHandler handles progress and review endpoints.
type ReviewHandler struct {
	reviews *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(reviews *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		reviews: reviews,
		logger:  logger.With(slog.String("component", "review_handler")),
	}
}

// ReviewNext handles GET /api/v1/review/next?uid=...
func (h *ReviewHandler) ReviewNext(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	if uid == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "uid is required")
		return
	}

	due, err := h.reviews.ReviewNext(r.Context(), uid)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if due == nil {
		due = []domain.ReviewGroup{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ReviewNextResponse{Due: due})
}

// SaveProgress handles POST /api/v1/progress.
func (h *ReviewHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	var req ProgressUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "uid, topicId, exerciseId and status are required")
		return
	}

	stored, err := h.reviews.SaveProgress(r.Context(), req.UID, &domain.ProgressRecord{
		TopicID:    req.TopicID,
		ExerciseID: req.ExerciseID,
		Status:     req.Status,
		Score:      req.Score,
		Meta:       req.Meta,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, stored)
}

// GetProgress handles GET /api/v1/progress?uid=...&topicId=...
func (h *ReviewHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	if uid == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "uid is required")
		return
	}

	items, err := h.reviews.GetProgress(r.Context(), uid, r.URL.Query().Get("topicId"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if items == nil {
		items = []domain.ProgressRecord{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ProgressGetResponse{Items: items})
}
