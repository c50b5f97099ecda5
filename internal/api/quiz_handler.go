package api

import (
	"log/slog"
	"net/http"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/api/shared"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/service"
)

// QuizHandler handles quiz lifecycle endpoints.
type QuizHandler struct {
	quizzes *service.QuizService
	logger  *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(quizzes *service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		quizzes: quizzes,
		logger:  logger.With(slog.String("component", "quiz_handler")),
	}
}

// Start handles POST /api/v1/quiz/start.
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req QuizStartRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "uid and topicId are required")
		return
	}

	session, err := h.quizzes.StartQuiz(r.Context(), req.UID, req.TopicID, req.NumQuestions)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuizStartResponse{
		QuizID:    session.QuizID,
		TopicID:   session.TopicID,
		Questions: session.Questions,
	})
}

// Submit handles POST /api/v1/quiz/submit.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req QuizSubmitRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "uid and quizId are required")
		return
	}

	result, err := h.quizzes.SubmitQuiz(r.Context(), req.UID, req.QuizID, req.Answers)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuizSubmitResponse{
		Score:     result.Score,
		Breakdown: result.Breakdown,
		NextSteps: NextSteps{CardIDs: result.WrongCardIDs()},
	})
}
