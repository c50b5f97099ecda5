package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/api/shared"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/assist"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/service"
)

// Upload limits for homework submissions.
const (
	maxUploadMemory = 8 << 20  // bytes buffered in memory during parse
	maxUploadSize   = 10 << 20 // bytes per attached file
)

// HomeworkHandler handles homework submissions.
type HomeworkHandler struct {
	homework *service.HomeworkService
	logger   *slog.Logger
}

// NewHomeworkHandler creates a HomeworkHandler.
func NewHomeworkHandler(homework *service.HomeworkService, logger *slog.Logger) *HomeworkHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HomeworkHandler{
		homework: homework,
		logger:   logger.With(slog.String("component", "homework_handler")),
	}
}

// Submit handles POST /api/v1/homework/submit. The body is multipart
// form data with uid, question and zero or more files.
func (h *HomeworkHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	uid := r.FormValue("uid")
	if uid == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "uid is required")
		return
	}
	question := r.FormValue("question")

	var uploads []assist.Upload
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			if header.Size > maxUploadSize {
				shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge,
					"File too large: "+header.Filename)
				return
			}
			file, err := header.Open()
			if err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Could not read uploaded file", err)
				return
			}
			data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
			_ = file.Close()
			if err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Could not read uploaded file", err)
				return
			}
			uploads = append(uploads, assist.Upload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	result, err := h.homework.Submit(r.Context(), uid, question, uploads)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HomeworkSubmitResponse{
		ExtractedText: result.ExtractedText,
		CombinedText:  result.CombinedText,
		AIHelp:        result.AIHelp,
		Files:         result.Files,
		Warnings:      result.Warnings,
	})
}
