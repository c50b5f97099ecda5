package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/assist"
)

// HomeworkResult is the outcome of a homework submission. Warnings
// report degraded steps (failed extraction, unavailable advisor); the
// submission itself still succeeds.
type HomeworkResult struct {
	ExtractedText []string
	CombinedText  string
	AIHelp        string
	Files         []string
	Warnings      []string
}

// HomeworkService orchestrates homework submissions: extract text from
// uploads, combine it with the typed question and ask the advisor for
// guidance. Every collaborator failure degrades to a warning; once the
// input parses there is no hard failure path.
type HomeworkService struct {
	extractor assist.Extractor
	advisor   assist.Advisor
	logger    *slog.Logger
}

// NewHomeworkService creates a HomeworkService. advisor may be nil
// when AI assistance is not configured.
func NewHomeworkService(extractor assist.Extractor, advisor assist.Advisor, logger *slog.Logger) *HomeworkService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HomeworkService{
		extractor: extractor,
		advisor:   advisor,
		logger:    logger.With(slog.String("component", "homework_service")),
	}
}

// Submit processes one homework submission for the user.
func (s *HomeworkService) Submit(ctx context.Context, uid, question string, uploads []assist.Upload) (*HomeworkResult, error) {
	result := &HomeworkResult{
		ExtractedText: []string{},
		Files:         []string{},
		Warnings:      []string{},
	}

	for _, upload := range uploads {
		result.Files = append(result.Files, upload.Filename)
		text, err := s.extractor.Extract(ctx, upload)
		if err != nil {
			s.logger.WarnContext(ctx, "file extraction failed",
				slog.String("filename", upload.Filename),
				slog.String("error", err.Error()))
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not extract text from %s", upload.Filename))
			continue
		}
		if text != "" {
			result.ExtractedText = append(result.ExtractedText, text)
		}
	}

	parts := make([]string, 0, len(result.ExtractedText)+1)
	if q := strings.TrimSpace(question); q != "" {
		parts = append(parts, q)
	}
	parts = append(parts, result.ExtractedText...)
	result.CombinedText = strings.Join(parts, "\n\n")

	switch {
	case s.advisor == nil:
		result.Warnings = append(result.Warnings, "AI assistance is not configured")
	case result.CombinedText == "":
		result.Warnings = append(result.Warnings, "nothing to analyse: no question text or readable attachments")
	default:
		help, err := s.advisor.Advise(ctx, question, result.ExtractedText)
		if err != nil {
			s.logger.WarnContext(ctx, "advisor unavailable",
				slog.String("uid", uid),
				slog.String("error", err.Error()))
			result.Warnings = append(result.Warnings, "AI assistance is temporarily unavailable")
		} else {
			result.AIHelp = help
		}
	}

	s.logger.InfoContext(ctx, "homework submitted",
		slog.String("uid", uid),
		slog.Int("files", len(uploads)),
		slog.Int("warnings", len(result.Warnings)))
	return result, nil
}
