package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/assist"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/config"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/platform/dynamo"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/platform/gemini"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/platform/logger"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/service"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/service/auth"
)

// application holds the process-wide dependencies: configuration, the
// logger and the wired service graph.
type application struct {
	config *config.Config
	logger *slog.Logger

	userService     *service.UserService
	contentService  *service.ContentService
	quizService     *service.QuizService
	reviewService   *service.ReviewService
	homeworkService *service.HomeworkService

	verifier auth.TokenVerifier
}

// newApplication loads configuration and wires every component.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"table", cfg.Dynamo.TableName,
		"auth_enabled", cfg.Auth.Enabled())

	client, err := dynamo.NewClient(ctx, cfg.Dynamo)
	if err != nil {
		return nil, fmt.Errorf("failed to create store client: %w", err)
	}
	table := dynamo.NewTable(client, cfg.Dynamo)

	userStore := dynamo.NewUserStore(table, log)
	contentStore := dynamo.NewContentStore(table, log)
	quizStore := dynamo.NewQuizStore(table, log)
	progressStore := dynamo.NewProgressStore(table, log)

	app := &application{
		config:         cfg,
		logger:         log,
		userService:    service.NewUserService(userStore, log),
		contentService: service.NewContentService(contentStore, log),
		quizService:    service.NewQuizService(userStore, contentStore, quizStore, cfg.Quiz, log),
		reviewService:  service.NewReviewService(userStore, quizStore, progressStore, log),
	}

	// The advisor is optional: without an API key homework submissions
	// still work, degraded to a warning.
	var advisor assist.Advisor
	if cfg.LLM.GeminiAPIKey != "" {
		geminiAdvisor, err := gemini.NewAdvisor(ctx, cfg.LLM, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create homework advisor: %w", err)
		}
		advisor = geminiAdvisor
	} else {
		log.Warn("homework advisor disabled, no API key configured")
	}
	app.homeworkService = service.NewHomeworkService(assist.TextExtractor{}, advisor, log)

	if cfg.Auth.Enabled() {
		app.verifier = auth.NewCognitoVerifier(cfg.Auth, log)
	} else {
		log.Warn("token verification disabled, API is running open")
	}

	return app, nil
}
