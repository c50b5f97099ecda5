package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/api"
	apimiddleware "github.com/SimonTheDeveloper/GCSE-AI-agent/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	if len(app.config.Server.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   app.config.Server.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	userHandler := api.NewUserHandler(app.userService, app.logger)
	contentHandler := api.NewContentHandler(app.contentService, app.logger)
	quizHandler := api.NewQuizHandler(app.quizService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewService, app.logger)
	homeworkHandler := api.NewHomeworkHandler(app.homeworkService, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.verifier)

	r.Route("/api/v1", func(r chi.Router) {
		// Public: identity bootstrap and read-only content.
		r.Post("/users/bootstrap", userHandler.Bootstrap)
		r.Get("/subjects", contentHandler.GetSubjects)
		r.Get("/topics/{topicID}/cards", contentHandler.GetTopicCards)

		// User-scoped routes sit behind token verification when an
		// identity pool is configured.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/quiz/start", quizHandler.Start)
			r.Post("/quiz/submit", quizHandler.Submit)
			r.Get("/review/next", reviewHandler.ReviewNext)
			r.Post("/progress", reviewHandler.SaveProgress)
			r.Get("/progress", reviewHandler.GetProgress)
			r.Post("/homework/submit", homeworkHandler.Submit)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
