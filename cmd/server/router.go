package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/glossa-app/glossa-api/internal/api"
	apiMiddleware "github.com/glossa-app/glossa-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	studyHandler := api.NewStudyHandler(
		app.trainingService,
		app.config.Scheduler.DailyNewLimit,
		app.logger,
	)
	vocabHandler := api.NewVocabHandler(app.vocabService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Daily training endpoints
			r.Get("/study/today", studyHandler.GetTodayWords)
			r.Post("/study/words/{id}/answer", studyHandler.SubmitAnswer)
			r.Post("/study/trim", studyHandler.TrimAssigned)

			// Vocabulary catalog endpoints
			r.Get("/vocab/groups", vocabHandler.ListGroups)
			r.Get("/vocab/groups/{groupID}/words", vocabHandler.GroupWords)
			r.Post("/vocab/sync", vocabHandler.SyncCatalog)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
