package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/glossa-app/glossa-api/internal/config"
	"github.com/glossa-app/glossa-api/internal/domain/schedule"
	"github.com/glossa-app/glossa-api/internal/platform/fsrs"
	"github.com/glossa-app/glossa-api/internal/platform/logger"
	"github.com/glossa-app/glossa-api/internal/platform/postgres"
	"github.com/glossa-app/glossa-api/internal/platform/vocabsource"
	"github.com/glossa-app/glossa-api/internal/service/auth"
	"github.com/glossa-app/glossa-api/internal/service/training"
	"github.com/glossa-app/glossa-api/internal/service/vocab"
	"github.com/glossa-app/glossa-api/internal/store"
)

// application holds the assembled dependency graph of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier

	trainingService training.TrainingService
	vocabService    vocab.VocabService
}

// newApplication loads configuration and builds every service the server
// needs, from the database connection up to the HTTP handlers' dependencies.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	wordStore := postgres.NewPostgresWordStore(db, appLogger)
	progressStore := postgres.NewPostgresProgressStore(db, appLogger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	bcryptVerifier := auth.NewBcryptVerifier()

	model := fsrs.NewModel(fsrs.Config{
		RequestRetention: cfg.Scheduler.RequestRetention,
		EnableShortTerm:  true,
	})
	scheduler := schedule.NewScheduler(model)

	trainingService := training.NewTrainingService(
		training.NewProgressRepositoryAdapter(progressStore, db),
		training.NewWordRepositoryAdapter(wordStore),
		scheduler,
		appLogger,
	)

	catalogSource := vocabsource.NewClient(cfg.Vocab.SourceURL, appLogger)
	vocabService := vocab.NewVocabService(catalogSource, wordStore, db, appLogger)

	return &application{
		config:           cfg,
		logger:           appLogger,
		db:               db,
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   bcryptVerifier,
		passwordVerifier: bcryptVerifier,
		trainingService:  trainingService,
		vocabService:     vocabService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
