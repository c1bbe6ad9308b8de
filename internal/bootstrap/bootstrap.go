package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	assessmentinadapter "psynara/internal/modules/assessment/adapter/in"
	assessmentoutadapter "psynara/internal/modules/assessment/adapter/out"
	assessmentservice "psynara/internal/modules/assessment/service"
	assessmentusecase "psynara/internal/modules/assessment/usecase"
	cataloginadapter "psynara/internal/modules/catalog/adapter/in"
	catalogoutadapter "psynara/internal/modules/catalog/adapter/out"
	catalogservice "psynara/internal/modules/catalog/service"
	catalogusecase "psynara/internal/modules/catalog/usecase"
	profileinadapter "psynara/internal/modules/profile/adapter/in"
	profileoutadapter "psynara/internal/modules/profile/adapter/out"
	profileservice "psynara/internal/modules/profile/service"
	profileusecase "psynara/internal/modules/profile/usecase"
	recommendationinadapter "psynara/internal/modules/recommendation/adapter/in"
	recommendationoutadapter "psynara/internal/modules/recommendation/adapter/out"
	recommendationservice "psynara/internal/modules/recommendation/service"
	recommendationusecase "psynara/internal/modules/recommendation/usecase"
	sessioninadapter "psynara/internal/modules/session/adapter/in"
	sessionoutadapter "psynara/internal/modules/session/adapter/out"
	"psynara/internal/modules/session/domain"
	sessionservice "psynara/internal/modules/session/service"
	sessionusecase "psynara/internal/modules/session/usecase"
	"psynara/internal/platform/clock"
	"psynara/internal/platform/config"
	"psynara/internal/platform/id"
	"psynara/internal/platform/logging"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/storage/seed"
	"psynara/internal/platform/tx"
	uiapp "psynara/internal/ui/app"
)

type App struct {
	ProfileCLI        profileinadapter.CLIHandler
	AssessmentCLI     assessmentinadapter.CLIHandler
	AssessmentTUI     assessmentinadapter.TUIHandler
	CatalogCLI        cataloginadapter.CLIHandler
	SessionCLI        sessioninadapter.CLIHandler
	SessionTUI        sessioninadapter.TUIHandler
	RecommendationCLI recommendationinadapter.CLIHandler

	Logger    hclog.Logger
	db        *sql.DB
	logCloser io.Closer
}

func New(cfg config.Config) (*App, error) {
	logger, logCloser, err := logging.New(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		return nil, err
	}
	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	app := &App{Logger: logger, db: db, logCloser: logCloser}

	if cfg.Seed.OnStart {
		res, err := seed.Apply(context.Background(), db)
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("seed store: %w", err)
		}
		logger.Debug("seed applied", "questions", res.Questions, "games", res.Games, "recommendations", res.Recommendations)
	}

	clk := clock.SystemClock{}
	ids := id.UUID{}
	userID := cfg.User.ID

	profileUC := profileusecase.NewInteractor(profileservice.NewProfileService(
		clk,
		profileoutadapter.NewSQLiteProfileStore(db),
		profileoutadapter.NewSQLiteStatsReader(db),
		logger,
		userID,
		cfg.User.FullName,
	))

	assessmentUC := assessmentusecase.NewInteractor(assessmentservice.NewAssessmentService(
		clk,
		ids,
		assessmentoutadapter.NewSQLiteQuestionStore(db),
		assessmentoutadapter.NewSQLiteAnswerStore(db),
		tx.SQLManager{DB: db},
		logger,
		userID,
	))

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		clk,
		ids,
		catalogoutadapter.NewSQLiteGameStore(db),
		catalogoutadapter.NewSQLiteProgressStore(db),
		userID,
	))

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids, domain.Options{
			TotalCycles:  cfg.Exercise.BreathingCycles,
			TimerMinutes: cfg.Exercise.TimerMinutes,
			ScanInterval: cfg.Exercise.ScanInterval,
		}, logger),
		catalogUC,
		sessionoutadapter.NewMemoryActiveSessionStore(),
	)

	recommendationUC := recommendationusecase.NewInteractor(recommendationservice.NewRecommendationService(
		recommendationoutadapter.NewSQLiteRecommendationStore(db),
	))

	app.ProfileCLI = profileinadapter.NewCLIHandler(profileUC)
	app.AssessmentCLI = assessmentinadapter.NewCLIHandler(assessmentUC)
	app.AssessmentTUI = assessmentinadapter.NewTUIHandler(assessmentUC)
	app.CatalogCLI = cataloginadapter.NewCLIHandler(catalogUC)
	app.SessionCLI = sessioninadapter.NewCLIHandler(sessionUC)
	app.SessionTUI = sessioninadapter.NewTUIHandler(sessionUC)
	app.RecommendationCLI = recommendationinadapter.NewCLIHandler(recommendationUC)
	return app, nil
}

// Seed loads the bundled catalog regardless of seed.on_start.
func (a *App) Seed(ctx context.Context) (seed.Result, error) {
	return seed.Apply(ctx, a.db)
}

func (a *App) Close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(uiapp.Ports{
		Profile:         app.ProfileCLI,
		Assessment:      app.AssessmentTUI,
		Catalog:         app.CatalogCLI,
		Session:         app.SessionTUI,
		Recommendations: app.RecommendationCLI,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
