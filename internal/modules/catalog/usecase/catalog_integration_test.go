package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	catalogout "psynara/internal/modules/catalog/adapter/out"
	"psynara/internal/modules/catalog/dto"
	"psynara/internal/modules/catalog/service"
	"psynara/internal/modules/catalog/usecase"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/id"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/storage/seed"
)

type fixedClock struct{ at time.Time }

func (f fixedClock) Now() time.Time { return f.at }

func openSeeded(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "psynara.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := seed.Apply(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func TestListRecordAndHistory(t *testing.T) {
	t.Parallel()
	db := openSeeded(t)
	at := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	uc := usecase.NewInteractor(service.NewCatalogService(
		fixedClock{at: at}, id.UUID{},
		catalogout.NewSQLiteGameStore(db), catalogout.NewSQLiteProgressStore(db), "user-1",
	))
	ctx := context.Background()

	games, err := uc.ListGames(ctx)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) == 0 || games[0].Name != "Respiración Consciente" {
		t.Fatalf("expected catalog ordered by created_at, got %+v", games)
	}
	for _, g := range games {
		if g.Completed {
			t.Fatalf("nothing should be completed yet: %s", g.Name)
		}
		if g.Kind == "" || g.DifficultyLabel == "" {
			t.Fatalf("kind and difficulty label must be set: %+v", g)
		}
	}

	progress, err := uc.RecordCompletion(ctx, dto.RecordCompletionInput{GameID: games[0].ID, Score: 100})
	if err != nil {
		t.Fatalf("record completion: %v", err)
	}
	if progress.GameName != games[0].Name || !progress.CompletedAt.Equal(at) {
		t.Fatalf("unexpected progress: %+v", progress)
	}

	game, err := uc.GetGame(ctx, games[0].ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if !game.Completed {
		t.Fatalf("game must be completed after recording progress")
	}

	history, err := uc.ListProgress(ctx)
	if err != nil {
		t.Fatalf("list progress: %v", err)
	}
	if len(history) != 1 || history[0].Score != 100 {
		t.Fatalf("unexpected history: %+v", history)
	}

	var rows int
	if err := db.QueryRow(`SELECT COUNT(*) FROM user_progress WHERE user_id = ? AND completed = 1`, "user-1").Scan(&rows); err != nil {
		t.Fatalf("count progress: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected one progress row, got %d", rows)
	}
}

func TestCompletionIsScopedToUser(t *testing.T) {
	t.Parallel()
	db := openSeeded(t)
	games := catalogout.NewSQLiteGameStore(db)
	progress := catalogout.NewSQLiteProgressStore(db)
	clk := fixedClock{at: time.Now().UTC()}
	alice := usecase.NewInteractor(service.NewCatalogService(clk, id.UUID{}, games, progress, "alice"))
	bob := usecase.NewInteractor(service.NewCatalogService(clk, id.UUID{}, games, progress, "bob"))

	list, err := alice.ListGames(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := alice.RecordCompletion(context.Background(), dto.RecordCompletionInput{GameID: list[1].ID, Score: 80}); err != nil {
		t.Fatalf("record: %v", err)
	}
	got, err := bob.GetGame(context.Background(), list[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Completed {
		t.Fatalf("another user's progress must not mark the game completed")
	}
}

func TestFindGameByNameAndSuggestion(t *testing.T) {
	t.Parallel()
	db := openSeeded(t)
	uc := usecase.NewInteractor(service.NewCatalogService(
		fixedClock{}, id.UUID{},
		catalogout.NewSQLiteGameStore(db), catalogout.NewSQLiteProgressStore(db), "u",
	))
	ctx := context.Background()

	g, err := uc.FindGame(ctx, "rueda de emociones")
	if err != nil {
		t.Fatalf("find by folded name: %v", err)
	}
	if g.Kind != "emotion_wheel" {
		t.Fatalf("expected emotion_wheel kind, got %s", g.Kind)
	}

	_, err = uc.FindGame(ctx, "Gratitud Diari")
	if !errors.Is(err, apperrors.ErrNotFound) || !strings.Contains(err.Error(), `did you mean "Gratitud Diaria"`) {
		t.Fatalf("expected suggestion, got %v", err)
	}

	_, err = uc.FindGame(ctx, "zzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	if !errors.Is(err, apperrors.ErrNotFound) || strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("expected plain not found, got %v", err)
	}
}

func TestLegacyRowsWithoutKindResolveByName(t *testing.T) {
	t.Parallel()
	db := openSeeded(t)
	if _, err := db.Exec(`UPDATE psychology_games SET kind = '' WHERE name = 'Escaneo Corporal'`); err != nil {
		t.Fatalf("clear kind: %v", err)
	}
	uc := usecase.NewInteractor(service.NewCatalogService(
		fixedClock{}, id.UUID{},
		catalogout.NewSQLiteGameStore(db), catalogout.NewSQLiteProgressStore(db), "u",
	))
	g, err := uc.FindGame(context.Background(), "Escaneo Corporal")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if g.Kind != "body_scan" {
		t.Fatalf("expected legacy name resolution to body_scan, got %q", g.Kind)
	}
}

func TestRecordCompletionRejectsUnknownGameAndBadScore(t *testing.T) {
	t.Parallel()
	db := openSeeded(t)
	uc := usecase.NewInteractor(service.NewCatalogService(
		fixedClock{}, id.UUID{},
		catalogout.NewSQLiteGameStore(db), catalogout.NewSQLiteProgressStore(db), "u",
	))
	if _, err := uc.RecordCompletion(context.Background(), dto.RecordCompletionInput{GameID: "missing", Score: 100}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	games, _ := uc.ListGames(context.Background())
	if _, err := uc.RecordCompletion(context.Background(), dto.RecordCompletionInput{GameID: games[0].ID, Score: 150}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
