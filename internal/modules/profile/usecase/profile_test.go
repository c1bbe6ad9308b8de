package usecase_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profileout "psynara/internal/modules/profile/adapter/out"
	profilein "psynara/internal/modules/profile/port/in"
	"psynara/internal/modules/profile/service"
	"psynara/internal/modules/profile/usecase"
	apperrors "psynara/internal/platform/errors"
	"psynara/internal/platform/storage"
	"psynara/internal/platform/storage/seed"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func setup(t *testing.T, defaultName string) (profilein.Usecase, *sql.DB, *stepClock) {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "psynara.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = seed.Apply(context.Background(), db)
	require.NoError(t, err)
	clk := &stepClock{now: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)}
	svc := service.NewProfileService(clk,
		profileout.NewSQLiteProfileStore(db), profileout.NewSQLiteStatsReader(db),
		nil, "local", defaultName)
	return usecase.NewInteractor(svc), db, clk
}

func TestEnsureCreatesNeutralProfileOnce(t *testing.T) {
	t.Parallel()
	uc, _, clk := setup(t, "  Ana  ")
	ctx := context.Background()

	first, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "local", first.ID)
	assert.Equal(t, "Ana", first.FullName)
	assert.Equal(t, "neutral", first.Mood)

	clk.advance(time.Hour)
	again, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, first.CreatedAt.Equal(again.CreatedAt))
}

func TestRenameAndMood(t *testing.T) {
	t.Parallel()
	uc, _, clk := setup(t, "")
	ctx := context.Background()

	p, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Usuario", p.Display)

	clk.advance(time.Minute)
	p, err = uc.Rename(ctx, " Luis  Pérez ")
	require.NoError(t, err)
	assert.Equal(t, "Luis Pérez", p.FullName)
	assert.True(t, p.UpdatedAt.After(p.CreatedAt))

	_, err = uc.Rename(ctx, "   ")
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	p, err = uc.UpdateMood(ctx, "Bien")
	require.NoError(t, err)
	assert.Equal(t, "bien", p.Mood)
	assert.Equal(t, "Bien", p.MoodLabel)

	_, err = uc.UpdateMood(ctx, "eufórico")
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	reloaded, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Luis Pérez", reloaded.FullName)
	assert.Equal(t, "bien", reloaded.Mood)
}

func TestHomeStatsCountActivity(t *testing.T) {
	t.Parallel()
	uc, db, clk := setup(t, "Ana")
	ctx := context.Background()

	home, err := uc.Home(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, home.Stats.CompletedGames)
	assert.Equal(t, 0, home.Stats.AnsweredQuestions)
	assert.Equal(t, 1, home.Stats.DaysActive)
	assert.NotEmpty(t, home.Tip)

	var gameID, questionID string
	require.NoError(t, db.QueryRow(`SELECT id FROM psychology_games LIMIT 1`).Scan(&gameID))
	require.NoError(t, db.QueryRow(`SELECT id FROM psychology_questions LIMIT 1`).Scan(&questionID))
	stamp := storage.FormatTime(clk.Now())
	_, err = db.Exec(`INSERT INTO user_progress (id, user_id, game_id, completed, score, completed_at, created_at) VALUES
		('p1', 'local', ?, 1, 100, ?, ?), ('p2', 'local', ?, 0, 0, NULL, ?), ('p3', 'other', ?, 1, 100, ?, ?)`,
		gameID, stamp, stamp, gameID, stamp, gameID, stamp, stamp)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO user_answers (id, user_id, question_id, answer, score, created_at) VALUES
		('a1', 'local', ?, '4', 4, ?), ('a2', 'local', ?, '2', 2, ?)`, questionID, stamp, questionID, stamp)
	require.NoError(t, err)

	clk.advance(49 * time.Hour)
	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CompletedGames)
	assert.Equal(t, 2, stats.AnsweredQuestions)
	assert.Equal(t, 3, stats.DaysActive)
}

func TestMoodsInDisplayOrder(t *testing.T) {
	t.Parallel()
	uc, _, _ := setup(t, "")
	moods, err := uc.Moods(context.Background())
	require.NoError(t, err)
	require.Len(t, moods, 5)
	assert.Equal(t, "excelente", moods[0].ID)
	assert.Equal(t, "mal", moods[4].ID)
}
