package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdto "psynara/internal/modules/catalog/dto"
	sessionout "psynara/internal/modules/session/adapter/out"
	"psynara/internal/modules/session/domain"
	sessiondto "psynara/internal/modules/session/dto"
	sessionin "psynara/internal/modules/session/port/in"
	"psynara/internal/modules/session/service"
	"psynara/internal/modules/session/usecase"
	apperrors "psynara/internal/platform/errors"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

type seqID struct {
	mu sync.Mutex
	n  int
}

func (s *seqID) New() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("sess-%d", s.n)
}

type fakeCatalog struct {
	mu       sync.Mutex
	games    map[string]catalogdto.GameOutput
	failNext int
	recorded []catalogdto.RecordCompletionInput
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{games: map[string]catalogdto.GameOutput{
		"g-walk":    {ID: "g-walk", Name: "Caminata Consciente", Kind: "generic"},
		"g-breathe": {ID: "g-breathe", Name: "Respiración Consciente", Kind: "breathing"},
		"g-timer":   {ID: "g-timer", Name: "Meditación Diaria", Kind: "mindfulness_timer"},
		"g-odd":     {ID: "g-odd", Name: "Algo Nuevo", Kind: "juggling"},
	}}
}

func (f *fakeCatalog) ListGames(context.Context) ([]catalogdto.GameOutput, error) { return nil, nil }
func (f *fakeCatalog) FindGame(context.Context, string) (catalogdto.GameOutput, error) {
	return catalogdto.GameOutput{}, apperrors.ErrNotFound
}
func (f *fakeCatalog) ListProgress(context.Context) ([]catalogdto.ProgressOutput, error) {
	return nil, nil
}

func (f *fakeCatalog) GetGame(_ context.Context, id string) (catalogdto.GameOutput, error) {
	g, ok := f.games[id]
	if !ok {
		return catalogdto.GameOutput{}, fmt.Errorf("game %s: %w", id, apperrors.ErrNotFound)
	}
	return g, nil
}

func (f *fakeCatalog) RecordCompletion(_ context.Context, input catalogdto.RecordCompletionInput) (catalogdto.ProgressOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext > 0 {
		f.failNext--
		return catalogdto.ProgressOutput{}, apperrors.Persistence("insert progress", errors.New("database is locked"))
	}
	f.recorded = append(f.recorded, input)
	return catalogdto.ProgressOutput{ID: fmt.Sprintf("p-%d", len(f.recorded)), GameID: input.GameID, Score: input.Score}, nil
}

func newInteractor(t *testing.T, cat *fakeCatalog, opts domain.Options) (sessionin.Usecase, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	svc := service.NewSessionService(clk, &seqID{}, opts, nil)
	return usecase.NewInteractor(svc, cat, sessionout.NewMemoryActiveSessionStore()), clk
}

func TestGenericSessionRecordsCompletion(t *testing.T) {
	t.Parallel()
	cat := newFakeCatalog()
	uc, clk := newInteractor(t, cat, domain.DefaultOptions())
	ctx := context.Background()

	started, err := uc.Start(ctx, sessiondto.StartInput{GameID: "g-walk"})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", started.SessionID)
	assert.Equal(t, "generic", started.Snapshot.Kind)
	assert.Equal(t, "idle", started.Snapshot.Status)

	snap, err := uc.Apply(ctx, sessiondto.ActionInput{Type: "advance"})
	require.NoError(t, err)
	assert.Equal(t, "completed", snap.Status)

	clk.advance(90 * time.Second)
	out, err := uc.Finish(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScore, out.Score)
	assert.Equal(t, "p-1", out.ProgressID)
	assert.Equal(t, 90, out.DurationSec)
	require.Len(t, cat.recorded, 1)
	assert.Equal(t, "g-walk", cat.recorded[0].GameID)

	_, err = uc.Active(ctx)
	require.ErrorIs(t, err, apperrors.ErrNoActiveSession)
}

func TestFinishKeepsSessionWhenPersistenceFails(t *testing.T) {
	t.Parallel()
	cat := newFakeCatalog()
	cat.failNext = 1
	uc, _ := newInteractor(t, cat, domain.DefaultOptions())
	ctx := context.Background()

	_, err := uc.Start(ctx, sessiondto.StartInput{GameID: "g-walk"})
	require.NoError(t, err)
	_, err = uc.Apply(ctx, sessiondto.ActionInput{Type: "advance"})
	require.NoError(t, err)

	_, err = uc.Finish(ctx)
	require.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.Empty(t, cat.recorded)

	active, err := uc.Active(ctx)
	require.NoError(t, err, "session must survive a failed save")
	assert.Equal(t, "completed", active.Snapshot.Status)

	out, err := uc.Finish(ctx)
	require.NoError(t, err)
	assert.Equal(t, active.SessionID, out.SessionID)
	assert.Len(t, cat.recorded, 1)
}

func TestStartRefusesSecondLiveSession(t *testing.T) {
	t.Parallel()
	uc, _ := newInteractor(t, newFakeCatalog(), domain.DefaultOptions())
	ctx := context.Background()

	first, err := uc.Start(ctx, sessiondto.StartInput{GameID: "g-breathe"})
	require.NoError(t, err)
	_, err = uc.Apply(ctx, sessiondto.ActionInput{Type: "start"})
	require.NoError(t, err)

	_, err = uc.Start(ctx, sessiondto.StartInput{GameID: "g-walk"})
	require.ErrorIs(t, err, apperrors.ErrActiveSessionExists)

	second, err := uc.Start(ctx, sessiondto.StartInput{GameID: "g-walk", Replace: true})
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Equal(t, "g-walk", second.GameID)
}

func TestStartReplacesCompletedButUnsavedSession(t *testing.T) {
	t.Parallel()
	cat := newFakeCatalog()
	cat.failNext = 1
	uc, _ := newInteractor(t, cat, domain.DefaultOptions())
	ctx := context.Background()

	_, err := uc.Start(ctx, sessiondto.StartInput{GameID: "g-walk"})
	require.NoError(t, err)
	_, err = uc.Apply(ctx, sessiondto.ActionInput{Type: "advance"})
	require.NoError(t, err)
	_, err = uc.Finish(ctx)
	require.Error(t, err)

	next, err := uc.Start(ctx, sessiondto.StartInput{GameID: "g-timer"})
	require.NoError(t, err)
	assert.Equal(t, "mindfulness_timer", next.Snapshot.Kind)
}

func TestTickDrivesBreathingToAwaitingCompletion(t *testing.T) {
	t.Parallel()
	opts := domain.DefaultOptions()
	opts.TotalCycles = 1
	uc, _ := newInteractor(t, newFakeCatalog(), opts)
	ctx := context.Background()

	_, err := uc.Start(ctx, sessiondto.StartInput{GameID: "g-breathe"})
	require.NoError(t, err)

	_, err = uc.Finish(ctx)
	require.ErrorIs(t, err, domain.ErrNotFinished)

	_, err = uc.Apply(ctx, sessiondto.ActionInput{Type: "start"})
	require.NoError(t, err)
	var snap sessiondto.SnapshotOutput
	for range 24 {
		snap, err = uc.Tick(ctx, 500*time.Millisecond)
		require.NoError(t, err)
	}
	assert.Equal(t, "awaiting_completion", snap.Status)
	assert.Equal(t, 1, snap.Cycle)

	out, err := uc.Finish(ctx)
	require.NoError(t, err)
	assert.Equal(t, "breathing", out.Kind)
}

func TestUnknownKindRunsGenericFlow(t *testing.T) {
	t.Parallel()
	uc, _ := newInteractor(t, newFakeCatalog(), domain.DefaultOptions())
	started, err := uc.Start(context.Background(), sessiondto.StartInput{GameID: "g-odd"})
	require.NoError(t, err)
	assert.Equal(t, "generic", started.Snapshot.Kind)
}

func TestCancelDiscardsSession(t *testing.T) {
	t.Parallel()
	cat := newFakeCatalog()
	uc, _ := newInteractor(t, cat, domain.DefaultOptions())
	ctx := context.Background()

	_, err := uc.Start(ctx, sessiondto.StartInput{GameID: "g-timer"})
	require.NoError(t, err)
	_, err = uc.Apply(ctx, sessiondto.ActionInput{Type: "start"})
	require.NoError(t, err)

	snap, err := uc.Cancel(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", snap.Status)
	assert.Empty(t, snap.Responses)

	_, err = uc.Tick(ctx, time.Second)
	require.ErrorIs(t, err, apperrors.ErrNoActiveSession)
	_, err = uc.Finish(ctx)
	require.ErrorIs(t, err, apperrors.ErrNoActiveSession)
	assert.Empty(t, cat.recorded)
}

func TestUnsupportedActionLeavesStateUnchanged(t *testing.T) {
	t.Parallel()
	uc, _ := newInteractor(t, newFakeCatalog(), domain.DefaultOptions())
	ctx := context.Background()

	started, err := uc.Start(ctx, sessiondto.StartInput{GameID: "g-breathe"})
	require.NoError(t, err)
	snap, err := uc.Apply(ctx, sessiondto.ActionInput{Type: "select_duration", Minutes: 10})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, started.Snapshot, snap)
}

func TestStartUnknownGame(t *testing.T) {
	t.Parallel()
	uc, _ := newInteractor(t, newFakeCatalog(), domain.DefaultOptions())
	_, err := uc.Start(context.Background(), sessiondto.StartInput{GameID: "missing"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = uc.Active(context.Background())
	require.ErrorIs(t, err, apperrors.ErrNoActiveSession)
}

func TestConcurrentTicksAreSerialized(t *testing.T) {
	t.Parallel()
	opts := domain.DefaultOptions()
	opts.TimerMinutes = 3
	uc, _ := newInteractor(t, newFakeCatalog(), opts)
	ctx := context.Background()

	_, err := uc.Start(ctx, sessiondto.StartInput{GameID: "g-timer"})
	require.NoError(t, err)
	_, err = uc.Apply(ctx, sessiondto.ActionInput{Type: "start"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 60 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Tick(ctx, time.Second)
		}()
	}
	wg.Wait()

	active, err := uc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, active.Snapshot.Remaining)
}

func TestDTOTagsMatchDomain(t *testing.T) {
	kinds := map[string]domain.Kind{
		sessiondto.KindBreathing:        domain.KindBreathing,
		sessiondto.KindSomatic:          domain.KindSomatic,
		sessiondto.KindBodyScan:         domain.KindBodyScan,
		sessiondto.KindGratitude:        domain.KindGratitude,
		sessiondto.KindCognitiveReframe: domain.KindCognitiveReframe,
		sessiondto.KindEmotionWheel:     domain.KindEmotionWheel,
		sessiondto.KindMindfulnessTimer: domain.KindMindfulnessTimer,
		sessiondto.KindGeneric:          domain.KindGeneric,
	}
	require.Len(t, kinds, len(domain.Kinds()))
	for tag, kind := range kinds {
		assert.Equal(t, string(kind), tag)
	}

	actions := map[string]domain.ActionType{
		sessiondto.ActionStart:           domain.ActionStart,
		sessiondto.ActionTogglePause:     domain.ActionTogglePause,
		sessiondto.ActionAdvance:         domain.ActionAdvance,
		sessiondto.ActionCancel:          domain.ActionCancel,
		sessiondto.ActionRepeat:          domain.ActionRepeat,
		sessiondto.ActionReset:           domain.ActionReset,
		sessiondto.ActionSelectDuration:  domain.ActionSelectDuration,
		sessiondto.ActionToggleScanning:  domain.ActionToggleScanning,
		sessiondto.ActionRecordSensation: domain.ActionRecordSensation,
		sessiondto.ActionSetEntry:        domain.ActionSetEntry,
		sessiondto.ActionAddEntry:        domain.ActionAddEntry,
		sessiondto.ActionRemoveEntry:     domain.ActionRemoveEntry,
		sessiondto.ActionRevealHints:     domain.ActionRevealHints,
		sessiondto.ActionSelectRoot:      domain.ActionSelectRoot,
		sessiondto.ActionSelectResponse:  domain.ActionSelectResponse,
	}
	for tag, action := range actions {
		assert.Equal(t, string(action), tag)
	}

	statuses := map[string]domain.Status{
		sessiondto.StatusIdle:               domain.StatusIdle,
		sessiondto.StatusRunning:            domain.StatusRunning,
		sessiondto.StatusPaused:             domain.StatusPaused,
		sessiondto.StatusAwaitingCompletion: domain.StatusAwaitingCompletion,
		sessiondto.StatusCompleted:          domain.StatusCompleted,
		sessiondto.StatusCancelled:          domain.StatusCancelled,
	}
	for tag, status := range statuses {
		assert.Equal(t, string(status), tag)
	}
}
