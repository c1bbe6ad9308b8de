package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psynara/internal/modules/session/domain"
)

func finishEngine(t *testing.T, e domain.Engine) {
	t.Helper()
	switch m := e.(type) {
	case *domain.Breathing:
		m.Start()
		m.Tick(time.Minute)
		_, err := m.Complete()
		require.NoError(t, err)
	case *domain.Timer:
		m.Start()
		m.Tick(time.Hour)
	case *domain.BodyScan:
		for m.Status() != domain.StatusCompleted {
			require.NoError(t, m.Advance(""))
		}
	case *domain.Gratitude:
		for i := 0; i < domain.MinGratitudeEntries; i++ {
			require.NoError(t, m.SetEntry(i, "gracias"))
		}
		require.NoError(t, m.Advance(""))
	case *domain.Reframe:
		for m.Status() != domain.StatusCompleted {
			require.NoError(t, m.Advance("pensamiento equilibrado"))
		}
	case *domain.EmotionWheel:
		for m.Status() != domain.StatusCompleted {
			sc := m.Current()
			require.NoError(t, m.SelectRoot(sc.Roots[0]))
			require.NoError(t, m.SelectResponse(sc.Responses[0]))
			require.NoError(t, m.Advance(""))
		}
	case *domain.Generic:
		require.NoError(t, m.Advance(""))
	default:
		t.Fatalf("unhandled engine %T", e)
	}
	require.Equal(t, domain.StatusCompleted, e.Status())
}

func TestTerminalStatesAreIdempotent(t *testing.T) {
	t.Parallel()
	for _, kind := range domain.Kinds() {
		t.Run(string(kind)+"/completed", func(t *testing.T) {
			t.Parallel()
			e := domain.New(kind, domain.DefaultOptions())
			finishEngine(t, e)
			before := e.Snapshot()

			e.Tick(10 * time.Minute)
			_ = e.Advance("pensamiento equilibrado")
			e.Start()
			e.TogglePause()
			for _, a := range []domain.Action{
				{Type: domain.ActionRepeat}, {Type: domain.ActionReset},
				{Type: domain.ActionToggleScanning}, {Type: domain.ActionAddEntry},
			} {
				_ = domain.Apply(e, a)
			}
			e.Cancel()

			require.Equal(t, before, e.Snapshot())
			out, err := e.Complete()
			require.NoError(t, err)
			require.Equal(t, kind, out.Kind)
		})

		t.Run(string(kind)+"/cancelled", func(t *testing.T) {
			t.Parallel()
			e := domain.New(kind, domain.DefaultOptions())
			e.Start()
			e.Cancel()
			before := e.Snapshot()
			require.True(t, before.Terminal)
			require.Empty(t, before.Responses)

			e.Tick(10 * time.Minute)
			require.NoError(t, e.Advance("pensamiento equilibrado"))
			e.Start()
			require.Equal(t, before, e.Snapshot())

			_, err := e.Complete()
			require.ErrorIs(t, err, domain.ErrCancelled)
		})
	}
}

func TestCancelDiscardsResponses(t *testing.T) {
	t.Parallel()
	r := domain.NewReframe()
	require.NoError(t, r.Advance("otra explicación posible"))
	require.Len(t, r.Snapshot().Responses, 1)
	r.Cancel()
	assert.Equal(t, domain.StatusCancelled, r.Status())
	assert.Empty(t, r.Snapshot().Responses)
}

func TestStartAndPauseTransitions(t *testing.T) {
	t.Parallel()
	e := domain.New(domain.KindMindfulnessTimer, domain.DefaultOptions())
	require.Equal(t, domain.StatusIdle, e.Status())
	e.TogglePause()
	require.Equal(t, domain.StatusIdle, e.Status(), "idle sessions cannot pause")
	e.Start()
	require.Equal(t, domain.StatusRunning, e.Status())
	e.TogglePause()
	require.Equal(t, domain.StatusPaused, e.Status())
	e.Start()
	require.Equal(t, domain.StatusRunning, e.Status())
}

func TestNewDispatchesOnKind(t *testing.T) {
	t.Parallel()
	opts := domain.Options{TotalCycles: 2, TimerMinutes: 10, PickQuote: func(q []string) string { return q[0] }}
	cases := map[domain.Kind]any{
		domain.KindBreathing:        &domain.Breathing{},
		domain.KindSomatic:          &domain.Breathing{},
		domain.KindMindfulnessTimer: &domain.Timer{},
		domain.KindBodyScan:         &domain.BodyScan{},
		domain.KindGratitude:        &domain.Gratitude{},
		domain.KindCognitiveReframe: &domain.Reframe{},
		domain.KindEmotionWheel:     &domain.EmotionWheel{},
		domain.KindGeneric:          &domain.Generic{},
	}
	for kind, want := range cases {
		e := domain.New(kind, opts)
		assert.IsType(t, want, e, string(kind))
		assert.Equal(t, kind, e.Kind())
	}

	timer := domain.New(domain.KindMindfulnessTimer, opts).Snapshot()
	assert.Equal(t, 10, timer.Minutes)
	assert.Equal(t, domain.MindfulnessQuotes[0], timer.Quote)
	assert.Equal(t, 2, domain.New(domain.KindSomatic, opts).Snapshot().TotalCycles)
}

func TestParseKindFallsBackToGeneric(t *testing.T) {
	t.Parallel()
	assert.Equal(t, domain.KindEmotionWheel, domain.ParseKind("emotion_wheel"))
	assert.Equal(t, domain.KindGeneric, domain.ParseKind(""))
	assert.Equal(t, domain.KindGeneric, domain.ParseKind("Rueda de Emociones"))
	assert.Error(t, domain.Kind("nope").Validate())
}

func TestApplyRoutesVariantActions(t *testing.T) {
	t.Parallel()
	timer := domain.New(domain.KindMindfulnessTimer, domain.DefaultOptions())
	require.NoError(t, domain.Apply(timer, domain.Action{Type: domain.ActionSelectDuration, Minutes: 15}))
	require.Equal(t, 15, timer.Snapshot().Minutes)
	require.ErrorIs(t, domain.Apply(timer, domain.Action{Type: domain.ActionSelectRoot, Value: "x"}), domain.ErrUnsupported)

	scan := domain.New(domain.KindBodyScan, domain.DefaultOptions())
	require.NoError(t, domain.Apply(scan, domain.Action{Type: domain.ActionToggleScanning}))
	require.True(t, scan.Snapshot().Scanning)
	require.NoError(t, domain.Apply(scan, domain.Action{Type: domain.ActionRecordSensation, Value: "Frío"}))

	g := domain.New(domain.KindGratitude, domain.DefaultOptions())
	require.NoError(t, domain.Apply(g, domain.Action{Type: domain.ActionAddEntry}))
	require.NoError(t, domain.Apply(g, domain.Action{Type: domain.ActionSetEntry, Index: 3, Value: "sol"}))
	require.Equal(t, "sol", g.Snapshot().Entries[3])
	require.NoError(t, domain.Apply(g, domain.Action{Type: domain.ActionRemoveEntry, Index: 3}))
	require.Len(t, g.Snapshot().Entries, 3)

	r := domain.New(domain.KindCognitiveReframe, domain.DefaultOptions())
	require.NoError(t, domain.Apply(r, domain.Action{Type: domain.ActionRevealHints}))
	require.NotEmpty(t, r.Snapshot().Hints)

	b := domain.New(domain.KindBreathing, domain.DefaultOptions())
	require.NoError(t, domain.Apply(b, domain.Action{Type: domain.ActionStart}))
	require.NoError(t, domain.Apply(b, domain.Action{Type: domain.ActionRepeat}))
	require.Equal(t, domain.StatusIdle, b.Status())
}

func TestProgressIndexStaysInBounds(t *testing.T) {
	t.Parallel()
	for _, kind := range []domain.Kind{domain.KindBodyScan, domain.KindCognitiveReframe, domain.KindEmotionWheel} {
		e := domain.New(kind, domain.DefaultOptions())
		finishEngine(t, e)
		snap := e.Snapshot()
		require.Less(t, snap.ProgressIndex, snap.StepCount, string(kind))
		require.Equal(t, snap.StepCount-1, snap.ProgressIndex, string(kind))
	}
}
