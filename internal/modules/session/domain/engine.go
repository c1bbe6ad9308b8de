package domain

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"time"

	apperrors "psynara/internal/platform/errors"
)

const DefaultScore = 100

var (
	ErrNotFinished    = errors.New("session not finished")
	ErrCancelled      = errors.New("session cancelled")
	ErrDurationLocked = fmt.Errorf("%w: duration is locked once the countdown has started", apperrors.ErrInvalidInput)
	ErrUnsupported    = fmt.Errorf("%w: action not supported by this exercise", apperrors.ErrInvalidInput)
)

// Engine is the lifecycle contract shared by every exercise machine.
type Engine interface {
	Kind() Kind
	Status() Status
	Start()
	TogglePause()
	Tick(elapsed time.Duration)
	Advance(choice string) error
	Cancel()
	Complete() (Outcome, error)
	Snapshot() Snapshot
}

// Outcome is the completion payload handed to the record store.
type Outcome struct {
	Kind      Kind
	Score     int
	Responses map[int]string
}

// Snapshot is a read-only copy of engine state for rendering.
type Snapshot struct {
	Kind          Kind
	Status        Status
	Phase         string
	ProgressIndex int
	StepCount     int
	Remaining     int
	Cycle         int
	TotalCycles   int
	Responses     map[int]string
	Running       bool
	Terminal      bool

	Prompt            string
	Detail            string
	Tags              []string
	Hints             []string
	Options           []string
	SecondaryOptions  []string
	Selected          string
	SecondarySelected string
	Entries           []string
	Minutes           int
	Percent           float64
	Quote             string
	Scanning          bool
}

// Options tunes engine construction.
type Options struct {
	TotalCycles  int
	TimerMinutes int
	ScanInterval time.Duration
	PickQuote    func([]string) string
}

func DefaultOptions() Options {
	return Options{
		TotalCycles:  DefaultBreathingCycles,
		TimerMinutes: DefaultTimerMinutes,
		ScanInterval: DefaultScanInterval,
	}
}

func randomQuote(quotes []string) string {
	if len(quotes) == 0 {
		return ""
	}
	return quotes[rand.IntN(len(quotes))]
}

// New builds a fresh engine for kind.
func New(kind Kind, opts Options) Engine {
	defaults := DefaultOptions()
	if opts.TotalCycles <= 0 {
		opts.TotalCycles = defaults.TotalCycles
	}
	if opts.TimerMinutes <= 0 {
		opts.TimerMinutes = defaults.TimerMinutes
	}
	if opts.ScanInterval <= 0 {
		opts.ScanInterval = defaults.ScanInterval
	}
	if opts.PickQuote == nil {
		opts.PickQuote = randomQuote
	}

	switch kind {
	case KindBreathing, KindSomatic:
		return NewBreathing(kind, opts.TotalCycles)
	case KindMindfulnessTimer:
		return NewTimer(opts.TimerMinutes, opts.PickQuote(MindfulnessQuotes))
	case KindBodyScan:
		return NewBodyScan(opts.ScanInterval)
	case KindGratitude:
		return NewGratitude()
	case KindCognitiveReframe:
		return NewReframe()
	case KindEmotionWheel:
		return NewEmotionWheel()
	default:
		return NewGeneric()
	}
}

var (
	_ Engine = (*Breathing)(nil)
	_ Engine = (*Timer)(nil)
	_ Engine = (*BodyScan)(nil)
	_ Engine = (*Gratitude)(nil)
	_ Engine = (*Reframe)(nil)
	_ Engine = (*EmotionWheel)(nil)
	_ Engine = (*Generic)(nil)
)

// lifecycle holds the state transitions common to all machines.
type lifecycle struct {
	kind      Kind
	status    Status
	responses map[int]string
	carry     time.Duration
}

func newLifecycle(kind Kind) lifecycle {
	return lifecycle{kind: kind, status: StatusIdle, responses: map[int]string{}}
}

func (l *lifecycle) Kind() Kind     { return l.kind }
func (l *lifecycle) Status() Status { return l.status }

func (l *lifecycle) running() bool { return l.status == StatusRunning }

// Start moves Idle or Paused to Running.
func (l *lifecycle) Start() {
	if l.status == StatusIdle || l.status == StatusPaused {
		l.status = StatusRunning
	}
}

func (l *lifecycle) TogglePause() {
	switch l.status {
	case StatusRunning:
		l.status = StatusPaused
		l.carry = 0
	case StatusPaused:
		l.status = StatusRunning
	}
}

func (l *lifecycle) Cancel() {
	if l.status.Terminal() {
		return
	}
	l.status = StatusCancelled
	l.responses = nil
	l.carry = 0
}

func (l *lifecycle) Complete() (Outcome, error) {
	switch l.status {
	case StatusAwaitingCompletion, StatusCompleted:
		l.status = StatusCompleted
		return Outcome{Kind: l.kind, Score: DefaultScore, Responses: maps.Clone(l.responses)}, nil
	case StatusCancelled:
		return Outcome{}, ErrCancelled
	default:
		return Outcome{}, ErrNotFinished
	}
}

// touch promotes an idle stepper to running on its first input.
func (l *lifecycle) touch() {
	if l.status == StatusIdle {
		l.status = StatusRunning
	}
}

func (l *lifecycle) finish() {
	l.status = StatusCompleted
	l.carry = 0
}

// seconds folds elapsed into the carry and returns the whole seconds to apply.
func (l *lifecycle) seconds(elapsed time.Duration) int {
	if !l.running() || elapsed <= 0 {
		return 0
	}
	l.carry += elapsed
	n := int(l.carry / time.Second)
	l.carry -= time.Duration(n) * time.Second
	return n
}

func (l *lifecycle) snapshot() Snapshot {
	return Snapshot{
		Kind:      l.kind,
		Status:    l.status,
		Responses: maps.Clone(l.responses),
		Running:   l.running(),
		Terminal:  l.status.Terminal(),
	}
}
