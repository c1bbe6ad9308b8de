package domain

import (
	"slices"
	"time"

	apperrors "psynara/internal/platform/errors"
)

const DefaultTimerMinutes = 5

// TimerDurations is the menu of selectable countdown lengths in minutes.
var TimerDurations = []int{3, 5, 10, 15, 20}

// Timer counts a mindfulness sit down to zero and completes on its own.
type Timer struct {
	lifecycle
	minutes  int
	timeLeft int
	quote    string
}

func NewTimer(minutes int, quote string) *Timer {
	if !slices.Contains(TimerDurations, minutes) {
		minutes = DefaultTimerMinutes
	}
	return &Timer{
		lifecycle: newLifecycle(KindMindfulnessTimer),
		minutes:   minutes,
		timeLeft:  minutes * 60,
		quote:     quote,
	}
}

func (t *Timer) Minutes() int  { return t.minutes }
func (t *Timer) TimeLeft() int { return t.timeLeft }

// Pristine reports whether the countdown has not moved since the last reset.
func (t *Timer) Pristine() bool {
	return t.status != StatusRunning && t.status != StatusPaused && t.timeLeft == t.minutes*60
}

// SelectDuration changes the length, only before the countdown starts.
func (t *Timer) SelectDuration(minutes int) error {
	if t.status.Terminal() {
		return nil
	}
	if !t.Pristine() {
		return ErrDurationLocked
	}
	if !slices.Contains(TimerDurations, minutes) {
		return apperrors.Invalid("duration must be one of %v minutes", TimerDurations)
	}
	t.minutes = minutes
	t.timeLeft = minutes * 60
	return nil
}

// Reset stops the countdown and restores the full duration.
func (t *Timer) Reset() {
	if t.status.Terminal() {
		return
	}
	t.status = StatusIdle
	t.timeLeft = t.minutes * 60
	t.carry = 0
}

func (t *Timer) Tick(elapsed time.Duration) {
	for n := t.seconds(elapsed); n > 0 && t.running(); n-- {
		if t.timeLeft <= 1 {
			t.timeLeft = 0
			t.finish()
			return
		}
		t.timeLeft--
	}
}

func (t *Timer) Advance(string) error {
	if t.status.Terminal() {
		return nil
	}
	return ErrUnsupported
}

// Percent is the elapsed share of the countdown in [0,100].
func (t *Timer) Percent() float64 {
	total := t.minutes * 60
	return float64(total-t.timeLeft) / float64(total) * 100
}

func (t *Timer) Snapshot() Snapshot {
	s := t.snapshot()
	s.Phase = "countdown"
	s.Remaining = t.timeLeft
	s.Minutes = t.minutes
	s.Percent = t.Percent()
	s.Quote = t.quote
	s.StepCount = 1
	for _, d := range TimerDurations {
		s.Options = append(s.Options, itoa(d))
	}
	return s
}
