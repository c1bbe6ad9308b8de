package domain

import "time"

type BreathPhase string

const (
	PhaseInhale BreathPhase = "inhale"
	PhaseHold   BreathPhase = "hold"
	PhaseExhale BreathPhase = "exhale"
)

const (
	BreathPhaseSeconds     = 4
	DefaultBreathingCycles = 5
)

// Breathing paces inhale, hold and exhale phases for a fixed number of cycles.
// Once the cycles are done it waits for an explicit Complete.
type Breathing struct {
	lifecycle
	phase       BreathPhase
	count       int
	cycles      int
	totalCycles int
}

func NewBreathing(kind Kind, totalCycles int) *Breathing {
	if totalCycles <= 0 {
		totalCycles = DefaultBreathingCycles
	}
	return &Breathing{
		lifecycle:   newLifecycle(kind),
		phase:       PhaseInhale,
		count:       BreathPhaseSeconds,
		totalCycles: totalCycles,
	}
}

func (b *Breathing) Phase() BreathPhase { return b.phase }
func (b *Breathing) Count() int         { return b.count }
func (b *Breathing) Cycles() int        { return b.cycles }

func (b *Breathing) Tick(elapsed time.Duration) {
	for n := b.seconds(elapsed); n > 0 && b.running(); n-- {
		b.step()
	}
}

func (b *Breathing) step() {
	if b.count > 1 {
		b.count--
		return
	}
	b.count = BreathPhaseSeconds
	switch b.phase {
	case PhaseInhale:
		b.phase = PhaseHold
	case PhaseHold:
		b.phase = PhaseExhale
	case PhaseExhale:
		b.phase = PhaseInhale
		b.cycles++
		if b.cycles >= b.totalCycles {
			b.status = StatusAwaitingCompletion
			b.carry = 0
		}
	}
}

// Advance has no meaning for a paced exercise.
func (b *Breathing) Advance(string) error {
	if b.status.Terminal() {
		return nil
	}
	return ErrUnsupported
}

// Repeat restarts the cycle count without leaving the session.
func (b *Breathing) Repeat() {
	if b.status.Terminal() {
		return
	}
	b.status = StatusIdle
	b.phase = PhaseInhale
	b.count = BreathPhaseSeconds
	b.cycles = 0
	b.carry = 0
}

func (b *Breathing) Snapshot() Snapshot {
	s := b.snapshot()
	s.Phase = string(b.phase)
	s.Remaining = b.count
	s.Cycle = b.cycles
	s.TotalCycles = b.totalCycles
	s.ProgressIndex = b.cycles
	s.StepCount = b.totalCycles
	return s
}
