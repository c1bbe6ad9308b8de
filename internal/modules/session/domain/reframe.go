package domain

import (
	"slices"
	"strings"

	"github.com/rivo/uniseg"

	apperrors "psynara/internal/platform/errors"
)

const MinReframeLength = 10

// Reframe asks for a balanced rewrite of each scenario's negative thought.
type Reframe struct {
	lifecycle
	noTicks
	index        int
	hintsVisible bool
}

func NewReframe() *Reframe {
	return &Reframe{lifecycle: newLifecycle(KindCognitiveReframe)}
}

func (r *Reframe) Index() int               { return r.index }
func (r *Reframe) Current() ReframeScenario { return ReframeScenarios[r.index] }
func (r *Reframe) HintsVisible() bool       { return r.hintsVisible }

// RevealHints shows the hints for the current scenario. Progression is unaffected.
func (r *Reframe) RevealHints() {
	if r.status.Terminal() {
		return
	}
	r.hintsVisible = true
}

// Advance records text as the reframe for the current scenario.
func (r *Reframe) Advance(text string) error {
	if r.status.Terminal() {
		return nil
	}
	text = strings.TrimSpace(text)
	if uniseg.GraphemeClusterCount(text) < MinReframeLength {
		return apperrors.Invalid("reframed thought needs at least %d characters", MinReframeLength)
	}
	r.touch()
	r.responses[r.index] = text
	r.hintsVisible = false
	if r.index == len(ReframeScenarios)-1 {
		r.finish()
		return nil
	}
	r.index++
	return nil
}

func (r *Reframe) Snapshot() Snapshot {
	sc := ReframeScenarios[r.index]
	s := r.snapshot()
	s.Phase = "reframe"
	s.ProgressIndex = r.index
	s.StepCount = len(ReframeScenarios)
	s.Prompt = sc.Situation
	s.Detail = sc.NegativeThought
	s.Tags = slices.Clone(sc.Distortions)
	if r.hintsVisible {
		s.Hints = slices.Clone(sc.Hints)
	}
	return s
}
