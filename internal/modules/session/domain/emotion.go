package domain

import (
	"slices"

	apperrors "psynara/internal/platform/errors"
)

// EmotionWheel pairs a root cause with a healthy response for each emotion.
type EmotionWheel struct {
	lifecycle
	noTicks
	index    int
	root     string
	response string
}

func NewEmotionWheel() *EmotionWheel {
	return &EmotionWheel{lifecycle: newLifecycle(KindEmotionWheel)}
}

func (e *EmotionWheel) Index() int               { return e.index }
func (e *EmotionWheel) Current() EmotionScenario { return EmotionScenarios[e.index] }
func (e *EmotionWheel) Root() string             { return e.root }
func (e *EmotionWheel) Response() string         { return e.response }

// SelectRoot toggles the root cause; picking the selected value again clears it.
func (e *EmotionWheel) SelectRoot(v string) error {
	if e.status.Terminal() {
		return nil
	}
	if !slices.Contains(e.Current().Roots, v) {
		return apperrors.Invalid("unknown root cause %q", v)
	}
	e.touch()
	e.root = toggle(e.root, v)
	return nil
}

func (e *EmotionWheel) SelectResponse(v string) error {
	if e.status.Terminal() {
		return nil
	}
	if !slices.Contains(e.Current().Responses, v) {
		return apperrors.Invalid("unknown response %q", v)
	}
	e.touch()
	e.response = toggle(e.response, v)
	return nil
}

func toggle(current, v string) string {
	if current == v {
		return ""
	}
	return v
}

func (e *EmotionWheel) Advance(string) error {
	if e.status.Terminal() {
		return nil
	}
	if e.root == "" || e.response == "" {
		return apperrors.Invalid("select a root cause and a healthy response")
	}
	e.responses[e.index] = e.root + " | " + e.response
	e.root, e.response = "", ""
	if e.index == len(EmotionScenarios)-1 {
		e.finish()
		return nil
	}
	e.index++
	return nil
}

func (e *EmotionWheel) Snapshot() Snapshot {
	sc := EmotionScenarios[e.index]
	s := e.snapshot()
	s.Phase = "explore"
	s.ProgressIndex = e.index
	s.StepCount = len(EmotionScenarios)
	s.Prompt = sc.Emotion
	s.Options = slices.Clone(sc.Roots)
	s.SecondaryOptions = slices.Clone(sc.Responses)
	s.Selected = e.root
	s.SecondarySelected = e.response
	return s
}
