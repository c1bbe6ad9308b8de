package domain

import "fmt"

// Kind selects which exercise machine drives a session.
type Kind string

const (
	KindBreathing        Kind = "breathing"
	KindSomatic          Kind = "somatic"
	KindBodyScan         Kind = "body_scan"
	KindGratitude        Kind = "gratitude"
	KindCognitiveReframe Kind = "cognitive_reframe"
	KindEmotionWheel     Kind = "emotion_wheel"
	KindMindfulnessTimer Kind = "mindfulness_timer"
	KindGeneric          Kind = "generic"
)

var kinds = []Kind{
	KindBreathing, KindSomatic, KindBodyScan, KindGratitude,
	KindCognitiveReframe, KindEmotionWheel, KindMindfulnessTimer, KindGeneric,
}

// Kinds returns every supported kind.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

func (k Kind) Validate() error {
	for _, known := range kinds {
		if k == known {
			return nil
		}
	}
	return fmt.Errorf("unsupported exercise kind %q", string(k))
}

// ParseKind maps a stored tag to a Kind. Unknown or empty tags fall back to Generic.
func ParseKind(s string) Kind {
	k := Kind(s)
	if k.Validate() != nil {
		return KindGeneric
	}
	return k
}

type Status string

const (
	StatusIdle               Status = "idle"
	StatusRunning            Status = "running"
	StatusPaused             Status = "paused"
	StatusAwaitingCompletion Status = "awaiting_completion"
	StatusCompleted          Status = "completed"
	StatusCancelled          Status = "cancelled"
)

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
