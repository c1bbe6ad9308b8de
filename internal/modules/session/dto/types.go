package dto

import "time"

type StartInput struct {
	GameID string
	// Replace discards an unfinished session instead of failing.
	Replace bool
}

type ActionInput struct {
	Type    string
	Value   string
	Index   int
	Minutes int
}

type SnapshotOutput struct {
	Kind          string
	Status        string
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

type SessionOutput struct {
	SessionID string
	GameID    string
	GameName  string
	StartedAt time.Time
	Snapshot  SnapshotOutput
}

type FinishOutput struct {
	SessionID   string
	GameID      string
	GameName    string
	Kind        string
	Score       int
	Responses   map[int]string
	ProgressID  string
	CompletedAt time.Time
	DurationSec int
}

// Kind, action and status tags shared with the presentation shell.
const (
	KindBreathing        = "breathing"
	KindSomatic          = "somatic"
	KindBodyScan         = "body_scan"
	KindGratitude        = "gratitude"
	KindCognitiveReframe = "cognitive_reframe"
	KindEmotionWheel     = "emotion_wheel"
	KindMindfulnessTimer = "mindfulness_timer"
	KindGeneric          = "generic"

	ActionStart           = "start"
	ActionTogglePause     = "toggle_pause"
	ActionAdvance         = "advance"
	ActionCancel          = "cancel"
	ActionRepeat          = "repeat"
	ActionReset           = "reset"
	ActionSelectDuration  = "select_duration"
	ActionToggleScanning  = "toggle_scanning"
	ActionRecordSensation = "record_sensation"
	ActionSetEntry        = "set_entry"
	ActionAddEntry        = "add_entry"
	ActionRemoveEntry     = "remove_entry"
	ActionRevealHints     = "reveal_hints"
	ActionSelectRoot      = "select_root"
	ActionSelectResponse  = "select_response"

	StatusIdle               = "idle"
	StatusRunning            = "running"
	StatusPaused             = "paused"
	StatusAwaitingCompletion = "awaiting_completion"
	StatusCompleted          = "completed"
	StatusCancelled          = "cancelled"
)
