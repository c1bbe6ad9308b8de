package domain

type ActionType string

const (
	ActionStart           ActionType = "start"
	ActionTogglePause     ActionType = "toggle_pause"
	ActionAdvance         ActionType = "advance"
	ActionCancel          ActionType = "cancel"
	ActionRepeat          ActionType = "repeat"
	ActionReset           ActionType = "reset"
	ActionSelectDuration  ActionType = "select_duration"
	ActionToggleScanning  ActionType = "toggle_scanning"
	ActionRecordSensation ActionType = "record_sensation"
	ActionSetEntry        ActionType = "set_entry"
	ActionAddEntry        ActionType = "add_entry"
	ActionRemoveEntry     ActionType = "remove_entry"
	ActionRevealHints     ActionType = "reveal_hints"
	ActionSelectRoot      ActionType = "select_root"
	ActionSelectResponse  ActionType = "select_response"
)

// Action is a discrete user input forwarded by the presentation shell.
type Action struct {
	Type    ActionType
	Value   string
	Index   int
	Minutes int
}

// Apply routes a to the matching operation on e. Actions a machine does not
// understand return ErrUnsupported and leave state unchanged.
func Apply(e Engine, a Action) error {
	switch a.Type {
	case ActionStart:
		e.Start()
		return nil
	case ActionTogglePause:
		e.TogglePause()
		return nil
	case ActionAdvance:
		return e.Advance(a.Value)
	case ActionCancel:
		e.Cancel()
		return nil
	}

	switch m := e.(type) {
	case *Breathing:
		if a.Type == ActionRepeat {
			m.Repeat()
			return nil
		}
	case *Timer:
		switch a.Type {
		case ActionReset:
			m.Reset()
			return nil
		case ActionSelectDuration:
			return m.SelectDuration(a.Minutes)
		}
	case *BodyScan:
		switch a.Type {
		case ActionToggleScanning:
			m.SetScanning(!m.Scanning())
			return nil
		case ActionRecordSensation:
			return m.RecordSensation(a.Value)
		}
	case *Gratitude:
		switch a.Type {
		case ActionSetEntry:
			return m.SetEntry(a.Index, a.Value)
		case ActionAddEntry:
			m.AddEntry()
			return nil
		case ActionRemoveEntry:
			return m.RemoveEntry(a.Index)
		}
	case *Reframe:
		if a.Type == ActionRevealHints {
			m.RevealHints()
			return nil
		}
	case *EmotionWheel:
		switch a.Type {
		case ActionSelectRoot:
			return m.SelectRoot(a.Value)
		case ActionSelectResponse:
			return m.SelectResponse(a.Value)
		}
	}
	return ErrUnsupported
}
