package exercises

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "psynara/internal/modules/catalog/dto"
	sessiondto "psynara/internal/modules/session/dto"
	"psynara/internal/ui/theme"
)

// TickInterval is how often a running session is advanced.
const TickInterval = time.Second

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	ListGames(ctx context.Context) ([]catalogdto.GameOutput, error)
	StartSession(ctx context.Context, gameID string) (sessiondto.SessionOutput, error)
	Tick(ctx context.Context, elapsed time.Duration) (sessiondto.SnapshotOutput, error)
	Apply(ctx context.Context, action sessiondto.ActionInput) (sessiondto.SnapshotOutput, error)
	CancelSession(ctx context.Context) (sessiondto.SnapshotOutput, error)
	FinishSession(ctx context.Context) (sessiondto.FinishOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type GamesLoadedMsg struct {
	Games []catalogdto.GameOutput
	Err   error
}

type StartedMsg struct {
	Session sessiondto.SessionOutput
	Err     error
}

// SnapshotMsg carries engine state back from a tick or an action. Gen is the
// generation the request was issued under; stale generations are dropped.
type SnapshotMsg struct {
	Gen      int
	Snapshot sessiondto.SnapshotOutput
	FromTick bool
	Err      error
}

type CancelledMsg struct {
	Err error
}

// FinishedMsg bubbles up so the app can refresh stats once the completion is stored.
type FinishedMsg struct {
	Result sessiondto.FinishOutput
	Err    error
}

type tickMsg struct{ gen int }

// ─── list item ───────────────────────────────────────────────────────────────

type gameItem struct {
	game catalogdto.GameOutput
}

func (i gameItem) Title() string {
	if i.game.Completed {
		return "✓ " + i.game.Name
	}
	return i.game.Name
}
func (i gameItem) Description() string {
	return i.game.DifficultyLabel + " · " + i.game.Category
}
func (i gameItem) FilterValue() string { return i.game.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type mode int

const (
	modeBrowse mode = iota
	modeRun
	modeDone
)

type Model struct {
	port    Port
	list    list.Model
	mode    mode
	session sessiondto.SessionOutput
	snap    sessiondto.SnapshotOutput
	result  sessiondto.FinishOutput

	// gen tags scheduled ticks; bumping it orphans every tick in flight.
	gen      int
	ticking  bool
	interval time.Duration

	input   textinput.Model
	editing bool
	cursor  int
	column  int

	err    error
	width  int
	height int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Ejercicios"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.CharLimit = 500

	return Model{port: port, list: l, input: ti, interval: TickInterval}
}

func (m Model) Init() tea.Cmd { return m.Refresh() }

// Refresh reloads the catalog with per-user completion flags.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		games, err := m.port.ListGames(context.Background())
		return GamesLoadedMsg{Games: games, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width*4/10, m.height)
		m.input.Width = max(m.width-12, 10)
		return m, nil

	case GamesLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		items := make([]list.Item, len(msg.Games))
		for i, g := range msg.Games {
			items[i] = gameItem{game: g}
		}
		return m, m.list.SetItems(items)

	case StartedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.bump()
		m.mode = modeRun
		m.session = msg.Session
		m.snap = msg.Session.Snapshot
		m.resetCursor()
		m.err = nil
		return m, nil

	case tickMsg:
		if msg.gen != m.gen || m.mode != modeRun {
			return m, nil
		}
		return m, m.tickCmd(msg.gen)

	case SnapshotMsg:
		return m.handleSnapshot(msg)

	case CancelledMsg:
		m.bump()
		m.mode = modeBrowse
		m.editing = false
		m.input.Blur()
		m.err = msg.Err
		return m, nil

	case FinishedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.mode = modeDone
		m.result = msg.Result
		m.err = nil
		return m, m.Refresh()

	case tea.KeyMsg:
		switch m.mode {
		case modeRun:
			return m.handleRunKey(msg)
		case modeDone:
			switch msg.String() {
			case "enter", "esc":
				m.mode = modeBrowse
			}
			return m, nil
		}
		if !m.Filtering() && msg.String() == "enter" {
			if item, ok := m.list.SelectedItem().(gameItem); ok {
				return m, m.startCmd(item.game.ID)
			}
		}
	}

	if m.mode == modeBrowse {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	switch m.mode {
	case modeRun:
		return m.renderRun()
	case modeDone:
		return m.renderDone()
	}
	listW := m.width * 4 / 10
	detailW := m.width - listW
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Padding(0, 1).
		Width(max(detailW-2, 1)).
		Height(max(m.height-2, 1)).
		Render(m.renderGameDetail(max(detailW-6, 10)))
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Capturing reports whether the view needs every key, global bindings included.
func (m Model) Capturing() bool {
	return m.editing || (m.mode == modeBrowse && m.Filtering())
}

// Running reports whether a session is on screen.
func (m Model) Running() bool { return m.mode == modeRun }

// SessionName is the game name of the session on screen, if any.
func (m Model) SessionName() string {
	if m.mode != modeRun {
		return ""
	}
	return m.session.GameName
}

// StartByName starts the catalog entry whose name matches query.
func (m Model) StartByName(query string) (tea.Cmd, bool) {
	query = strings.TrimSpace(query)
	for _, it := range m.list.Items() {
		g := it.(gameItem).game
		if strings.EqualFold(g.Name, query) || g.ID == query {
			return m.startCmd(g.ID), true
		}
	}
	return nil, false
}

// Cancel stops the session on screen and drops any pending tick.
func (m *Model) Cancel() tea.Cmd {
	if m.mode != modeRun {
		return nil
	}
	m.bump()
	port := m.port
	return func() tea.Msg {
		_, err := port.CancelSession(context.Background())
		return CancelledMsg{Err: err}
	}
}

// Finish stores a session that is completed or awaiting completion.
func (m *Model) Finish() tea.Cmd {
	if m.mode != modeRun {
		return nil
	}
	m.bump()
	return m.finishCmd()
}

// Leave is called when the tab loses focus. Pending ticks are dropped and a
// running session is paused so no time passes unobserved.
func (m *Model) Leave() tea.Cmd {
	m.bump()
	m.editing = false
	m.input.Blur()
	if m.mode == modeRun && m.snap.Running {
		return m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionTogglePause})
	}
	return nil
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) bump() {
	m.gen++
	m.ticking = false
}

func (m *Model) resetCursor() {
	m.cursor = 0
	m.column = 0
	m.editing = false
	m.input.Blur()
}

func (m Model) handleSnapshot(msg SnapshotMsg) (Model, tea.Cmd) {
	if msg.Gen != m.gen || m.mode != modeRun {
		return m, nil
	}
	m.err = msg.Err
	if msg.Snapshot.Kind == "" {
		return m, nil
	}
	prevIndex := m.snap.ProgressIndex
	m.snap = msg.Snapshot
	if m.snap.ProgressIndex != prevIndex && m.snap.Kind != sessiondto.KindGratitude {
		m.cursor = 0
		m.column = 0
	}
	if m.cursor >= len(m.snap.Entries) && m.snap.Kind == sessiondto.KindGratitude {
		m.cursor = max(len(m.snap.Entries)-1, 0)
	}

	switch {
	case m.snap.Status == sessiondto.StatusCompleted:
		m.bump()
		return m, m.finishCmd()
	case m.snap.Status == sessiondto.StatusCancelled:
		m.bump()
		m.mode = modeBrowse
		return m, nil
	case !m.snap.Running:
		m.bump()
		return m, nil
	case msg.FromTick || !m.ticking:
		m.ticking = true
		return m, m.scheduleTick()
	}
	return m, nil
}

func (m Model) handleRunKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := msg.String()
	if m.editing {
		switch k {
		case "esc":
			m.editing = false
			m.input.Blur()
			return m, nil
		case "enter":
			m.editing = false
			m.input.Blur()
			return m, m.commitInput(m.input.Value())
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	s := m.snap
	switch k {
	case "esc", "x":
		cmd := m.Cancel()
		return m, cmd
	case " ":
		if s.Status == sessiondto.StatusIdle {
			return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionStart})
		}
		return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionTogglePause})
	}
	if s.Status == sessiondto.StatusAwaitingCompletion || s.Status == sessiondto.StatusCompleted {
		switch k {
		case "enter", "c":
			cmd := m.Finish()
			return m, cmd
		case "r":
			if s.Kind == sessiondto.KindBreathing || s.Kind == sessiondto.KindSomatic {
				return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionRepeat})
			}
		}
		return m, nil
	}

	switch s.Kind {
	case sessiondto.KindBreathing, sessiondto.KindSomatic:
		if k == "r" {
			return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionRepeat})
		}

	case sessiondto.KindMindfulnessTimer:
		switch k {
		case "r":
			return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionReset})
		case "left", "right":
			return m, m.selectDuration(k == "right")
		}

	case sessiondto.KindBodyScan:
		switch k {
		case "s":
			return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionToggleScanning})
		case "up", "k":
			m.cursor = wrap(m.cursor-1, len(s.Options))
		case "down", "j":
			m.cursor = wrap(m.cursor+1, len(s.Options))
		case "enter":
			if m.cursor < len(s.Options) {
				return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionRecordSensation, Value: s.Options[m.cursor]})
			}
		case "n", "right":
			return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionAdvance})
		}

	case sessiondto.KindGratitude:
		switch k {
		case "up", "k":
			m.cursor = wrap(m.cursor-1, len(s.Entries))
		case "down", "j":
			m.cursor = wrap(m.cursor+1, len(s.Entries))
		case "enter", "e":
			current := ""
			if m.cursor < len(s.Entries) {
				current = s.Entries[m.cursor]
			}
			cmd := m.edit("Hoy agradezco…", current)
			return m, cmd
		case "a":
			m.cursor = len(s.Entries)
			return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionAddEntry})
		case "d":
			return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionRemoveEntry, Index: m.cursor})
		case "s":
			return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionAdvance})
		}

	case sessiondto.KindCognitiveReframe:
		switch k {
		case "h":
			return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionRevealHints})
		case "enter", "e":
			cmd := m.edit("Un pensamiento más equilibrado…", "")
			return m, cmd
		}

	case sessiondto.KindEmotionWheel:
		options := s.Options
		if m.column == 1 {
			options = s.SecondaryOptions
		}
		switch k {
		case "left", "right":
			m.column = 1 - m.column
			m.cursor = 0
		case "up", "k":
			m.cursor = wrap(m.cursor-1, len(options))
		case "down", "j":
			m.cursor = wrap(m.cursor+1, len(options))
		case "enter":
			if m.cursor < len(options) {
				action := sessiondto.ActionSelectRoot
				if m.column == 1 {
					action = sessiondto.ActionSelectResponse
				}
				return m, m.applyCmd(sessiondto.ActionInput{Type: action, Value: options[m.cursor]})
			}
		case "n":
			return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionAdvance})
		}

	default:
		if k == "enter" || k == "n" {
			return m, m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionAdvance})
		}
	}
	return m, nil
}

func (m *Model) edit(placeholder, value string) tea.Cmd {
	m.editing = true
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m Model) commitInput(text string) tea.Cmd {
	switch m.snap.Kind {
	case sessiondto.KindGratitude:
		return m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionSetEntry, Index: m.cursor, Value: text})
	case sessiondto.KindCognitiveReframe:
		return m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionAdvance, Value: text})
	}
	return nil
}

func (m Model) selectDuration(up bool) tea.Cmd {
	opts := m.snap.Options
	if len(opts) == 0 {
		return nil
	}
	idx := 0
	for i, o := range opts {
		if o == strconv.Itoa(m.snap.Minutes) {
			idx = i
		}
	}
	if up {
		idx = wrap(idx+1, len(opts))
	} else {
		idx = wrap(idx-1, len(opts))
	}
	minutes, err := strconv.Atoi(opts[idx])
	if err != nil {
		return nil
	}
	return m.applyCmd(sessiondto.ActionInput{Type: sessiondto.ActionSelectDuration, Minutes: minutes})
}

func (m Model) scheduleTick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) tickCmd(gen int) tea.Cmd {
	elapsed := m.interval
	return func() tea.Msg {
		snap, err := m.port.Tick(context.Background(), elapsed)
		return SnapshotMsg{Gen: gen, Snapshot: snap, FromTick: true, Err: err}
	}
}

func (m Model) applyCmd(action sessiondto.ActionInput) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		snap, err := m.port.Apply(context.Background(), action)
		return SnapshotMsg{Gen: gen, Snapshot: snap, Err: err}
	}
}

func (m Model) startCmd(gameID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.StartSession(context.Background(), gameID)
		return StartedMsg{Session: out, Err: err}
	}
}

func (m Model) finishCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.FinishSession(context.Background())
		if err != nil {
			return FinishedMsg{Err: fmt.Errorf("%w (enter to retry)", err)}
		}
		return FinishedMsg{Result: out}
	}
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i%n + n) % n
}
