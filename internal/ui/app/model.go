package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	assessmentdto "psynara/internal/modules/assessment/dto"
	catalogdto "psynara/internal/modules/catalog/dto"
	profiledto "psynara/internal/modules/profile/dto"
	recdto "psynara/internal/modules/recommendation/dto"
	sessiondto "psynara/internal/modules/session/dto"
	"psynara/internal/ui/components"
	"psynara/internal/ui/theme"
	assessmentview "psynara/internal/ui/views/assessment"
	exercisesview "psynara/internal/ui/views/exercises"
	homeview "psynara/internal/ui/views/home"
	profileview "psynara/internal/ui/views/profile"
	recview "psynara/internal/ui/views/recommendations"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type ProfilePort interface {
	Show(ctx context.Context) (profiledto.ProfileOutput, error)
	Rename(ctx context.Context, fullName string) (profiledto.ProfileOutput, error)
	SetMood(ctx context.Context, mood string) (profiledto.ProfileOutput, error)
	Moods(ctx context.Context) ([]profiledto.MoodOutput, error)
	Home(ctx context.Context) (profiledto.HomeOutput, error)
	Stats(ctx context.Context) (profiledto.StatsOutput, error)
}

type AssessmentPort interface {
	Begin(ctx context.Context) (assessmentdto.StateOutput, error)
	Answer(ctx context.Context, questionID string, value int) (assessmentdto.StateOutput, error)
	Next(ctx context.Context) (assessmentdto.StateOutput, error)
	Previous(ctx context.Context) (assessmentdto.StateOutput, error)
	Submit(ctx context.Context) (assessmentdto.ResultOutput, error)
}

type CatalogPort interface {
	ListGames(ctx context.Context) ([]catalogdto.GameOutput, error)
	ListProgress(ctx context.Context) ([]catalogdto.ProgressOutput, error)
}

type SessionPort interface {
	StartSession(ctx context.Context, gameID string) (sessiondto.SessionOutput, error)
	Tick(ctx context.Context, elapsed time.Duration) (sessiondto.SnapshotOutput, error)
	Apply(ctx context.Context, action sessiondto.ActionInput) (sessiondto.SnapshotOutput, error)
	CancelSession(ctx context.Context) (sessiondto.SnapshotOutput, error)
	FinishSession(ctx context.Context) (sessiondto.FinishOutput, error)
}

type RecommendationPort interface {
	Categories(ctx context.Context) ([]recdto.CategoryOutput, error)
	List(ctx context.Context, category string) ([]recdto.RecommendationOutput, error)
	Show(ctx context.Context, id string) (recdto.RecommendationDetailOutput, error)
}

// Ports groups the handlers the composition root hands to the TUI.
type Ports struct {
	Profile         ProfilePort
	Assessment      AssessmentPort
	Catalog         CatalogPort
	Session         SessionPort
	Recommendations RecommendationPort
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabHome tabID = iota
	tabAssessment
	tabExercises
	tabRecommendations
	tabProfile
	tabCount
)

var tabLabels = [tabCount]string{
	"Home", "Assessment", "Exercises", "Recommendations", "Profile",
}

var tabNames = map[string]tabID{
	"home":            tabHome,
	"assessment":      tabAssessment,
	"exercises":       tabExercises,
	"recommendations": tabRecommendations,
	"profile":         tabProfile,
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Jump    key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Select  key.Binding
	Pause   key.Binding
	Cancel  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Jump:    key.NewBinding(key.WithKeys("f1", "f2", "f3", "f4", "f5"), key.WithHelp("F1-F5", "jump to tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select / start")),
		Pause:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start / pause exercise")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel exercise")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Jump, k.Select},
		{k.Pause, k.Cancel},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay
// and the command palette. Business logic sits behind the ports and each tab
// renders itself.
type Model struct {
	homeView    homeview.Model
	assessView  assessmentview.Model
	exView      exercisesview.Model
	recView     recview.Model
	profileView profileview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(ports Ports) Model {
	return Model{
		homeView:    homeview.New(ports.Profile),
		assessView:  assessmentview.New(ports.Assessment),
		exView:      exercisesview.New(exercisePortBridge{catalog: ports.Catalog, session: ports.Session}),
		recView:     recview.New(ports.Recommendations),
		profileView: profileview.New(profilePortBridge{profile: ports.Profile, catalog: ports.Catalog}),
		activeTab:   tabHome,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.homeView.Init(),
		m.assessView.Init(),
		m.exView.Init(),
		m.recView.Init(),
		m.profileView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all key input while open. Async results still
	// reach the tabs underneath.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	// Results that change stats or the profile fan out to every tab that
	// shows them, whichever tab is active.
	case homeview.LoadedMsg:
		m.homeView, _ = m.homeView.Update(msg)
		return m, nil

	case homeview.MoodSavedMsg:
		m.homeView, _ = m.homeView.Update(msg)
		if msg.Err != nil {
			m.status = "mood: " + msg.Err.Error()
			return m, nil
		}
		m.status = "mood saved: " + msg.Profile.MoodLabel
		return m, m.profileView.Refresh()

	case profileview.LoadedMsg:
		m.profileView, _ = m.profileView.Update(msg)
		return m, nil

	case profileview.RenamedMsg:
		m.profileView, _ = m.profileView.Update(msg)
		if msg.Err != nil {
			m.status = "rename: " + msg.Err.Error()
			return m, nil
		}
		m.status = "name saved: " + msg.Profile.Display
		return m, m.homeView.Refresh()

	case assessmentview.StateMsg:
		var cmd tea.Cmd
		m.assessView, cmd = m.assessView.Update(msg)
		return m, cmd

	case assessmentview.SubmittedMsg:
		m.assessView, _ = m.assessView.Update(msg)
		if msg.Err != nil {
			m.status = "assessment: " + msg.Err.Error()
			return m, nil
		}
		m.status = "assessment saved"
		return m, tea.Batch(m.homeView.Refresh(), m.profileView.Refresh())

	case exercisesview.FinishedMsg:
		var cmd tea.Cmd
		m.exView, cmd = m.exView.Update(msg)
		if msg.Err != nil {
			m.status = "exercise: " + msg.Err.Error()
			return m, cmd
		}
		m.status = "completed: " + msg.Result.GameName
		return m, tea.Batch(cmd, m.homeView.Refresh(), m.profileView.Refresh())

	case exercisesview.GamesLoadedMsg, exercisesview.StartedMsg, exercisesview.SnapshotMsg,
		exercisesview.CancelledMsg:
		var cmd tea.Cmd
		m.exView, cmd = m.exView.Update(msg)
		if started, ok := msg.(exercisesview.StartedMsg); ok && started.Err == nil {
			m.activeTab = tabExercises
			m.status = "started: " + started.Session.GameName
		}
		return m, cmd

	case recview.CategoriesLoadedMsg, recview.ListLoadedMsg, recview.DetailLoadedMsg:
		var cmd tea.Cmd
		m.recView, cmd = m.recView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the sub-view while it owns the keyboard.
		if m.subViewCapturing() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			cmd := m.switchTab((m.activeTab + 1) % tabCount)
			return m, cmd
		case "shift+tab":
			cmd := m.switchTab((m.activeTab + tabCount - 1) % tabCount)
			return m, cmd
		case "f1", "f2", "f3", "f4", "f5":
			cmd := m.switchTab(tabID(msg.String()[1] - '1'))
			return m, cmd
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
	}

	// Everything else goes to the active tab. Spinner and tick messages
	// only matter to the tab that scheduled them.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabHome:
		m.homeView, tabCmd = m.homeView.Update(msg)
	case tabAssessment:
		m.assessView, tabCmd = m.assessView.Update(msg)
	case tabExercises:
		m.exView, tabCmd = m.exView.Update(msg)
	case tabRecommendations:
		m.recView, tabCmd = m.recView.Update(msg)
	case tabProfile:
		m.profileView, tabCmd = m.profileView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.activeView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHome:
		return m.homeView.View()
	case tabAssessment:
		return m.assessView.View()
	case tabExercises:
		return m.exView.View()
	case tabRecommendations:
		return m.recView.View()
	case tabProfile:
		return m.profileView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "psynara  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if name := m.exView.SessionName(); name != "" {
		left = theme.Hot.Render("● "+name) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "go":
		tab, ok := tabNames[strings.ToLower(rest)]
		if !ok {
			m.status = "usage: go <home|assessment|exercises|recommendations|profile>"
			return m, nil
		}
		cmd := m.switchTab(tab)
		return m, cmd

	case "assessment:restart":
		m.activeTab = tabAssessment
		return m, m.assessView.Restart()

	case "assessment:submit":
		cmd := m.assessView.SubmitCmd()
		if cmd == nil {
			m.status = "answer every question before submitting"
			return m, nil
		}
		m.activeTab = tabAssessment
		return m, cmd

	case "exercise:start":
		if rest == "" {
			m.status = "usage: exercise:start <name>"
			return m, nil
		}
		cmd, ok := m.exView.StartByName(rest)
		if !ok {
			m.status = "no exercise named " + rest
			return m, nil
		}
		return m, cmd

	case "exercise:cancel":
		cmd := m.exView.Cancel()
		if cmd == nil {
			m.status = "no exercise in progress"
		}
		return m, cmd

	case "exercise:finish":
		cmd := m.exView.Finish()
		if cmd == nil {
			m.status = "no exercise in progress"
		}
		return m, cmd

	case "recommend:filter":
		cmd := m.recView.SelectCategory(rest)
		if cmd == nil {
			m.status = "unknown category: " + rest
			return m, nil
		}
		m.activeTab = tabRecommendations
		return m, cmd

	case "mood":
		if rest == "" {
			m.status = "usage: mood <excelente|bien|neutral|bajo|mal>"
			return m, nil
		}
		return m, m.homeView.SaveMood(strings.ToLower(rest))

	case "profile:rename":
		if rest == "" {
			m.status = "usage: profile:rename <full name>"
			return m, nil
		}
		return m, m.profileView.RenameCmd(rest)

	case "refresh":
		m.status = "reloading"
		return m, tea.Batch(m.homeView.Refresh(), m.exView.Refresh(), m.profileView.Refresh())

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab is taking free text, in
// which case global key bindings must yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabExercises:
		return m.exView.Capturing()
	case tabRecommendations:
		return m.recView.Filtering()
	case tabProfile:
		return m.profileView.Editing()
	}
	return false
}

// switchTab tears down the exercise runner's ticks when its tab loses focus.
func (m *Model) switchTab(next tabID) tea.Cmd {
	var cmd tea.Cmd
	if m.activeTab == tabExercises && next != tabExercises {
		cmd = m.exView.Leave()
	}
	m.activeTab = next
	return cmd
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.homeView, _ = m.homeView.Update(sz)
	m.assessView, _ = m.assessView.Update(sz)
	m.exView, _ = m.exView.Update(sz)
	m.recView, _ = m.recView.Update(sz)
	m.profileView, _ = m.profileView.Update(sz)
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows or combines the broad ports into the interface a single
// sub-view needs, keeping view packages free of the wider port surface.

type exercisePortBridge struct {
	catalog CatalogPort
	session SessionPort
}

func (b exercisePortBridge) ListGames(ctx context.Context) ([]catalogdto.GameOutput, error) {
	return b.catalog.ListGames(ctx)
}
func (b exercisePortBridge) StartSession(ctx context.Context, gameID string) (sessiondto.SessionOutput, error) {
	return b.session.StartSession(ctx, gameID)
}
func (b exercisePortBridge) Tick(ctx context.Context, elapsed time.Duration) (sessiondto.SnapshotOutput, error) {
	return b.session.Tick(ctx, elapsed)
}
func (b exercisePortBridge) Apply(ctx context.Context, action sessiondto.ActionInput) (sessiondto.SnapshotOutput, error) {
	return b.session.Apply(ctx, action)
}
func (b exercisePortBridge) CancelSession(ctx context.Context) (sessiondto.SnapshotOutput, error) {
	return b.session.CancelSession(ctx)
}
func (b exercisePortBridge) FinishSession(ctx context.Context) (sessiondto.FinishOutput, error) {
	return b.session.FinishSession(ctx)
}

type profilePortBridge struct {
	profile ProfilePort
	catalog CatalogPort
}

func (b profilePortBridge) Show(ctx context.Context) (profiledto.ProfileOutput, error) {
	return b.profile.Show(ctx)
}
func (b profilePortBridge) Rename(ctx context.Context, fullName string) (profiledto.ProfileOutput, error) {
	return b.profile.Rename(ctx, fullName)
}
func (b profilePortBridge) Stats(ctx context.Context) (profiledto.StatsOutput, error) {
	return b.profile.Stats(ctx)
}
func (b profilePortBridge) ListProgress(ctx context.Context) ([]catalogdto.ProgressOutput, error) {
	return b.catalog.ListProgress(ctx)
}
