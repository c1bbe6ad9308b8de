package home

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	profiledto "psynara/internal/modules/profile/dto"
	"psynara/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Home(ctx context.Context) (profiledto.HomeOutput, error)
	Moods(ctx context.Context) ([]profiledto.MoodOutput, error)
	SetMood(ctx context.Context, mood string) (profiledto.ProfileOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Home  profiledto.HomeOutput
	Moods []profiledto.MoodOutput
	Err   error
}

// MoodSavedMsg bubbles up so the app can refresh the profile tab too.
type MoodSavedMsg struct {
	Profile profiledto.ProfileOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    Port
	home    profiledto.HomeOutput
	moods   []profiledto.MoodOutput
	cursor  int
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.spinner.Tick)
}

// Refresh reloads greeting, stats and tip.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		home, err := m.port.Home(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		moods, err := m.port.Moods(ctx)
		return LoadedMsg{Home: home, Moods: moods, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.home = msg.Home
		m.moods = msg.Moods
		m.cursor = m.moodIndex(msg.Home.Profile.Mood)

	case MoodSavedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.home.Profile = msg.Profile

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if m.loading || len(m.moods) == 0 {
			return m, nil
		}
		switch msg.String() {
		case "left", "h":
			m.cursor = (m.cursor + len(m.moods) - 1) % len(m.moods)
		case "right", "l":
			m.cursor = (m.cursor + 1) % len(m.moods)
		case "enter":
			return m, m.SaveMood(m.moods[m.cursor].ID)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading…")
	}

	var sb strings.Builder
	p := m.home.Profile
	sb.WriteString(theme.Title.Render("¡Hola, "+p.Display+"!") + "\n")
	if p.MoodLabel != "" {
		sb.WriteString(theme.Muted.Render("Hoy te sientes: ") + p.MoodEmoji + " " + p.MoodLabel + "\n")
	}
	sb.WriteString("\n")

	s := m.home.Stats
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Ejercicios", s.CompletedGames),
		statCard("Respuestas", s.AnsweredQuestions),
		statCard("Días activo", s.DaysActive),
	)
	sb.WriteString(stats + "\n\n")

	sb.WriteString(theme.Title.Render("¿Cómo te sientes hoy?") + "\n")
	for i, mood := range m.moods {
		label := mood.Emoji + " " + mood.Label
		switch {
		case i == m.cursor:
			sb.WriteString(theme.Selected.Render("["+label+"]") + " ")
		case mood.ID == p.Mood:
			sb.WriteString(theme.Calm.Render(" "+label+" ") + " ")
		default:
			sb.WriteString(theme.Muted.Render(" "+label+" ") + " ")
		}
	}
	sb.WriteString("\n\n")

	if m.home.Tip != "" {
		sb.WriteString(theme.Hot.Render("Consejo del día") + "\n")
		sb.WriteString(lipgloss.NewStyle().Width(max(m.width-4, 20)).Render(m.home.Tip) + "\n\n")
	}
	if m.err != nil {
		sb.WriteString(theme.Error.Render("Error: "+m.err.Error()) + "\n")
	}
	sb.WriteString(theme.Muted.Render("←/→: choose mood  enter: save"))
	return sb.String()
}

// SaveMood persists mood; the result arrives as MoodSavedMsg.
func (m Model) SaveMood(mood string) tea.Cmd {
	return func() tea.Msg {
		p, err := m.port.SetMood(context.Background(), mood)
		return MoodSavedMsg{Profile: p, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) moodIndex(id string) int {
	for i, mood := range m.moods {
		if mood.ID == id {
			return i
		}
	}
	return 0
}

func statCard(label string, n int) string {
	return theme.Pane.Width(18).Align(lipgloss.Center).Render(
		theme.Hot.Render(fmt.Sprintf("%d", n)) + "\n" + theme.Muted.Render(label),
	)
}
