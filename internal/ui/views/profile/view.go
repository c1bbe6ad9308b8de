package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	catalogdto "psynara/internal/modules/catalog/dto"
	profiledto "psynara/internal/modules/profile/dto"
	"psynara/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Show(ctx context.Context) (profiledto.ProfileOutput, error)
	Rename(ctx context.Context, fullName string) (profiledto.ProfileOutput, error)
	Stats(ctx context.Context) (profiledto.StatsOutput, error)
	ListProgress(ctx context.Context) ([]catalogdto.ProgressOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Profile  profiledto.ProfileOutput
	Stats    profiledto.StatsOutput
	Progress []catalogdto.ProgressOutput
	Err      error
}

// RenamedMsg bubbles up so the app can refresh the greeting on Home.
type RenamedMsg struct {
	Profile profiledto.ProfileOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

const historyRows = 8

type Model struct {
	port     Port
	profile  profiledto.ProfileOutput
	stats    profiledto.StatsOutput
	progress []catalogdto.ProgressOutput
	input    textinput.Model
	editing  bool
	err      error
	width    int
	height   int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.Placeholder = "Nombre completo"
	ti.CharLimit = 80
	return Model{port: port, input: ti}
}

func (m Model) Init() tea.Cmd { return m.Refresh() }

// Refresh reloads the profile, counters and completion history.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		p, err := m.port.Show(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		stats, err := m.port.Stats(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		progress, err := m.port.ListProgress(ctx)
		return LoadedMsg{Profile: p, Stats: stats, Progress: progress, Err: err}
	}
}

// RenameCmd stores a new full name; the result arrives as RenamedMsg.
func (m Model) RenameCmd(name string) tea.Cmd {
	return func() tea.Msg {
		p, err := m.port.Rename(context.Background(), name)
		return RenamedMsg{Profile: p, Err: err}
	}
}

// Editing reports whether the rename input owns the keyboard.
func (m Model) Editing() bool { return m.editing }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = min(max(m.width-20, 10), 60)

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.profile = msg.Profile
			m.stats = msg.Stats
			m.progress = msg.Progress
		}

	case RenamedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.profile = msg.Profile
		}

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "esc":
				m.editing = false
				m.input.Blur()
				return m, nil
			case "enter":
				m.editing = false
				m.input.Blur()
				return m, m.RenameCmd(m.input.Value())
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "e":
			m.editing = true
			m.input.SetValue(m.profile.FullName)
			m.input.CursorEnd()
			return m, m.input.Focus()
		case "r":
			return m, m.Refresh()
		}
	}
	return m, nil
}

func (m Model) View() string {
	p := m.profile
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Perfil") + "\n\n")

	field := func(label, value string) {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-14s", label)) + value + "\n")
	}
	if m.editing {
		field("Nombre:", m.input.View())
	} else {
		field("Nombre:", p.Display)
	}
	if p.MoodLabel != "" {
		field("Ánimo:", p.MoodEmoji+" "+p.MoodLabel)
	}
	if !p.CreatedAt.IsZero() {
		field("Miembro desde:", p.CreatedAt.Local().Format("2006-01-02"))
	}
	field("Días activo:", fmt.Sprintf("%d", m.stats.DaysActive))
	field("Ejercicios:", fmt.Sprintf("%d", m.stats.CompletedGames))
	field("Respuestas:", fmt.Sprintf("%d", m.stats.AnsweredQuestions))

	sb.WriteString("\n" + theme.Title.Render("Historial") + "\n")
	if len(m.progress) == 0 {
		sb.WriteString(theme.Muted.Render("Aún no completas ningún ejercicio") + "\n")
	}
	start := max(len(m.progress)-historyRows, 0)
	for i := len(m.progress) - 1; i >= start; i-- {
		pr := m.progress[i]
		sb.WriteString(fmt.Sprintf("%s  %s  %s\n",
			theme.Muted.Render(pr.CompletedAt.Local().Format("2006-01-02 15:04")),
			pr.GameName,
			theme.Calm.Render(fmt.Sprintf("%d pts", pr.Score)),
		))
	}
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(theme.Error.Render("Error: "+m.err.Error()) + "\n")
	}
	if m.editing {
		sb.WriteString(theme.Muted.Render("enter: save  esc: cancel"))
	} else {
		sb.WriteString(theme.Muted.Render("e: edit name  r: reload"))
	}
	return sb.String()
}
