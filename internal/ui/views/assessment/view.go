package assessment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	assessmentdto "psynara/internal/modules/assessment/dto"
	"psynara/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Begin(ctx context.Context) (assessmentdto.StateOutput, error)
	Answer(ctx context.Context, questionID string, value int) (assessmentdto.StateOutput, error)
	Next(ctx context.Context) (assessmentdto.StateOutput, error)
	Previous(ctx context.Context) (assessmentdto.StateOutput, error)
	Submit(ctx context.Context) (assessmentdto.ResultOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StateMsg struct {
	State assessmentdto.StateOutput
	Err   error
}

// SubmittedMsg bubbles up so the app can refresh stats on success.
type SubmittedMsg struct {
	Result assessmentdto.ResultOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    Port
	state   assessmentdto.StateOutput
	result  *assessmentdto.ResultOutput
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
	return tea.Batch(m.Restart(), m.spinner.Tick)
}

// Restart discards any answers and shows the first question again.
func (m Model) Restart() tea.Cmd {
	return m.stateCmd(m.port.Begin)
}

// SubmitCmd submits the questionnaire when every question has an answer.
func (m Model) SubmitCmd() tea.Cmd {
	if m.result != nil || !m.state.CanSubmit {
		return nil
	}
	return func() tea.Msg {
		res, err := m.port.Submit(context.Background())
		return SubmittedMsg{Result: res, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StateMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.state = msg.State
			m.result = nil
		}

	case SubmittedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			res := msg.Result
			m.result = &res
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(k string) tea.Cmd {
	if m.result != nil {
		if k == "r" {
			return m.Restart()
		}
		return nil
	}
	switch k {
	case "right", "n":
		return m.stateCmd(m.port.Next)
	case "left", "p":
		return m.stateCmd(m.port.Previous)
	case "enter":
		if m.state.CanSubmit {
			return m.SubmitCmd()
		}
		return m.stateCmd(m.port.Next)
	case "r":
		return m.Restart()
	}
	if v, err := strconv.Atoi(k); err == nil {
		q := m.state.Question
		if v >= q.Min && v <= q.Max {
			return m.stateCmd(func(ctx context.Context) (assessmentdto.StateOutput, error) {
				return m.port.Answer(ctx, q.ID, v)
			})
		}
	}
	return nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading questions…")
	}
	if m.result != nil {
		return m.renderResult()
	}
	return m.renderQuestion()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderQuestion() string {
	st := m.state
	q := st.Question
	if st.Total == 0 {
		return theme.Muted.Render("No questions available. Run `psynara seed` first.")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Evaluación") + "  " +
		theme.Muted.Render(fmt.Sprintf("Pregunta %d de %d · %s", st.Index+1, st.Total, q.Category)) + "\n")
	sb.WriteString(theme.Bar(float64(st.Answered)/float64(st.Total)*100, max(m.width/2, 10)) + "\n\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Width(max(m.width-4, 20)).Render(q.Prompt) + "\n\n")

	for v := q.Min; v <= q.Max; v++ {
		label := strconv.Itoa(v)
		if i := v - q.Min; i < len(q.Labels) {
			label += "  " + q.Labels[i]
		}
		if st.HasAnswer && st.Answer == v {
			sb.WriteString(theme.Selected.Render("● "+label) + "\n")
		} else {
			sb.WriteString(theme.Muted.Render("○ "+label) + "\n")
		}
	}
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(theme.Error.Render("Error: "+m.err.Error()) + "\n")
	}
	hints := []string{fmt.Sprintf("%d-%d: answer", q.Min, q.Max)}
	if st.CanPrevious {
		hints = append(hints, "←: previous")
	}
	if st.CanNext {
		hints = append(hints, "→: next")
	}
	if st.CanSubmit {
		hints = append(hints, "enter: submit")
	}
	hints = append(hints, "r: restart")
	sb.WriteString(theme.Muted.Render(strings.Join(hints, "  ")))
	return sb.String()
}

func (m Model) renderResult() string {
	res := m.result
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Resultados") + "  " +
		theme.Muted.Render(fmt.Sprintf("%d respuestas guardadas", res.Answered)) + "\n\n")

	barW := max(m.width/3, 10)
	for _, s := range res.Scores {
		sb.WriteString(fmt.Sprintf("%-12s %s %3.0f%%  %s\n",
			s.Category, theme.Bar(s.Percent, barW), s.Percent, theme.Band(s.Band).Render(s.Band)))
	}
	sb.WriteString("\n" + theme.Hot.Render(fmt.Sprintf("Global: %.0f%%", res.Overall)) + "\n\n")
	sb.WriteString(theme.Muted.Render("r: take it again"))
	return sb.String()
}

func (m Model) stateCmd(fn func(context.Context) (assessmentdto.StateOutput, error)) tea.Cmd {
	return func() tea.Msg {
		st, err := fn(context.Background())
		return StateMsg{State: st, Err: err}
	}
}
