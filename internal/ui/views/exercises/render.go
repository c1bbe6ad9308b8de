package exercises

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	sessiondto "psynara/internal/modules/session/dto"
	"psynara/internal/ui/theme"
)

var phaseLabels = map[string]string{
	"inhale": "Inhala",
	"hold":   "Mantén",
	"exhale": "Exhala",
}

var statusLabels = map[string]string{
	sessiondto.StatusIdle:               "listo",
	sessiondto.StatusRunning:            "en curso",
	sessiondto.StatusPaused:             "en pausa",
	sessiondto.StatusAwaitingCompletion: "terminado",
	sessiondto.StatusCompleted:          "completado",
	sessiondto.StatusCancelled:          "cancelado",
}

func (m Model) renderGameDetail(width int) string {
	item, ok := m.list.SelectedItem().(gameItem)
	if !ok {
		return theme.Muted.Render("Run `psynara seed` to load the exercise catalog")
	}
	g := item.game
	wrap := lipgloss.NewStyle().Width(width)
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(g.Name) + "\n")
	sb.WriteString(theme.Muted.Render(g.DifficultyLabel+" · "+g.Category) + "\n\n")
	sb.WriteString(wrap.Render(g.Description) + "\n\n")
	if g.Instructions != "" {
		sb.WriteString(theme.Hot.Render("Instrucciones") + "\n")
		sb.WriteString(wrap.Render(g.Instructions) + "\n\n")
	}
	if g.Completed {
		sb.WriteString(theme.Calm.Render("✓ Ya lo completaste") + "\n\n")
	}
	if m.err != nil {
		sb.WriteString(theme.Error.Render("Error: "+m.err.Error()) + "\n")
	}
	sb.WriteString(theme.Muted.Render("enter: start  /: search"))
	return sb.String()
}

func (m Model) renderRun() string {
	s := m.snap
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.session.GameName) + "  " +
		theme.Muted.Render("["+statusLabels[s.Status]+"]") + "\n")
	if s.StepCount > 1 {
		sb.WriteString(theme.Bar(float64(s.ProgressIndex)/float64(s.StepCount)*100, max(m.width/2, 10)) +
			theme.Muted.Render(fmt.Sprintf(" %d/%d", s.ProgressIndex, s.StepCount)) + "\n")
	}
	sb.WriteString("\n")

	switch s.Kind {
	case sessiondto.KindBreathing, sessiondto.KindSomatic:
		sb.WriteString(m.renderBreathing())
	case sessiondto.KindMindfulnessTimer:
		sb.WriteString(m.renderTimer())
	case sessiondto.KindBodyScan:
		sb.WriteString(m.renderBodyScan())
	case sessiondto.KindGratitude:
		sb.WriteString(m.renderGratitude())
	case sessiondto.KindCognitiveReframe:
		sb.WriteString(m.renderReframe())
	case sessiondto.KindEmotionWheel:
		sb.WriteString(m.renderEmotion())
	default:
		sb.WriteString(theme.Muted.Render("Realiza el ejercicio a tu ritmo y márcalo como completado.") + "\n")
	}
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(theme.Error.Render("Error: "+m.err.Error()) + "\n")
	}
	sb.WriteString(theme.Muted.Render(m.runHints()))
	return sb.String()
}

func (m Model) renderBreathing() string {
	s := m.snap
	if s.Status == sessiondto.StatusAwaitingCompletion {
		return theme.Calm.Render(fmt.Sprintf("Completaste %d ciclos. ¡Bien hecho!", s.TotalCycles)) + "\n"
	}
	phase := phaseLabels[s.Phase]
	if phase == "" {
		phase = s.Phase
	}
	box := theme.PaneActive.Width(24).Align(lipgloss.Center).Render(
		theme.Hot.Render(phase) + "\n\n" + theme.Title.Render(strconv.Itoa(s.Remaining)),
	)
	return box + "\n" + theme.Muted.Render(fmt.Sprintf("Ciclo %d de %d", min(s.Cycle+1, s.TotalCycles), s.TotalCycles)) + "\n"
}

func (m Model) renderTimer() string {
	s := m.snap
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("%02d:%02d", s.Remaining/60, s.Remaining%60)) + "\n")
	sb.WriteString(theme.Bar(s.Percent, max(m.width/2, 10)) + "\n\n")
	for _, o := range s.Options {
		label := o + " min"
		if o == strconv.Itoa(s.Minutes) {
			sb.WriteString(theme.Selected.Render("["+label+"]") + " ")
		} else {
			sb.WriteString(theme.Muted.Render(" "+label+" ") + " ")
		}
	}
	sb.WriteString("\n")
	if s.Quote != "" {
		sb.WriteString("\n" + theme.Calm.Italic(true).Render("“"+s.Quote+"”") + "\n")
	}
	return sb.String()
}

func (m Model) renderBodyScan() string {
	s := m.snap
	var sb strings.Builder
	sb.WriteString(theme.Hot.Render(s.Prompt))
	if s.Scanning {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  siguiente en %ds", s.Remaining)))
	}
	sb.WriteString("\n\n" + theme.Muted.Render("¿Qué sientes?") + "\n")
	sb.WriteString(options(s.Options, s.Selected, m.cursor))
	return sb.String()
}

func (m Model) renderGratitude() string {
	s := m.snap
	var sb strings.Builder
	sb.WriteString(theme.Muted.Render("Escribe al menos tres cosas por las que estás agradecido.") + "\n\n")
	for i, e := range s.Entries {
		prefix := fmt.Sprintf("%d. ", i+1)
		switch {
		case m.editing && i == m.cursor:
			sb.WriteString(theme.Selected.Render(prefix) + m.input.View() + "\n")
		case i == m.cursor:
			sb.WriteString(theme.Selected.Render(prefix+placeholder(e)) + "\n")
		default:
			sb.WriteString(theme.Muted.Render(prefix) + placeholder(e) + "\n")
		}
	}
	return sb.String()
}

func (m Model) renderReframe() string {
	s := m.snap
	var sb strings.Builder
	sb.WriteString(theme.Muted.Render("Situación: ") + s.Prompt + "\n")
	sb.WriteString(theme.Muted.Render("Pensamiento: ") + theme.Hot.Render("“"+s.Detail+"”") + "\n")
	if len(s.Tags) > 0 {
		sb.WriteString(theme.Muted.Render("Distorsiones: "+strings.Join(s.Tags, ", ")) + "\n")
	}
	if len(s.Hints) > 0 {
		sb.WriteString("\n" + theme.Calm.Render("Pistas") + "\n")
		for _, h := range s.Hints {
			sb.WriteString("  • " + h + "\n")
		}
	}
	if m.editing {
		sb.WriteString("\n" + m.input.View() + "\n")
	}
	if len(s.Responses) > 0 {
		keys := make([]int, 0, len(s.Responses))
		for k := range s.Responses {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		sb.WriteString("\n" + theme.Muted.Render("Tus reformulaciones") + "\n")
		for _, k := range keys {
			sb.WriteString(theme.Muted.Render(fmt.Sprintf("  %d. ", k+1)) + s.Responses[k] + "\n")
		}
	}
	return sb.String()
}

func (m Model) renderEmotion() string {
	s := m.snap
	rootCursor, respCursor := -1, -1
	if m.column == 0 {
		rootCursor = m.cursor
	} else {
		respCursor = m.cursor
	}
	left := theme.Muted.Render("¿De dónde viene?") + "\n" + options(s.Options, s.Selected, rootCursor)
	right := theme.Muted.Render("¿Cómo responder?") + "\n" + options(s.SecondaryOptions, s.SecondarySelected, respCursor)
	colW := max(m.width/2-2, 20)
	return theme.Hot.Render(s.Prompt) + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(colW).Render(left),
		lipgloss.NewStyle().Width(colW).Render(right),
	)
}

func (m Model) renderDone() string {
	r := m.result
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("¡Ejercicio completado!") + "\n\n")
	sb.WriteString(theme.Muted.Render("Ejercicio: ") + r.GameName + "\n")
	sb.WriteString(theme.Muted.Render("Puntos:    ") + theme.Hot.Render(strconv.Itoa(r.Score)) + "\n")
	sb.WriteString(theme.Muted.Render("Duración:  ") + fmt.Sprintf("%dm %02ds", r.DurationSec/60, r.DurationSec%60) + "\n")
	if n := len(r.Responses); n > 0 {
		sb.WriteString(theme.Muted.Render("Respuestas:") + fmt.Sprintf(" %d", n) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: back to the catalog"))
	return sb.String()
}

func (m Model) runHints() string {
	s := m.snap
	if m.editing {
		return "enter: save  esc: discard"
	}
	if s.Status == sessiondto.StatusAwaitingCompletion || s.Status == sessiondto.StatusCompleted {
		if s.Kind == sessiondto.KindBreathing || s.Kind == sessiondto.KindSomatic {
			return "enter: finish  r: repeat  esc: cancel"
		}
		return "enter: finish  esc: cancel"
	}
	hints := map[string]string{
		sessiondto.KindBreathing:        "space: start/pause  r: repeat",
		sessiondto.KindSomatic:          "space: start/pause  r: repeat",
		sessiondto.KindMindfulnessTimer: "space: start/pause  ←/→: duration  r: reset",
		sessiondto.KindBodyScan:         "space: start/pause  s: auto scan  ↑/↓ enter: sensation  n: next",
		sessiondto.KindGratitude:        "↑/↓: entry  e: write  a: add  d: remove  s: submit",
		sessiondto.KindCognitiveReframe: "e: write reframe  h: hints",
		sessiondto.KindEmotionWheel:     "←/→: column  ↑/↓ enter: select  n: next",
	}
	h, ok := hints[s.Kind]
	if !ok {
		h = "enter: mark as completed"
	}
	return h + "  esc: cancel"
}

func options(opts []string, selected string, cursor int) string {
	var sb strings.Builder
	for i, o := range opts {
		mark := "  "
		if o == selected {
			mark = "✓ "
		}
		if i == cursor {
			sb.WriteString(theme.Selected.Render("› "+mark+o) + "\n")
		} else {
			sb.WriteString(theme.Muted.Render("  "+mark) + o + "\n")
		}
	}
	return sb.String()
}

func placeholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return theme.Muted.Render("…")
	}
	return s
}
