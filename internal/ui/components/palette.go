package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"psynara/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// hints must stay in sync with the switch in app/model.go executePalette.
var paletteHints = []string{
	"go <home|assessment|exercises|recommendations|profile>",
	"assessment:restart",
	"assessment:submit",
	"exercise:start <name>",
	"exercise:cancel",
	"exercise:finish",
	"recommend:filter <category>",
	"mood <excelente|bien|neutral|bajo|mal>",
	"profile:rename <full name>",
	"refresh",
}

const historyLimit = 20

// Palette is a command-palette overlay backed by bubbles/textinput.
// Up and down recall earlier commands; tab completes the first matching hint.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
	history []string
	recall  int
}

// NewPalette creates an inactive Palette ready to be opened.
func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 256
	return Palette{input: ti}
}

// Visible reports whether the palette is currently shown.
func (p Palette) Visible() bool { return p.visible }

// Open shows the palette, clears the input, and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.recall = len(p.history)
	p.input.SetValue("")
	return p.input.Focus()
}

// SetWidth sets the render width for the overlay.
func (p *Palette) SetWidth(w int) { p.width = w }

// History returns submitted commands, oldest first.
func (p Palette) History() []string {
	return append([]string(nil), p.history...)
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			p.remember(val)
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "up":
			if p.recall > 0 {
				p.recall--
				p.input.SetValue(p.history[p.recall])
				p.input.CursorEnd()
			}
			return p, nil
		case "down":
			if p.recall < len(p.history)-1 {
				p.recall++
				p.input.SetValue(p.history[p.recall])
			} else {
				p.recall = len(p.history)
				p.input.SetValue("")
			}
			p.input.CursorEnd()
			return p, nil
		case "tab":
			if hints := matchHints(p.input.Value(), 1); len(hints) == 1 {
				p.input.SetValue(completion(hints[0]))
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	matching := matchHints(p.input.Value(), 5)

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command Palette") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if len(matching) > 0 {
		sb.WriteString("\n")
		for _, h := range matching {
			sb.WriteString(hintStyle.Render("  "+h) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}

func (p *Palette) remember(val string) {
	if val == "" {
		return
	}
	if n := len(p.history); n > 0 && p.history[n-1] == val {
		return
	}
	p.history = append(p.history, val)
	if len(p.history) > historyLimit {
		p.history = p.history[len(p.history)-historyLimit:]
	}
	p.recall = len(p.history)
}

func matchHints(input string, limit int) []string {
	prefix := strings.ToLower(input)
	var out []string
	for _, h := range paletteHints {
		if prefix == "" || strings.HasPrefix(h, prefix) {
			out = append(out, h)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// completion keeps the command word of a hint and drops its argument placeholders.
func completion(hint string) string {
	if i := strings.Index(hint, " <"); i >= 0 {
		return hint[:i+1]
	}
	return hint
}
