package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Teal     = lipgloss.Color("#94e2d5")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title    = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted    = lipgloss.NewStyle().Foreground(Subtext0)
	Hot      = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Calm     = lipgloss.NewStyle().Foreground(Teal)
	Selected = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
	Error    = lipgloss.NewStyle().Foreground(Red)
)

// Band colours an assessment band label from green down to red.
func Band(band string) lipgloss.Style {
	switch band {
	case "Excellent":
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case "Good":
		return lipgloss.NewStyle().Foreground(Teal).Bold(true)
	case "Moderate":
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	}
}

// Bar renders a fixed-width progress bar for percent in [0,100].
func Bar(percent float64, width int) string {
	if width < 1 {
		width = 1
	}
	filled := int(percent / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	on := lipgloss.NewStyle().Foreground(Lavender)
	off := lipgloss.NewStyle().Foreground(Surface1)
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += on.Render("█")
		} else {
			bar += off.Render("░")
		}
	}
	return bar
}
