package recommendations

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	recdto "psynara/internal/modules/recommendation/dto"
	"psynara/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Categories(ctx context.Context) ([]recdto.CategoryOutput, error)
	List(ctx context.Context, category string) ([]recdto.RecommendationOutput, error)
	Show(ctx context.Context, id string) (recdto.RecommendationDetailOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type CategoriesLoadedMsg struct {
	Categories []recdto.CategoryOutput
	Err        error
}

type ListLoadedMsg struct {
	Category string
	Items    []recdto.RecommendationOutput
	Err      error
}

type DetailLoadedMsg struct {
	Detail recdto.RecommendationDetailOutput
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type recItem struct {
	rec recdto.RecommendationOutput
}

func (i recItem) Title() string       { return i.rec.Glyph + " " + i.rec.Title }
func (i recItem) Description() string { return i.rec.CategoryLabel + " · " + i.rec.Description }
func (i recItem) FilterValue() string { return i.rec.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port       Port
	categories []recdto.CategoryOutput
	category   int
	list       list.Model
	detail     recdto.RecommendationDetailOutput
	preview    viewport.Model
	renderer   *glamour.TermRenderer
	err        error
	width      int
	height     int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Recomendaciones"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)

	return Model{port: port, list: l, preview: vp, renderer: r}
}

func (m Model) Init() tea.Cmd {
	return m.loadCategoriesCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.detail.ID != "" {
			m.preview.SetContent(m.renderDetail())
		}

	case CategoriesLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.categories = msg.Categories
		m.category = 0
		return m, m.loadListCmd(m.CategoryID())

	case ListLoadedMsg:
		if msg.Category != m.CategoryID() {
			return m, nil
		}
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		items := make([]list.Item, len(msg.Items))
		for i, r := range msg.Items {
			items[i] = recItem{rec: r}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.list.Select(0)
		if len(msg.Items) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Items[0].ID))
		} else {
			m.detail = recdto.RecommendationDetailOutput{}
			m.preview.SetContent(m.renderDetail())
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
			m.preview.GotoTop()
		}

	case tea.KeyMsg:
		if !m.Filtering() && len(m.categories) > 0 {
			switch msg.String() {
			case "left", "h":
				m.category = (m.category + len(m.categories) - 1) % len(m.categories)
				return m, m.loadListCmd(m.CategoryID())
			case "right", "l":
				m.category = (m.category + 1) % len(m.categories)
				return m, m.loadListCmd(m.CategoryID())
			case "pgdown", "pgup", "J", "K":
				var vCmd tea.Cmd
				m.preview, vCmd = m.preview.Update(msg)
				return m, vCmd
			}
		}
	}

	prevIdx := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		if item, ok := m.list.SelectedItem().(recItem); ok {
			cmds = append(cmds, m.loadDetailCmd(item.rec.ID))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	bar := m.renderCategoryBar()
	barH := lipgloss.Height(bar)
	h := m.height - barH
	if h < 1 {
		h = 1
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(h).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Width(max(detailW-2, 1)).
		Height(max(h-2, 1)).
		Render(m.preview.View())

	return lipgloss.JoinVertical(lipgloss.Left, bar,
		lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane))
}

// CategoryID returns the selected category filter.
func (m Model) CategoryID() string {
	if m.category < len(m.categories) {
		return m.categories[m.category].ID
	}
	return ""
}

// SelectCategory switches the filter to id and reloads the list.
func (m *Model) SelectCategory(id string) tea.Cmd {
	for i, c := range m.categories {
		if c.ID == id || strings.EqualFold(c.Label, id) {
			m.category = i
			return m.loadListCmd(c.ID)
		}
	}
	return nil
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	h := m.height - 2
	m.list.SetSize(listW, h)
	m.preview.Width = detailW - 4
	m.preview.Height = h - 2
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.preview.Width),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) renderCategoryBar() string {
	parts := make([]string, len(m.categories))
	for i, c := range m.categories {
		if i == m.category {
			parts[i] = theme.Hot.Render(" " + c.Label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + c.Label + " ")
		}
	}
	bar := strings.Join(parts, theme.Muted.Render("·")) + theme.Muted.Render("   ←/→: category  /: search")
	if m.err != nil {
		bar += "  " + theme.Error.Render(m.err.Error())
	}
	return bar + "\n"
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("No hay recomendaciones en esta categoría")
	}
	header := theme.Title.Render(d.Glyph+" "+d.Title) + "\n" +
		theme.Muted.Render(d.CategoryLabel) + "\n\n" + d.Description + "\n"
	if d.Content == "" {
		return header
	}
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(d.Content); err == nil {
			return header + rendered
		}
	}
	return header + "\n" + d.Content
}

func (m Model) loadCategoriesCmd() tea.Cmd {
	return func() tea.Msg {
		cats, err := m.port.Categories(context.Background())
		return CategoriesLoadedMsg{Categories: cats, Err: err}
	}
}

func (m Model) loadListCmd(category string) tea.Cmd {
	return func() tea.Msg {
		items, err := m.port.List(context.Background(), category)
		return ListLoadedMsg{Category: category, Items: items, Err: err}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.Show(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}
