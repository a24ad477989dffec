package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tabdeck/tabdeck/internal/model"
	"github.com/tabdeck/tabdeck/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Picker is a small TUI for choosing one site shortcut out of a result list.
// Long lists scroll; the window follows the cursor.
type Picker struct {
	results   []search.SearchResult
	store     *model.Store
	query     string
	cursor    int
	offset    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a Picker over search results. The store resolves group labels
// for display; it may be nil.
func New(results []search.SearchResult, store *model.Store, query string) Picker {
	return Picker{
		results: results,
		store:   store,
		query:   query,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// visibleRows is how many results fit beside the header and footer. Each
// result takes two lines.
func (p Picker) visibleRows() int {
	rows := (p.height - 5) / 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (p Picker) clampOffset() Picker {
	rows := p.visibleRows()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+rows {
		p.offset = p.cursor - rows + 1
	}
	return p
}

func (p Picker) move(delta int) Picker {
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor > len(p.results)-1 {
		p.cursor = len(p.results) - 1
	}
	return p.clampOffset()
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p.clampOffset(), nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			if len(p.results) > 0 {
				p.selected = true
			} else {
				p.cancelled = true
			}
			return p, tea.Quit

		case tea.KeyDown:
			return p.move(1), nil

		case tea.KeyUp:
			return p.move(-1), nil
		}

		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				return p.move(1), nil
			case "k":
				return p.move(-1), nil
			case "g":
				return p.move(-len(p.results)), nil
			case "G":
				return p.move(len(p.results)), nil
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p Picker) groupLabel(site *model.SiteShortcut) string {
	if p.store == nil || site.GroupID == "" {
		return ""
	}
	if group := p.store.GetGroupByID(site.GroupID); group != nil {
		return group.Label
	}
	return ""
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	end := p.offset + p.visibleRows()
	if end > len(p.results) {
		end = len(p.results)
	}
	for i := p.offset; i < end; i++ {
		result := p.results[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		line := style.Render(result.Site.Title)
		if label := p.groupLabel(result.Site); label != "" {
			line += " " + groupStyle.Render("["+label+"]")
		}

		b.WriteString(cursor + line + "\n")
		b.WriteString("   " + urlStyle.Render(result.Site.URL) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("j/k: move  g/G: first/last  Enter: open  q/Esc: cancel"))

	return b.String()
}

// SelectedSite returns the chosen shortcut, or nil if the picker was
// cancelled.
func (p Picker) SelectedSite() *model.SiteShortcut {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Site
	}
	return nil
}

// Cancelled reports whether the user backed out.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
