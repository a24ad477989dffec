// Package tui renders the command palette in the terminal. It is a thin
// front end: all selection and filtering state lives in the palette
// controller, and every confirmed action goes through the dispatcher.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/tabdeck/tabdeck/internal/palette"
)

// actionsMsg delivers one aggregation pass.
type actionsMsg []palette.Action

// executedMsg reports the outcome of a dispatched action.
type executedMsg struct {
	title string
	err   error
}

// App is the bubbletea model for the palette.
type App struct {
	controller *palette.Controller
	aggregator *palette.Aggregator
	dispatcher *palette.Dispatcher
	log        zerolog.Logger

	keys   KeyMap
	styles Styles
	input  textinput.Model

	width  int
	height int

	status string
	done   bool
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Aggregator *palette.Aggregator
	Dispatcher *palette.Dispatcher
	Log        zerolog.Logger
	Keys       *KeyMap // optional, uses default if nil
	Styles     *Styles // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}
	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	input := textinput.New()
	input.Placeholder = "Type to search, / for modes"
	input.Prompt = "> "
	input.Focus()

	return App{
		controller: palette.NewController(),
		aggregator: params.Aggregator,
		dispatcher: params.Dispatcher,
		log:        params.Log,
		keys:       keys,
		styles:     styles,
		input:      input,
		width:      80,
		height:     24,
	}
}

// Controller exposes the palette state for tests.
func (a App) Controller() *palette.Controller {
	return a.controller
}

// Status returns the outcome line of the executed action.
func (a App) Status() string {
	return a.status
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if !a.controller.Open() {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, a.aggregate())
}

func (a App) aggregate() tea.Cmd {
	agg := a.aggregator
	return func() tea.Msg {
		return actionsMsg(agg.Aggregate(context.Background()))
	}
}

func (a App) execute(action palette.Action, mode palette.Mode) tea.Cmd {
	d := a.dispatcher
	title := action.ActionMeta().Title
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return executedMsg{title: title, err: d.Execute(ctx, action, mode)}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 4
		return a, nil

	case actionsMsg:
		a.controller.ApplyActions(msg)
		return a, nil

	case executedMsg:
		if msg.err != nil {
			a.status = fmt.Sprintf("%s failed: %v", msg.title, msg.err)
			a.log.Error().Err(msg.err).Str("title", msg.title).Msg("action failed")
		} else {
			a.status = msg.title
		}
		a.done = true
		return a, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.controller.Close()
			return a, tea.Quit

		case key.Matches(msg, a.keys.Down):
			// Terminals deliver auto-repeated presses, not key-up events, so
			// every event is one discrete press of the repeat cycle.
			a.controller.KeyDown(palette.DirNext)
			a.controller.KeyUp(palette.DirNext)
			return a, nil

		case key.Matches(msg, a.keys.Up):
			a.controller.KeyDown(palette.DirPrev)
			a.controller.KeyUp(palette.DirPrev)
			return a, nil

		case key.Matches(msg, a.keys.Confirm):
			selected, ok := a.controller.Selected()
			if !ok {
				return a, nil
			}
			mode := a.controller.Mode()
			a.controller.Close()
			return a, a.execute(selected, mode)

		case key.Matches(msg, a.keys.Complete):
			if a.controller.Autocomplete() {
				a.input.SetValue(a.controller.Query())
				a.input.CursorEnd()
			}
			return a, nil

		case key.Matches(msg, a.keys.Clear):
			a.input.SetValue("")
			a.controller.SetQuery("")
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != a.controller.Query() {
		a.controller.SetQuery(a.input.Value())
	}
	return a, cmd
}

// visibleRows is how many result rows fit below the prompt and above the
// help line.
func (a App) visibleRows() int {
	rows := a.height - 6
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View implements tea.Model.
func (a App) View() string {
	if a.done {
		return a.status + "\n"
	}

	var b strings.Builder

	b.WriteString(a.styles.Prompt.Render("tabdeck"))
	b.WriteString("\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	filtered := a.controller.Filtered()
	switch {
	case a.controller.Loading():
		b.WriteString(a.styles.Spinner.Render("collecting actions..."))
		b.WriteString("\n")
	case len(filtered) == 0:
		b.WriteString(a.styles.Empty.Render("no matching actions"))
		b.WriteString("\n")
	default:
		selected := a.controller.SelectedIndex()
		rows := a.visibleRows()
		offset := 0
		if selected >= rows {
			offset = selected - rows + 1
		}
		end := offset + rows
		if end > len(filtered) {
			end = len(filtered)
		}
		for i := offset; i < end; i++ {
			b.WriteString(a.renderRow(filtered[i], i == selected))
			b.WriteString("\n")
		}
		if end < len(filtered) {
			b.WriteString(a.styles.Detail.Render(fmt.Sprintf("  … %d more", len(filtered)-end)))
			b.WriteString("\n")
		}
	}

	b.WriteString(a.styles.Help.Render("↑/↓: move  tab: complete  enter: run  esc: close"))
	return a.styles.App.Render(b.String())
}

func (a App) renderRow(action palette.Action, selected bool) string {
	meta := action.ActionMeta()

	style := a.styles.Item
	if selected {
		style = a.styles.ItemSelected
	}

	title := meta.Title
	if meta.Emoji != "" {
		title = meta.Emoji + " " + title
	}

	line := style.Render(title)
	line += " " + a.styles.KindTag.Render(action.ActionKind().String())
	if meta.Description != "" {
		line += " " + a.styles.Detail.Render(truncate(meta.Description, a.width/2))
	}
	if len(meta.Shortcut) > 0 {
		line += " " + a.styles.Shortcut.Render(strings.Join(meta.Shortcut, "+"))
	}
	return line
}

func truncate(s string, max int) string {
	if max < 4 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
