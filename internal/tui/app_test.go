package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/tabdeck/tabdeck/internal/browser"
	"github.com/tabdeck/tabdeck/internal/palette"
)

func newTestApp(t *testing.T) (App, *browser.Memory) {
	t.Helper()
	m := browser.NewMemory()
	m.Seed([]browser.Tab{
		{ID: 1, WindowID: 1, Title: "Google Search", URL: "https://www.google.com", Active: true},
		{ID: 2, WindowID: 1, Title: "Go Blog", URL: "https://go.dev/blog"},
	}, nil, nil)

	caps := m.Capabilities()
	app := NewApp(AppParams{
		Aggregator: &palette.Aggregator{Browser: caps, Log: zerolog.Nop()},
		Dispatcher: &palette.Dispatcher{Browser: caps, Log: zerolog.Nop()},
		Log:        zerolog.Nop(),
	})
	return app, m
}

// drain runs Init and feeds the aggregation result back into the model.
func drain(t *testing.T, app App) App {
	t.Helper()
	cmd := app.Init()
	if cmd == nil {
		t.Fatal("Init must start aggregation")
	}
	model := tea.Model(app)
	for _, msg := range collectMsgs(cmd) {
		model, _ = model.Update(msg)
	}
	return model.(App)
}

// collectMsgs resolves a command tree into its messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, sub := range batch {
			out = append(out, collectMsgs(sub)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestApp_InitAggregates(t *testing.T) {
	app, _ := newTestApp(t)
	app = drain(t, app)

	if app.Controller().Loading() {
		t.Error("aggregation result should have landed")
	}
	if len(app.Controller().Filtered()) == 0 {
		t.Error("expected candidates after aggregation")
	}
}

func TestApp_TypingFilters(t *testing.T) {
	app, _ := newTestApp(t)
	app = drain(t, app)

	model := tea.Model(app)
	for _, r := range "google" {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	app = model.(App)

	filtered := app.Controller().Filtered()
	if len(filtered) == 0 {
		t.Fatal("expected matches for google")
	}
	if filtered[0].ActionMeta().Title != "Google Search" {
		t.Errorf("expected Google Search first, got %s", filtered[0].ActionMeta().Title)
	}
}

func TestApp_TabCompletesMode(t *testing.T) {
	app, _ := newTestApp(t)
	app = drain(t, app)

	model := tea.Model(app)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(App)

	if got := app.Controller().Query(); got != "/tabs " {
		t.Errorf("expected query %q, got %q", "/tabs ", got)
	}
	for _, a := range app.Controller().Filtered() {
		if a.ActionKind() != palette.KindTab {
			t.Errorf("tab mode must only show tabs, saw %s", a.ActionKind())
		}
	}
}

func TestApp_EnterDispatchesSelection(t *testing.T) {
	app, m := newTestApp(t)
	app = drain(t, app)

	model := tea.Model(app)
	for _, r := range "/tabs blog" {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter must produce an execute command")
	}
	for _, msg := range collectMsgs(cmd) {
		model, _ = model.Update(msg)
	}
	app = model.(App)

	if app.Status() != "Go Blog" {
		t.Errorf("expected status Go Blog, got %q", app.Status())
	}
	active, _ := m.Active(t.Context())
	if active.ID != 2 {
		t.Errorf("expected tab 2 activated, got %d", active.ID)
	}
}

func TestApp_EscClosesWithoutDispatch(t *testing.T) {
	app, m := newTestApp(t)
	app = drain(t, app)

	model, _ := tea.Model(app).Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(App)

	if app.Controller().IsOpen() {
		t.Error("esc must close the palette")
	}
	active, _ := m.Active(t.Context())
	if active.ID != 1 {
		t.Error("no action may run on close")
	}
}

func TestApp_ViewListsCandidates(t *testing.T) {
	app, _ := newTestApp(t)
	app = drain(t, app)

	view := app.View()
	if !strings.Contains(view, "Google Search") {
		t.Error("view must render tab candidates")
	}
	if !strings.Contains(view, "enter: run") {
		t.Error("view must render the help line")
	}
}

func TestTruncate_KeepsRunesIntact(t *testing.T) {
	in := "ウィキペディアのホームページです"
	out := truncate(in, 8)
	if out != "ウィキペデ..." {
		t.Errorf("expected a rune-boundary cut, got %q", out)
	}
	if !utf8.ValidString(out) {
		t.Errorf("truncated string is not valid UTF-8: %q", out)
	}
	if got := truncate("short", 8); got != "short" {
		t.Errorf("strings within the limit pass through, got %q", got)
	}
}
