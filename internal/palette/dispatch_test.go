package palette

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tabdeck/tabdeck/internal/browser"
)

func newDispatcher(m *browser.Memory) *Dispatcher {
	return &Dispatcher{Browser: m.Capabilities(), Log: zerolog.Nop()}
}

func TestExecute_UnknownVerb(t *testing.T) {
	d := newDispatcher(browser.NewMemory())
	err := d.Execute(context.Background(), staticAction("Bogus", "frobnicate"), ModeNone)
	if err == nil {
		t.Fatal("expected an error for an unknown verb")
	}
	if err.Error() != "Unknown action: frobnicate" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestExecute_DestructiveModeOverridesVerb(t *testing.T) {
	m := seededMemory()
	d := newDispatcher(m)
	ctx := context.Background()

	// A tab candidate closes even though its nominal verb is switch-tab.
	tab := tabAction(2, "Go Blog", "https://go.dev/blog", false)
	if err := d.Execute(ctx, tab, ModeRemove); err != nil {
		t.Fatalf("close via /remove: %v", err)
	}
	tabs, _ := m.Query(ctx)
	for _, tb := range tabs {
		if tb.ID == 2 {
			t.Error("tab 2 should be closed")
		}
	}

	// A bookmark candidate gets removed.
	bm := bookmarkAction("10", "Google Docs", "https://docs.google.com")
	if err := d.Execute(ctx, bm, ModeClose); err != nil {
		t.Fatalf("remove via /close: %v", err)
	}
	tree, _ := m.Tree(ctx)
	if len(tree) != 2 || len(tree[0].Children) != 0 {
		t.Error("bookmark 10 should be removed from the tree")
	}

	// A history candidate's URL entry gets deleted.
	m.Seed(
		[]browser.Tab{{ID: 1, WindowID: 1, Title: "T", URL: "https://t.example", Active: true}},
		nil,
		[]browser.HistoryItem{{ID: "h1", Title: "Visited", URL: "https://visited.example"}},
	)
	hist := historyAction("h1", "Visited", "https://visited.example")
	if err := d.Execute(ctx, hist, ModeDelete); err != nil {
		t.Fatalf("delete via /delete: %v", err)
	}
	items, _ := m.Search(ctx, "", 0)
	if len(items) != 0 {
		t.Error("history entry should be deleted")
	}
}

func TestExecute_ZoomInClampsAtMax(t *testing.T) {
	m := browser.NewMemory()
	d := newDispatcher(m)
	ctx := context.Background()

	active, err := m.Active(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Set(ctx, active.ID, 4.95); err != nil {
		t.Fatal(err)
	}

	if err := d.Execute(ctx, staticAction("Zoom In", "zoom-in"), ModeNone); err != nil {
		t.Fatalf("zoom-in: %v", err)
	}
	if got := m.ZoomFactor(active.ID); math.Abs(got-browser.ZoomMax) > 1e-9 {
		t.Errorf("expected zoom clamped to %v, got %v", browser.ZoomMax, got)
	}
}

func TestExecute_ZoomReset(t *testing.T) {
	m := browser.NewMemory()
	d := newDispatcher(m)
	ctx := context.Background()

	active, _ := m.Active(ctx)
	m.Set(ctx, active.ID, 2.5)
	if err := d.Execute(ctx, staticAction("Reset Zoom", "zoom-reset"), ModeNone); err != nil {
		t.Fatal(err)
	}
	if got := m.ZoomFactor(active.ID); got != browser.ZoomDefault {
		t.Errorf("expected %v, got %v", browser.ZoomDefault, got)
	}
}

func TestExecute_ZoomUnsupportedDegrades(t *testing.T) {
	m := browser.NewMemory()
	m.ZoomSupported = false
	d := newDispatcher(m)

	if err := d.Execute(context.Background(), staticAction("Zoom In", "zoom-in"), ModeNone); err != nil {
		t.Errorf("unsupported zoom must degrade, got %v", err)
	}
}

func TestExecute_BrowsingDataUnsupportedDegrades(t *testing.T) {
	m := browser.NewMemory()
	m.DataSupported = false
	d := newDispatcher(m)
	ctx := context.Background()

	for _, verb := range []string{"clear-cache", "clear-cookies", "clear-browsing-data"} {
		if err := d.Execute(ctx, staticAction(verb, verb), ModeNone); err != nil {
			t.Errorf("%s must degrade, got %v", verb, err)
		}
	}
}

func TestExecute_NilOptionalCapabilitiesDegrade(t *testing.T) {
	m := browser.NewMemory()
	caps := m.Capabilities()
	caps.Zoom = nil
	caps.Data = nil
	d := &Dispatcher{Browser: caps, Log: zerolog.Nop()}
	ctx := context.Background()

	verbs := []string{
		"zoom-in", "zoom-out", "zoom-reset",
		"clear-cache", "clear-cookies", "clear-browsing-data",
	}
	for _, verb := range verbs {
		if err := d.Execute(ctx, staticAction(verb, verb), ModeNone); err != nil {
			t.Errorf("%s with a nil capability must degrade, got %v", verb, err)
		}
	}
}

// failingNav always errors so the dispatcher has to fall back to the page
// script path.
type failingNav struct {
	browser.Navigation
}

func (failingNav) Back(ctx context.Context, tabID int) error {
	return errors.New("tab API unavailable")
}

func (failingNav) Forward(ctx context.Context, tabID int) error {
	return errors.New("tab API unavailable")
}

func TestExecute_BackFallsBackToPageScript(t *testing.T) {
	m := browser.NewMemory()
	caps := m.Capabilities()
	caps.Nav = failingNav{Navigation: caps.Nav}
	d := &Dispatcher{Browser: caps, Log: zerolog.Nop()}

	if err := d.Execute(context.Background(), staticAction("Go Back", "go-back"), ModeNone); err != nil {
		t.Fatalf("go-back must not surface the navigation error, got %v", err)
	}
	if len(m.PageActions) == 0 || m.PageActions[len(m.PageActions)-1] != "go-back" {
		t.Errorf("expected a go-back page action, got %v", m.PageActions)
	}
}

func TestExecute_PinTogglesActiveTab(t *testing.T) {
	m := browser.NewMemory()
	d := newDispatcher(m)
	ctx := context.Background()

	if err := d.Execute(ctx, staticAction("Pin Tab", "pin-tab"), ModeNone); err != nil {
		t.Fatal(err)
	}
	active, _ := m.Active(ctx)
	if !active.Pinned {
		t.Error("active tab should be pinned")
	}

	if err := d.Execute(ctx, staticAction("Unpin Tab", "pin-tab"), ModeNone); err != nil {
		t.Fatal(err)
	}
	active, _ = m.Active(ctx)
	if active.Pinned {
		t.Error("active tab should be unpinned again")
	}
}

func TestExecute_SwitchTabActivates(t *testing.T) {
	m := seededMemory()
	d := newDispatcher(m)
	ctx := context.Background()

	if err := d.Execute(ctx, tabAction(3, "News", "https://news.example", false), ModeNone); err != nil {
		t.Fatal(err)
	}
	active, _ := m.Active(ctx)
	if active.ID != 3 {
		t.Errorf("expected tab 3 active, got %d", active.ID)
	}
}

func TestExecute_OpenBrowserPage(t *testing.T) {
	m := browser.NewMemory()
	d := newDispatcher(m)
	ctx := context.Background()

	if err := d.Execute(ctx, staticAction("Open Settings", "open-settings"), ModeNone); err != nil {
		t.Fatal(err)
	}
	tabs, _ := m.Query(ctx)
	found := false
	for _, tb := range tabs {
		if strings.HasPrefix(tb.URL, "chrome://settings") {
			found = true
		}
	}
	if !found {
		t.Error("expected a new tab on the settings page")
	}
}

func TestExecute_PageVerbForwarded(t *testing.T) {
	m := browser.NewMemory()
	d := newDispatcher(m)

	if err := d.Execute(context.Background(), staticAction("Print Page", "print-page"), ModeNone); err != nil {
		t.Fatal(err)
	}
	if len(m.PageActions) != 1 || m.PageActions[0] != "print-page" {
		t.Errorf("expected print-page forwarded, got %v", m.PageActions)
	}
}

func TestExecute_CreateBookmarkFromActiveTab(t *testing.T) {
	m := seededMemory()
	d := newDispatcher(m)
	ctx := context.Background()

	if err := d.Execute(ctx, staticAction("Create Bookmark", "create-bookmark"), ModeNone); err != nil {
		t.Fatal(err)
	}
	tree, _ := m.Tree(ctx)
	found := false
	for _, n := range tree {
		if n.Title == "Google Search" && n.URL == "https://www.google.com" {
			found = true
		}
	}
	if !found {
		t.Error("expected a bookmark for the active tab")
	}
}
