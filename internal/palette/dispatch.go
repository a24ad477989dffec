package palette

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tabdeck/tabdeck/internal/browser"
)

// pageVerbs need in-page execution and are forwarded to the Page capability
// unchanged.
var pageVerbs = map[string]bool{
	"copy-url":          true,
	"copy-title":        true,
	"print-page":        true,
	"find-in-page":      true,
	"fullscreen":        true,
	"save-page":         true,
	"open-dev-tools":    true,
	"inspect-element":   true,
	"console":           true,
	"network-tab":       true,
	"performance-tab":   true,
	"application-tab":   true,
	"security-tab":      true,
	"view-source":       true,
	"task-manager":      true,
	"toggle-javascript": true,
	"toggle-images":     true,
}

// browserPages maps open-page verbs to their internal URLs.
var browserPages = map[string]string{
	"open-settings":          "chrome://settings/",
	"open-extensions":        "chrome://extensions/",
	"open-downloads":         "chrome://downloads/",
	"open-history":           "chrome://history/",
	"open-bookmarks-manager": "chrome://bookmarks/",
}

// Dispatcher executes a selected action against the browser capability
// surface. Optional capabilities degrade to a logged warning instead of an
// error; only an unknown verb is a hard failure.
type Dispatcher struct {
	Browser browser.Browser
	Log     zerolog.Logger
}

// Execute runs one action. When mode is a destructive alias the candidate's
// nominal verb is ignored and its kind decides what happens: tabs close,
// bookmarks get removed, history entries get deleted.
func (d *Dispatcher) Execute(ctx context.Context, a Action, mode Mode) error {
	if mode.Destructive() {
		switch v := a.(type) {
		case TabAction:
			return d.Browser.Tabs.Close(ctx, v.TabID)
		case BookmarkAction:
			return d.Browser.Bookmarks.Remove(ctx, v.BookmarkID)
		case HistoryAction:
			return d.Browser.History.DeleteURL(ctx, v.URL)
		}
	}

	verb := a.ActionMeta().Verb
	if pageVerbs[verb] {
		return d.runInPage(ctx, a, verb)
	}
	if url, ok := browserPages[verb]; ok {
		return d.Browser.Nav.Open(ctx, url, true)
	}

	switch verb {
	case "switch-tab":
		tab, err := d.targetTab(ctx, a)
		if err != nil {
			return err
		}
		return d.Browser.Tabs.Activate(ctx, tab.ID)
	case "new-tab":
		_, err := d.Browser.Tabs.Create(ctx, "")
		return err
	case "close-tab":
		tab, err := d.targetTab(ctx, a)
		if err != nil {
			return err
		}
		return d.Browser.Tabs.Close(ctx, tab.ID)
	case "duplicate-tab":
		tab, err := d.targetTab(ctx, a)
		if err != nil {
			return err
		}
		_, err = d.Browser.Tabs.Duplicate(ctx, tab.ID)
		return err
	case "pin-tab":
		tab, err := d.targetTab(ctx, a)
		if err != nil {
			return err
		}
		return d.Browser.Tabs.SetPinned(ctx, tab.ID, !tab.Pinned)
	case "mute-tab":
		tab, err := d.targetTab(ctx, a)
		if err != nil {
			return err
		}
		return d.Browser.Tabs.SetMuted(ctx, tab.ID, !tab.Muted)
	case "reload-tab":
		tab, err := d.targetTab(ctx, a)
		if err != nil {
			return err
		}
		return d.Browser.Tabs.Reload(ctx, tab.ID)
	case "new-window":
		return d.Browser.Windows.Create(ctx, false)
	case "new-incognito-window":
		return d.Browser.Windows.Create(ctx, true)
	case "close-window":
		tab, err := d.targetTab(ctx, a)
		if err != nil {
			return err
		}
		return d.Browser.Windows.Close(ctx, tab.WindowID)
	case "go-back":
		return d.navigate(ctx, a, true)
	case "go-forward":
		return d.navigate(ctx, a, false)
	case "go-home":
		return d.Browser.Nav.Home(ctx)
	case "navigate-to-url":
		return d.Browser.Nav.Open(ctx, a.ActionMeta().URL, false)
	case "open-bookmark":
		return d.Browser.Nav.Open(ctx, a.ActionMeta().URL, false)
	case "create-bookmark":
		tab, err := d.targetTab(ctx, a)
		if err != nil {
			return err
		}
		_, err = d.Browser.Bookmarks.Create(ctx, tab.Title, tab.URL)
		return err
	case "remove-bookmark":
		if v, ok := a.(BookmarkAction); ok {
			return d.Browser.Bookmarks.Remove(ctx, v.BookmarkID)
		}
		return fmt.Errorf("remove-bookmark needs a bookmark candidate")
	case "remove-history-item":
		return d.Browser.History.DeleteURL(ctx, a.ActionMeta().URL)
	case "clear-history":
		return d.Browser.History.DeleteAll(ctx)
	case "clear-browsing-data":
		if d.Browser.Data == nil {
			return d.degrade(verb, browser.ErrUnsupported)
		}
		return d.degrade(verb, d.Browser.Data.Remove(ctx, time.Time{}))
	case "clear-cache":
		if d.Browser.Data == nil {
			return d.degrade(verb, browser.ErrUnsupported)
		}
		return d.degrade(verb, d.Browser.Data.RemoveCache(ctx))
	case "clear-cookies":
		if d.Browser.Data == nil {
			return d.degrade(verb, browser.ErrUnsupported)
		}
		return d.degrade(verb, d.Browser.Data.RemoveCookies(ctx))
	case "zoom-in":
		return d.adjustZoom(ctx, a, +browser.ZoomStep)
	case "zoom-out":
		return d.adjustZoom(ctx, a, -browser.ZoomStep)
	case "zoom-reset":
		return d.setZoom(ctx, a, browser.ZoomDefault)
	default:
		return fmt.Errorf("Unknown action: %s", verb)
	}
}

// targetTab resolves the tab an action applies to: the candidate itself when
// it is a tab, the active tab otherwise.
func (d *Dispatcher) targetTab(ctx context.Context, a Action) (browser.Tab, error) {
	if v, ok := a.(TabAction); ok {
		return browser.Tab{
			ID:       v.TabID,
			WindowID: v.WindowID,
			Index:    v.Index,
			Title:    v.Title,
			URL:      v.URL,
			Active:   v.Active,
			Pinned:   v.Pinned,
			Muted:    v.Muted,
		}, nil
	}
	return d.Browser.Tabs.Active(ctx)
}

// navigate moves through session history, falling back to in-page history
// navigation when the tab-level API errors.
func (d *Dispatcher) navigate(ctx context.Context, a Action, back bool) error {
	tab, err := d.targetTab(ctx, a)
	if err != nil {
		return err
	}
	verb := "go-forward"
	call := d.Browser.Nav.Forward
	if back {
		verb = "go-back"
		call = d.Browser.Nav.Back
	}
	if err := call(ctx, tab.ID); err != nil {
		d.Log.Warn().Err(err).Str("action", verb).Msg("tab navigation failed, falling back to page script")
		return d.degrade(verb, d.Browser.Page.Run(ctx, tab.ID, verb))
	}
	return nil
}

func (d *Dispatcher) adjustZoom(ctx context.Context, a Action, delta float64) error {
	if d.Browser.Zoom == nil {
		return d.degrade("zoom", browser.ErrUnsupported)
	}
	tab, err := d.targetTab(ctx, a)
	if err != nil {
		return err
	}
	current, err := d.Browser.Zoom.Get(ctx, tab.ID)
	if err != nil {
		return d.degrade("zoom", err)
	}
	return d.degrade("zoom", d.Browser.Zoom.Set(ctx, tab.ID, browser.ClampZoom(current+delta)))
}

func (d *Dispatcher) setZoom(ctx context.Context, a Action, factor float64) error {
	if d.Browser.Zoom == nil {
		return d.degrade("zoom", browser.ErrUnsupported)
	}
	tab, err := d.targetTab(ctx, a)
	if err != nil {
		return err
	}
	return d.degrade("zoom", d.Browser.Zoom.Set(ctx, tab.ID, browser.ClampZoom(factor)))
}

func (d *Dispatcher) runInPage(ctx context.Context, a Action, verb string) error {
	tab, err := d.targetTab(ctx, a)
	if err != nil {
		return err
	}
	return d.degrade(verb, d.Browser.Page.Run(ctx, tab.ID, verb))
}

// degrade converts a failure of an optional capability into a logged warning.
func (d *Dispatcher) degrade(verb string, err error) error {
	if err != nil {
		d.Log.Warn().Err(err).Str("action", verb).Msg("capability degraded")
	}
	return nil
}
