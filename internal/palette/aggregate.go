package palette

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tabdeck/tabdeck/internal/browser"
)

// HistoryLimit caps how many history entries one aggregation pass fetches.
const HistoryLimit = 100

// Aggregator collects palette candidates from the four sources: static
// commands, open tabs, the bookmark tree and recent history. Sources run
// concurrently and fail independently; a source that errors contributes
// nothing and the pass still succeeds.
type Aggregator struct {
	Browser browser.Browser
	Log     zerolog.Logger
}

// Aggregate runs one collection pass. The result order is static commands,
// tabs, bookmarks, history; the filter re-ranks afterwards. A pass never
// fails outright: if every source is broken the static defaults still come
// back, and in the worst case the result is empty.
func (a *Aggregator) Aggregate(ctx context.Context) []Action {
	var (
		wg        sync.WaitGroup
		static    []Action
		tabs      []Action
		bookmarks []Action
		history   []Action
	)

	run := func(name string, dst *[]Action, fetch func(context.Context) ([]Action, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					a.Log.Warn().Str("source", name).Interface("panic", r).Msg("palette source panicked")
				}
			}()
			actions, err := fetch(ctx)
			if err != nil {
				a.Log.Warn().Str("source", name).Err(err).Msg("palette source failed")
				return
			}
			*dst = actions
		}()
	}

	run("static", &static, a.fetchStatic)
	run("tabs", &tabs, a.fetchTabs)
	run("bookmarks", &bookmarks, a.fetchBookmarks)
	run("history", &history, a.fetchHistory)
	wg.Wait()

	out := make([]Action, 0, len(static)+len(tabs)+len(bookmarks)+len(history))
	out = append(out, static...)
	out = append(out, tabs...)
	out = append(out, bookmarks...)
	out = append(out, history...)
	return out
}

func (a *Aggregator) fetchStatic(ctx context.Context) ([]Action, error) {
	active, err := a.Browser.Tabs.Active(ctx)
	if err != nil {
		// The static set only needs the active tab for the pin/mute labels;
		// fall back to a neutral snapshot instead of losing all commands.
		a.Log.Debug().Err(err).Msg("no active tab snapshot for static actions")
		active = browser.Tab{}
	}
	return DefaultActions(active), nil
}

func (a *Aggregator) fetchTabs(ctx context.Context) ([]Action, error) {
	tabs, err := a.Browser.Tabs.Query(ctx)
	if err != nil {
		return nil, err
	}
	actions := make([]Action, 0, len(tabs))
	for _, t := range tabs {
		actions = append(actions, TabAction{
			Meta: Meta{
				ID:          fmt.Sprintf("tab-%d", t.ID),
				Title:       t.Title,
				Description: t.URL,
				Verb:        "switch-tab",
				URL:         t.URL,
				Category:    "Tab",
				Emoji:       "\U0001f5c2",
			},
			TabID:    t.ID,
			WindowID: t.WindowID,
			Index:    t.Index,
			Pinned:   t.Pinned,
			Muted:    t.Muted,
			Active:   t.Active,
		})
	}
	return actions, nil
}

func (a *Aggregator) fetchBookmarks(ctx context.Context) ([]Action, error) {
	tree, err := a.Browser.Bookmarks.Tree(ctx)
	if err != nil {
		return nil, err
	}
	var actions []Action
	var walk func(nodes []browser.BookmarkNode)
	walk = func(nodes []browser.BookmarkNode) {
		for _, n := range nodes {
			if n.URL != "" {
				actions = append(actions, BookmarkAction{
					Meta: Meta{
						ID:          "bookmark-" + n.ID,
						Title:       n.Title,
						Description: n.URL,
						Verb:        "open-bookmark",
						URL:         n.URL,
						Category:    "Bookmark",
						Emoji:       "⭐",
					},
					BookmarkID: n.ID,
					ParentID:   n.ParentID,
				})
			}
			walk(n.Children)
		}
	}
	walk(tree)
	return actions, nil
}

func (a *Aggregator) fetchHistory(ctx context.Context) ([]Action, error) {
	items, err := a.Browser.History.Search(ctx, "", HistoryLimit)
	if err != nil {
		return nil, err
	}
	actions := make([]Action, 0, len(items))
	for _, h := range items {
		title := h.Title
		if title == "" {
			title = h.URL
		}
		actions = append(actions, HistoryAction{
			Meta: Meta{
				ID:          "history-" + h.ID,
				Title:       title,
				Description: h.URL,
				Verb:        "navigate-to-url",
				URL:         h.URL,
				Category:    "History",
				Emoji:       "\U0001f4dc",
			},
			VisitCount:    h.VisitCount,
			LastVisitTime: h.LastVisitTime,
		})
	}
	return actions, nil
}
