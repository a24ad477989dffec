package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Memory is an in-process Browser used by tests and the terminal front end.
// It keeps a small simulated session: one window of tabs, a flat bookmark
// tree and a browsing history.
type Memory struct {
	mu sync.Mutex

	tabs      []Tab
	bookmarks []BookmarkNode
	history   []HistoryItem

	nextTabID      int
	nextBookmarkID int
	homepage       string
	zoom           map[int]float64

	// ZoomSupported and DataSupported flip the optional capabilities; when
	// false the methods return ErrUnsupported.
	ZoomSupported bool
	DataSupported bool

	// PageActions records verbs forwarded for in-page execution.
	PageActions []string
}

// NewMemory creates a Memory browser with an empty session and one active
// new-tab page.
func NewMemory() *Memory {
	m := &Memory{
		nextTabID:      1,
		nextBookmarkID: 1,
		homepage:       "about:newtab",
		zoom:           map[int]float64{},
		ZoomSupported:  true,
		DataSupported:  true,
	}
	m.tabs = []Tab{{ID: m.takeTabID(), WindowID: 1, Title: "New Tab", URL: m.homepage, Active: true}}
	return m
}

func (m *Memory) takeTabID() int {
	id := m.nextTabID
	m.nextTabID++
	return id
}

// Seed replaces the whole session in one call. The first tab becomes active
// if none is marked.
func (m *Memory) Seed(tabs []Tab, bookmarks []BookmarkNode, history []HistoryItem) {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := false
	for _, t := range tabs {
		if t.Active {
			active = true
		}
		if t.ID >= m.nextTabID {
			m.nextTabID = t.ID + 1
		}
	}
	if !active && len(tabs) > 0 {
		tabs[0].Active = true
	}
	m.tabs = tabs
	m.bookmarks = bookmarks
	m.history = history
}

// Tabs implementation.

func (m *Memory) Query(ctx context.Context) ([]Tab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Tab, len(m.tabs))
	copy(out, m.tabs)
	return out, nil
}

func (m *Memory) Active(ctx context.Context) (Tab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tabs {
		if t.Active {
			return t, nil
		}
	}
	return Tab{}, fmt.Errorf("no active tab")
}

func (m *Memory) Activate(ctx context.Context, tabID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := false
	for i := range m.tabs {
		if m.tabs[i].ID == tabID {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("tab %d not found", tabID)
	}
	for i := range m.tabs {
		m.tabs[i].Active = m.tabs[i].ID == tabID
	}
	return nil
}

func (m *Memory) Create(ctx context.Context, url string) (Tab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if url == "" {
		url = m.homepage
	}
	tab := Tab{ID: m.takeTabID(), WindowID: 1, Index: len(m.tabs), Title: url, URL: url}
	for i := range m.tabs {
		m.tabs[i].Active = false
	}
	tab.Active = true
	m.tabs = append(m.tabs, tab)
	return tab, nil
}

func (m *Memory) Close(ctx context.Context, tabID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tabs := make([]Tab, 0, len(m.tabs))
	closedActive := false
	for _, t := range m.tabs {
		if t.ID == tabID {
			closedActive = t.Active
			continue
		}
		tabs = append(tabs, t)
	}
	if len(tabs) == len(m.tabs) {
		return fmt.Errorf("tab %d not found", tabID)
	}
	if closedActive && len(tabs) > 0 {
		tabs[len(tabs)-1].Active = true
	}
	m.tabs = tabs
	return nil
}

func (m *Memory) Duplicate(ctx context.Context, tabID int) (Tab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tabs {
		if t.ID == tabID {
			dup := t
			dup.ID = m.takeTabID()
			dup.Active = false
			dup.Index = len(m.tabs)
			m.tabs = append(m.tabs, dup)
			return dup, nil
		}
	}
	return Tab{}, fmt.Errorf("tab %d not found", tabID)
}

func (m *Memory) SetPinned(ctx context.Context, tabID int, pinned bool) error {
	return m.updateTab(tabID, func(t *Tab) { t.Pinned = pinned })
}

func (m *Memory) SetMuted(ctx context.Context, tabID int, muted bool) error {
	return m.updateTab(tabID, func(t *Tab) { t.Muted = muted })
}

func (m *Memory) Reload(ctx context.Context, tabID int) error {
	return m.updateTab(tabID, func(t *Tab) {})
}

func (m *Memory) updateTab(tabID int, fn func(*Tab)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tabs {
		if m.tabs[i].ID == tabID {
			fn(&m.tabs[i])
			return nil
		}
	}
	return fmt.Errorf("tab %d not found", tabID)
}

// Windows implementation.

func (m *Memory) CreateWindow(ctx context.Context, incognito bool) error {
	_, err := m.Create(ctx, "")
	return err
}

func (m *Memory) CloseWindow(ctx context.Context, windowID int) error {
	return nil
}

// Bookmarks implementation.

func (m *Memory) Tree(ctx context.Context) ([]BookmarkNode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]BookmarkNode, len(m.bookmarks))
	copy(out, m.bookmarks)
	return out, nil
}

func (m *Memory) CreateBookmark(ctx context.Context, title, url string) (BookmarkNode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	node := BookmarkNode{ID: fmt.Sprintf("%d", m.nextBookmarkID), Title: title, URL: url}
	m.nextBookmarkID++
	m.bookmarks = append(m.bookmarks, node)
	return node, nil
}

func (m *Memory) RemoveBookmark(ctx context.Context, bookmarkID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed bool
	m.bookmarks, removed = removeNode(m.bookmarks, bookmarkID)
	if !removed {
		return fmt.Errorf("bookmark %s not found", bookmarkID)
	}
	return nil
}

func removeNode(nodes []BookmarkNode, id string) ([]BookmarkNode, bool) {
	out := make([]BookmarkNode, 0, len(nodes))
	removed := false
	for _, n := range nodes {
		if n.ID == id {
			removed = true
			continue
		}
		var sub bool
		n.Children, sub = removeNode(n.Children, id)
		removed = removed || sub
		out = append(out, n)
	}
	return out, removed
}

// History implementation.

func (m *Memory) Search(ctx context.Context, text string, maxResults int) ([]HistoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []HistoryItem
	for _, h := range m.history {
		if text == "" || containsFold(h.Title, text) || containsFold(h.URL, text) {
			out = append(out, h)
		}
		if maxResults > 0 && len(out) >= maxResults {
			break
		}
	}
	return out, nil
}

func (m *Memory) DeleteURL(ctx context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]HistoryItem, 0, len(m.history))
	for _, h := range m.history {
		if h.URL != url {
			items = append(items, h)
		}
	}
	m.history = items
	return nil
}

func (m *Memory) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = nil
	return nil
}

// BrowsingData implementation.

func (m *Memory) RemoveCache(ctx context.Context) error {
	if !m.DataSupported {
		return ErrUnsupported
	}
	return nil
}

func (m *Memory) RemoveCookies(ctx context.Context) error {
	if !m.DataSupported {
		return ErrUnsupported
	}
	return nil
}

func (m *Memory) Remove(ctx context.Context, since time.Time) error {
	if !m.DataSupported {
		return ErrUnsupported
	}
	return m.DeleteAll(ctx)
}

// Zoom implementation.

func (m *Memory) Get(ctx context.Context, tabID int) (float64, error) {
	if !m.ZoomSupported {
		return 0, ErrUnsupported
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if z, ok := m.zoom[tabID]; ok {
		return z, nil
	}
	return ZoomDefault, nil
}

func (m *Memory) Set(ctx context.Context, tabID int, factor float64) error {
	if !m.ZoomSupported {
		return ErrUnsupported
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zoom[tabID] = factor
	return nil
}

// ZoomFactor reports the stored factor for assertions.
func (m *Memory) ZoomFactor(tabID int) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if z, ok := m.zoom[tabID]; ok {
		return z
	}
	return ZoomDefault
}

// Navigation implementation.

func (m *Memory) Back(ctx context.Context, tabID int) error {
	return m.Run(ctx, tabID, "go-back")
}

func (m *Memory) Forward(ctx context.Context, tabID int) error {
	return m.Run(ctx, tabID, "go-forward")
}

func (m *Memory) Home(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tabs {
		if m.tabs[i].Active {
			m.tabs[i].URL = m.homepage
			m.tabs[i].Title = "New Tab"
		}
	}
	return nil
}

func (m *Memory) Open(ctx context.Context, url string, newTab bool) error {
	if newTab {
		_, err := m.Create(ctx, url)
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tabs {
		if m.tabs[i].Active {
			m.tabs[i].URL = url
			m.tabs[i].Title = url
		}
	}
	return nil
}

// Page implementation.

func (m *Memory) Run(ctx context.Context, tabID int, action string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PageActions = append(m.PageActions, action)
	return nil
}

// Capabilities returns the full Browser surface backed by this Memory.
func (m *Memory) Capabilities() Browser {
	return Browser{
		Tabs:      m,
		Windows:   windowsAdapter{m},
		Bookmarks: bookmarksAdapter{m},
		History:   m,
		Data:      m,
		Zoom:      m,
		Nav:       m,
		Page:      m,
	}
}

// windowsAdapter and bookmarksAdapter rename methods that would otherwise
// collide on the Memory receiver.
type windowsAdapter struct{ m *Memory }

func (w windowsAdapter) Create(ctx context.Context, incognito bool) error {
	return w.m.CreateWindow(ctx, incognito)
}

func (w windowsAdapter) Close(ctx context.Context, windowID int) error {
	return w.m.CloseWindow(ctx, windowID)
}

type bookmarksAdapter struct{ m *Memory }

func (b bookmarksAdapter) Tree(ctx context.Context) ([]BookmarkNode, error) {
	return b.m.Tree(ctx)
}

func (b bookmarksAdapter) Create(ctx context.Context, title, url string) (BookmarkNode, error) {
	return b.m.CreateBookmark(ctx, title, url)
}

func (b bookmarksAdapter) Remove(ctx context.Context, bookmarkID string) error {
	return b.m.RemoveBookmark(ctx, bookmarkID)
}
