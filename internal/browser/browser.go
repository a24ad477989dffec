// Package browser defines the capability surface the palette drives. The
// real browser sits on the other side of these interfaces; this package only
// describes what it can do, plus an in-memory implementation for tests and
// the terminal front end.
package browser

import (
	"context"
	"errors"
	"time"
)

// ErrUnsupported marks a capability the current browser does not provide.
// Callers treat it as a degraded capability, not a failure.
var ErrUnsupported = errors.New("capability not supported")

// Tab is a snapshot of one open tab.
type Tab struct {
	ID       int
	WindowID int
	Index    int
	Title    string
	URL      string
	Active   bool
	Pinned   bool
	Muted    bool
}

// BookmarkNode is one node of the bookmark tree. Folder nodes have an empty
// URL and carry Children.
type BookmarkNode struct {
	ID       string
	ParentID string
	Title    string
	URL      string
	Children []BookmarkNode
}

// HistoryItem is one entry of the browsing history.
type HistoryItem struct {
	ID            string
	Title         string
	URL           string
	VisitCount    int
	LastVisitTime time.Time
}

// Tabs covers the tab query/mutation surface.
type Tabs interface {
	Query(ctx context.Context) ([]Tab, error)
	Active(ctx context.Context) (Tab, error)
	Activate(ctx context.Context, tabID int) error
	Create(ctx context.Context, url string) (Tab, error)
	Close(ctx context.Context, tabID int) error
	Duplicate(ctx context.Context, tabID int) (Tab, error)
	SetPinned(ctx context.Context, tabID int, pinned bool) error
	SetMuted(ctx context.Context, tabID int, muted bool) error
	Reload(ctx context.Context, tabID int) error
}

// Windows covers window creation and teardown.
type Windows interface {
	Create(ctx context.Context, incognito bool) error
	Close(ctx context.Context, windowID int) error
}

// Bookmarks covers the bookmark tree.
type Bookmarks interface {
	Tree(ctx context.Context) ([]BookmarkNode, error)
	Create(ctx context.Context, title, url string) (BookmarkNode, error)
	Remove(ctx context.Context, bookmarkID string) error
}

// History covers browsing history queries and deletion.
type History interface {
	Search(ctx context.Context, text string, maxResults int) ([]HistoryItem, error)
	DeleteURL(ctx context.Context, url string) error
	DeleteAll(ctx context.Context) error
}

// BrowsingData clears cached state. Implementations may return
// ErrUnsupported; callers degrade gracefully.
type BrowsingData interface {
	RemoveCache(ctx context.Context) error
	RemoveCookies(ctx context.Context) error
	Remove(ctx context.Context, since time.Time) error
}

// Zoom reads and writes the zoom factor of a tab. Implementations may return
// ErrUnsupported.
type Zoom interface {
	Get(ctx context.Context, tabID int) (float64, error)
	Set(ctx context.Context, tabID int, factor float64) error
}

// Navigation moves the active tab through its session history or to a URL.
type Navigation interface {
	Back(ctx context.Context, tabID int) error
	Forward(ctx context.Context, tabID int) error
	Home(ctx context.Context) error
	Open(ctx context.Context, url string, newTab bool) error
}

// Page runs an action that needs in-page execution (clipboard, print,
// fullscreen, find, devtools panels). The verb vocabulary is shared with the
// palette dispatcher.
type Page interface {
	Run(ctx context.Context, tabID int, action string) error
}

// Browser bundles the full capability surface. Optional capabilities
// (BrowsingData, Zoom) may be nil.
type Browser struct {
	Tabs      Tabs
	Windows   Windows
	Bookmarks Bookmarks
	History   History
	Data      BrowsingData
	Zoom      Zoom
	Nav       Navigation
	Page      Page
}
