// Package palette implements the command palette engine: candidate
// aggregation, query filtering, selection state and dispatch against the
// browser capability surface.
package palette

import "time"

// Kind tags the four action variants.
type Kind int

const (
	KindStatic Kind = iota
	KindTab
	KindBookmark
	KindHistory
)

// String returns the wire/display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTab:
		return "tab"
	case KindBookmark:
		return "bookmark"
	case KindHistory:
		return "history"
	default:
		return "action"
	}
}

// Meta carries the fields every action variant shares. Actions are created
// fresh on each aggregation pass and never mutated.
type Meta struct {
	ID          string
	Title       string
	Description string
	Verb        string
	URL         string
	Category    string
	Emoji       string
	Shortcut    []string
}

// ActionMeta implements Action for every variant embedding Meta.
func (m Meta) ActionMeta() Meta { return m }

// Action is one selectable palette candidate.
type Action interface {
	ActionKind() Kind
	ActionMeta() Meta
}

// Static is a built-in command (e.g. "New Tab").
type Static struct {
	Meta
}

func (Static) ActionKind() Kind { return KindStatic }

// TabAction is an open tab.
type TabAction struct {
	Meta
	TabID    int
	WindowID int
	Index    int
	Pinned   bool
	Muted    bool
	Active   bool
}

func (TabAction) ActionKind() Kind { return KindTab }

// BookmarkAction is a bookmark tree entry.
type BookmarkAction struct {
	Meta
	BookmarkID string
	ParentID   string
}

func (BookmarkAction) ActionKind() Kind { return KindBookmark }

// HistoryAction is a browsing history entry.
type HistoryAction struct {
	Meta
	VisitCount    int
	LastVisitTime time.Time
}

func (HistoryAction) ActionKind() Kind { return KindHistory }
