package palette

import (
	"strings"
	"time"
)

// KeyboardNavDecay is how long after the last keyboard-driven selection step
// mouse-hover selection stays suppressed. It keeps hover from fighting a
// repeat-key scroll burst.
const KeyboardNavDecay = 500 * time.Millisecond

// Controller holds the palette's open/closed state, the query, the filtered
// candidates and the selection. It is not safe for concurrent use; the
// front end drives it from a single update loop and runs aggregation in the
// background, handing results back through ApplyActions.
type Controller struct {
	// Now is the clock used for keyboard-burst tracking. Nil means time.Now.
	Now func() time.Time

	isOpen  bool
	visible bool
	loading bool

	query         string
	all           []Action
	filtered      []Action
	selectedIndex int

	lastKeyboardNav time.Time
	repeat          Repeater
}

// NewController returns a controller for a visible host.
func NewController() *Controller {
	return &Controller{visible: true}
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Open transitions to the open state with a fresh query and selection. It
// returns true when the caller should start an aggregation pass; opening an
// already-open palette or a palette on a hidden host is a no-op.
func (c *Controller) Open() bool {
	if c.isOpen || !c.visible {
		return false
	}
	c.isOpen = true
	c.loading = true
	c.query = ""
	c.selectedIndex = 0
	c.all = nil
	c.filtered = nil
	return true
}

// Close resets all transient state. Reopening always starts fresh.
func (c *Controller) Close() {
	c.isOpen = false
	c.loading = false
	c.query = ""
	c.selectedIndex = 0
	c.all = nil
	c.filtered = nil
	c.repeat = Repeater{}
}

// Toggle opens or closes. The bool mirrors Open's meaning and is always
// false on a close.
func (c *Controller) Toggle() bool {
	if c.isOpen {
		c.Close()
		return false
	}
	return c.Open()
}

// SetVisible tracks host visibility. Going hidden while open force-closes.
func (c *Controller) SetVisible(visible bool) {
	c.visible = visible
	if !visible && c.isOpen {
		c.Close()
	}
}

// ApplyActions installs an aggregation result. Results that arrive after the
// palette closed are discarded.
func (c *Controller) ApplyActions(actions []Action) {
	if !c.isOpen {
		return
	}
	c.loading = false
	c.all = actions
	c.filtered = Filter(actions, c.query)
	c.selectedIndex = 0
}

// SetQuery updates the query, re-filters and resets the selection.
func (c *Controller) SetQuery(query string) {
	c.query = query
	c.filtered = Filter(c.all, query)
	c.selectedIndex = 0
}

// Query returns the current raw query.
func (c *Controller) Query() string { return c.query }

// Mode returns the active slash-mode of the current query.
func (c *Controller) Mode() Mode {
	mode, _ := ParseQuery(c.query)
	return mode
}

// IsOpen reports the palette state.
func (c *Controller) IsOpen() bool { return c.isOpen }

// Loading reports whether an aggregation pass is outstanding.
func (c *Controller) Loading() bool { return c.loading }

// Filtered returns the ranked candidates for the current query.
func (c *Controller) Filtered() []Action { return c.filtered }

// SelectedIndex returns the current selection index.
func (c *Controller) SelectedIndex() int { return c.selectedIndex }

// Selected returns the currently selected action.
func (c *Controller) Selected() (Action, bool) {
	if c.selectedIndex < 0 || c.selectedIndex >= len(c.filtered) {
		return nil, false
	}
	return c.filtered[c.selectedIndex], true
}

// SelectNext moves the selection down, wrapping at the end.
func (c *Controller) SelectNext() {
	if len(c.filtered) == 0 {
		return
	}
	c.selectedIndex = (c.selectedIndex + 1) % len(c.filtered)
	c.lastKeyboardNav = c.now()
}

// SelectPrevious moves the selection up, wrapping at the start.
func (c *Controller) SelectPrevious() {
	if len(c.filtered) == 0 {
		return
	}
	if c.selectedIndex == 0 {
		c.selectedIndex = len(c.filtered) - 1
	} else {
		c.selectedIndex--
	}
	c.lastKeyboardNav = c.now()
}

// KeyboardNavigating reports whether a keyboard burst is still in flight.
// Front ends use it to pick instant over smooth scrolling.
func (c *Controller) KeyboardNavigating() bool {
	return c.repeat.Active() || c.now().Sub(c.lastKeyboardNav) < KeyboardNavDecay
}

// Hover moves the selection from a mouse-hover event. Hover is ignored while
// a keyboard burst is in flight and for out-of-range indexes.
func (c *Controller) Hover(index int) {
	if c.KeyboardNavigating() {
		return
	}
	if index < 0 || index >= len(c.filtered) {
		return
	}
	c.selectedIndex = index
}

// KeyDown feeds an arrow-key press to the repeat cycle, stepping immediately
// on a fresh press.
func (c *Controller) KeyDown(dir Direction) {
	if c.repeat.KeyDown(dir, c.now()) {
		c.step(dir)
	}
}

// KeyUp releases an arrow key.
func (c *Controller) KeyUp(dir Direction) {
	c.repeat.KeyUp(dir)
}

// TickRepeat fires due repeat steps. The front end schedules a wake-up for
// RepeatDeadline and calls this on each tick.
func (c *Controller) TickRepeat() {
	steps, dir := c.repeat.Tick(c.now())
	for i := 0; i < steps; i++ {
		c.step(dir)
	}
}

// RepeatDeadline exposes the next repeat step time for timer scheduling.
func (c *Controller) RepeatDeadline() (time.Time, bool) {
	return c.repeat.Deadline()
}

func (c *Controller) step(dir Direction) {
	if dir == DirNext {
		c.SelectNext()
	} else {
		c.SelectPrevious()
	}
}

// Autocomplete completes the query to the first slash-token that starts with
// and differs from it, returning true when a completion happened.
func (c *Controller) Autocomplete() bool {
	lower := strings.ToLower(c.query)
	for _, m := range modes {
		token := string(m)
		if strings.HasPrefix(token, lower) && token != lower {
			c.SetQuery(token + " ")
			return true
		}
	}
	return false
}
