package palette

import "time"

// Key-repeat timing. Holding an arrow key yields one immediate step, then
// after RepeatInitialDelay fires further steps every RepeatInterval until
// key-up.
const (
	RepeatInitialDelay = 300 * time.Millisecond
	RepeatInterval     = 150 * time.Millisecond
)

// Direction of a selection step.
type Direction int

const (
	DirNext Direction = iota
	DirPrev
)

// Repeater models the held-key repeat cycle. It is driven by explicit key
// events plus a timer tick; the caller supplies the clock, so tests can step
// time deterministically.
type Repeater struct {
	held bool
	dir  Direction
	next time.Time
}

// KeyDown records a press. It returns true when the press should step the
// selection immediately; repeated KeyDown events for an already-held key
// (terminal auto-repeat) are ignored because the timer owns the cadence.
func (r *Repeater) KeyDown(dir Direction, now time.Time) bool {
	if r.held && r.dir == dir {
		return false
	}
	r.held = true
	r.dir = dir
	r.next = now.Add(RepeatInitialDelay)
	return true
}

// KeyUp releases the key. A release of a direction that is not held is a
// no-op, so out-of-order events are harmless.
func (r *Repeater) KeyUp(dir Direction) {
	if r.held && r.dir == dir {
		r.held = false
	}
}

// Tick advances the cycle to now and returns how many steps are due. More
// than one step comes back when ticks arrive late.
func (r *Repeater) Tick(now time.Time) (steps int, dir Direction) {
	if !r.held {
		return 0, r.dir
	}
	for !now.Before(r.next) {
		steps++
		r.next = r.next.Add(RepeatInterval)
	}
	return steps, r.dir
}

// Active reports whether a key is held.
func (r *Repeater) Active() bool { return r.held }

// Deadline returns the time of the next due step while a key is held.
func (r *Repeater) Deadline() (time.Time, bool) {
	if !r.held {
		return time.Time{}, false
	}
	return r.next, true
}
