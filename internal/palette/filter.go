package palette

import (
	"sort"
	"strings"
)

// Mode is a slash-prefix that narrows the candidate set.
type Mode string

const (
	ModeNone      Mode = ""
	ModeTabs      Mode = "/tabs"
	ModeBookmarks Mode = "/bookmarks"
	ModeHistory   Mode = "/history"
	ModeActions   Mode = "/actions"
	ModeRemove    Mode = "/remove"
	ModeClose     Mode = "/close"
	ModeDelete    Mode = "/delete"
)

// modes lists every prefix in match-priority order. Only one can match a
// given query, but first-listed wins if that ever changes.
var modes = []Mode{
	ModeTabs, ModeBookmarks, ModeHistory, ModeActions,
	ModeRemove, ModeClose, ModeDelete,
}

// Destructive reports whether dispatching in this mode overrides the
// candidate's verb with its kind's destructive counterpart.
func (m Mode) Destructive() bool {
	return m == ModeRemove || m == ModeClose || m == ModeDelete
}

// admits reports whether the mode keeps candidates of the given kind. The
// destructive aliases admit everything that can be destroyed; /actions keeps
// only the static commands.
func (m Mode) admits(k Kind) bool {
	switch m {
	case ModeNone:
		return true
	case ModeTabs:
		return k == KindTab
	case ModeBookmarks:
		return k == KindBookmark
	case ModeHistory:
		return k == KindHistory
	case ModeActions:
		return k == KindStatic
	default:
		return k == KindTab || k == KindBookmark || k == KindHistory
	}
}

// ParseQuery splits a raw query into its mode and search term. Matching is
// case-insensitive; the term is the remainder with surrounding space removed.
func ParseQuery(query string) (Mode, string) {
	lower := strings.ToLower(query)
	for _, m := range modes {
		if strings.HasPrefix(lower, string(m)) {
			return m, strings.TrimSpace(query[len(m):])
		}
	}
	return ModeNone, strings.TrimSpace(query)
}

// Match reports whether term matches text, and whether the match is an exact
// substring. An empty term matches everything. The fallback is an in-order
// subsequence check; there is no typo tolerance.
func Match(text, term string) (matched, exact bool) {
	if term == "" {
		return true, false
	}
	text = strings.ToLower(text)
	term = strings.ToLower(term)
	if strings.Contains(text, term) {
		return true, true
	}
	want := []rune(term)
	i := 0
	for _, r := range text {
		if i < len(want) && r == want[i] {
			i++
		}
	}
	return i == len(want), false
}

// matchAction checks the term against title, description and URL.
func matchAction(a Action, term string) (matched, exact bool) {
	m := a.ActionMeta()
	for _, text := range []string{m.Title, m.Description, m.URL} {
		ok, ex := Match(text, term)
		if ex {
			return true, true
		}
		matched = matched || ok
	}
	return matched, false
}

// kindPriority orders the kinds for the unfiltered view.
func kindPriority(k Kind) int {
	switch k {
	case KindTab:
		return 0
	case KindBookmark:
		return 1
	case KindHistory:
		return 2
	default:
		return 3
	}
}

// Filter narrows and ranks candidates for a query. It is pure: the input
// slice is never modified and a second application to its own output yields
// the same sequence.
func Filter(actions []Action, query string) []Action {
	mode, term := ParseQuery(query)

	out := make([]Action, 0, len(actions))
	exactByID := make(map[string]bool)
	for _, a := range actions {
		if !mode.admits(a.ActionKind()) {
			continue
		}
		matched, exact := matchAction(a, term)
		if !matched {
			continue
		}
		if exact {
			exactByID[a.ActionMeta().ID] = true
		}
		out = append(out, a)
	}

	if term == "" {
		sort.SliceStable(out, func(i, j int) bool {
			ki, kj := kindPriority(out[i].ActionKind()), kindPriority(out[j].ActionKind())
			if ki != kj {
				return ki < kj
			}
			ti, iIsTab := out[i].(TabAction)
			tj, jIsTab := out[j].(TabAction)
			if iIsTab && jIsTab && ti.Active != tj.Active {
				return ti.Active
			}
			return lowerTitle(out[i]) < lowerTitle(out[j])
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		ei, ej := exactByID[out[i].ActionMeta().ID], exactByID[out[j].ActionMeta().ID]
		if ei != ej {
			return ei
		}
		ti, tj := out[i].ActionMeta().Title, out[j].ActionMeta().Title
		if ei && ej && len(ti) != len(tj) {
			return len(ti) < len(tj)
		}
		return lowerTitle(out[i]) < lowerTitle(out[j])
	})
	return out
}

func lowerTitle(a Action) string {
	return strings.ToLower(a.ActionMeta().Title)
}
