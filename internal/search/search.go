package search

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/tabdeck/tabdeck/internal/model"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Site           *model.SiteShortcut
	MatchedIndexes []int
	Score          int
}

// siteField adapts one field of a site shortcut slice to fuzzy.Source.
type siteField struct {
	sites []*model.SiteShortcut
	get   func(*model.SiteShortcut) string
}

func (f siteField) String(i int) string {
	return f.get(f.sites[i])
}

func (f siteField) Len() int {
	return len(f.sites)
}

// FuzzySearchSites searches all site shortcuts by title and URL using fuzzy
// matching. A site matching on both fields keeps its better score; matched
// indexes are reported for title matches only. Returns results sorted by
// match score (best first).
func FuzzySearchSites(store *model.Store, query string) []SearchResult {
	if query == "" {
		return nil
	}

	sites := make([]*model.SiteShortcut, len(store.Sites))
	for i := range store.Sites {
		sites[i] = &store.Sites[i]
	}

	byTitle := fuzzy.FindFrom(query, siteField{sites, func(s *model.SiteShortcut) string { return s.Title }})
	byURL := fuzzy.FindFrom(query, siteField{sites, func(s *model.SiteShortcut) string { return s.URL }})

	bySite := make(map[int]SearchResult, len(byTitle))
	for _, m := range byTitle {
		bySite[m.Index] = SearchResult{
			Site:           sites[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	for _, m := range byURL {
		if prev, ok := bySite[m.Index]; ok {
			if m.Score > prev.Score {
				prev.Score = m.Score
				bySite[m.Index] = prev
			}
			continue
		}
		bySite[m.Index] = SearchResult{Site: sites[m.Index], Score: m.Score}
	}

	results := make([]SearchResult, 0, len(bySite))
	for _, r := range bySite {
		results = append(results, r)
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Site.Title < results[j].Site.Title
	})
	return results
}
