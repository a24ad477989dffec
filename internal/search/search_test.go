package search

import (
	"testing"

	"github.com/tabdeck/tabdeck/internal/model"
)

func TestFuzzySearchSites_EmptyQuery(t *testing.T) {
	store := model.NewStore()
	store.AddSite(model.SiteShortcut{
		ID:    "s1",
		Title: "GitHub",
		URL:   "https://github.com",
	})

	results := FuzzySearchSites(store, "")

	if len(results) != 0 {
		t.Errorf("expected 0 results for empty query, got %d", len(results))
	}
}

func TestFuzzySearchSites_ExactMatch(t *testing.T) {
	store := model.NewStore()
	store.AddSite(model.SiteShortcut{
		ID:    "s1",
		Title: "GitHub",
		URL:   "https://github.com",
	})
	store.AddSite(model.SiteShortcut{
		ID:    "s2",
		Title: "GitLab",
		URL:   "https://gitlab.com",
	})

	results := FuzzySearchSites(store, "GitHub")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Site.Title != "GitHub" {
		t.Errorf("expected GitHub, got %s", results[0].Site.Title)
	}
}

func TestFuzzySearchSites_FuzzyMatch(t *testing.T) {
	store := model.NewStore()
	store.AddSite(model.SiteShortcut{
		ID:    "s1",
		Title: "TanStack Router",
		URL:   "https://tanstack.com/router",
	})
	store.AddSite(model.SiteShortcut{
		ID:    "s2",
		Title: "Tailwind CSS",
		URL:   "https://tailwindcss.com",
	})

	results := FuzzySearchSites(store, "tsr")

	if len(results) == 0 {
		t.Fatal("expected at least 1 result for tsr")
	}
	if results[0].Site.Title != "TanStack Router" {
		t.Errorf("expected TanStack Router first, got %s", results[0].Site.Title)
	}
}

func TestFuzzySearchSites_MatchesURL(t *testing.T) {
	store := model.NewStore()
	store.AddSite(model.SiteShortcut{
		ID:    "s1",
		Title: "The Go Programming Language",
		URL:   "https://go.dev",
	})
	store.AddSite(model.SiteShortcut{
		ID:    "s2",
		Title: "Rust",
		URL:   "https://rust-lang.org",
	})

	results := FuzzySearchSites(store, "go.dev")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Site.ID != "s1" {
		t.Errorf("expected the site matched by URL, got %s", results[0].Site.ID)
	}
}

func TestFuzzySearchSites_NoMatch(t *testing.T) {
	store := model.NewStore()
	store.AddSite(model.SiteShortcut{
		ID:    "s1",
		Title: "GitHub",
		URL:   "https://github.com",
	})

	results := FuzzySearchSites(store, "zzzzzz")

	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}
