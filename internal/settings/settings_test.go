package settings

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tabdeck/tabdeck/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGet_WritesDefaultOnFirstRead(t *testing.T) {
	s := newTestStore(t)

	var mode DisplayMode
	if err := s.Get(KeyDisplayMode, &mode); err != nil {
		t.Fatal(err)
	}
	if mode != ModeStandard {
		t.Errorf("expected default %q, got %q", ModeStandard, mode)
	}

	// The default must now be persisted, not just returned.
	var raw string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", KeyDisplayMode).Scan(&raw)
	if err != nil {
		t.Fatalf("default was not persisted: %v", err)
	}
	if raw != `"standard"` {
		t.Errorf("persisted value = %s", raw)
	}
}

func TestGet_ThemeAndBackgroundDefaults(t *testing.T) {
	s := newTestStore(t)

	var theme string
	if err := s.Get(KeyTheme, &theme); err != nil {
		t.Fatal(err)
	}
	if theme != "light" {
		t.Errorf("expected default theme %q, got %q", "light", theme)
	}

	var bg BackgroundConfig
	if err := s.Get(KeyBackgroundConfig, &bg); err != nil {
		t.Fatal(err)
	}
	if len(bg.Blur) != 1 || bg.Blur[0] != 0 {
		t.Errorf("expected blur [0], got %v", bg.Blur)
	}
	if len(bg.Opacity) != 1 || bg.Opacity[0] != 0 {
		t.Errorf("expected opacity [0], got %v", bg.Opacity)
	}
	if bg.Background == "" {
		t.Error("expected a non-empty default background")
	}

	// The persisted document keeps the slider-array shape.
	var raw string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", KeyBackgroundConfig).Scan(&raw)
	if err != nil {
		t.Fatalf("default was not persisted: %v", err)
	}
	for _, field := range []string{`"blur":[0]`, `"opacity":[0]`, `"background"`} {
		if !strings.Contains(raw, field) {
			t.Errorf("persisted background config misses %s: %s", field, raw)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	s := newTestStore(t)
	var out string
	if err := s.Get("noSuchKey", &out); err == nil {
		t.Error("expected an error for an unregistered key")
	}
}

func TestSet_WholeValueReplace(t *testing.T) {
	s := newTestStore(t)

	first := []model.FavoriteGroup{{ID: "g1", Label: "Work"}}
	if err := s.Set(KeyFavorites, first); err != nil {
		t.Fatal(err)
	}
	second := []model.FavoriteGroup{{ID: "g2", Label: "Home"}}
	if err := s.Set(KeyFavorites, second); err != nil {
		t.Fatal(err)
	}

	var got []model.FavoriteGroup
	if err := s.Get(KeyFavorites, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "g2" {
		t.Errorf("expected the replacing list, got %+v", got)
	}
}

func TestWatch_NotifiedOnSet(t *testing.T) {
	s := newTestStore(t)

	var keys []string
	s.Watch(func(key string) { keys = append(keys, key) })

	if err := s.Set(KeyTheme, "dark"); err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0] != KeyTheme {
		t.Errorf("expected one notification for %s, got %v", KeyTheme, keys)
	}
}

func TestApplyExternal_SuppressesEchoWrites(t *testing.T) {
	s := newTestStore(t)

	// A watcher that writes back on every change would loop forever without
	// the pause.
	s.Watch(func(key string) {
		if key == KeyTheme {
			s.Set(KeyTheme, "echoed")
		}
	})

	if err := s.ApplyExternal(KeyTheme, json.RawMessage(`"external"`)); err != nil {
		t.Fatal(err)
	}

	var theme string
	if err := s.Get(KeyTheme, &theme); err != nil {
		t.Fatal(err)
	}
	if theme != "external" {
		t.Errorf("echo write must be dropped, got %q", theme)
	}
}

func TestApplyExternal_WritesResumeAfterApply(t *testing.T) {
	s := newTestStore(t)

	if err := s.ApplyExternal(KeyTheme, json.RawMessage(`"external"`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyTheme, "local"); err != nil {
		t.Fatal(err)
	}

	var theme string
	if err := s.Get(KeyTheme, &theme); err != nil {
		t.Fatal(err)
	}
	if theme != "local" {
		t.Errorf("writes must resume after the apply, got %q", theme)
	}
}

func TestLoadStore_Defaults(t *testing.T) {
	s := newTestStore(t)
	store, err := s.LoadStore()
	if err != nil {
		t.Fatal(err)
	}
	if len(store.Groups) != 0 || len(store.Sites) != 0 {
		t.Errorf("fresh store should be empty, got %d groups %d sites", len(store.Groups), len(store.Sites))
	}
}

func TestSaveStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	store := model.NewStore()
	store.AddGroup(model.FavoriteGroup{ID: "g1", Label: "Work", Icon: "briefcase"})
	store.AddSite(model.SiteShortcut{ID: "s1", Title: "GitHub", URL: "https://github.com", GroupID: "g1"})

	if err := s.SaveStore(store); err != nil {
		t.Fatal(err)
	}
	loaded, err := s.LoadStore()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Groups) != 1 || loaded.Groups[0].Label != "Work" {
		t.Errorf("groups round trip failed: %+v", loaded.Groups)
	}
	if len(loaded.Sites) != 1 || loaded.Sites[0].GroupID != "g1" {
		t.Errorf("sites round trip failed: %+v", loaded.Sites)
	}
}

func TestWallpaperColorsDefault(t *testing.T) {
	s := newTestStore(t)
	var colors []string
	if err := s.Get(KeyWallpaperColors, &colors); err != nil {
		t.Fatal(err)
	}
	if len(colors) != 9 {
		t.Errorf("expected 9 default colors, got %d", len(colors))
	}
}
