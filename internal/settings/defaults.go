package settings

import "github.com/tabdeck/tabdeck/internal/model"

// Settings keys. Each key maps to one whole JSON document.
const (
	KeyFavorites        = "favorites"
	KeySites            = "sites"
	KeyDisplayMode      = "displayMode"
	KeyStandardConfig   = "standardConfig"
	KeyFavoritesConfig  = "favoritesConfig"
	KeyMinimalConfig    = "minimalConfig"
	KeyBackgroundConfig = "backgroundConfig"
	KeyTheme            = "theme"
	KeySelectedEngine   = "selectedEngine"
	KeySearchEngines    = "searchEngines"
	KeyWallpaperColors  = "wallpaperColors"
)

// DisplayMode selects how the shortcut grid is rendered.
type DisplayMode string

const (
	ModeStandard  DisplayMode = "standard"
	ModeFavorites DisplayMode = "favorites"
	ModeMinimal   DisplayMode = "minimal"
)

// BackgroundConfig describes the page background. Blur and Opacity are
// single-element slider values; Background is a color or image URL.
type BackgroundConfig struct {
	Blur       []int  `json:"blur"`
	Opacity    []int  `json:"opacity"`
	Background string `json:"background"`
}

// SearchEngine is one entry of the engine picker. URL carries a %s
// placeholder for the query.
type SearchEngine struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// defaults maps every key to a constructor for its initial value. The
// constructor runs on first read of a missing key.
var defaults = map[string]func() any{
	KeyFavorites:   func() any { return []model.FavoriteGroup{} },
	KeySites:       func() any { return []model.SiteShortcut{} },
	KeyDisplayMode: func() any { return ModeStandard },
	KeyStandardConfig: func() any {
		return GridLayoutConfig{Rows: 2, Cols: 4, Gap: 16, MaxRows: 8}
	},
	KeyFavoritesConfig: func() any {
		return GridLayoutConfig{Rows: 2, Cols: 4, Gap: 16}
	},
	KeyMinimalConfig: func() any {
		return GridLayoutConfig{Rows: 2, Cols: 4, Gap: 16, MaxRows: 4}
	},
	KeyBackgroundConfig: func() any {
		return BackgroundConfig{Blur: []int{0}, Opacity: []int{0}, Background: "#1a1a2e"}
	},
	KeyTheme:          func() any { return "light" },
	KeySelectedEngine: func() any { return "google" },
	KeySearchEngines: func() any {
		return []SearchEngine{
			{ID: "google", Name: "Google", URL: "https://www.google.com/search?q=%s"},
			{ID: "duckduckgo", Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q=%s"},
			{ID: "bing", Name: "Bing", URL: "https://www.bing.com/search?q=%s"},
		}
	},
	KeyWallpaperColors: func() any { return DefaultWallpaperColors() },
}

// DefaultWallpaperColors returns the built-in color palette shown in the
// wallpaper picker.
func DefaultWallpaperColors() []string {
	return []string{
		"#667eea", "#764ba2", "#f093fb",
		"#f5576c", "#4facfe", "#00f2fe",
		"#43e97b", "#fa709a", "#1a1a2e",
	}
}
