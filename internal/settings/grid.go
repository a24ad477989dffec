package settings

// GridLayoutConfig shapes the shortcut grid for one display mode. MaxRows
// of 0 means unbounded.
type GridLayoutConfig struct {
	Rows    int `json:"rows"`
	Cols    int `json:"cols"`
	Gap     int `json:"gap"`
	MaxRows int `json:"maxRows,omitempty"`
}

// Per-mode grid bounds. The favorites mode grows rows without limit because
// every group gets its own band of rows.
const (
	maxColsStandard = 8
	maxRowsStandard = 8
	maxColsFavorite = 8
	maxColsMinimal  = 6
	maxRowsMinimal  = 4
	maxGap          = 64
)

// ClampGrid constrains a grid config to the bounds of its display mode.
// Out-of-range values come from hand-edited settings or older versions; they
// are corrected, not rejected.
func ClampGrid(mode DisplayMode, c GridLayoutConfig) GridLayoutConfig {
	if c.Rows < 1 {
		c.Rows = 1
	}
	if c.Cols < 1 {
		c.Cols = 1
	}
	if c.Gap < 0 {
		c.Gap = 0
	}
	if c.Gap > maxGap {
		c.Gap = maxGap
	}

	switch mode {
	case ModeFavorites:
		if c.Cols > maxColsFavorite {
			c.Cols = maxColsFavorite
		}
	case ModeMinimal:
		if c.Rows > maxRowsMinimal {
			c.Rows = maxRowsMinimal
		}
		if c.Cols > maxColsMinimal {
			c.Cols = maxColsMinimal
		}
	default:
		if c.Rows > maxRowsStandard {
			c.Rows = maxRowsStandard
		}
		if c.Cols > maxColsStandard {
			c.Cols = maxColsStandard
		}
	}

	if c.MaxRows > 0 && c.Rows > c.MaxRows {
		c.Rows = c.MaxRows
	}
	return c
}

// gridKey maps a display mode to its settings key.
func gridKey(mode DisplayMode) string {
	switch mode {
	case ModeFavorites:
		return KeyFavoritesConfig
	case ModeMinimal:
		return KeyMinimalConfig
	default:
		return KeyStandardConfig
	}
}

// GridConfig reads the clamped grid config for a mode.
func (s *Store) GridConfig(mode DisplayMode) (GridLayoutConfig, error) {
	var c GridLayoutConfig
	if err := s.Get(gridKey(mode), &c); err != nil {
		return GridLayoutConfig{}, err
	}
	return ClampGrid(mode, c), nil
}

// SetGridConfig clamps and stores a grid config for a mode.
func (s *Store) SetGridConfig(mode DisplayMode, c GridLayoutConfig) error {
	return s.Set(gridKey(mode), ClampGrid(mode, c))
}
