package settings

import "testing"

func TestClampGrid_StandardBounds(t *testing.T) {
	c := ClampGrid(ModeStandard, GridLayoutConfig{Rows: 20, Cols: 20, Gap: 16})
	if c.Rows != 8 || c.Cols != 8 {
		t.Errorf("standard mode caps at 8x8, got %dx%d", c.Rows, c.Cols)
	}
}

func TestClampGrid_MinimalBounds(t *testing.T) {
	c := ClampGrid(ModeMinimal, GridLayoutConfig{Rows: 20, Cols: 20, Gap: 16})
	if c.Rows != 4 || c.Cols != 6 {
		t.Errorf("minimal mode caps at 4x6, got %dx%d", c.Rows, c.Cols)
	}
}

func TestClampGrid_FavoritesRowsUnbounded(t *testing.T) {
	c := ClampGrid(ModeFavorites, GridLayoutConfig{Rows: 50, Cols: 20, Gap: 16})
	if c.Rows != 50 {
		t.Errorf("favorites mode must not cap rows, got %d", c.Rows)
	}
	if c.Cols != 8 {
		t.Errorf("favorites mode caps cols at 8, got %d", c.Cols)
	}
}

func TestClampGrid_LowerBounds(t *testing.T) {
	c := ClampGrid(ModeStandard, GridLayoutConfig{Rows: 0, Cols: -3, Gap: -1})
	if c.Rows != 1 || c.Cols != 1 || c.Gap != 0 {
		t.Errorf("expected 1x1 gap 0, got %dx%d gap %d", c.Rows, c.Cols, c.Gap)
	}
}

func TestClampGrid_MaxRowsField(t *testing.T) {
	c := ClampGrid(ModeStandard, GridLayoutConfig{Rows: 6, Cols: 4, Gap: 16, MaxRows: 3})
	if c.Rows != 3 {
		t.Errorf("rows must respect MaxRows, got %d", c.Rows)
	}
}

func TestGridConfig_DefaultsPerMode(t *testing.T) {
	s := newTestStore(t)

	for _, mode := range []DisplayMode{ModeStandard, ModeFavorites, ModeMinimal} {
		c, err := s.GridConfig(mode)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if c.Rows != 2 || c.Cols != 4 || c.Gap != 16 {
			t.Errorf("%s: expected 2x4 gap 16, got %+v", mode, c)
		}
	}
}

func TestSetGridConfig_ClampsBeforeStoring(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetGridConfig(ModeMinimal, GridLayoutConfig{Rows: 9, Cols: 9, Gap: 16}); err != nil {
		t.Fatal(err)
	}
	c, err := s.GridConfig(ModeMinimal)
	if err != nil {
		t.Fatal(err)
	}
	if c.Rows != 4 || c.Cols != 6 {
		t.Errorf("stored config must be clamped, got %dx%d", c.Rows, c.Cols)
	}
}
