package settings

import "github.com/tabdeck/tabdeck/internal/model"

// Typed accessors for the favorites and sites collections. Every mutation
// replaces the whole list, mirroring the copy-on-write semantics of
// model.Store.

// LoadStore reads the favorite groups and site shortcuts into a model.Store.
func (s *Store) LoadStore() (*model.Store, error) {
	store := model.NewStore()
	if err := s.Get(KeyFavorites, &store.Groups); err != nil {
		return nil, err
	}
	if err := s.Get(KeySites, &store.Sites); err != nil {
		return nil, err
	}
	return store, nil
}

// SaveStore writes both collections back.
func (s *Store) SaveStore(store *model.Store) error {
	if err := s.Set(KeyFavorites, store.Groups); err != nil {
		return err
	}
	return s.Set(KeySites, store.Sites)
}

// DisplayMode reads the active display mode.
func (s *Store) DisplayMode() (DisplayMode, error) {
	var mode DisplayMode
	if err := s.Get(KeyDisplayMode, &mode); err != nil {
		return "", err
	}
	return mode, nil
}

// SetDisplayMode stores the active display mode.
func (s *Store) SetDisplayMode(mode DisplayMode) error {
	return s.Set(KeyDisplayMode, mode)
}
