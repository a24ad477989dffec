package model

// Store holds all favorite groups and site shortcuts. Mutations replace the
// whole slice (copy-on-write); the persistence layer only supports
// whole-collection writes.
type Store struct {
	Groups []FavoriteGroup `json:"favorites"`
	Sites  []SiteShortcut  `json:"sites"`
}

// NewStore creates an empty Store with initialized slices.
func NewStore() *Store {
	return &Store{
		Groups: []FavoriteGroup{},
		Sites:  []SiteShortcut{},
	}
}

// AddGroup appends a group via copy-on-write.
func (s *Store) AddGroup(g FavoriteGroup) {
	groups := make([]FavoriteGroup, 0, len(s.Groups)+1)
	groups = append(groups, s.Groups...)
	s.Groups = append(groups, g)
}

// AddSite appends a site shortcut via copy-on-write.
func (s *Store) AddSite(site SiteShortcut) {
	sites := make([]SiteShortcut, 0, len(s.Sites)+1)
	sites = append(sites, s.Sites...)
	s.Sites = append(sites, site)
}

// RemoveGroup deletes a group by ID. Shortcuts referencing the group are left
// in place with a dangling GroupID; SitesInGroup simply stops returning them.
func (s *Store) RemoveGroup(id string) {
	groups := make([]FavoriteGroup, 0, len(s.Groups))
	for _, g := range s.Groups {
		if g.ID != id {
			groups = append(groups, g)
		}
	}
	s.Groups = groups
}

// RemoveSite deletes a site shortcut by ID.
func (s *Store) RemoveSite(id string) {
	sites := make([]SiteShortcut, 0, len(s.Sites))
	for _, site := range s.Sites {
		if site.ID != id {
			sites = append(sites, site)
		}
	}
	s.Sites = sites
}

// SitesInGroup returns shortcuts belonging to the given group.
func (s *Store) SitesInGroup(groupID string) []SiteShortcut {
	var result []SiteShortcut
	for _, site := range s.Sites {
		if site.GroupID == groupID {
			result = append(result, site)
		}
	}
	return result
}

// GetGroupByID finds a group by ID, returns nil if not found.
func (s *Store) GetGroupByID(id string) *FavoriteGroup {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return &s.Groups[i]
		}
	}
	return nil
}

// GetGroupByLabel finds a group by its exact label, returns nil if not found.
func (s *Store) GetGroupByLabel(label string) *FavoriteGroup {
	for i := range s.Groups {
		if s.Groups[i].Label == label {
			return &s.Groups[i]
		}
	}
	return nil
}

// GetSiteByID finds a site shortcut by ID, returns nil if not found.
func (s *Store) GetSiteByID(id string) *SiteShortcut {
	for i := range s.Sites {
		if s.Sites[i].ID == id {
			return &s.Sites[i]
		}
	}
	return nil
}
