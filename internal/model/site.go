package model

// SiteShortcut is one tile on the new-tab grid. GroupID is a back-reference
// to a FavoriteGroup by ID; it is a lookup key, not ownership.
type SiteShortcut struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
	GroupID  string `json:"favoriteGroupId"`
}

// NewSiteParams holds parameters for creating a new SiteShortcut.
type NewSiteParams struct {
	Title    string
	URL      string
	ImageURL string
	GroupID  string
}

// NewSite creates a SiteShortcut with a generated UUID.
func NewSite(params NewSiteParams) SiteShortcut {
	return SiteShortcut{
		ID:       GenerateUUID(),
		Title:    params.Title,
		URL:      params.URL,
		ImageURL: params.ImageURL,
		GroupID:  params.GroupID,
	}
}
