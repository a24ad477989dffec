package model

// FavoriteGroup is a named bucket of site shortcuts, shown as a tab on the
// new-tab grid.
type FavoriteGroup struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Icon       string `json:"icon"`
	ActiveIcon string `json:"activeIcon"`
}

// NewGroupParams holds parameters for creating a new FavoriteGroup.
type NewGroupParams struct {
	Label      string
	Icon       string
	ActiveIcon string
}

// NewGroup creates a FavoriteGroup with a generated UUID.
func NewGroup(params NewGroupParams) FavoriteGroup {
	return FavoriteGroup{
		ID:         GenerateUUID(),
		Label:      params.Label,
		Icon:       params.Icon,
		ActiveIcon: params.ActiveIcon,
	}
}
