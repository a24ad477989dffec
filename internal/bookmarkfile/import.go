package bookmarkfile

import "github.com/tabdeck/tabdeck/internal/model"

// ImportResult counts what one import pass changed.
type ImportResult struct {
	GroupsCreated int
	SitesAdded    int
	SitesSkipped  int
}

// Import merges a parsed folder tree into the store. Folders match existing
// favorite groups by exact title; unmatched titles create a new group, so
// two same-named folders collapse into one group. Subfolders are flattened
// into groups of their own. A shortcut whose URL already exists in the
// target group is skipped, which makes re-importing the same file a no-op.
func Import(store *model.Store, folders []Folder) ImportResult {
	var result ImportResult
	for _, folder := range folders {
		importFolder(store, folder, &result)
	}
	return result
}

func importFolder(store *model.Store, folder Folder, result *ImportResult) {
	group := store.GetGroupByLabel(folder.Title)
	if group == nil {
		created := model.NewGroup(model.NewGroupParams{Label: folder.Title})
		store.AddGroup(created)
		group = store.GetGroupByID(created.ID)
		result.GroupsCreated++
	}

	existing := make(map[string]bool)
	for _, site := range store.SitesInGroup(group.ID) {
		existing[site.URL] = true
	}

	for _, bm := range folder.Bookmarks {
		if existing[bm.URL] {
			result.SitesSkipped++
			continue
		}
		store.AddSite(model.NewSite(model.NewSiteParams{
			Title:    bm.Title,
			URL:      bm.URL,
			ImageURL: bm.IconURL,
			GroupID:  group.ID,
		}))
		existing[bm.URL] = true
		result.SitesAdded++
	}

	for _, sub := range folder.Subfolders {
		importFolder(store, sub, result)
	}
}
