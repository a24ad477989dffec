package bookmarkfile

import (
	"strings"
	"testing"
	"time"

	"github.com/tabdeck/tabdeck/internal/model"
)

const sampleFile = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3>Work</H3>
    <DL><p>
        <DT><A HREF="https://github.com" ADD_DATE="1700000000" ICON="data:image/png;base64,abc">GitHub</A>
        <DT><A HREF="https://go.dev">Go</A>
        <DT><H3>Docs</H3>
        <DL><p>
            <DT><A HREF="https://pkg.go.dev">pkg.go.dev</A>
        </DL><p>
    </DL><p>
    <DT><H3>Empty</H3>
</DL><p>
`

func TestParse_FolderTree(t *testing.T) {
	folders, err := Parse(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(folders) != 2 {
		t.Fatalf("expected 2 top-level folders, got %d", len(folders))
	}

	work := folders[0]
	if work.Title != "Work" {
		t.Errorf("expected Work, got %s", work.Title)
	}
	if len(work.Bookmarks) != 2 {
		t.Fatalf("expected 2 bookmarks in Work, got %d", len(work.Bookmarks))
	}
	if work.Bookmarks[0].URL != "https://github.com" || work.Bookmarks[0].Title != "GitHub" {
		t.Errorf("unexpected first bookmark: %+v", work.Bookmarks[0])
	}
	if work.Bookmarks[0].IconURL == "" {
		t.Error("ICON attribute should be kept")
	}
	if work.Bookmarks[0].AddedAt.Unix() != 1700000000 {
		t.Errorf("ADD_DATE not parsed, got %v", work.Bookmarks[0].AddedAt)
	}

	if len(work.Subfolders) != 1 || work.Subfolders[0].Title != "Docs" {
		t.Fatalf("expected one Docs subfolder, got %+v", work.Subfolders)
	}
	if len(work.Subfolders[0].Bookmarks) != 1 {
		t.Errorf("Docs should hold 1 bookmark, got %d", len(work.Subfolders[0].Bookmarks))
	}
}

func TestParse_FolderWithoutDLIsEmpty(t *testing.T) {
	folders, err := Parse(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatal(err)
	}
	empty := folders[1]
	if empty.Title != "Empty" {
		t.Fatalf("expected the Empty folder, got %s", empty.Title)
	}
	if len(empty.Bookmarks) != 0 || len(empty.Subfolders) != 0 {
		t.Error("a folder with no following DL must be empty, not an error")
	}
}

func TestParse_FallbackTitleIsURL(t *testing.T) {
	input := `<DL><DT><H3>F</H3><DL><DT><A HREF="https://x.example"></A></DL></DL>`
	folders, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 1 || len(folders[0].Bookmarks) != 1 {
		t.Fatalf("unexpected parse result: %+v", folders)
	}
	if folders[0].Bookmarks[0].Title != "https://x.example" {
		t.Errorf("untitled bookmarks fall back to the URL, got %q", folders[0].Bookmarks[0].Title)
	}
}

func TestSerialize_EscapesAndStructure(t *testing.T) {
	store := model.NewStore()
	group := model.NewGroup(model.NewGroupParams{Label: "R&D <lab>"})
	store.AddGroup(group)
	store.AddSite(model.NewSite(model.NewSiteParams{
		Title:   "Tools & Toys",
		URL:     "https://example.com/?a=1&b=2",
		GroupID: group.ID,
	}))

	out := Serialize(store, Options{})

	if !strings.HasPrefix(out, "<!DOCTYPE NETSCAPE-Bookmark-file-1>") {
		t.Error("missing Netscape header")
	}
	if !strings.Contains(out, "<DT><H3>R&amp;D &lt;lab&gt;</H3>") {
		t.Errorf("group label not escaped:\n%s", out)
	}
	if !strings.Contains(out, "HREF=\"https://example.com/?a=1&amp;b=2\"") {
		t.Errorf("URL not escaped:\n%s", out)
	}
	if strings.Contains(out, "ADD_DATE") {
		t.Error("timestamps must be opt-in")
	}
}

func TestSerialize_Options(t *testing.T) {
	store := model.NewStore()
	group := model.NewGroup(model.NewGroupParams{Label: "Work"})
	store.AddGroup(group)
	store.AddSite(model.NewSite(model.NewSiteParams{
		Title:    "GitHub",
		URL:      "https://github.com",
		ImageURL: "https://github.com/favicon.ico",
		GroupID:  group.ID,
	}))

	ts := time.Unix(1700000000, 0)
	out := Serialize(store, Options{IncludeIcons: true, Timestamp: ts})

	if !strings.Contains(out, `ICON="https://github.com/favicon.ico"`) {
		t.Errorf("expected ICON attribute:\n%s", out)
	}
	if !strings.Contains(out, `ADD_DATE="1700000000"`) {
		t.Errorf("expected ADD_DATE attribute:\n%s", out)
	}
}

func TestImport_MatchesGroupsByTitle(t *testing.T) {
	store := model.NewStore()
	existing := model.NewGroup(model.NewGroupParams{Label: "Work"})
	store.AddGroup(existing)

	folders := []Folder{
		{Title: "Work", Bookmarks: []Bookmark{{Title: "GitHub", URL: "https://github.com"}}},
		{Title: "News", Bookmarks: []Bookmark{{Title: "Lobsters", URL: "https://lobste.rs"}}},
	}
	result := Import(store, folders)

	if result.GroupsCreated != 1 {
		t.Errorf("only the unmatched folder creates a group, got %d", result.GroupsCreated)
	}
	if result.SitesAdded != 2 {
		t.Errorf("expected 2 sites added, got %d", result.SitesAdded)
	}
	if len(store.Groups) != 2 {
		t.Errorf("same-titled folders must merge, got %d groups", len(store.Groups))
	}
	sites := store.SitesInGroup(existing.ID)
	if len(sites) != 1 || sites[0].URL != "https://github.com" {
		t.Errorf("GitHub should land in the existing Work group, got %+v", sites)
	}
}

func TestImport_ReimportIsNoop(t *testing.T) {
	store := model.NewStore()
	folders := []Folder{
		{Title: "Work", Bookmarks: []Bookmark{
			{Title: "GitHub", URL: "https://github.com"},
			{Title: "Go", URL: "https://go.dev"},
		}},
	}

	first := Import(store, folders)
	if first.GroupsCreated != 1 || first.SitesAdded != 2 {
		t.Fatalf("unexpected first import: %+v", first)
	}

	second := Import(store, folders)
	if second.GroupsCreated != 0 || second.SitesAdded != 0 || second.SitesSkipped != 2 {
		t.Errorf("re-import must change nothing: %+v", second)
	}
	if len(store.Groups) != 1 || len(store.Sites) != 2 {
		t.Errorf("store grew on re-import: %d groups %d sites", len(store.Groups), len(store.Sites))
	}
}

func TestRoundTrip(t *testing.T) {
	store := model.NewStore()
	group := model.NewGroup(model.NewGroupParams{Label: "Work"})
	store.AddGroup(group)
	store.AddSite(model.NewSite(model.NewSiteParams{Title: "GitHub", URL: "https://github.com", GroupID: group.ID}))
	store.AddSite(model.NewSite(model.NewSiteParams{Title: "Go", URL: "https://go.dev", GroupID: group.ID}))

	out := Serialize(store, Options{})
	folders, err := Parse(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}

	fresh := model.NewStore()
	result := Import(fresh, folders)
	if result.GroupsCreated != 1 || result.SitesAdded != 2 {
		t.Fatalf("round trip lost entries: %+v", result)
	}
	restored := fresh.GetGroupByLabel("Work")
	if restored == nil {
		t.Fatal("Work group missing after round trip")
	}
	sites := fresh.SitesInGroup(restored.ID)
	if len(sites) != 2 {
		t.Errorf("expected 2 shortcuts after round trip, got %d", len(sites))
	}
}
