package bookmarkfile

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tabdeck/tabdeck/internal/model"
)

// Options controls the optional attributes of the serialized file.
type Options struct {
	// IncludeIcons emits an ICON attribute for shortcuts that carry an
	// image URL.
	IncludeIcons bool
	// Timestamp, when non-zero, is emitted as ADD_DATE on every entry.
	Timestamp time.Time
}

// Serialize renders favorite groups and their shortcuts as a Netscape
// bookmark file. Each group becomes one folder; shortcuts outside any known
// group are not emitted.
func Serialize(store *model.Store, opts Options) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, group := range store.Groups {
		fmt.Fprintf(&b, "    <DT><H3%s>%s</H3>\n", addDate(opts), html.EscapeString(group.Label))
		b.WriteString("    <DL><p>\n")
		for _, site := range store.SitesInGroup(group.ID) {
			b.WriteString("        <DT><A HREF=\"" + html.EscapeString(site.URL) + "\"")
			if opts.IncludeIcons && site.ImageURL != "" {
				b.WriteString(" ICON=\"" + html.EscapeString(site.ImageURL) + "\"")
			}
			b.WriteString(addDate(opts))
			b.WriteString(">" + html.EscapeString(site.Title) + "</A>\n")
		}
		b.WriteString("    </DL><p>\n")
	}

	b.WriteString("</DL><p>\n")
	return b.String()
}

func addDate(opts Options) string {
	if opts.Timestamp.IsZero() {
		return ""
	}
	return fmt.Sprintf(" ADD_DATE=\"%d\"", opts.Timestamp.Unix())
}

// DefaultExportPath returns the default export file path:
// ~/Downloads/tabdeck-bookmarks-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("tabdeck-bookmarks-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}
