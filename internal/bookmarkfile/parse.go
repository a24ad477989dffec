// Package bookmarkfile reads and writes the Netscape bookmark file format
// and maps its folders onto favorite groups and site shortcuts.
package bookmarkfile

import (
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Bookmark is one <A> entry of a bookmark file.
type Bookmark struct {
	Title   string
	URL     string
	IconURL string
	AddedAt time.Time
}

// Folder is one <H3> entry with the contents of its following <DL>.
type Folder struct {
	Title      string
	Bookmarks  []Bookmark
	Subfolders []Folder
}

// Parse reads Netscape bookmark HTML into a folder tree. Every <H3> opens a
// folder whose contents are the entries of the next <DL> in document order;
// an <H3> with no following <DL> yields an empty folder. Loose <A> entries
// outside any folder are dropped.
func Parse(r io.Reader) ([]Folder, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var root []Folder
	var stack []*Folder
	var pending *Folder

	appendFolder := func(f Folder) *Folder {
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.Subfolders = append(parent.Subfolders, f)
			return &parent.Subfolders[len(parent.Subfolders)-1]
		}
		root = append(root, f)
		return &root[len(root)-1]
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				name := textContent(n)
				if name != "" {
					pending = appendFolder(Folder{Title: name})
				}
				return

			case "a":
				href := attr(n, "href")
				if href == "" || len(stack) == 0 {
					return
				}
				title := textContent(n)
				if title == "" {
					title = href
				}
				bm := Bookmark{
					Title:   title,
					URL:     href,
					IconURL: attr(n, "icon"),
				}
				if addDate := attr(n, "add_date"); addDate != "" {
					if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil {
						bm.AddedAt = time.Unix(ts, 0)
					}
				}
				top := stack[len(stack)-1]
				top.Bookmarks = append(top.Bookmarks, bm)
				return

			case "dl":
				pushed := false
				if pending != nil {
					stack = append(stack, pending)
					pending = nil
					pushed = true
				}
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}
				if pushed {
					stack = stack[:len(stack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return root, nil
}

// textContent returns the trimmed text of a node.
func textContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// attr returns an attribute value, case-insensitive.
func attr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, a := range n.Attr {
		if strings.ToLower(a.Key) == key {
			return a.Val
		}
	}
	return ""
}
