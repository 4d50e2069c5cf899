package importer

import (
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Link is a bookmark found in an exported bookmarks file.
type Link struct {
	Title   string
	URL     string
	Path    []string  // enclosing folder names, outermost first
	AddedAt time.Time // zero if the file has no ADD_DATE
}

// ParseHTMLBookmarks parses Netscape bookmark HTML and returns every link
// in document order.
func ParseHTMLBookmarks(r io.Reader) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []Link

	// Track current folder stack for hierarchy
	var folderStack []string
	var pendingFolder string // folder waiting to be pushed on next DL

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				// Folder definition - pushed when we see the next DL
				pendingFolder = getTextContent(n)
				return // Don't recurse into H3

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					// Skip bookmarks without URL
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href // fallback to URL as title
				}

				var addedAt time.Time
				if addDate := getAttr(n, "add_date"); addDate != "" {
					if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil {
						addedAt = time.Unix(ts, 0)
					}
				}

				links = append(links, Link{
					Title:   title,
					URL:     href,
					Path:    append([]string(nil), folderStack...),
					AddedAt: addedAt,
				})
				return // Don't recurse into A

			case "dl":
				// Definition list - marks folder contents
				pushedFolder := false
				if pendingFolder != "" {
					folderStack = append(folderStack, pendingFolder)
					pendingFolder = ""
					pushedFolder = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushedFolder && len(folderStack) > 0 {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return // Don't recurse further, we handled children
			}
		}

		// Recurse into children
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return links, nil
}

// videoHosts are the hosts whose links the backend can scrape.
var videoHosts = []string{"youtube.com", "youtu.be", "twitch.tv", "vimeo.com"}

// IsVideoURL reports whether a link points at a supported video host.
func IsVideoURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	for _, h := range videoHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// Filter keeps the links that are videos and, if folder is not empty,
// that sit inside a folder with that name (case-insensitive) at any depth.
func Filter(links []Link, folder string, videosOnly bool) []Link {
	var out []Link
	for _, l := range links {
		if videosOnly && !IsVideoURL(l.URL) {
			continue
		}
		if folder != "" && !inFolder(l, folder) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func inFolder(l Link, folder string) bool {
	for _, name := range l.Path {
		if strings.EqualFold(name, folder) {
			return true
		}
	}
	return false
}

// URLs returns the URLs of links, dropping duplicates.
func URLs(links []Link) []string {
	seen := make(map[string]bool, len(links))
	var urls []string
	for _, l := range links {
		if seen[l.URL] {
			continue
		}
		seen[l.URL] = true
		urls = append(urls, l.URL)
	}
	return urls
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
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

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
