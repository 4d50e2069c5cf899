package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/nikbrunner/vodmarks/internal/importer"
)

func TestParseHTML_SingleBookmark(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://www.youtube.com/watch?v=abc" ADD_DATE="1234567890">Boss Rush</A>
</DL><p>`

	links, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}

	l := links[0]
	if l.Title != "Boss Rush" {
		t.Errorf("expected title 'Boss Rush', got %q", l.Title)
	}
	if l.URL != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("unexpected URL %q", l.URL)
	}
	if len(l.Path) != 0 {
		t.Errorf("expected empty path at top level, got %v", l.Path)
	}
}

func TestParseHTML_NestedFolders(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3 ADD_DATE="1234567890">Gaming</H3>
    <DL><p>
        <DT><H3 ADD_DATE="1234567890">Speedruns</H3>
        <DL><p>
            <DT><A HREF="https://youtu.be/run" ADD_DATE="1234567890">Any%</A>
        </DL><p>
        <DT><A HREF="https://www.twitch.tv/videos/1" ADD_DATE="1234567890">Stream VOD</A>
    </DL><p>
    <DT><A HREF="https://google.com" ADD_DATE="1234567890">Google</A>
</DL><p>`

	links, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(links))
	}

	want := map[string]string{
		"Any%":       "Gaming/Speedruns",
		"Stream VOD": "Gaming",
		"Google":     "",
	}
	for _, l := range links {
		path, ok := want[l.Title]
		if !ok {
			t.Errorf("unexpected link %q", l.Title)
			continue
		}
		if got := strings.Join(l.Path, "/"); got != path {
			t.Errorf("%s: expected path %q, got %q", l.Title, path, got)
		}
	}
}

func TestParseHTML_EmptyFile(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
</DL><p>`

	links, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected 0 links, got %d", len(links))
	}
}

func TestParseHTML_Timestamps(t *testing.T) {
	// 1234567890 = Fri Feb 13 2009 23:31:30 UTC
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><A HREF="https://example.com" ADD_DATE="1234567890">Test</A>
    <DT><A HREF="https://example.org">Undated</A>
</DL><p>`

	links, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}

	expected := time.Unix(1234567890, 0)
	if !links[0].AddedAt.Equal(expected) {
		t.Errorf("expected AddedAt %v, got %v", expected, links[0].AddedAt)
	}
	if !links[1].AddedAt.IsZero() {
		t.Errorf("expected zero AddedAt without ADD_DATE, got %v", links[1].AddedAt)
	}
}

func TestParseHTML_MissingHref(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><A ADD_DATE="1234567890">No URL</A>
    <DT><A HREF="https://valid.com" ADD_DATE="1234567890">Valid</A>
    <DT><A HREF="https://untitled.com"></A>
</DL><p>`

	links, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(links) != 2 {
		t.Fatalf("expected 2 links (skip missing href), got %d", len(links))
	}
	if links[0].Title != "Valid" {
		t.Errorf("expected 'Valid' link, got %q", links[0].Title)
	}
	if links[1].Title != "https://untitled.com" {
		t.Errorf("expected URL as fallback title, got %q", links[1].Title)
	}
}

func TestIsVideoURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=abc", true},
		{"https://m.youtube.com/watch?v=abc", true},
		{"https://youtu.be/abc", true},
		{"https://www.twitch.tv/videos/123", true},
		{"https://vimeo.com/123", true},
		{"https://player.vimeo.com/video/123", true},
		{"https://example.com/watch?v=abc", false},
		{"https://notyoutube.com/watch", false},
		{"ftp://youtube.com/watch", false},
		{"not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := importer.IsVideoURL(tt.url); got != tt.want {
				t.Errorf("IsVideoURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	links := []importer.Link{
		{Title: "a", URL: "https://youtu.be/a", Path: []string{"Gaming"}},
		{Title: "b", URL: "https://example.com", Path: []string{"Gaming"}},
		{Title: "c", URL: "https://youtu.be/c", Path: []string{"Music", "Live"}},
		{Title: "d", URL: "https://youtu.be/a"},
	}

	got := importer.Filter(links, "", true)
	if len(got) != 3 {
		t.Errorf("expected 3 video links, got %d", len(got))
	}

	got = importer.Filter(links, "live", true)
	if len(got) != 1 || got[0].Title != "c" {
		t.Errorf("expected only 'c' in Live, got %v", got)
	}

	got = importer.Filter(links, "gaming", false)
	if len(got) != 2 {
		t.Errorf("expected 2 links in Gaming, got %d", len(got))
	}

	urls := importer.URLs(importer.Filter(links, "", true))
	if len(urls) != 2 {
		t.Errorf("expected duplicates dropped, got %v", urls)
	}
}
