package model

import "fmt"

// EntryType distinguishes video links from manually logged media.
type EntryType string

const (
	EntryYouTube EntryType = "youtube"
	EntryMedia   EntryType = "media"
)

// Bookmark is a saved entry in a folder.
// Video entries carry metadata scraped by the backend; media entries only
// have a title and a date.
type Bookmark struct {
	ID               ID        `json:"id"`
	FolderID         ID        `json:"folder_id"`
	EntryType        EntryType `json:"entry_type"`
	Title            string    `json:"title"`
	URL              string    `json:"url"`
	Uploader         string    `json:"uploader"`
	UploadDate       string    `json:"upload_date"` // ISO-like, e.g. 2024-03-09
	DurationSeconds  float64   `json:"duration_seconds"`
	ThumbnailURL     string    `json:"thumbnail_url"`
	SRTFilePath      string    `json:"srt_file_path"`
	FolderName       string    `json:"folder_name,omitempty"`       // merged views only
	FolderBreadcrumb string    `json:"folder_breadcrumb,omitempty"` // merged views only
	CreatedAt        string    `json:"created_at"`
}

// IsMedia returns true for manually logged media entries.
func (b Bookmark) IsMedia() bool {
	return b.EntryType == EntryMedia
}

// HasSubtitles returns true if an .srt file is attached.
func (b Bookmark) HasSubtitles() bool {
	return b.SRTFilePath != ""
}

// DisplayTitle returns the title, falling back to the URL.
func (b Bookmark) DisplayTitle() string {
	if b.Title != "" {
		return b.Title
	}
	return b.URL
}

// FormatDuration renders seconds as "h:mm:ss", or "m:ss" under an hour.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
