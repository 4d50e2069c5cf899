package model

import "strings"

// Status is the progress state of a media-log item.
type Status string

const (
	StatusCurrently   Status = "currently"
	StatusCompleted   Status = "completed"
	StatusPlanToStart Status = "plan_to_start"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusCurrently, StatusCompleted, StatusPlanToStart}

// ParseStatus maps a raw status to a known one.
// Anything unrecognized, including "", is treated as plan_to_start.
func ParseStatus(raw string) Status {
	switch Status(strings.TrimSpace(raw)) {
	case StatusCurrently:
		return StatusCurrently
	case StatusCompleted:
		return StatusCompleted
	default:
		return StatusPlanToStart
	}
}

// Label returns the short display name of the status.
func (s Status) Label() string {
	switch ParseStatus(string(s)) {
	case StatusCurrently:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Planned"
	}
}

// Next cycles currently -> completed -> plan_to_start -> currently.
func (s Status) Next() Status {
	switch ParseStatus(string(s)) {
	case StatusCurrently:
		return StatusCompleted
	case StatusCompleted:
		return StatusPlanToStart
	default:
		return StatusCurrently
	}
}

// Category is a media-log shelf.
type Category string

const (
	CategoryAnime  Category = "anime"
	CategoryMovies Category = "movies"
	CategoryTV     Category = "tv"
	CategoryManga  Category = "manga"
	CategoryBooks  Category = "books"
	CategoryGames  Category = "games"
)

// Categories lists every category the backend accepts, in tab order.
var Categories = []Category{
	CategoryAnime, CategoryMovies, CategoryTV, CategoryManga, CategoryBooks, CategoryGames,
}

// ParseCategory normalizes a raw category name.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Label returns the display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryTV:
		return "TV"
	case "":
		return ""
	default:
		return strings.ToUpper(string(c[:1])) + string(c[1:])
	}
}

// MediaLogItem is a watched, read or played item.
type MediaLogItem struct {
	ID        ID       `json:"id"`
	Category  Category `json:"category"`
	Title     string   `json:"title"`
	Progress  string   `json:"progress"`
	Status    Status   `json:"status"`
	CreatedAt string   `json:"created_at"`
}
