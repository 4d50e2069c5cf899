// Package project derives the displayed list from a raw entry list:
// filter by a free-text query, sort by a sort key, and for the media log,
// group by status. Every function is pure and never reorders its input.
package project

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nikbrunner/vodmarks/internal/model"
)

// SortKey selects the ordering of a projected list.
type SortKey string

const (
	SortNone         SortKey = "" // backend order
	SortTitleAsc     SortKey = "title_asc"
	SortTitleDesc    SortKey = "title_desc"
	SortDateAsc      SortKey = "date_asc"
	SortDateDesc     SortKey = "date_desc"
	SortDurationAsc  SortKey = "duration_asc"
	SortDurationDesc SortKey = "duration_desc"
)

// BookmarkSortKeys lists the sort keys offered for bookmark lists, in cycle order.
var BookmarkSortKeys = []SortKey{
	SortNone, SortDateAsc, SortDateDesc, SortTitleAsc, SortTitleDesc, SortDurationAsc, SortDurationDesc,
}

// MediaLogSortKeys lists the sort keys offered for the media log, in cycle order.
var MediaLogSortKeys = []SortKey{SortNone, SortTitleAsc, SortTitleDesc}

// Label returns a short display name for the sort key.
func (k SortKey) Label() string {
	switch k {
	case SortTitleAsc:
		return "title A-Z"
	case SortTitleDesc:
		return "title Z-A"
	case SortDateAsc:
		return "oldest"
	case SortDateDesc:
		return "newest"
	case SortDurationAsc:
		return "shortest"
	case SortDurationDesc:
		return "longest"
	default:
		return "default"
	}
}

// NextSortKey returns the key after current in keys, wrapping around.
// An unknown current key restarts the cycle.
func NextSortKey(keys []SortKey, current SortKey) SortKey {
	if len(keys) == 0 {
		return SortNone
	}
	idx := slices.Index(keys, current)
	return keys[(idx+1)%len(keys)]
}

// fields tells the generic pipeline how to read an entry.
type fields[T any] struct {
	searchable func(T) []string
	title      func(T) string
	date       func(T) string
	duration   func(T) float64
}

var bookmarkFields = fields[model.Bookmark]{
	searchable: func(b model.Bookmark) []string { return []string{b.Title, b.Uploader, b.URL} },
	title:      func(b model.Bookmark) string { return b.Title },
	date:       func(b model.Bookmark) string { return b.UploadDate },
	duration:   func(b model.Bookmark) float64 { return b.DurationSeconds },
}

var mediaLogFields = fields[model.MediaLogItem]{
	searchable: func(m model.MediaLogItem) []string { return []string{m.Title, m.Progress} },
	title:      func(m model.MediaLogItem) string { return m.Title },
	date:       func(m model.MediaLogItem) string { return m.CreatedAt },
	duration:   func(model.MediaLogItem) float64 { return 0 },
}

// Bookmarks filters and sorts a bookmark list.
// The query matches title, uploader and URL case-insensitively.
func Bookmarks(list []model.Bookmark, query string, key SortKey) []model.Bookmark {
	return sortList(filter(list, query, bookmarkFields), key, bookmarkFields)
}

// MediaLogItems filters and sorts a media-log list without grouping.
// The query matches title and progress case-insensitively.
func MediaLogItems(list []model.MediaLogItem, query string, key SortKey) []model.MediaLogItem {
	return sortList(filter(list, query, mediaLogFields), key, mediaLogFields)
}

// StatusGroup is one status section of the media log.
type StatusGroup struct {
	Status model.Status
	Items  []model.MediaLogItem
}

// MediaLog filters, sorts and groups a media-log list by status.
func MediaLog(list []model.MediaLogItem, query string, key SortKey) []StatusGroup {
	return GroupByStatus(MediaLogItems(list, query, key))
}

// GroupByStatus partitions items into currently, completed and plan_to_start,
// in that order. Unknown statuses land in plan_to_start and empty groups are
// omitted. Order within a group follows the input.
func GroupByStatus(items []model.MediaLogItem) []StatusGroup {
	buckets := make(map[model.Status][]model.MediaLogItem, len(model.Statuses))
	for _, item := range items {
		s := model.ParseStatus(string(item.Status))
		buckets[s] = append(buckets[s], item)
	}

	var groups []StatusGroup
	for _, s := range model.Statuses {
		if len(buckets[s]) == 0 {
			continue
		}
		groups = append(groups, StatusGroup{Status: s, Items: buckets[s]})
	}
	return groups
}

// filter returns a copy of list holding entries whose searchable fields
// contain the trimmed query, ignoring case.
func filter[T any](list []T, query string, f fields[T]) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(list)
	}

	result := make([]T, 0, len(list))
	for _, item := range list {
		for _, field := range f.searchable(item) {
			if strings.Contains(strings.ToLower(field), q) {
				result = append(result, item)
				break
			}
		}
	}
	return result
}

// sortList stable-sorts list in place by key and returns it.
// Date keys compare the raw strings; this is only chronological when the
// backend sends zero-padded ISO dates, which it does for yt-dlp metadata.
func sortList[T any](list []T, key SortKey, f fields[T]) []T {
	switch key {
	case SortTitleAsc, SortTitleDesc:
		// Collators keep internal buffers, so each projection gets its own.
		c := collate.New(language.Und)
		dir := direction(key == SortTitleDesc)
		slices.SortStableFunc(list, func(a, b T) int {
			return dir * c.CompareString(f.title(a), f.title(b))
		})
	case SortDateAsc, SortDateDesc:
		dir := direction(key == SortDateDesc)
		slices.SortStableFunc(list, func(a, b T) int {
			return dir * strings.Compare(f.date(a), f.date(b))
		})
	case SortDurationAsc, SortDurationDesc:
		dir := direction(key == SortDurationDesc)
		slices.SortStableFunc(list, func(a, b T) int {
			return dir * compareFloat(f.duration(a), f.duration(b))
		})
	}
	return list
}

func direction(desc bool) int {
	if desc {
		return -1
	}
	return 1
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
