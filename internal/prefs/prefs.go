package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Keys under which client state is persisted.
const (
	KeyCollapsed = "vodmarks.collapsedFolderIds.v2"
	KeyTheme     = "vodmarks.theme"
	KeyViewMode  = "vodmarks.viewMode"
)

// Prefs is a best-effort key/value store for client preferences.
// Get never fails: unreadable state is reported as absent.
type Prefs interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Theme is the color theme preference.
type Theme string

const (
	ThemeDark  Theme = "" // unset
	ThemeLight Theme = "light"
)

// ViewMode is the entry list display mode.
type ViewMode string

const (
	ViewCard ViewMode = "card"
	ViewList ViewMode = "list"
)

// LoadTheme reads the theme, defaulting to dark.
func LoadTheme(p Prefs) Theme {
	if v, ok := p.Get(KeyTheme); ok && Theme(v) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// SaveTheme persists the theme. Dark is stored as an absent key.
func SaveTheme(p Prefs, theme Theme) error {
	if theme == ThemeLight {
		return p.Set(KeyTheme, string(ThemeLight))
	}
	return p.Delete(KeyTheme)
}

// LoadViewMode reads the display mode, defaulting to card.
func LoadViewMode(p Prefs) ViewMode {
	if v, ok := p.Get(KeyViewMode); ok && ViewMode(v) == ViewList {
		return ViewList
	}
	return ViewCard
}

// SaveViewMode persists the display mode.
func SaveViewMode(p Prefs, mode ViewMode) error {
	return p.Set(KeyViewMode, string(mode))
}

// Backend names accepted by Open.
const (
	BackendAuto   = "auto"
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open opens the preferences store in dir.
// "auto" prefers SQLite if prefs.db already exists, otherwise falls back to JSON.
// The returned closer must be closed when the session ends.
func Open(backend, dir string) (Prefs, io.Closer, error) {
	sqlitePath := filepath.Join(dir, "prefs.db")
	jsonPath := filepath.Join(dir, "prefs.json")

	switch backend {
	case BackendSQLite:
		s, err := NewSQLitePrefs(sqlitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case BackendJSON:
		return NewJSONPrefs(jsonPath), io.NopCloser(nil), nil
	case BackendAuto, "":
		if _, err := os.Stat(sqlitePath); err == nil {
			return Open(BackendSQLite, dir)
		}
		return Open(BackendJSON, dir)
	default:
		return nil, nil, fmt.Errorf("unknown prefs backend %q", backend)
	}
}

// DefaultDir returns the default preferences directory: ~/.config/vodmarks
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "vodmarks"), nil
}

// ErrReadOnly is returned by stores that reject writes.
var ErrReadOnly = errors.New("preferences are read-only")
