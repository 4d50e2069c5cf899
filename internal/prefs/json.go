package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONPrefs implements Prefs using a JSON object file.
// Every write rewrites the whole file.
type JSONPrefs struct {
	path   string
	values map[string]string
}

// NewJSONPrefs loads preferences from path.
// A missing or corrupt file yields an empty store.
func NewJSONPrefs(path string) *JSONPrefs {
	p := &JSONPrefs{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return p
	}
	if values != nil {
		p.values = values
	}
	return p
}

// Path returns the preferences file path.
func (p *JSONPrefs) Path() string {
	return p.path
}

// Get implements Prefs.
func (p *JSONPrefs) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set implements Prefs.
func (p *JSONPrefs) Set(key, value string) error {
	p.values[key] = value
	return p.save()
}

// Delete implements Prefs.
func (p *JSONPrefs) Delete(key string) error {
	if _, ok := p.values[key]; !ok {
		return nil
	}
	delete(p.values, key)
	return p.save()
}

// save writes the file atomically via a temp file and rename.
func (p *JSONPrefs) save() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	data, err := json.MarshalIndent(p.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename prefs: %w", err)
	}
	return nil
}
