package prefs

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const currentSchemaVersion = 1

// SQLitePrefs implements Prefs using a SQLite database.
type SQLitePrefs struct {
	db   *sql.DB
	path string
}

// NewSQLitePrefs opens (and migrates) the database at path.
func NewSQLitePrefs(path string) (*SQLitePrefs, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLitePrefs{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the database file path.
func (s *SQLitePrefs) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLitePrefs) Close() error {
	return s.db.Close()
}

// SchemaVersion returns the applied schema version.
func (s *SQLitePrefs) SchemaVersion() int {
	var version int
	if err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return 0
	}
	return version
}

func (s *SQLitePrefs) migrate() error {
	if s.SchemaVersion() < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}
	return nil
}

// migrateV1 creates the key/value table.
func (s *SQLitePrefs) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY NOT NULL,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Get implements Prefs.
func (s *SQLitePrefs) Get(key string) (string, bool) {
	var value string
	if err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value); err != nil {
		return "", false
	}
	return value, true
}

// Set implements Prefs.
func (s *SQLitePrefs) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Delete implements Prefs.
func (s *SQLitePrefs) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM prefs WHERE key = ?", key)
	return err
}
