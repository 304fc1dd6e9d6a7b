package util

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type SQLiteDatabaseConfig struct {
	Path string `yaml:"path"`
}

// NewSQLiteDB opens (creating when needed) the database at config.Path in WAL
// mode. ":memory:" opens a private in-memory database.
func NewSQLiteDB(config SQLiteDatabaseConfig) (*sql.DB, error) {
	dsn := config.Path
	if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		dsn = "file:" + dsn + "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite serializes writers, and ":memory:" is per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
