// Package db persists the finished song feature table to SQLite so
// downstream consumers (the chart renderer, ad-hoc queries) can read it
// without re-running the pipeline.
package db

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS song_features (
	song_id         INTEGER PRIMARY KEY,
	word_count      INTEGER NOT NULL CHECK (word_count > 0),
	unique_words    INTEGER NOT NULL,
	positive        INTEGER NOT NULL DEFAULT 0,
	negative        INTEGER NOT NULL DEFAULT 0,
	sentiment_score INTEGER NOT NULL,
	positive_ratio  REAL NOT NULL,
	negative_ratio  REAL NOT NULL,
	unique_ratio    REAL NOT NULL,
	year            INTEGER,
	decade          TEXT
);

CREATE INDEX IF NOT EXISTS idx_song_features_year ON song_features(year);

CREATE INDEX IF NOT EXISTS idx_song_features_decade ON song_features(decade)
`

// InitDB runs migrations on the given DB connection using the embedded SQL.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(migrationsSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
