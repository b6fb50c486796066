package db

import (
	"database/sql"
	"fmt"

	"github.com/jwang467-hub/IJC445-coursework/pkg/corpus"
	"github.com/jwang467-hub/IJC445-coursework/pkg/features"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// nullableDecade stores DecadeUnknown as NULL so plots and queries see a
// missing bucket rather than a sentinel string.
func nullableDecade(d corpus.Decade) interface{} {
	if d == corpus.DecadeUnknown {
		return nil
	}
	return d.String()
}

// nullableYear returns nil for years the loader could not parse.
func nullableYear(y int) interface{} {
	if y <= 0 {
		return nil
	}
	return y
}

// SaveFeatures writes the feature table inside one transaction,
// replacing any previous row for the same song id.
func SaveFeatures(conn *sql.DB, feats []features.SongFeature) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin feature tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO song_features
		(song_id, word_count, unique_words, positive, negative, sentiment_score,
		 positive_ratio, negative_ratio, unique_ratio, year, decade)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare feature insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range feats {
		if _, err := stmt.Exec(
			f.SongID, f.WordCount, f.UniqueWords, f.Positive, f.Negative, f.SentimentScore,
			f.PositiveRatio, f.NegativeRatio, f.UniqueRatio,
			nullableYear(f.Year), nullableDecade(f.Decade),
		); err != nil {
			return fmt.Errorf("insert features for song %d: %w", f.SongID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit features (%d rows): %w", len(feats), err)
	}
	return nil
}

// CountFeatures returns the number of stored feature rows.
func CountFeatures(db DBExecutor) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM song_features`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count features: %w", err)
	}
	return n, nil
}

// FeaturesByDecade returns stored feature rows for one decade bucket,
// ordered by song id. Pass corpus.DecadeUnknown to fetch rows whose
// decade is NULL.
func FeaturesByDecade(db DBExecutor, decade corpus.Decade) ([]features.SongFeature, error) {
	query := `SELECT song_id, word_count, unique_words, positive, negative, sentiment_score,
			positive_ratio, negative_ratio, unique_ratio, year, decade
		FROM song_features WHERE decade = ? ORDER BY song_id`
	args := []interface{}{decade.String()}
	if decade == corpus.DecadeUnknown {
		query = `SELECT song_id, word_count, unique_words, positive, negative, sentiment_score,
				positive_ratio, negative_ratio, unique_ratio, year, decade
			FROM song_features WHERE decade IS NULL ORDER BY song_id`
		args = nil
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query features by decade: %w", err)
	}
	defer rows.Close()

	var out []features.SongFeature
	for rows.Next() {
		f, err := scanFeature(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanFeature(rows *sql.Rows) (features.SongFeature, error) {
	var f features.SongFeature
	var year sql.NullInt64
	var decade sql.NullString

	if err := rows.Scan(&f.SongID, &f.WordCount, &f.UniqueWords, &f.Positive, &f.Negative,
		&f.SentimentScore, &f.PositiveRatio, &f.NegativeRatio, &f.UniqueRatio, &year, &decade); err != nil {
		return f, fmt.Errorf("scan feature row: %w", err)
	}

	if year.Valid {
		f.Year = int(year.Int64)
	}
	f.Decade = corpus.DecadeUnknown
	if decade.Valid {
		for _, d := range []corpus.Decade{corpus.Decade2000s, corpus.Decade2010s, corpus.Decade2020s} {
			if d.String() == decade.String {
				f.Decade = d
				break
			}
		}
	}
	return f, nil
}
