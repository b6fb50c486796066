package db

import (
	"database/sql"
	"testing"

	"github.com/jwang467-hub/IJC445-coursework/pkg/corpus"
	"github.com/jwang467-hub/IJC445-coursework/pkg/features"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Ensure single connection to avoid separate in-memory DBs per connection.
	db.SetMaxOpenConns(1)
	if err := InitDB(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleFeatures() []features.SongFeature {
	return []features.SongFeature{
		{SongID: 1, WordCount: 5, UniqueWords: 4, Positive: 2, Negative: 1, SentimentScore: 1,
			PositiveRatio: 0.4, NegativeRatio: 0.2, UniqueRatio: 0.8, Year: 2005, Decade: corpus.Decade2000s},
		{SongID: 2, WordCount: 10, UniqueWords: 7, SentimentScore: 0,
			UniqueRatio: 0.7, Year: 2015, Decade: corpus.Decade2010s},
		{SongID: 3, WordCount: 8, UniqueWords: 8, Negative: 3, SentimentScore: -3,
			NegativeRatio: 0.375, UniqueRatio: 1.0, Year: 0, Decade: corpus.DecadeUnknown},
	}
}

func TestSaveAndCountFeatures(t *testing.T) {
	conn := setupTestDB(t)

	if err := SaveFeatures(conn, sampleFeatures()); err != nil {
		t.Fatalf("save: %v", err)
	}
	n, err := CountFeatures(conn)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows, got %d", n)
	}

	// Saving again replaces rather than duplicates.
	if err := SaveFeatures(conn, sampleFeatures()); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	n, err = CountFeatures(conn)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows after re-save, got %d", n)
	}
}

func TestFeaturesByDecade(t *testing.T) {
	conn := setupTestDB(t)
	if err := SaveFeatures(conn, sampleFeatures()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := FeaturesByDecade(conn, corpus.Decade2000s)
	if err != nil {
		t.Fatalf("query 2000s: %v", err)
	}
	if len(got) != 1 || got[0].SongID != 1 {
		t.Fatalf("2000s rows = %+v, want song 1 only", got)
	}
	f := got[0]
	if f.WordCount != 5 || f.Positive != 2 || f.SentimentScore != 1 || f.Year != 2005 {
		t.Errorf("round-trip mismatch: %+v", f)
	}
	if f.PositiveRatio != 0.4 || f.UniqueRatio != 0.8 {
		t.Errorf("ratio round-trip mismatch: %+v", f)
	}
	if f.Decade != corpus.Decade2000s {
		t.Errorf("decade = %v, want 2000s", f.Decade)
	}
}

// Songs with an unknown decade are stored with NULL decade and NULL year
// and come back as DecadeUnknown, Year 0.
func TestFeaturesByDecadeUnknown(t *testing.T) {
	conn := setupTestDB(t)
	if err := SaveFeatures(conn, sampleFeatures()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := FeaturesByDecade(conn, corpus.DecadeUnknown)
	if err != nil {
		t.Fatalf("query unknown: %v", err)
	}
	if len(got) != 1 || got[0].SongID != 3 {
		t.Fatalf("unknown-decade rows = %+v, want song 3 only", got)
	}
	if got[0].Decade != corpus.DecadeUnknown || got[0].Year != 0 {
		t.Errorf("unknown round-trip = %+v", got[0])
	}

	var decade interface{}
	if err := conn.QueryRow(`SELECT decade FROM song_features WHERE song_id = 3`).Scan(&decade); err != nil {
		t.Fatalf("raw decade: %v", err)
	}
	if decade != nil {
		t.Errorf("stored decade = %v, want NULL", decade)
	}
}

// The schema must reject the rows the aggregator is required to filter.
func TestSchemaRejectsZeroWordCount(t *testing.T) {
	conn := setupTestDB(t)
	err := SaveFeatures(conn, []features.SongFeature{{SongID: 9, WordCount: 0}})
	if err == nil {
		t.Fatal("expected CHECK constraint violation for word_count = 0")
	}
}
