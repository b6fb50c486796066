package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/jwang467-hub/IJC445-coursework/pkg/corpus"
	"github.com/jwang467-hub/IJC445-coursework/pkg/features"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWriteFeatures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "features.csv")
	feats := []features.SongFeature{
		{SongID: 1, WordCount: 5, UniqueWords: 4, Positive: 2, Negative: 1, SentimentScore: 1,
			PositiveRatio: 0.4, NegativeRatio: 0.2, UniqueRatio: 0.8, Year: 2005, Decade: corpus.Decade2000s},
		{SongID: 2, WordCount: 3, UniqueWords: 3, UniqueRatio: 1, Year: 0, Decade: corpus.DecadeUnknown},
	}

	if err := WriteFeatures(path, feats); err != nil {
		t.Fatalf("WriteFeatures: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "song_id" || rows[0][10] != "decade" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "1" || rows[1][6] != "0.4" || rows[1][10] != "2000s" {
		t.Errorf("unexpected row 1: %v", rows[1])
	}
	// Unknown year and decade serialize as empty fields.
	if rows[2][9] != "" || rows[2][10] != "" {
		t.Errorf("unknown year/decade should be empty, got %v", rows[2])
	}
}

func TestWriteTrend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trend.csv")
	points := []features.TrendPoint{
		{Year: 2005, MeanWordCount: 50, Songs: 1},
		{Year: 2010, MeanWordCount: 150.5, Songs: 2},
	}
	if err := WriteTrend(path, points); err != nil {
		t.Fatalf("WriteTrend: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[2][0] != "2010" || rows[2][1] != "150.5" || rows[2][2] != "2" {
		t.Errorf("unexpected trend row: %v", rows[2])
	}
}

func TestWritePCA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pca.csv")
	proj := features.Projection{
		X:            []float64{1.5, -0.5},
		Y:            []float64{0.25, -0.25},
		VarExplained: [2]float64{61.25, 20.5},
	}
	if err := WritePCA(path, proj); err != nil {
		t.Fatalf("WritePCA: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "pc1_61.2_pct" && rows[0][0] != "pc1_61.3_pct" {
		t.Errorf("unexpected pc1 header: %q", rows[0][0])
	}
	if rows[1][0] != "1.5" || rows[1][1] != "0.25" {
		t.Errorf("unexpected pca row: %v", rows[1])
	}
}
