// Package export writes the pipeline's output tables as CSV files for
// the visualization side and for ad-hoc inspection.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jwang467-hub/IJC445-coursework/pkg/corpus"
	"github.com/jwang467-hub/IJC445-coursework/pkg/features"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// decadeField renders the decade column. Unknown buckets become an
// empty field so plotting tools read them as missing.
func decadeField(d corpus.Decade) string {
	if d == corpus.DecadeUnknown {
		return ""
	}
	return d.String()
}

// writeCSV creates path (and intermediate directories), writes the
// header and rows, and flushes.
func writeCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export: flush %q: %w", path, err)
	}
	return nil
}

// WriteFeatures writes the song feature table to path.
func WriteFeatures(path string, feats []features.SongFeature) error {
	header := []string{
		"song_id", "word_count", "unique_words", "positive", "negative", "sentiment_score",
		"positive_ratio", "negative_ratio", "unique_ratio", "year", "decade",
	}
	rows := make([][]string, 0, len(feats))
	for _, f := range feats {
		year := ""
		if f.Year > 0 {
			year = strconv.Itoa(f.Year)
		}
		rows = append(rows, []string{
			strconv.Itoa(f.SongID),
			strconv.Itoa(f.WordCount),
			strconv.Itoa(f.UniqueWords),
			strconv.Itoa(f.Positive),
			strconv.Itoa(f.Negative),
			strconv.Itoa(f.SentimentScore),
			formatFloat(f.PositiveRatio),
			formatFloat(f.NegativeRatio),
			formatFloat(f.UniqueRatio),
			year,
			decadeField(f.Decade),
		})
	}
	return writeCSV(path, header, rows)
}

// WriteTrend writes the year-averaged word count series to path.
func WriteTrend(path string, points []features.TrendPoint) error {
	header := []string{"year", "mean_word_count", "songs"}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			strconv.Itoa(p.Year),
			formatFloat(p.MeanWordCount),
			strconv.Itoa(p.Songs),
		})
	}
	return writeCSV(path, header, rows)
}

// WritePCA writes the 2-component projection to path. The header embeds
// the variance explained by each component.
func WritePCA(path string, proj features.Projection) error {
	header := []string{
		fmt.Sprintf("pc1_%.1f_pct", proj.VarExplained[0]),
		fmt.Sprintf("pc2_%.1f_pct", proj.VarExplained[1]),
	}
	rows := make([][]string, 0, len(proj.X))
	for i := range proj.X {
		rows = append(rows, []string{formatFloat(proj.X[i]), formatFloat(proj.Y[i])})
	}
	return writeCSV(path, header, rows)
}
