package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads songs from CSV data. The header row must contain `year` and
// `lyrics` columns (case-insensitive); any other columns are ignored.
// Song IDs are assigned sequentially from 1 in input order.
//
// A row whose year is missing or unparseable is kept with Year=0 and
// DecadeUnknown rather than rejected. A malformed file or a missing
// required column is an error.
func Load(r io.Reader) ([]Song, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("corpus: read header: %w", err)
	}

	yearIdx, lyricsIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "year":
			yearIdx = i
		case "lyrics":
			lyricsIdx = i
		}
	}
	if yearIdx < 0 || lyricsIdx < 0 {
		return nil, fmt.Errorf("corpus: input must have year and lyrics columns, got %v", header)
	}

	var songs []Song
	id := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpus: read row %d: %w", id+1, err)
		}

		id++
		song := Song{ID: id}

		if yearIdx < len(record) {
			if y, err := strconv.Atoi(strings.TrimSpace(record[yearIdx])); err == nil {
				song.Year = y
			}
		}
		song.Decade = DecadeOf(song.Year)

		if lyricsIdx < len(record) {
			song.Lyrics = record[lyricsIdx]
		}

		songs = append(songs, song)
	}

	return songs, nil
}

// LoadFile reads songs from the CSV file at path.
func LoadFile(path string) ([]Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
