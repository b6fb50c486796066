package features

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TrendPoint is one year of the word-count trend series.
type TrendPoint struct {
	Year          int
	MeanWordCount float64
	Songs         int
}

// Trend groups the feature table by year and averages word counts,
// producing the time-trend series sorted by year. Rows without a usable
// year (Year <= 0) are excluded; they carry no position on a time axis.
func Trend(feats []SongFeature) []TrendPoint {
	byYear := make(map[int][]float64)
	for _, f := range feats {
		if f.Year <= 0 {
			continue
		}
		byYear[f.Year] = append(byYear[f.Year], float64(f.WordCount))
	}

	points := make([]TrendPoint, 0, len(byYear))
	for year, counts := range byYear {
		points = append(points, TrendPoint{
			Year:          year,
			MeanWordCount: stat.Mean(counts, nil),
			Songs:         len(counts),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}
