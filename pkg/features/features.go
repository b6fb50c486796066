// Package features builds the per-song feature table from token streams
// and sentiment tallies, and derives the summary views consumed by the
// visualizations.
package features

import (
	"iter"

	"github.com/jwang467-hub/IJC445-coursework/pkg/corpus"
	"github.com/jwang467-hub/IJC445-coursework/pkg/lexicon"
)

// WordSummary holds the per-song token counts.
type WordSummary struct {
	WordCount   int
	UniqueWords int
}

// SongFeature is one row of the final feature table. Rows only exist
// for songs with WordCount > 0, so the ratio fields are always defined.
type SongFeature struct {
	SongID         int
	WordCount      int
	UniqueWords    int
	Positive       int
	Negative       int
	SentimentScore int
	PositiveRatio  float64
	NegativeRatio  float64
	UniqueRatio    float64
	Year           int
	Decade         corpus.Decade
}

// Summarize counts total and unique words per song from a (song ID,
// word) token stream. Songs producing no tokens have no entry.
func Summarize(tokens iter.Seq2[int, string]) map[int]WordSummary {
	counts := make(map[int]int)
	seen := make(map[int]map[string]struct{})

	for id, word := range tokens {
		counts[id]++
		if seen[id] == nil {
			seen[id] = make(map[string]struct{})
		}
		seen[id][word] = struct{}{}
	}

	summaries := make(map[int]WordSummary, len(counts))
	for id, n := range counts {
		summaries[id] = WordSummary{WordCount: n, UniqueWords: len(seen[id])}
	}
	return summaries
}

// Aggregate joins word summaries, sentiment tallies, and song metadata
// into the final feature table, one row per song with at least one
// token. Tallies are left-joined with a zero default: a song absent
// from tallies scores positive=0, negative=0.
//
// The WordCount > 0 filter runs before any ratio is derived, so
// division by zero cannot occur. Output rows follow song order, which
// is ascending SongID.
func Aggregate(songs []corpus.Song, summaries map[int]WordSummary, tallies map[int]lexicon.Tally) []SongFeature {
	out := make([]SongFeature, 0, len(summaries))

	for _, s := range songs {
		sum, ok := summaries[s.ID]
		if !ok || sum.WordCount == 0 {
			continue
		}
		tally := tallies[s.ID] // zero Tally when absent

		wc := float64(sum.WordCount)
		out = append(out, SongFeature{
			SongID:         s.ID,
			WordCount:      sum.WordCount,
			UniqueWords:    sum.UniqueWords,
			Positive:       tally.Positive,
			Negative:       tally.Negative,
			SentimentScore: tally.Positive - tally.Negative,
			PositiveRatio:  float64(tally.Positive) / wc,
			NegativeRatio:  float64(tally.Negative) / wc,
			UniqueRatio:    float64(sum.UniqueWords) / wc,
			Year:           s.Year,
			Decade:         s.Decade,
		})
	}

	return out
}
