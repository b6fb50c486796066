// Package pipeline runs the full feature extraction pass over a loaded
// song corpus: clean lyrics in place, tokenize, score against the
// sentiment lexicon, and aggregate one feature row per song.
//
// The pass is a single synchronous batch transformation; there is no
// shared state beyond the song slice it is handed.
package pipeline

import (
	"log"

	"github.com/jwang467-hub/IJC445-coursework/pkg/corpus"
	"github.com/jwang467-hub/IJC445-coursework/pkg/features"
	"github.com/jwang467-hub/IJC445-coursework/pkg/lexicon"
	"github.com/jwang467-hub/IJC445-coursework/pkg/textclean"
	"github.com/jwang467-hub/IJC445-coursework/pkg/tokenize"
)

// Pipeline extracts song features using a fixed sentiment lexicon.
type Pipeline struct {
	Lexicon lexicon.Lexicon
	// Logger receives progress messages. nil means no logging.
	Logger *log.Logger
}

// New creates a Pipeline. A nil lexicon falls back to the embedded one.
func New(lex lexicon.Lexicon) *Pipeline {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Pipeline{Lexicon: lex}
}

// Result holds the finished feature table and pass statistics.
type Result struct {
	Features []features.SongFeature
	// Dropped is the number of songs excluded because cleaning left
	// them with zero tokens.
	Dropped int
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.Logger != nil {
		p.Logger.Printf(format, args...)
	}
}

// Run executes the pipeline over songs. Lyrics are cleaned in place;
// no other song field is touched.
func (p *Pipeline) Run(songs []corpus.Song) Result {
	for i := range songs {
		songs[i].Lyrics = textclean.Clean(songs[i].Lyrics)
	}
	p.logf("[pipeline] cleaned %d songs", len(songs))

	tokens := tokenize.Corpus(songs)
	summaries := features.Summarize(tokens)
	tallies := p.Lexicon.Tally(tokens)
	p.logf("[pipeline] %d songs produced tokens, %d matched the lexicon", len(summaries), len(tallies))

	feats := features.Aggregate(songs, summaries, tallies)
	return Result{
		Features: feats,
		Dropped:  len(songs) - len(feats),
	}
}
