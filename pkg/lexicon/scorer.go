package lexicon

import "iter"

// Tally holds per-song counts of lexicon matches.
type Tally struct {
	Positive int
	Negative int
}

// Tally counts lexicon matches in a (song ID, word) token stream,
// grouped by song ID. Lookup is exact: no stemming, no partial matches.
//
// Songs with no matching tokens have no entry in the result; callers
// joining against it must default missing songs to a zero Tally, never
// to null.
func (l Lexicon) Tally(tokens iter.Seq2[int, string]) map[int]Tally {
	tallies := make(map[int]Tally)
	for id, word := range tokens {
		p, ok := l[word]
		if !ok {
			continue
		}
		t := tallies[id]
		switch p {
		case Positive:
			t.Positive++
		case Negative:
			t.Negative++
		}
		tallies[id] = t
	}
	return tallies
}
