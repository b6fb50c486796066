// Package tokenize splits cleaned lyric text into lowercase word tokens.
//
// Tokens are produced lazily as iterator sequences, so a corpus can be
// scanned without materializing a token table. Every sequence is finite
// and restartable: ranging over it twice yields the same tokens.
package tokenize

import (
	"iter"
	"strings"
	"unicode"

	"github.com/jwang467-hub/IJC445-coursework/pkg/corpus"
)

// isWordRune reports whether r belongs inside a word token. Anything
// else (whitespace, punctuation, symbols) delimits tokens and is
// dropped.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Words yields the lowercase word tokens of text in order. Empty text,
// or text with no word runes at all, yields nothing.
func Words(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i, r := range text {
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(strings.ToLower(text[start:i])) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(strings.ToLower(text[start:]))
		}
	}
}

// Corpus yields (song ID, word) pairs for every token of every song, in
// song order. Songs whose lyrics produce no tokens contribute nothing.
func Corpus(songs []corpus.Song) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, s := range songs {
			for w := range Words(s.Lyrics) {
				if !yield(s.ID, w) {
					return
				}
			}
		}
	}
}
