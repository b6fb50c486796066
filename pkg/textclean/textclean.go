// Package textclean prepares raw lyric text for tokenization.
//
// Cleaning is a strict ordered sequence of pure string transforms:
//
//  1. StripAnnotations removes bracketed section markers like "[Chorus]".
//  2. ExpandContractions rewrites contracted forms to their full words.
//  3. FoldASCII transliterates non-ASCII runes to ASCII equivalents.
//
// Clean composes the three in that order. Each transform takes and
// returns a string, so the steps can be tested in isolation. Running
// Clean on already-clean text is a no-op for bracket removal and ASCII
// folding.
package textclean

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
)

var (
	// annotationRe matches bracketed annotations, non-greedy, e.g. "[Verse 2]".
	annotationRe = regexp.MustCompile(`\[[^\]]*\]`)
	// wordRe matches candidate words for contraction lookup, including
	// apostrophe-joined forms with either straight or curly apostrophes.
	wordRe = regexp.MustCompile(`[A-Za-z]+(?:['\x{2019}][A-Za-z]+)*`)
)

// StripAnnotations removes every bracketed segment from s. Unmatched
// opening or closing brackets are left untouched.
func StripAnnotations(s string) string {
	return annotationRe.ReplaceAllString(s, "")
}

// ExpandContractions replaces known contracted forms ("don't", "gonna")
// with their expansions. Matching is case-insensitive; a capitalized
// contraction keeps its leading capital. Unknown contractions pass
// through unchanged.
func ExpandContractions(s string) string {
	return wordRe.ReplaceAllStringFunc(s, func(word string) string {
		key := strings.ToLower(strings.ReplaceAll(word, "’", "'"))
		expanded, ok := contractions[key]
		if !ok {
			return word
		}
		if r := []rune(word)[0]; unicode.IsUpper(r) {
			return strings.ToUpper(expanded[:1]) + expanded[1:]
		}
		return expanded
	})
}

// FoldASCII transliterates non-ASCII runes to their closest ASCII
// representation and drops runes with no mapping.
func FoldASCII(s string) string {
	return unidecode.Unidecode(s)
}

// Clean runs the full cleaning sequence over raw lyric text.
func Clean(s string) string {
	s = StripAnnotations(s)
	s = ExpandContractions(s)
	return FoldASCII(s)
}
