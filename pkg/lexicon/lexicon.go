// Package lexicon provides the static sentiment lexicon and the per-song
// sentiment scorer.
//
// The lexicon is read-only reference data: a word maps to exactly one
// polarity, and the mapping never changes for the lifetime of the
// process. Default returns the embedded lexicon; LoadFiles builds one
// from external word lists in the same one-word-per-line format.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Polarity is the sentiment class of a lexicon word.
type Polarity int

const (
	Positive Polarity = iota
	Negative
)

// String returns the name of the polarity.
func (p Polarity) String() string {
	switch p {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// Lexicon maps a lowercase word to its sentiment polarity.
type Lexicon map[string]Polarity

// addWords reads one-word-per-line data into lex with the given
// polarity. Blank lines and lines starting with # are skipped. A word
// already present keeps its existing polarity, so a word can never map
// to more than one class.
func addWords(lex Lexicon, r io.Reader, p Polarity) error {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		word := strings.ToLower(strings.TrimSpace(scan.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if _, exists := lex[word]; exists {
			continue
		}
		lex[word] = p
	}
	return scan.Err()
}

var defaultLexicon = sync.OnceValue(func() Lexicon {
	lex := make(Lexicon)
	// Embedded data is well-formed; strings.Reader never fails scanning.
	_ = addWords(lex, strings.NewReader(positiveWords), Positive)
	_ = addWords(lex, strings.NewReader(negativeWords), Negative)
	return lex
})

// Default returns the embedded sentiment lexicon. The returned map is
// shared; callers must treat it as immutable.
func Default() Lexicon {
	return defaultLexicon()
}

// LoadFiles builds a lexicon from external positive and negative word
// list files.
func LoadFiles(positivePath, negativePath string) (Lexicon, error) {
	lex := make(Lexicon)
	for _, src := range []struct {
		path string
		pol  Polarity
	}{
		{positivePath, Positive},
		{negativePath, Negative},
	} {
		f, err := os.Open(src.path)
		if err != nil {
			return nil, fmt.Errorf("lexicon: open %s: %w", src.path, err)
		}
		err = addWords(lex, f, src.pol)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("lexicon: read %s: %w", src.path, err)
		}
	}
	return lex, nil
}
