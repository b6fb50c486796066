package lexicon

import _ "embed"

//go:embed data/positive.txt
var positiveWords string

//go:embed data/negative.txt
var negativeWords string
