package textclean

// contractions maps lowercase contracted forms to their expansions.
// Lookup is done after normalizing curly apostrophes to U+0027.
var contractions = map[string]string{
	"ain't":      "am not",
	"aren't":     "are not",
	"can't":      "cannot",
	"could've":   "could have",
	"couldn't":   "could not",
	"didn't":     "did not",
	"doesn't":    "does not",
	"don't":      "do not",
	"gonna":      "going to",
	"gotta":      "got to",
	"hadn't":     "had not",
	"hasn't":     "has not",
	"haven't":    "have not",
	"he'd":       "he would",
	"he'll":      "he will",
	"he's":       "he is",
	"here's":     "here is",
	"how's":      "how is",
	"i'd":        "i would",
	"i'll":       "i will",
	"i'm":        "i am",
	"i've":       "i have",
	"isn't":      "is not",
	"it'd":       "it would",
	"it'll":      "it will",
	"it's":       "it is",
	"let's":      "let us",
	"might've":   "might have",
	"mightn't":   "might not",
	"must've":    "must have",
	"mustn't":    "must not",
	"needn't":    "need not",
	"she'd":      "she would",
	"she'll":     "she will",
	"she's":      "she is",
	"should've":  "should have",
	"shouldn't":  "should not",
	"that'll":    "that will",
	"that's":     "that is",
	"there'd":    "there would",
	"there's":    "there is",
	"they'd":     "they would",
	"they'll":    "they will",
	"they're":    "they are",
	"they've":    "they have",
	"wanna":      "want to",
	"wasn't":     "was not",
	"we'd":       "we would",
	"we'll":      "we will",
	"we're":      "we are",
	"we've":      "we have",
	"weren't":    "were not",
	"what'll":    "what will",
	"what're":    "what are",
	"what's":     "what is",
	"what've":    "what have",
	"where's":    "where is",
	"who'd":      "who would",
	"who'll":     "who will",
	"who's":      "who is",
	"who've":     "who have",
	"won't":      "will not",
	"would've":   "would have",
	"wouldn't":   "would not",
	"y'all":      "you all",
	"you'd":      "you would",
	"you'll":     "you will",
	"you're":     "you are",
	"you've":     "you have",
}
