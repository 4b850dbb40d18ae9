package filter

import (
	_ "embed"
	"strings"
	"sync"
)

// NLTK English stopword list, one word per line.
//
//go:embed data/english.txt
var englishList string

// StopWords is an immutable set of lowercase stopwords.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords builds a set from words. Words are lowercased and trimmed;
// empty entries are ignored.
func NewStopWords(words ...string) *StopWords {
	sw := &StopWords{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			sw.words[w] = struct{}{}
		}
	}
	return sw
}

// English returns the shared NLTK English stopword set.
// It is parsed once on first use.
var English = sync.OnceValue(func() *StopWords {
	return NewStopWords(strings.Split(englishList, "\n")...)
})

// Contains reports whether the lowercase form of word is a stopword.
func (sw *StopWords) Contains(word string) bool {
	_, ok := sw.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the set.
func (sw *StopWords) Len() int {
	return len(sw.words)
}
