// Package filter removes English stopwords from corpus text.
package filter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/jdkato/prose/v2"
)

// Lexicon selects the stopword list used by RemoveStopWords.
type Lexicon string

const (
	// NLTK uses the embedded NLTK English list with prose tokenization.
	NLTK Lexicon = "nltk"

	// Bbalet delegates to github.com/bbalet/stopwords, which also lowercases
	// the text and strips punctuation.
	Bbalet Lexicon = "bbalet"
)

// ErrUnknownLexicon is returned for a lexicon name other than nltk or bbalet.
var ErrUnknownLexicon = errors.New("filter: unknown lexicon")

// ParseLexicon returns the Lexicon named by s (case-insensitive).
func ParseLexicon(s string) (Lexicon, error) {
	switch lex := Lexicon(strings.ToLower(strings.TrimSpace(s))); lex {
	case NLTK, Bbalet:
		return lex, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLexicon, s)
}

// Tokenize splits text into word tokens using prose's tokenizer.
func Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("unable to tokenize text: %w", err)
	}

	tokens := doc.Tokens()
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		words = append(words, token.Text)
	}
	return words, nil
}

// Filter drops every token of text whose lowercase form is in sw and joins
// the remaining tokens with single spaces, keeping their order.
func Filter(text string, sw *StopWords) (string, error) {
	words, err := Tokenize(text)
	if err != nil {
		return "", err
	}

	kept := make([]string, 0, len(words))
	for _, word := range words {
		if !sw.Contains(word) {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " "), nil
}

// FilterWith filters text using the given lexicon.
func FilterWith(text string, lex Lexicon) (string, error) {
	switch lex {
	case NLTK, "":
		return Filter(text, English())
	case Bbalet:
		return strings.Join(strings.Fields(stopwords.CleanString(text, "en", false)), " "), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLexicon, lex)
}

// RemoveStopWords reads inputFile as UTF-8, removes stopwords and writes the
// result to outputFile, overwriting it.
func RemoveStopWords(inputFile, outputFile string, lex Lexicon) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return err
	}

	cleaned, err := FilterWith(string(data), lex)
	if err != nil {
		return err
	}
	return os.WriteFile(outputFile, []byte(cleaned), 0644)
}
