package clean

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
)

// Fragments of this many runes or fewer are dropped by the splitters.
const minFragmentLen = 10

// Abbreviations that do not end a sentence when followed by a period.
var abbreviations = []string{"e.g", "i.e", "viz", "Mr", "Dr", "Mrs", "Ms"}

// Segmenter selects the sentence splitting strategy.
type Segmenter string

const (
	// Rules splits on terminal punctuation followed by whitespace.
	Rules Segmenter = "rules"

	// Punkt uses prose's punkt sentence segmentation.
	Punkt Segmenter = "punkt"
)

// ParseSegmenter returns the Segmenter named by s (case-insensitive).
func ParseSegmenter(s string) (Segmenter, error) {
	switch seg := Segmenter(strings.ToLower(strings.TrimSpace(s))); seg {
	case Rules, Punkt:
		return seg, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSegmenter, s)
}

// Split splits every line into sentence candidates with the chosen strategy.
func (s Segmenter) Split(lines []string) ([]string, error) {
	switch s {
	case Rules, "":
		return SplitSentences(lines), nil
	case Punkt:
		return splitPunkt(lines)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSegmenter, string(s))
}

// SplitSentences splits each line after '.', '!' or '?' followed by
// whitespace, except after the listed abbreviations. Fragments are trimmed
// and those of 10 runes or fewer are dropped. Sentences never cross lines.
func SplitSentences(lines []string) []string {
	var sentences []string
	for _, line := range lines {
		for _, part := range splitLine(line) {
			sentences = appendFragment(sentences, part)
		}
	}
	return sentences
}

func appendFragment(sentences []string, part string) []string {
	part = strings.TrimSpace(part)
	if utf8.RuneCountInString(part) > minFragmentLen {
		sentences = append(sentences, part)
	}
	return sentences
}

func splitLine(line string) []string {
	var parts []string
	start := 0

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		i += size

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		j := i
		for j < len(line) {
			ws, n := utf8.DecodeRuneInString(line[j:])
			if !unicode.IsSpace(ws) {
				break
			}
			j += n
		}

		if j == i || j == len(line) {
			continue
		}
		if r == '.' && endsWithAbbreviation(line[start:i-size]) {
			continue
		}

		parts = append(parts, line[start:i])
		start, i = j, j
	}
	return append(parts, line[start:])
}

// endsWithAbbreviation reports whether s ends with a listed abbreviation
// that starts on a word boundary.
func endsWithAbbreviation(s string) bool {
	for _, abbr := range abbreviations {
		if !strings.HasSuffix(s, abbr) {
			continue
		}
		before := s[:len(s)-len(abbr)]
		if before == "" {
			return true
		}
		r, _ := utf8.DecodeLastRuneInString(before)
		if !isWordRune(r) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func splitPunkt(lines []string) ([]string, error) {
	var sentences []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		doc, err := prose.NewDocument(line,
			prose.WithTokenization(false),
			prose.WithTagging(false),
			prose.WithExtraction(false))
		if err != nil {
			return nil, fmt.Errorf("unable to segment line: %w", err)
		}

		for _, sent := range doc.Sentences() {
			sentences = appendFragment(sentences, sent.Text)
		}
	}
	return sentences, nil
}
