package clean

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/abiiranathan/ethicsprep/corpus"
	"golang.org/x/text/unicode/norm"
)

// Sentences of this many runes or fewer are treated as leftover markup.
const minSentenceLen = 20

// Old Mac and DOS line endings both become "\n".
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Options tune the cleaning pipeline. The zero value matches the default
// behaviour: rule based splitting and a lenient anchor search.
type Options struct {
	Segmenter Segmenter

	// StrictAnchor makes a missing anchor line an error instead of cleaning
	// the whole document.
	StrictAnchor bool

	// NormalizeUnicode applies NFC normalization before cleaning.
	NormalizeUnicode bool
}

// Result is the outcome of cleaning one file.
type Result struct {
	Path      string
	Encoding  corpus.Encoding
	Format    TranslatorFormat
	Sentences []string
}

// CollapseWhitespace replaces every whitespace run with one space and trims s.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanText runs the line cleaner for format, splits the result into
// sentences, collapses whitespace and drops sentences of 20 runes or fewer.
func CleanText(text string, format TranslatorFormat, opts Options) ([]string, error) {
	if opts.NormalizeUnicode {
		text = norm.NFC.String(text)
	}

	lines, found, err := format.CleanLines(strings.Split(newlines.Replace(text), "\n"))
	if err != nil {
		return nil, err
	}

	if !found {
		if opts.StrictAnchor {
			return nil, fmt.Errorf("%w: %s", ErrAnchorNotFound, format)
		}
		log.Printf("no anchor line found for %s text, cleaning the whole document\n", format)
	}

	candidates, err := opts.Segmenter.Split(lines)
	if err != nil {
		return nil, err
	}

	sentences := make([]string, 0, len(candidates))
	for _, s := range candidates {
		s = CollapseWhitespace(s)
		if utf8.RuneCountInString(s) > minSentenceLen {
			sentences = append(sentences, s)
		}
	}
	return sentences, nil
}

// CleanFile reads path, trying corpus.DefaultEncodings in order, and cleans it.
func CleanFile(path string, format TranslatorFormat, opts Options) (Result, error) {
	text, enc, err := corpus.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	log.Printf("%s read with %s encoding\n", path, enc)

	sentences, err := CleanText(text, format, opts)
	if err != nil {
		return Result{}, fmt.Errorf("unable to clean %s: %w", path, err)
	}

	return Result{
		Path:      path,
		Encoding:  enc,
		Format:    format,
		Sentences: sentences,
	}, nil
}
