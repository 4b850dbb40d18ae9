package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/abiiranathan/ethicsprep/clean"
	"github.com/abiiranathan/ethicsprep/corpus"
	"github.com/abiiranathan/ethicsprep/filter"
)

// Number of sample sentences printed per translation.
const sampleSize = 5

// Sample sentences are cut to this many runes.
const sampleWidth = 100

// translation is one input of the clean subcommand.
type translation struct {
	label  string
	input  string
	output string
	format clean.TranslatorFormat

	text      string
	sentences []string
}

func cleanOptions(config *Config) (clean.Options, error) {
	seg, err := clean.ParseSegmenter(config.Segmenter)
	if err != nil {
		return clean.Options{}, err
	}
	return clean.Options{
		Segmenter:        seg,
		StrictAnchor:     config.StrictAnchor,
		NormalizeUnicode: config.NormalizeUnicode,
	}, nil
}

// RunCleaner reads both translations, cleans them, writes one sentence per
// line to the configured outputs and prints a summary to w.
func RunCleaner(w io.Writer, config *Config) error {
	opts, err := cleanOptions(config)
	if err != nil {
		return err
	}

	translations := []*translation{
		{label: "Irwin", input: config.IrwinInput, output: config.IrwinOutput, format: clean.Irwin},
		{label: "Ross", input: config.RossInput, output: config.RossOutput, format: clean.Ross},
	}

	for _, tr := range translations {
		text, enc, err := corpus.ReadFile(tr.input)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s file read with %s encoding\n", tr.label, enc)
		tr.text = text
	}

	for _, tr := range translations {
		fmt.Fprintf(w, "Cleaning %s translation...\n", tr.label)
		tr.sentences, err = clean.CleanText(tr.text, tr.format, opts)
		if err != nil {
			return err
		}
	}

	for _, tr := range translations {
		if err := corpus.WriteLines(tr.output, tr.sentences); err != nil {
			return err
		}
	}

	printSummary(w, translations)
	return nil
}

func printSummary(w io.Writer, translations []*translation) {
	fmt.Fprintf(w, "\nCleaning complete!\n")
	for _, tr := range translations {
		fmt.Fprintf(w, "%s translation: %d sentences\n", tr.label, len(tr.sentences))
	}

	fmt.Fprintf(w, "\nCleaned files saved as:\n")
	for _, tr := range translations {
		fmt.Fprintf(w, "- %s\n", tr.output)
	}

	for _, tr := range translations {
		fmt.Fprintf(w, "\n=== %s translation sample (first %d sentences) ===\n", tr.label, sampleSize)
		for i, s := range tr.sentences[:min(sampleSize, len(tr.sentences))] {
			fmt.Fprintf(w, "%d. %s...\n", i+1, truncate(s, sampleWidth))
		}
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// ReportError prints err as a single line.
func ReportError(w io.Writer, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(w, "Error: file not found. Make sure the file names are correct.")
		return
	}
	fmt.Fprintf(w, "An error occurred: %v\n", err)
}

// RunStopwords removes stopwords from the configured input file.
func RunStopwords(w io.Writer, config *Config) error {
	lex, err := filter.ParseLexicon(config.Lexicon)
	if err != nil {
		return err
	}

	if err := filter.RemoveStopWords(config.StopwordInput, config.StopwordOutput, lex); err != nil {
		return err
	}

	fmt.Fprintf(w, "Cleaned text saved to %s\n", config.StopwordOutput)
	fmt.Fprintln(w, "Done!")
	return nil
}

// RunCleanDirectory cleans every .txt file in config.Directory.
func RunCleanDirectory(ctx context.Context, w io.Writer, config *Config) error {
	format, err := clean.ParseTranslatorFormat(config.Translator)
	if err != nil {
		return err
	}

	opts, err := cleanOptions(config)
	if err != nil {
		return err
	}

	log.Println("Cleaning files in", config.MaxConcurrency, "goroutines")
	results, err := clean.CleanDirectory(ctx, config.Directory, config.OutputDir,
		format, config.MaxConcurrency, opts)
	if err != nil {
		return err
	}

	total := 0
	for _, res := range results {
		total += len(res.Sentences)
	}
	fmt.Fprintf(w, "Cleaned %d files (%d sentences) into %s\n", len(results), total, config.OutputDir)
	return nil
}
