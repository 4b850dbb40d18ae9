package cli

import (
	"context"
	"log"
	"os"

	"github.com/abiiranathan/goflag"
)

func DefineFlags(config *Config) *goflag.Context {
	// Flags shared by the cleaning subcommands
	segmenterFlag := goflag.Flag{
		FlagType:  goflag.FlagString,
		Name:      "segmenter",
		ShortName: "s",
		Value:     &config.Segmenter,
		Usage:     "Sentence splitter: rules or punkt",
		Required:  false,
		Validator: nil,
	}

	strictFlag := goflag.Flag{
		FlagType:  goflag.FlagBool,
		Name:      "strict",
		ShortName: "x",
		Value:     &config.StrictAnchor,
		Usage:     "Fail if the BOOK I anchor line is missing instead of cleaning the whole file",
		Required:  false,
		Validator: nil,
	}

	nfcFlag := goflag.Flag{
		FlagType:  goflag.FlagBool,
		Name:      "nfc",
		ShortName: "n",
		Value:     &config.NormalizeUnicode,
		Usage:     "Apply Unicode NFC normalization before cleaning",
		Required:  false,
		Validator: nil,
	}

	// Create flag context.
	ctx := goflag.NewContext()

	// global flags
	ctx.AddFlag(goflag.FlagInt, "concurrency", "c",
		&config.MaxConcurrency,
		"No of files cleaned at once by clean_dir",
		false, goflag.Min(1), goflag.Max(100))

	ctx.AddSubCommand("stopwords", "Remove English stopwords from a text file", func() {
		if err := RunStopwords(os.Stdout, config); err != nil {
			log.Fatalln(err)
		}
	}).AddFlag(goflag.FlagString, "input", "i", &config.StopwordInput, "The text file to filter", false).
		AddFlag(goflag.FlagString, "output", "o", &config.StopwordOutput, "The file to write the filtered text to", false).
		AddFlag(goflag.FlagString, "lexicon", "l", &config.Lexicon, "Stopword list: nltk or bbalet", false)

	ctx.AddSubCommand("clean", "Clean the Irwin and Ross translations into one sentence per line", func() {
		if err := RunCleaner(os.Stdout, config); err != nil {
			ReportError(os.Stdout, err)
		}
	}).AddFlag(goflag.FlagString, "irwin", "I", &config.IrwinInput, "Terence Irwin translation dump", false).
		AddFlag(goflag.FlagString, "ross", "R", &config.RossInput, "W. D. Ross translation dump", false).
		AddFlag(goflag.FlagString, "irwin-out", "a", &config.IrwinOutput, "Output for the cleaned Irwin sentences", false).
		AddFlag(goflag.FlagString, "ross-out", "b", &config.RossOutput, "Output for the cleaned Ross sentences", false).
		AddFlagPtr(&segmenterFlag).AddFlagPtr(&strictFlag).AddFlagPtr(&nfcFlag)

	ctx.AddSubCommand("clean_dir", "Clean every .txt file in a directory", func() {
		if err := RunCleanDirectory(context.Background(), os.Stdout, config); err != nil {
			log.Fatalln(err)
		}
	}).AddFlag(goflag.FlagDirPath, "directory", "d", &config.Directory, "The directory of translation dumps", true).
		AddFlag(goflag.FlagString, "out", "o", &config.OutputDir, "The directory to write cleaned files to", false).
		AddFlag(goflag.FlagString, "translator", "t", &config.Translator, "Translation format: irwin or ross", false).
		AddFlagPtr(&segmenterFlag).AddFlagPtr(&strictFlag).AddFlagPtr(&nfcFlag)

	return ctx
}
