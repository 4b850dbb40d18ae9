package cli

// Config holds the configuration for the CLI.
type Config struct {
	// Max files cleaned at a time by clean_dir.
	// Default is 10.
	MaxConcurrency int

	// Translation dumps read by the clean subcommand.
	IrwinInput string
	RossInput  string

	// One-sentence-per-line outputs of the clean subcommand.
	IrwinOutput string
	RossOutput  string

	// Input and output of the stopwords subcommand.
	StopwordInput  string
	StopwordOutput string

	// Stopword list: nltk or bbalet.
	Lexicon string

	// Sentence splitter: rules or punkt.
	Segmenter string

	// Fail when a translation has no anchor line instead of cleaning
	// the whole document.
	StrictAnchor bool

	// Apply NFC normalization before cleaning.
	NormalizeUnicode bool

	// clean_dir: input directory, output directory and translator format.
	Directory  string
	OutputDir  string
	Translator string
}

var DefaultConfig = Config{
	MaxConcurrency: 10,
	IrwinInput:     "Terence Irwin_30-78.txt",
	RossInput:      "W. D. Ross_1-49.txt",
	IrwinOutput:    "irwin_cleaned.txt",
	RossOutput:     "ross_cleaned.txt",
	StopwordInput:  "ross_cleaned.txt",
	StopwordOutput: "output_Ross.txt",
	Lexicon:        "nltk",
	Segmenter:      "rules",
	OutputDir:      "cleaned",
	Translator:     "ross",
}
