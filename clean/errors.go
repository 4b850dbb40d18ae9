package clean

import "errors"

var (
	// ErrUnknownTranslator is returned for a translator name with no cleaner.
	ErrUnknownTranslator = errors.New("clean: unknown translator")

	// ErrAnchorNotFound is returned in strict mode when the line marking the
	// start of the body text is missing.
	ErrAnchorNotFound = errors.New("clean: anchor line not found")

	// ErrUnknownSegmenter is returned for a sentence splitter name other
	// than rules or punkt.
	ErrUnknownSegmenter = errors.New("clean: unknown segmenter")
)
