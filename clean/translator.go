package clean

import (
	"fmt"
	"strings"
)

// TranslatorFormat identifies which line cleaner matches a translation's layout.
type TranslatorFormat int

const (
	// Irwin is Terence Irwin's translation: Bekker page tokens, § chapter
	// markers and bracketed section titles.
	Irwin TranslatorFormat = iota + 1

	// Ross is W. D. Ross's translation: numbered chapters and uppercase headings.
	Ross
)

func (f TranslatorFormat) String() string {
	switch f {
	case Irwin:
		return "irwin"
	case Ross:
		return "ross"
	}
	return fmt.Sprintf("TranslatorFormat(%d)", int(f))
}

// ParseTranslatorFormat maps a translator name to its format.
// Unknown names are an error rather than falling back to Ross.
func ParseTranslatorFormat(name string) (TranslatorFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "irwin":
		return Irwin, nil
	case "ross":
		return Ross, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTranslator, name)
}

// CleanLines runs the line cleaner for f.
// found reports whether the anchor line was present.
func (f TranslatorFormat) CleanLines(lines []string) (cleaned []string, found bool, err error) {
	switch f {
	case Irwin:
		cleaned, found = CleanIrwinLines(lines)
	case Ross:
		cleaned, found = CleanRossLines(lines)
	default:
		return nil, false, fmt.Errorf("%w: %s", ErrUnknownTranslator, f)
	}
	return cleaned, found, nil
}
