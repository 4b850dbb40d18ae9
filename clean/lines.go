// Package clean turns raw translation dumps into one sentence per line.
package clean

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Headings shorter than this many runes and fully uppercase are dropped.
const maxHeadingLen = 50

var (
	// Bekker page references such as 1094a or 1101b.
	pagePattern = regexp.MustCompile(`\b\d{4}[ab]\b`)

	// Chapter markers: "§1", or "¡ì1" when a GBK encoded § was read as Latin-1.
	chapterPattern = regexp.MustCompile(`(?:¡ì|§)\d+`)

	numericPattern   = regexp.MustCompile(`^\p{Nd}+$`)
	bracketedPattern = regexp.MustCompile(`^\[.*\]$`)
)

// isUpper reports whether s has at least one cased rune and no lowercase
// or titlecase runes.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func isHeading(line string) bool {
	return isUpper(line) && utf8.RuneCountInString(line) < maxHeadingLen
}

// CleanIrwinLines strips front matter, page references, chapter markers and
// headings from Irwin's translation.
// Body text starts at the first line containing both "BOOK" and "I". If no
// such line exists the whole document is kept and found is false.
func CleanIrwinLines(lines []string) (cleaned []string, found bool) {
	start := 0
	for i, line := range lines {
		if strings.Contains(line, "BOOK") && strings.Contains(line, "I") {
			start, found = i, true
			break
		}
	}

	for _, line := range lines[start:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		line = pagePattern.ReplaceAllString(line, "")
		line = chapterPattern.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)

		switch {
		case line == "":
		case numericPattern.MatchString(line):
		case bracketedPattern.MatchString(line):
		case isHeading(line):
		case strings.HasPrefix(line, "BOOK"), strings.HasPrefix(line, "Book"):
		default:
			cleaned = append(cleaned, line)
		}
	}
	return cleaned, found
}

// CleanRossLines strips front matter, chapter numbers, bracketed titles and
// headings from Ross's translation.
// Body text starts after the first line containing "BOOK I". If no such line
// exists the whole document is kept and found is false.
func CleanRossLines(lines []string) (cleaned []string, found bool) {
	start := 0
	for i, line := range lines {
		if strings.Contains(line, "BOOK I") {
			start, found = i+1, true
			break
		}
	}

	for _, line := range lines[start:] {
		line = strings.TrimSpace(line)

		switch {
		case line == "":
		case numericPattern.MatchString(line):
		case bracketedPattern.MatchString(line):
		case strings.HasPrefix(line, "BOOK"):
		case isHeading(line):
		default:
			cleaned = append(cleaned, line)
		}
	}
	return cleaned, found
}
