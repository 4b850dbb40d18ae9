package clean

import (
	"errors"
	"slices"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "abbreviation Mr",
			lines: []string{"He said Mr. Smith left. Then he returned."},
			want:  []string{"He said Mr. Smith left.", "Then he returned."},
		},
		{
			name:  "e.g. and i.e.",
			lines: []string{"Some goods are instrumental, e.g. wealth and honour. Others, i.e. happiness, are final."},
			want: []string{
				"Some goods are instrumental, e.g. wealth and honour.",
				"Others, i.e. happiness, are final.",
			},
		},
		{
			name:  "question and exclamation",
			lines: []string{"What is the chief good?  Surely it is happiness! Everyone agrees on the name."},
			want:  []string{"What is the chief good?", "Surely it is happiness!", "Everyone agrees on the name."},
		},
		{
			name:  "short fragments dropped",
			lines: []string{"Yes. No. This fragment is long enough."},
			want:  []string{"This fragment is long enough."},
		},
		{
			name:  "blank lines",
			lines: []string{"", "   ", "\t"},
			want:  nil,
		},
		{
			name:  "no split without whitespace",
			lines: []string{"See 1.2.3 for details on the argument"},
			want:  []string{"See 1.2.3 for details on the argument"},
		},
		{
			name:  "abbreviations at fragment start",
			lines: []string{"The ends of action are many. Mr. Dr. and Mrs. are titles of men."},
			want:  []string{"The ends of action are many.", "Mr. Dr. and Mrs. are titles of men."},
		},
		{
			name:  "titles before names",
			lines: []string{"This is a pleasure for Dr. Tomas. It ends here, says Mrs. Jones."},
			want:  []string{"This is a pleasure for Dr. Tomas.", "It ends here, says Mrs. Jones."},
		},
		{
			name:  "sentences stay within lines",
			lines: []string{"The first line has no stop", "and the second line ends here."},
			want:  []string{"The first line has no stop", "and the second line ends here."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.lines)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitSentences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEndsWithAbbreviation(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"said Mr", true},
		{"Mr", true},
		{"see e.g", true},
		{"(viz", true},
		{"summer", false},
		{"Messrs", false},
		{"drums", false},
		{"AMr", false},
		{"sviz", false},
	}
	for _, tt := range tests {
		if got := endsWithAbbreviation(tt.in); got != tt.want {
			t.Errorf("endsWithAbbreviation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseSegmenter(t *testing.T) {
	if seg, err := ParseSegmenter("Punkt"); err != nil || seg != Punkt {
		t.Errorf("ParseSegmenter(Punkt) = %q, %v", seg, err)
	}
	if _, err := ParseSegmenter("spacy"); !errors.Is(err, ErrUnknownSegmenter) {
		t.Errorf("expected ErrUnknownSegmenter, got %v", err)
	}
	if _, err := Segmenter("bogus").Split([]string{"text"}); !errors.Is(err, ErrUnknownSegmenter) {
		t.Errorf("expected ErrUnknownSegmenter, got %v", err)
	}
}

func TestPunktSegmenter(t *testing.T) {
	got, err := Punkt.Split([]string{"", "Every art aims at some good. The good is that at which all things aim."})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Every art aims at some good.", "The good is that at which all things aim."}
	if !slices.Equal(got, want) {
		t.Errorf("Punkt.Split() = %q, want %q", got, want)
	}
}

func BenchmarkSplitSentences(b *testing.B) {
	lines := []string{
		"He said Mr. Smith left. Then he returned.",
		"Some goods are instrumental, e.g. wealth and honour. Others are final.",
	}
	for i := 0; i < b.N; i++ {
		SplitSentences(lines)
	}
}
