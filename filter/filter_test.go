package filter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		text string
		sw   *StopWords
		want string
	}{
		{
			name: "single stopword",
			text: "The quick brown fox",
			sw:   NewStopWords("the"),
			want: "quick brown fox",
		},
		{
			name: "case insensitive set",
			text: "the THE The fox",
			sw:   NewStopWords("The"),
			want: "fox",
		},
		{
			name: "empty text",
			text: "",
			sw:   NewStopWords("the"),
			want: "",
		},
		{
			name: "english list",
			text: "Every art and every inquiry is thought to aim at some good",
			sw:   English(),
			want: "Every art every inquiry thought aim good",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(tt.text, tt.sw)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Filter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterRemovesAllStopwords(t *testing.T) {
	text := "If, then, there is some end of the things we do, which we desire for its own sake, " +
		"clearly this must be the good and the chief good."

	got, err := Filter(text, English())
	if err != nil {
		t.Fatal(err)
	}

	for _, word := range strings.Fields(got) {
		if English().Contains(word) {
			t.Errorf("stopword %q left in output %q", word, got)
		}
	}
}

func TestEnglish(t *testing.T) {
	sw := English()
	if sw != English() {
		t.Error("English() should return the same set on every call")
	}
	if sw.Len() != 179 {
		t.Errorf("expected 179 stopwords, got %d", sw.Len())
	}
	for _, w := range []string{"the", "and", "wouldn't", "ourselves"} {
		if !sw.Contains(w) {
			t.Errorf("expected %q to be a stopword", w)
		}
	}
	if sw.Contains("virtue") {
		t.Error("virtue is not a stopword")
	}
}

func TestFilterWith(t *testing.T) {
	tests := []struct {
		name string
		text string
		lex  Lexicon
		want string
	}{
		{name: "nltk", text: "The good is that at which all things aim", lex: NLTK, want: "good things aim"},
		{name: "default", text: "The good is that at which all things aim", lex: "", want: "good things aim"},
		{name: "bbalet", text: "The Good is that at which all things aim.", lex: Bbalet, want: "good things aim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterWith(tt.text, tt.lex)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FilterWith() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := FilterWith("text", "spacy"); !errors.Is(err, ErrUnknownLexicon) {
		t.Errorf("expected ErrUnknownLexicon, got %v", err)
	}
}

func TestRemoveStopWordsBbalet(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(in, []byte("The Good is that at which all things aim."), 0644); err != nil {
		t.Fatal(err)
	}
	if err := RemoveStopWords(in, out, Bbalet); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "good things aim" {
		t.Errorf("unexpected output %q", data)
	}
}

func TestParseLexicon(t *testing.T) {
	if lex, err := ParseLexicon(" NLTK "); err != nil || lex != NLTK {
		t.Errorf("ParseLexicon(NLTK) = %q, %v", lex, err)
	}
	if lex, err := ParseLexicon("bbalet"); err != nil || lex != Bbalet {
		t.Errorf("ParseLexicon(bbalet) = %q, %v", lex, err)
	}
	if _, err := ParseLexicon("spacy"); !errors.Is(err, ErrUnknownLexicon) {
		t.Errorf("expected ErrUnknownLexicon, got %v", err)
	}
}

func TestRemoveStopWords(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ross_cleaned.txt")
	out := filepath.Join(dir, "output_Ross.txt")

	if err := os.WriteFile(in, []byte("The good is that at which all things aim\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := RemoveStopWords(in, out, NLTK); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "good things aim" {
		t.Errorf("unexpected output %q", data)
	}

	if err := RemoveStopWords(filepath.Join(dir, "missing.txt"), out, NLTK); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func BenchmarkFilter(b *testing.B) {
	text := strings.Repeat("The good is that at which all things aim. ", 50)
	sw := English()
	for i := 0; i < b.N; i++ {
		Filter(text, sw)
	}
}
