package corpus

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names a candidate character encoding for a corpus file.
type Encoding string

const (
	UTF8      Encoding = "utf-8"
	Latin1    Encoding = "latin-1"
	CP1252    Encoding = "cp1252"
	ISO8859_1 Encoding = "iso-8859-1"
)

// DefaultEncodings is the order in which encodings are tried by ReadFile.
var DefaultEncodings = []Encoding{UTF8, Latin1, CP1252, ISO8859_1}

var (
	// ErrUndecodable is returned when no candidate encoding decodes a file.
	ErrUndecodable = errors.New("corpus: unable to decode file with any encoding")

	// ErrUnknownEncoding is returned for an encoding name Decode does not know.
	ErrUnknownEncoding = errors.New("corpus: unknown encoding")
)

// Decode converts data to a Go string using enc.
// utf-8 fails on the first invalid byte sequence.
func Decode(data []byte, enc Encoding) (string, error) {
	var t transform.Transformer

	switch Encoding(strings.ToLower(string(enc))) {
	case UTF8:
		t = encoding.UTF8Validator
	case Latin1, ISO8859_1:
		t = charmap.ISO8859_1.NewDecoder()
	case CP1252:
		t = charmap.Windows1252.NewDecoder()
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownEncoding, enc)
	}

	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReadFile reads path and decodes it with the first encoding that succeeds.
// If encodings is empty, DefaultEncodings is used.
// A missing or unreadable file returns the error from os.ReadFile unchanged
// in the chain, so errors.Is(err, fs.ErrNotExist) works for callers.
func ReadFile(path string, encodings ...Encoding) (string, Encoding, error) {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("unable to read %s: %w", path, err)
	}

	for _, enc := range encodings {
		text, err := Decode(data, enc)
		if err != nil {
			continue
		}
		return text, enc, nil
	}
	return "", "", fmt.Errorf("%w: %s", ErrUndecodable, path)
}
