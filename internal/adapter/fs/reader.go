package fs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// ErrEncoding is returned when a file cannot be decoded with the configured encoding.
var ErrEncoding = errors.New("invalid text encoding")

// Reader reads text documents and returns them as NFC-normalised UTF-8.
type Reader struct {
	decoder encoding.Encoding // nil means UTF-8
}

// NewReader creates a reader for "utf-8", "windows-1251" or "koi8-r".
func NewReader(enc string) (*Reader, error) {
	switch strings.ToLower(enc) {
	case "", "utf-8", "utf8":
		return &Reader{}, nil
	case "windows-1251", "cp1251":
		return &Reader{decoder: charmap.Windows1251}, nil
	case "koi8-r":
		return &Reader{decoder: charmap.KOI8R}, nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", enc)
	}
}

// ReadDocument returns the decoded content of path.
func (r *Reader) ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file %s: %w", path, ErrNotFound)
		}
		return "", err
	}

	if r.decoder != nil {
		data, err = r.decoder.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("%s: %w: %v", path, ErrEncoding, err)
		}
	} else if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrEncoding)
	}

	return norm.NFC.String(string(data)), nil
}
