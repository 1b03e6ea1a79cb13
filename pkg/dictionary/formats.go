package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrUnsupportedEncoding is returned by ParseEncoding for unknown names.
	ErrUnsupportedEncoding = errors.New("unsupported dictionary encoding")
	// ErrInvalidFile is returned when a path is not a readable word list.
	ErrInvalidFile = errors.New("invalid dictionary file")
)

// Encoding is the character encoding of a dictionary file.
type Encoding int

const (
	EncodingUTF8   Encoding = iota
	EncodingLatin1          // ISO-8859-1, common in older word lists
)

// String returns the canonical config name of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingLatin1:
		return "latin1"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ParseEncoding maps a config/flag value to an Encoding. Empty means UTF-8.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	default:
		return EncodingUTF8, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
}

// Decode wraps r so that it yields UTF-8 text.
func (e Encoding) Decode(r io.Reader) io.Reader {
	if e == EncodingLatin1 {
		return charmap.ISO8859_1.NewDecoder().Reader(r)
	}
	return r
}

// textExtensions lists the extensions accepted for word list files.
// A file without an extension, like /usr/share/dict/words, is also accepted.
var textExtensions = map[string]bool{
	"":       true,
	".txt":   true,
	".dic":   true,
	".words": true,
}

// ValidateFile checks that path is a regular file with a word list extension.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrInvalidFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !textExtensions[ext] {
		return fmt.Errorf("%w: %s has extension %s (expected .txt, .dic, .words or none)",
			ErrInvalidFile, path, ext)
	}

	log.Debugf("Dictionary file %s validated (%s)", path, utils.FormatBytes(info.Size()))
	return nil
}

type decodedFile struct {
	io.Reader
	f *os.File
}

func (d decodedFile) Close() error {
	return d.f.Close()
}

// Open validates and opens a dictionary file, decoding it to UTF-8.
func Open(path string, enc Encoding) (io.ReadCloser, error) {
	if err := ValidateFile(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	return decodedFile{Reader: enc.Decode(f), f: f}, nil
}
