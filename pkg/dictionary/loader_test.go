package dictionary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestReadTokens(t *testing.T) {
	input := "  Hello world\n\tfoo   BAR\r\nbaz\n\n"
	tokens, err := ReadTokens(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTokens: %v", err)
	}
	want := []string{"Hello", "world", "foo", "BAR", "baz"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("got %v, want %v", tokens, want)
	}
}

func TestScanReadError(t *testing.T) {
	boom := errors.New("boom")
	err := Scan(iotest.ErrReader(boom), func(string) {})
	if !errors.Is(err, boom) {
		t.Errorf("expected read error to surface, got %v", err)
	}
}

func TestParseEncoding(t *testing.T) {
	testCases := []struct {
		name    string
		want    Encoding
		wantErr bool
	}{
		{"", EncodingUTF8, false},
		{"UTF-8", EncodingUTF8, false},
		{"latin1", EncodingLatin1, false},
		{"ISO-8859-1", EncodingLatin1, false},
		{"ebcdic", EncodingUTF8, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseEncoding(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedEncoding) {
				t.Errorf("expected ErrUnsupportedEncoding, got %v", err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReadFileLatin1(t *testing.T) {
	dir := t.TempDir()
	// "café naïve" in ISO-8859-1
	path := writeFile(t, dir, "latin.txt", []byte{'c', 'a', 'f', 0xE9, ' ', 'n', 'a', 0xEF, 'v', 'e', '\n'})

	tokens, err := ReadFile(path, EncodingLatin1)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []string{"café", "naïve"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("got %q, want %q", tokens, want)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "words.txt", []byte("a b c"))
	bare := writeFile(t, dir, "words", []byte("a b c"))
	bad := writeFile(t, dir, "words.bin", []byte{0, 1, 2})

	if err := ValidateFile(good); err != nil {
		t.Errorf("expected %s valid: %v", good, err)
	}
	if err := ValidateFile(bare); err != nil {
		t.Errorf("expected %s valid: %v", bare, err)
	}
	if err := ValidateFile(bad); !errors.Is(err, ErrInvalidFile) {
		t.Errorf("expected ErrInvalidFile for %s, got %v", bad, err)
	}
	if err := ValidateFile(dir); !errors.Is(err, ErrInvalidFile) {
		t.Errorf("expected ErrInvalidFile for directory, got %v", err)
	}
	if err := ValidateFile(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("one two"))
	b := writeFile(t, dir, "b.txt", []byte("three"))
	c := writeFile(t, dir, "c.txt", []byte(""))

	got, err := ReadFiles(context.Background(), EncodingUTF8, a, b, c)
	if err != nil {
		t.Fatalf("ReadFiles: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0], []string{"one", "two"}) || !reflect.DeepEqual(got[1], []string{"three"}) || len(got[2]) != 0 {
		t.Errorf("unexpected results: %q", got)
	}

	_, err = ReadFiles(context.Background(), EncodingUTF8, a, filepath.Join(dir, "missing.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("one"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ReadFiles(ctx, EncodingUTF8, a); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
