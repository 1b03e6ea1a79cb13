package server

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/corrector"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func encodeRequests(t *testing.T, reqs ...Request) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, r := range reqs {
		if err := enc.Encode(r); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	return &buf
}

// run serves reqs to completion and returns a decoder over everything written.
func run(t *testing.T, c *corrector.Corrector, cfg *config.Config, reqs ...Request) *msgpack.Decoder {
	t.Helper()
	var out bytes.Buffer
	s := NewServerWithIO(c, cfg, encodeRequests(t, reqs...), &out)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	dec := msgpack.NewDecoder(&out)

	var ready StatusMessage
	if err := dec.Decode(&ready); err != nil || ready.Status != "ready" {
		t.Fatalf("expected ready message, got %+v (%v)", ready, err)
	}
	return dec
}

func loaded(t *testing.T, words string) *corrector.Corrector {
	t.Helper()
	c := corrector.New()
	if err := c.LoadDictionary(strings.NewReader(words)); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestSuggestRequests(t *testing.T) {
	c := loaded(t, "hello hello hello help help world")
	dec := run(t, c, nil,
		Request{ID: "1", Word: "helo"},
		Request{ID: "2", Action: "suggest", Word: "World"},
		Request{ID: "3", Word: "qqqqqqqq"},
	)

	testCases := []struct {
		id         string
		suggestion string
		found      bool
		frequency  uint
	}{
		{"1", "hello", true, 3},
		{"2", "world", true, 1},
		{"3", "", false, 0},
	}
	for _, tc := range testCases {
		var resp SuggestResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("decode %s: %v", tc.id, err)
		}
		if resp.ID != tc.id || resp.Suggestion != tc.suggestion || resp.Found != tc.found || resp.Frequency != tc.frequency {
			t.Errorf("request %s: got %+v", tc.id, resp)
		}
	}
}

func TestWordLengthBounds(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxWordLen = 5
	dec := run(t, loaded(t, "cat"), cfg,
		Request{ID: "long", Word: "abcdefgh"},
		Request{ID: "empty", Word: ""},
	)

	for _, id := range []string{"long", "empty"} {
		var resp ErrorResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatal(err)
		}
		if resp.ID != id || resp.Code != 400 {
			t.Errorf("expected 400 for %s, got %+v", id, resp)
		}
	}
}

func TestNoDictionary(t *testing.T) {
	dec := run(t, corrector.New(), nil,
		Request{ID: "s", Word: "cat"},
		Request{ID: "i", Action: "info"},
		Request{ID: "d", Action: "dump"},
	)

	var e ErrorResponse
	if err := dec.Decode(&e); err != nil || e.Code != 503 {
		t.Errorf("suggest: expected 503, got %+v (%v)", e, err)
	}
	var info DictionaryResponse
	if err := dec.Decode(&info); err != nil || info.Status != "empty" {
		t.Errorf("info: expected empty status, got %+v (%v)", info, err)
	}
	e = ErrorResponse{}
	if err := dec.Decode(&e); err != nil || e.ID != "d" || e.Code != 503 {
		t.Errorf("dump: expected 503, got %+v (%v)", e, err)
	}
}

func TestInfoAndDump(t *testing.T) {
	c := loaded(t, "car cat cats")
	dec := run(t, c, nil,
		Request{ID: "i", Action: "info"},
		Request{ID: "d", Action: "DUMP"},
	)

	var info DictionaryResponse
	if err := dec.Decode(&info); err != nil {
		t.Fatal(err)
	}
	dict := c.Dictionary()
	if info.Words != 3 || info.Nodes != 6 || info.Hash != dict.Hash() || info.Status != "ok" {
		t.Errorf("unexpected info %+v", info)
	}
	if info.Stats["words"] != 3 {
		t.Errorf("expected stats to carry word count, got %v", info.Stats)
	}

	var dump DumpResponse
	if err := dec.Decode(&dump); err != nil {
		t.Fatal(err)
	}
	if dump.Words != "car\ncat\ncats\n" {
		t.Errorf("unexpected dump %q", dump.Words)
	}
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("zebra zebu"), 0644); err != nil {
		t.Fatal(err)
	}

	c := loaded(t, "cat")
	dec := run(t, c, nil,
		Request{ID: "bad", Action: "reload", Path: filepath.Join(dir, "missing.txt")},
		Request{ID: "s1", Word: "cot"},
		Request{ID: "good", Action: "reload", Path: path},
		Request{ID: "s2", Word: "zebro"},
	)

	var e ErrorResponse
	if err := dec.Decode(&e); err != nil || e.ID != "bad" || e.Code != 500 {
		t.Fatalf("expected 500 for failed reload, got %+v (%v)", e, err)
	}
	var s1 SuggestResponse
	if err := dec.Decode(&s1); err != nil || s1.Suggestion != "cat" {
		t.Errorf("old dictionary not kept after failed reload: %+v (%v)", s1, err)
	}
	var info DictionaryResponse
	if err := dec.Decode(&info); err != nil || info.Status != "reloaded" || info.Words != 2 || info.Path != path {
		t.Errorf("unexpected reload response %+v (%v)", info, err)
	}
	var s2 SuggestResponse
	if err := dec.Decode(&s2); err != nil || s2.Suggestion != "zebra" {
		t.Errorf("expected 'zebra' after reload, got %+v (%v)", s2, err)
	}
}

func TestUnknownAction(t *testing.T) {
	dec := run(t, loaded(t, "cat"), nil, Request{ID: "x", Action: "explode"})

	var e ErrorResponse
	if err := dec.Decode(&e); err != nil {
		t.Fatal(err)
	}
	if e.ID != "x" || e.Code != 400 || !strings.Contains(e.Error, "explode") {
		t.Errorf("unexpected error response %+v", e)
	}
}

func TestGarbageInput(t *testing.T) {
	var out bytes.Buffer
	// 0xc1 is never a valid msgpack code
	s := NewServerWithIO(loaded(t, "cat"), nil, bytes.NewReader([]byte{0xc1}), &out)
	if err := s.Start(); err == nil {
		t.Error("expected decode error for garbage input")
	}
}

func TestReloadConfiguredPaths(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("zebra"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("zebra zebu"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Dict.Path = a + ", " + b
	c := loaded(t, "cat")
	dec := run(t, c, cfg,
		Request{ID: "r", Action: "reload"},
		Request{ID: "s", Word: "zebro"},
	)

	var info DictionaryResponse
	if err := dec.Decode(&info); err != nil {
		t.Fatal(err)
	}
	if info.Status != "reloaded" || info.Words != 2 || info.Path != a+","+b {
		t.Errorf("unexpected reload response %+v", info)
	}
	if got := c.Frequency("zebra"); got != 2 {
		t.Errorf("expected 'zebra' counted across both files, got %d", got)
	}
	var s SuggestResponse
	if err := dec.Decode(&s); err != nil || s.Suggestion != "zebra" {
		t.Errorf("expected 'zebra', got %+v (%v)", s, err)
	}
}

func TestReloadUsesPathResolver(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "words.txt"), []byte("zebra"), 0644); err != nil {
		t.Fatal(err)
	}

	c := loaded(t, "cat")
	in := encodeRequests(t, Request{ID: "r", Action: "reload"})
	var out bytes.Buffer
	s := NewServerWithIO(c, nil, in, &out)
	s.SetPathResolver(func(p string) string { return filepath.Join(dir, p) })
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	var ready StatusMessage
	if err := dec.Decode(&ready); err != nil {
		t.Fatal(err)
	}
	var info DictionaryResponse
	if err := dec.Decode(&info); err != nil {
		t.Fatal(err)
	}
	if info.Status != "reloaded" || info.Path != filepath.Join(dir, "words.txt") {
		t.Errorf("relative default path not resolved: %+v", info)
	}
}
