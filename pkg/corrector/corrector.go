// Package corrector suggests the most likely intended dictionary word for a
// possibly misspelled input.
//
// A Corrector loads a word list into a trie, then answers Suggest queries by
// searching every string within one edit of the input, and if nothing
// matches, every string within two edits. Among the candidates found in the
// dictionary the most frequent wins, and ties go to the alphabetically
// smaller word.
//
// The loaded trie is never mutated and is only handed out as a read-only
// Snapshot. A reload builds a new trie and swaps it in only when the whole
// source was read, so Suggest may be called from any number of goroutines,
// including while a reload is running.
package corrector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/dictionary"
	"github.com/bastiangx/wordfix/pkg/trie"
	"github.com/charmbracelet/log"
	"go.uber.org/atomic"
)

// ErrNoDictionary is returned by operations that need a loaded dictionary.
var ErrNoDictionary = errors.New("no dictionary loaded")

// Corrector owns one dictionary trie at a time.
type Corrector struct {
	mu        sync.RWMutex
	dict      *trie.Trie
	view      *Snapshot
	cache     *SuggestionCache
	cacheSize int
	logger    *log.Logger

	loadedAt time.Time
	skipped  int

	queries   atomic.Int64
	exact     atomic.Int64
	corrected atomic.Int64
	misses    atomic.Int64
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithCache enables a suggestion cache holding up to size queries.
// A size of 0 or less leaves caching off.
func WithCache(size int) Option {
	return func(c *Corrector) {
		c.cacheSize = size
	}
}

// WithLogger sets the logger used for load summaries.
func WithLogger(logger *log.Logger) Option {
	return func(c *Corrector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Corrector with no dictionary loaded.
func New(opts ...Option) *Corrector {
	c := &Corrector{
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cacheSize > 0 {
		c.cache = NewSuggestionCache(c.cacheSize, c.logger)
	}
	return c
}

// LoadDictionary builds a fresh dictionary from the whitespace-separated
// tokens of r. Tokens are lowercased. Tokens with characters outside a-z
// are skipped. On a read error the previous dictionary stays in place.
func (c *Corrector) LoadDictionary(r io.Reader) error {
	t := trie.New()
	skipped := 0
	err := dictionary.Scan(r, func(token string) {
		if !t.Add(utils.Lower(token)) {
			skipped++
		}
	})
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}
	c.swap(t, skipped)
	return nil
}

// LoadFile loads a dictionary from a single word list file.
func (c *Corrector) LoadFile(path string, enc dictionary.Encoding) error {
	rc, err := dictionary.Open(path, enc)
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := c.LoadDictionary(rc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadFiles reads every path concurrently and builds one dictionary from all
// of them, in argument order. Any failure leaves the previous dictionary in place.
func (c *Corrector) LoadFiles(ctx context.Context, enc dictionary.Encoding, paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("failed to load dictionary: no files given")
	}
	sources, err := dictionary.ReadFiles(ctx, enc, paths...)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	t := trie.New()
	skipped := 0
	for _, tokens := range sources {
		for _, token := range tokens {
			if !t.Add(utils.Lower(token)) {
				skipped++
			}
		}
	}
	c.swap(t, skipped)
	return nil
}

func (c *Corrector) swap(t *trie.Trie, skipped int) {
	c.mu.Lock()
	c.dict = t
	c.view = &Snapshot{t: t}
	c.skipped = skipped
	c.loadedAt = time.Now()
	c.mu.Unlock()

	if c.cache != nil {
		c.cache.Reset()
	}

	c.logger.Debugf("Dictionary loaded: %s words, %s nodes, %s tokens skipped",
		utils.FormatWithCommas(int(t.WordCount())),
		utils.FormatWithCommas(int(t.NodeCount())),
		utils.FormatWithCommas(skipped))
}

// Dictionary returns a read-only view of the current dictionary, or nil
// before the first load. The same view is returned until the next reload.
func (c *Corrector) Dictionary() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

func (c *Corrector) current() *trie.Trie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dict
}

// Loaded reports whether a dictionary has been loaded.
func (c *Corrector) Loaded() bool {
	return c.current() != nil
}

// Suggest returns the dictionary word most likely meant by word. A word
// already in the dictionary is returned as-is. The boolean is false when no
// word within two edits exists, or when no dictionary is loaded.
func (c *Corrector) Suggest(word string) (string, bool) {
	c.queries.Inc()
	query := utils.Lower(word)

	dict := c.current()
	if dict == nil {
		c.misses.Inc()
		return "", false
	}

	if dict.Find(query) != nil {
		c.exact.Inc()
		return query, true
	}

	cacheable := c.cache != nil && query != ""
	if cacheable {
		if best, found, ok := c.cache.Get(dict, query); ok {
			c.record(found)
			return best, found
		}
	}

	best, found := suggest(dict, query)
	if cacheable {
		c.cache.Put(dict, query, best, found)
	}
	c.record(found)
	return best, found
}

func (c *Corrector) record(found bool) {
	if found {
		c.corrected.Inc()
	} else {
		c.misses.Inc()
	}
}

// suggest runs the one-edit then two-edit search for a word known not to
// be in dict.
func suggest(dict *trie.Trie, query string) (string, bool) {
	first := Edits(query)
	if best, freq := bestMatch(dict, first); freq > 0 {
		return best, true
	}

	second := secondEdits(first)
	if best, freq := bestMatch(dict, second); freq > 0 {
		return best, true
	}
	return "", false
}

// bestMatch picks the most frequent candidate present in dict. Equal
// frequencies resolve to the lexicographically smaller word, which makes the
// result independent of map iteration order.
func bestMatch(dict *trie.Trie, candidates map[string]struct{}) (string, uint) {
	best := ""
	var bestFreq uint

	for candidate := range candidates {
		node := dict.Find(candidate)
		if node == nil {
			continue
		}
		freq := node.Frequency()
		switch {
		case freq > bestFreq:
			best, bestFreq = candidate, freq
		case freq == bestFreq && candidate < best:
			best = candidate
		}
	}
	return best, bestFreq
}

// Frequency returns the count of word in the current dictionary, 0 when
// absent or when nothing is loaded. word must already be lowercase.
func (c *Corrector) Frequency(word string) uint {
	dict := c.current()
	if dict == nil {
		return 0
	}
	return dict.Frequency(word)
}

// Stats returns query counters and the size of the loaded dictionary.
func (c *Corrector) Stats() map[string]int {
	stats := map[string]int{
		"queries":   int(c.queries.Load()),
		"exact":     int(c.exact.Load()),
		"corrected": int(c.corrected.Load()),
		"misses":    int(c.misses.Load()),
	}

	c.mu.RLock()
	if c.dict != nil {
		stats["words"] = int(c.dict.WordCount())
		stats["nodes"] = int(c.dict.NodeCount())
		stats["skipped"] = c.skipped
	}
	c.mu.RUnlock()

	if c.cache != nil {
		for k, v := range c.cache.Stats() {
			stats[k] = v
		}
	}
	return stats
}

// LoadedAt returns when the current dictionary was swapped in.
func (c *Corrector) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

// DumpTo writes every dictionary word, sorted, one per line.
func (c *Corrector) DumpTo(w io.Writer) error {
	dict := c.current()
	if dict == nil {
		return ErrNoDictionary
	}
	_, err := dict.WriteTo(w)
	return err
}
