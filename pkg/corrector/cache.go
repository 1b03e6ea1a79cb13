package corrector

import (
	"math"
	"sync"

	"github.com/bastiangx/wordfix/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// cachedResult is the value stored in the cache trie.
type cachedResult struct {
	dict  *trie.Trie
	word  string
	found bool
}

// SuggestionCache memoizes Suggest results keyed by the lowercased query.
// Every entry remembers the dictionary it was computed against and is only
// returned for that same dictionary.
type SuggestionCache struct {
	entries     *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	misses      int64
	maxWords    int
	logger      *log.Logger
	mu          sync.Mutex
}

// NewSuggestionCache returns a cache holding at most maxWords queries.
// A nil logger falls back to the default charm logger.
func NewSuggestionCache(maxWords int, logger *log.Logger) *SuggestionCache {
	if logger == nil {
		logger = log.Default()
	}
	return &SuggestionCache{
		entries:    patricia.NewTrie(),
		accessTime: make(map[string]int64, maxWords),
		maxWords:   maxWords,
		logger:     logger,
	}
}

// Get returns the result cached for query against dict.
func (sc *SuggestionCache) Get(dict *trie.Trie, query string) (word string, found bool, ok bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	item := sc.entries.Get(patricia.Prefix(query))
	if item == nil {
		sc.misses++
		return "", false, false
	}
	res := item.(cachedResult)
	if res.dict != dict {
		sc.misses++
		return "", false, false
	}
	sc.hits++
	sc.markAccessed(query)
	return res.word, res.found, true
}

// Put stores the result for query, evicting the least recently used entry
// when full.
func (sc *SuggestionCache) Put(dict *trie.Trie, query, word string, found bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if _, exists := sc.accessTime[query]; !exists && len(sc.accessTime) >= sc.maxWords {
		sc.evictLRU()
	}
	sc.entries.Set(patricia.Prefix(query), cachedResult{dict: dict, word: word, found: found})
	sc.markAccessed(query)
}

// Reset drops every entry. Hit and miss counters are kept.
func (sc *SuggestionCache) Reset() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	n := len(sc.accessTime)
	sc.entries = patricia.NewTrie()
	sc.accessTime = make(map[string]int64, sc.maxWords)
	sc.logger.Debugf("Suggestion cache reset, dropped %d entries", n)
}

// Len returns the number of cached queries.
func (sc *SuggestionCache) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.accessTime)
}

// Stats returns cache occupancy and hit counters.
func (sc *SuggestionCache) Stats() map[string]int {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return map[string]int{
		"cacheWords":  len(sc.accessTime),
		"maxCache":    sc.maxWords,
		"cacheHits":   int(sc.hits),
		"cacheMisses": int(sc.misses),
	}
}

func (sc *SuggestionCache) markAccessed(query string) {
	sc.accessCount++
	sc.accessTime[query] = sc.accessCount
}

func (sc *SuggestionCache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = math.MaxInt64

	for word, accessTime := range sc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestWord = word
		}
	}

	if oldestTime != math.MaxInt64 {
		delete(sc.accessTime, oldestWord)
		sc.entries.Delete(patricia.Prefix(oldestWord))
		sc.logger.Debugf("Evicted '%s' from suggestion cache", oldestWord)
	}
}
