package corrector

import (
	"io"

	"github.com/bastiangx/wordfix/pkg/trie"
)

// Snapshot is a read-only view of a loaded dictionary. It exposes lookups
// and traversal only, so callers cannot change the trie that concurrent
// Suggest calls are reading.
type Snapshot struct {
	t *trie.Trie
}

// Find returns the terminal node for word, or nil when word is not stored.
func (s *Snapshot) Find(word string) *trie.Node { return s.t.Find(word) }

// Frequency returns how many times word was loaded, 0 when absent.
func (s *Snapshot) Frequency(word string) uint { return s.t.Frequency(word) }

// WordCount returns the number of distinct words.
func (s *Snapshot) WordCount() uint { return s.t.WordCount() }

// NodeCount returns the number of trie nodes, root included.
func (s *Snapshot) NodeCount() uint { return s.t.NodeCount() }

// Hash returns the trie's weak constant-time signature.
func (s *Snapshot) Hash() uint64 { return s.t.Hash() }

// Walk visits every word in lexicographic order until fn returns false.
func (s *Snapshot) Walk(fn func(word string, freq uint) bool) { s.t.Walk(fn) }

// WriteTo writes the sorted word list, one word per line.
func (s *Snapshot) WriteTo(w io.Writer) (int64, error) { return s.t.WriteTo(w) }

func (s *Snapshot) String() string { return s.t.String() }

// Equal reports whether both snapshots hold structurally equal tries.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if other == nil {
		return false
	}
	return s.t.Equal(other.t)
}
