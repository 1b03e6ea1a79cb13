// Package trie implements the 26-ary prefix tree used as the dictionary oracle.
//
// A Trie is built once with Add and then only read. It is not safe for
// concurrent mutation, but any number of goroutines may call Find, Walk or
// String on a trie that is no longer being written to.
package trie

import (
	"bufio"
	"io"
	"strings"
)

// Trie stores lowercase words and how many times each was added.
type Trie struct {
	root      *Node
	wordCount uint
	nodeCount uint
}

// New returns an empty trie holding only the root node.
func New() *Trie {
	return &Trie{
		root:      &Node{},
		nodeCount: 1,
	}
}

// Add inserts word and increments its frequency. Words containing anything
// outside a-z are rejected before any node is created and Add returns false.
func (t *Trie) Add(word string) bool {
	if !IsStorable(word) {
		return false
	}
	t.add(t.root, word, 0)
	return true
}

func (t *Trie) add(cur *Node, word string, pos int) {
	if pos == len(word) {
		if cur.frequency == 0 {
			t.wordCount++
		}
		cur.frequency++
		return
	}

	idx := int(word[pos] - 'a')
	if cur.children[idx] == nil {
		cur.children[idx] = &Node{}
		t.nodeCount++
	}
	t.add(cur.children[idx], word, pos+1)
}

// Find returns the terminal node for word, or nil if word was never added.
// A node that exists only as a prefix of longer words is not returned.
func (t *Trie) Find(word string) *Node {
	return find(t.root, word, 0)
}

func find(cur *Node, word string, pos int) *Node {
	if pos == len(word) {
		if cur.frequency > 0 {
			return cur
		}
		return nil
	}

	next := cur.Child(word[pos])
	if next == nil {
		return nil
	}
	return find(next, word, pos+1)
}

// Frequency returns the stored frequency of word, 0 when absent.
func (t *Trie) Frequency(word string) uint {
	if n := t.Find(word); n != nil {
		return n.frequency
	}
	return 0
}

// WordCount returns the number of distinct words stored.
func (t *Trie) WordCount() uint {
	return t.wordCount
}

// NodeCount returns the number of allocated nodes, root included.
func (t *Trie) NodeCount() uint {
	return t.nodeCount
}

// Walk visits every stored word in lexicographic order. Returning false from
// fn stops the walk.
func (t *Trie) Walk(fn func(word string, freq uint) bool) {
	buf := make([]byte, 0, 32)
	walk(t.root, buf, fn)
}

func walk(cur *Node, path []byte, fn func(string, uint) bool) bool {
	if cur.frequency > 0 {
		if !fn(string(path), cur.frequency) {
			return false
		}
	}
	for i, child := range cur.children {
		if child == nil {
			continue
		}
		if !walk(child, append(path, byte('a'+i)), fn) {
			return false
		}
	}
	return true
}

// String returns every stored word followed by a newline, sorted.
func (t *Trie) String() string {
	var sb strings.Builder
	t.Walk(func(word string, _ uint) bool {
		sb.WriteString(word)
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

// WriteTo streams the same text as String to w.
func (t *Trie) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	var err error
	t.Walk(func(word string, _ uint) bool {
		var n int
		n, err = bw.WriteString(word + "\n")
		written += int64(n)
		return err == nil
	})
	if err != nil {
		return written, err
	}
	return written, bw.Flush()
}

// Equal reports whether other has the same node structure and the same
// frequency at every node. A nil other is never equal.
func (t *Trie) Equal(other *Trie) bool {
	if t == nil || other == nil {
		return false
	}
	if t == other {
		return true
	}
	if t.wordCount != other.wordCount || t.nodeCount != other.nodeCount {
		return false
	}
	return equal(t.root, other.root)
}

func equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.frequency != b.frequency {
		return false
	}
	for i := range a.children {
		if !equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// Hash returns a constant-time signature built from the word count, the node
// count and the index of the root's first child. It collides readily: two
// tries with the same hash are not necessarily equal, and a trie whose first
// root child is 'a' always hashes to 0.
func (t *Trie) Hash() uint64 {
	first := 0
	for i, child := range t.root.children {
		if child != nil {
			first = i
			break
		}
	}
	return uint64(t.wordCount) * uint64(t.nodeCount) * uint64(first)
}

// IsStorable reports whether every byte of word is in a-z.
func IsStorable(word string) bool {
	for i := 0; i < len(word); i++ {
		if _, ok := letterIndex(word[i]); !ok {
			return false
		}
	}
	return true
}
