package trie

// AlphabetSize is the branching factor of every node, one slot per letter a-z.
const AlphabetSize = 26

// Node is a single trie node. A frequency of 0 means the path to this node
// is only a prefix of some stored word, not a word itself.
type Node struct {
	frequency uint
	children  [AlphabetSize]*Node
}

// Frequency returns how many times the word ending at this node was added.
func (n *Node) Frequency() uint {
	return n.frequency
}

// Child returns the child for letter c, or nil if it is absent or c is not in a-z.
func (n *Node) Child(c byte) *Node {
	idx, ok := letterIndex(c)
	if !ok {
		return nil
	}
	return n.children[idx]
}

// letterIndex maps a-z to 0..25.
func letterIndex(c byte) (int, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}
