package corrector

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Edits returns every string one deletion, transposition, alteration or
// insertion away from word, over the letters a-z.
func Edits(word string) map[string]struct{} {
	n := len(word)
	set := make(map[string]struct{}, 54*n+26)
	addEdits(word, set)
	return set
}

// addEdits writes the 1-edit neighbours of word into set.
func addEdits(word string, set map[string]struct{}) {
	n := len(word)
	buf := make([]byte, 0, n+1)

	// deletion
	for i := 0; i < n; i++ {
		buf = append(append(buf[:0], word[:i]...), word[i+1:]...)
		set[string(buf)] = struct{}{}
	}

	// transposition
	for i := 0; i < n-1; i++ {
		buf = append(buf[:0], word...)
		buf[i], buf[i+1] = buf[i+1], buf[i]
		set[string(buf)] = struct{}{}
	}

	// alteration
	for i := 0; i < n; i++ {
		buf = append(buf[:0], word...)
		for j := 0; j < len(alphabet); j++ {
			buf[i] = alphabet[j]
			set[string(buf)] = struct{}{}
		}
	}

	// insertion
	for i := 0; i <= n; i++ {
		for j := 0; j < len(alphabet); j++ {
			buf = append(buf[:0], word[:i]...)
			buf = append(buf, alphabet[j])
			buf = append(buf, word[i:]...)
			set[string(buf)] = struct{}{}
		}
	}
}

// secondEdits returns the union of the 1-edit neighbours of every member
// of first.
func secondEdits(first map[string]struct{}) map[string]struct{} {
	set := make(map[string]struct{}, len(first)*16)
	for word := range first {
		addEdits(word, set)
	}
	return set
}
