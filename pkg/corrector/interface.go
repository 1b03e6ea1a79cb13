package corrector

import "io"

// ICorrector is the query surface the CLI and IPC server depend on.
type ICorrector interface {
	// Suggest returns the best dictionary match for word, false if none.
	Suggest(word string) (string, bool)

	// Frequency returns how often word occurs in the loaded dictionary.
	Frequency(word string) uint

	// LoadDictionary replaces the dictionary with the tokens of r.
	LoadDictionary(r io.Reader) error

	// DumpTo writes the sorted word list.
	DumpTo(w io.Writer) error

	// Stats returns counters about queries and the loaded dictionary.
	Stats() map[string]int
}

var _ ICorrector = (*Corrector)(nil)
