/*
Package server implements msgpack IPC for spelling suggestions.

The server reads a stream of msgpack-encoded requests from stdin and writes
one msgpack response per request to stdout. Requests are processed
synchronously, in order, with timing info included in suggestion responses.

# IPC

Every request carries an ID that is echoed back. The action field selects
the operation. A request without an action is a suggestion request:

	{"id": "req_001", "w": "recieve"}

The server answers with the best dictionary match and its frequency:

	{"id": "req_001", "w": "recieve", "s": "receive", "ok": true, "f": 12, "t": 310}

When nothing is within two edits, "ok" is false and "s" is empty. That is a
normal answer, not an error.

Dictionary management:

	{"id": "d1", "action": "info"}
	{"id": "d2", "action": "reload", "path": "/usr/share/dict/words"}
	{"id": "d3", "action": "dump"}

A failed reload keeps the dictionary that was loaded before it.

Errors are reported as {"id", "e", "c"} with an HTTP-like code. Suggestion
words longer than the configured max_word_len are rejected with code 400,
because the two-edit search grows with the square of the word length.
*/
package server

// Request is the envelope for every incoming message.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"` // "", "suggest", "info", "reload", "dump"
	Word   string `msgpack:"w,omitempty"`
	Path   string `msgpack:"path,omitempty"` // for "reload"
}

// SuggestResponse answers a suggestion request.
type SuggestResponse struct {
	ID         string `msgpack:"id"`
	Word       string `msgpack:"w"`
	Suggestion string `msgpack:"s"`
	Found      bool   `msgpack:"ok"`
	Frequency  uint   `msgpack:"f,omitempty"`
	TimeTaken  int64  `msgpack:"t"` // microseconds
}

// DictionaryResponse answers info and reload requests.
type DictionaryResponse struct {
	ID       string         `msgpack:"id"`
	Status   string         `msgpack:"status"`
	Words    uint           `msgpack:"words"`
	Nodes    uint           `msgpack:"nodes"`
	Hash     uint64         `msgpack:"hash"`
	Path     string         `msgpack:"path,omitempty"`
	LoadedAt int64          `msgpack:"loaded,omitempty"` // unix seconds
	Stats    map[string]int `msgpack:"stats,omitempty"`
}

// DumpResponse carries the sorted word list, one word per line.
type DumpResponse struct {
	ID    string `msgpack:"id"`
	Words string `msgpack:"words"`
}

// StatusMessage is sent once when the server is ready.
type StatusMessage struct {
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
