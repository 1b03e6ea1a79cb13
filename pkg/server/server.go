package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordfix/internal/logger"
	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/corrector"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for spelling suggestions
type Server struct {
	corrector *corrector.Corrector
	config    *config.Config
	decoder   *msgpack.Decoder
	writer    *bufio.Writer
	encoder   *msgpack.Encoder
	logger    *log.Logger
	resolve   func(string) string
	requests  int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(c *corrector.Corrector, cfg *config.Config) *Server {
	return NewServerWithIO(c, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams.
func NewServerWithIO(c *corrector.Corrector, cfg *config.Config, in io.Reader, out io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	w := bufio.NewWriter(out)
	return &Server{
		corrector: c,
		config:    cfg,
		decoder:   msgpack.NewDecoder(bufio.NewReader(in)),
		writer:    w,
		encoder:   msgpack.NewEncoder(w),
		logger:    logger.NewStderr("server"),
		resolve:   func(p string) string { return p },
	}
}

// SetPathResolver sets how reload paths are located, e.g. relative to the
// executable or the config dir. Paths are used as given by default.
func (s *Server) SetPathResolver(fn func(string) string) {
	if fn != nil {
		s.resolve = fn
	}
}

// Start sends the ready message, then serves requests until EOF.
// A stream that can no longer be decoded ends the loop with an error.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusMessage{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Client closed input after %d requests", s.requests)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			return fmt.Errorf("decode request: %w", err)
		}
		s.requests++
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the request action. Only write failures are
// returned; request problems are answered with an ErrorResponse.
func (s *Server) handleRequest(req Request) error {
	switch strings.ToLower(req.Action) {
	case "", "suggest":
		return s.handleSuggest(req)
	case "info":
		return s.send(s.dictionaryInfo(req.ID, "ok", ""))
	case "reload":
		return s.handleReload(req)
	case "dump":
		return s.handleDump(req)
	default:
		return s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleSuggest(req Request) error {
	word := req.Word
	minLen, maxLen := s.config.Server.MinWordLen, s.config.Server.MaxWordLen
	if !utils.WordLengthInRange(word, minLen, maxLen) {
		s.logger.Debug("Rejected word length", "word", word, "len", len(word))
		return s.sendError(req.ID, fmt.Sprintf("Word length must be between %d and %d", minLen, maxLen), 400)
	}
	if !s.corrector.Loaded() {
		return s.sendError(req.ID, corrector.ErrNoDictionary.Error(), 503)
	}

	start := time.Now()
	suggestion, found := s.corrector.Suggest(word)
	elapsed := time.Since(start)

	resp := SuggestResponse{
		ID:         req.ID,
		Word:       word,
		Suggestion: suggestion,
		Found:      found,
		TimeTaken:  elapsed.Microseconds(),
	}
	if found {
		resp.Frequency = s.corrector.Frequency(suggestion)
	}
	s.logger.Debugf("Suggest %q -> %q (%v)", word, suggestion, elapsed)
	return s.send(resp)
}

// handleReload loads the request's path, or the configured dictionaries when
// it is empty. Both may be comma separated lists.
func (s *Server) handleReload(req Request) error {
	paths := config.SplitPaths(req.Path)
	if len(paths) == 0 {
		paths = s.config.DictPaths()
	}
	for i, p := range paths {
		paths[i] = s.resolve(p)
	}
	path := strings.Join(paths, ",")

	if err := s.corrector.LoadFiles(context.Background(), s.config.DictEncoding(), paths...); err != nil {
		s.logger.Warnf("Reload from %s failed, keeping current dictionary: %v", path, err)
		return s.sendError(req.ID, err.Error(), 500)
	}
	s.logger.Infof("Reloaded dictionary from %s", path)
	return s.send(s.dictionaryInfo(req.ID, "reloaded", path))
}

func (s *Server) handleDump(req Request) error {
	var sb strings.Builder
	if err := s.corrector.DumpTo(&sb); err != nil {
		return s.sendError(req.ID, err.Error(), 503)
	}
	return s.send(DumpResponse{ID: req.ID, Words: sb.String()})
}

func (s *Server) dictionaryInfo(id, status, path string) DictionaryResponse {
	resp := DictionaryResponse{
		ID:     id,
		Status: status,
		Path:   path,
		Stats:  s.corrector.Stats(),
	}
	if dict := s.corrector.Dictionary(); dict != nil {
		resp.Words = dict.WordCount()
		resp.Nodes = dict.NodeCount()
		resp.Hash = dict.Hash()
		resp.LoadedAt = s.corrector.LoadedAt().Unix()
	} else {
		resp.Status = "empty"
	}
	return resp
}

// send encodes one response and flushes it so the client sees it immediately.
func (s *Server) send(v any) error {
	if err := s.encoder.Encode(v); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	return s.writer.Flush()
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
