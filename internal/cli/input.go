// Package cli handles cmd line input and corrections for debugging and trying out dictionaries
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordfix/internal/logger"
	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/corrector"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// InputHandler reads one word per line and prints the best correction for it.
// Lines that are too short, too long, or not word-like (unless noFilter) are rejected.
type InputHandler struct {
	corrector     corrector.ICorrector
	logger        *log.Logger
	wordStyle     lipgloss.Style
	dimStyle      lipgloss.Style
	minLength     int
	maxLength     int
	noFilter      bool
	showFrequency bool
	requestCount  int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters.
// Results are written to out, styled only when out is a terminal.
func NewInputHandler(c corrector.ICorrector, out io.Writer, minLength, maxLength int, noFilter, showFrequency bool) *InputHandler {
	renderer := lipgloss.NewRenderer(out)
	return &InputHandler{
		corrector:     c,
		logger:        logger.NewWithConfig(out, "", log.GetLevel(), false, false, log.TextFormatter),
		wordStyle:     renderer.NewStyle().Foreground(lipgloss.Color("75")),
		dimStyle:      renderer.NewStyle().Foreground(lipgloss.Color("245")),
		minLength:     minLength,
		maxLength:     maxLength,
		noFilter:      noFilter,
		showFrequency: showFrequency,
	}
}

// Start begins the interface loop.
// It reads lines from in until EOF, which ends the loop without error.
func (h *InputHandler) Start(in io.Reader) error {
	h.logger.Print("WordFix CLI")
	h.logger.Print("type a word and press Enter to see the correction (Ctrl+D to exit):")

	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		if word := strings.TrimSpace(line); word != "" {
			h.HandleInput(word)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				h.logger.Debugf("Handled %d requests", h.requestCount)
				return nil
			}
			return err
		}
	}
}

// HandleInput validates a single word and prints its correction.
// It returns the suggestion, or "" when the word was rejected or nothing matched.
func (h *InputHandler) HandleInput(word string) string {
	h.requestCount++

	if !utils.WordLengthInRange(word, h.minLength, h.maxLength) {
		h.logger.Errorf("Word length must be between %d and %d: %s", h.minLength, h.maxLength, word)
		return ""
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidInput(word) {
			h.logger.Warnf("Ignoring '%s' (filtered out)", word)
			return ""
		}
	} else {
		h.logger.Debug("Input filtering disabled")
	}

	start := time.Now()
	suggestion, found := h.corrector.Suggest(word)
	h.logger.Debugf("Took [ %v ] for '%s'", time.Since(start), word)

	if !found {
		h.logger.Warnf("No suggestion found for '%s'", word)
		return ""
	}

	line := fmt.Sprintf("%s -> %s", word, h.wordStyle.Render(suggestion))
	if strings.EqualFold(word, suggestion) {
		line = fmt.Sprintf("%s %s", h.wordStyle.Render(suggestion), h.dimStyle.Render("(correct)"))
	}
	if h.showFrequency {
		line += h.dimStyle.Render(fmt.Sprintf("  (freq: %s)", utils.FormatWithCommas(int(h.corrector.Frequency(suggestion)))))
	}
	h.logger.Print(line)
	return suggestion
}
