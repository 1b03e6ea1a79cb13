package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordfix/pkg/corrector"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestPrintSuggestions(t *testing.T) {
	c := corrector.New()
	if err := c.LoadDictionary(strings.NewReader("spelling cat")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	printSuggestions(&buf, c, []string{"speling", "Cat", "qqqqqqq"})

	want := "spelling\ncat\nNo suggestion found\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
