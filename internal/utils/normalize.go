package utils

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower folds s to lowercase. A Caser is stateful, so one is made per call
// to keep this safe for concurrent queries.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
