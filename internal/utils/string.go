package utils

import (
	"github.com/dustin/go-humanize"
)

// FormatWithCommas formats n with thousands separators.
func FormatWithCommas(n int) string {
	return humanize.Comma(int64(n))
}

// FormatBytes formats a byte count for log output, e.g. "1.2 MB".
func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
