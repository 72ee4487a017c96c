package sheet

import (
	"regexp"
	"strconv"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// ParseNumber leniently parses an episode count out of a store cell.
// Users type things like "12 odc." or leave cells empty, so all
// non-digit characters are stripped before parsing. Never fails:
// empty or unparsable input yields the fallback.
func ParseNumber(value string, fallback int) int {
	s := strings.TrimSpace(value)
	if s == "" {
		return fallback
	}
	digits := nonDigitRe.ReplaceAllString(s, "")
	if digits == "" {
		return fallback
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Overflow from absurdly long digit runs.
		return fallback
	}
	return n
}
