package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reNotNumeric = regexp.MustCompile(`[^0-9.\-]`)
	reTruthy     = regexp.MustCompile(`(?i)^(true|yes|y|1|on)$`)
	reDigits     = regexp.MustCompile(`\d+`)
)

// ParseCount parses a counted token such as "1,200" as an integer.
func ParseCount(token string) (int, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(token), ",", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseLooseFloat keeps digits, dots and minus signs and parses the rest.
// "62 miles" -> 62, "$1,250.50" -> 1250.5.
func ParseLooseFloat(input string) (float64, bool) {
	cleaned := reNotNumeric.ReplaceAllString(input, "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func IsTruthy(input string) bool {
	return reTruthy.MatchString(strings.TrimSpace(input))
}

// FirstDigits returns the first run of digits in input, or "".
func FirstDigits(input string) string {
	return reDigits.FindString(input)
}
