package ratesheet

import (
	"regexp"
	"strconv"
)

var reNotDollar = regexp.MustCompile(`[^0-9.]`)

// ExtractDollarValue strips every character that is not a digit or a dot and
// parses what remains. Empty or unparseable input yields 0.
func ExtractDollarValue(text string) float64 {
	numeric := reNotDollar.ReplaceAllString(text, "")
	if numeric == "" {
		return 0
	}
	v, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0
	}
	return v
}
