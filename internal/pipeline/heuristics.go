package pipeline

import (
	"cmp"
	"regexp"
	"strings"

	"freightquote/internal"
	"freightquote/internal/util"
)

// Strategy decides how a value found in the email text merges into a field
// that may already hold an extracted value.
type Strategy string

const (
	// StrategyMaxOf keeps the larger of the two values.
	StrategyMaxOf Strategy = "max-of"
	// StrategyLastWriterWins always takes the text value.
	StrategyLastWriterWins Strategy = "last-writer-wins"
	// StrategyFillUnset only sets fields that are still unknown.
	StrategyFillUnset Strategy = "fill-unset"
)

type countRule struct {
	Field    string
	Pattern  *regexp.Regexp
	Strategy Strategy
}

var countRules = []countRule{
	{Field: "storageDays", Pattern: regexp.MustCompile(`(?i)(\d[\d,]*)\s+days?\b`), Strategy: StrategyMaxOf},
	{Field: "pallets", Pattern: regexp.MustCompile(`(?i)(\d[\d,]*)\s+pallets?\b`), Strategy: StrategyMaxOf},
	{Field: "pieces", Pattern: regexp.MustCompile(`(?i)(\d[\d,]*)\s+(?:pieces|pcs|cartons|cases)\b`), Strategy: StrategyMaxOf},
	{Field: "workers", Pattern: regexp.MustCompile(`(?i)(\d[\d,]*)\s+workers?\b`), Strategy: StrategyLastWriterWins},
	{Field: "extraHours", Pattern: regexp.MustCompile(`(?i)(\d[\d,]*)\s+hours?\b`), Strategy: StrategyMaxOf},
}

var (
	// A bare "20" inside "120" or "2025" is not a container size.
	reContainerSize = regexp.MustCompile(`(?i)\b(20|40|45)\s*(?:'|’|-?(?:ft|foot|feet)\b|container\b|hc\b|hq\b)`)
	reShrinkWrap    = regexp.MustCompile(`(?i)shrink[-\s]?wrap`)
	reWeekend       = regexp.MustCompile(`(?i)\b(?:weekend|sat(?:urday)?|sun(?:day)?)\b`)
	reAfterHours    = regexp.MustCompile(`(?i)after[-\s]?hours?`)
	reNotPalletized = regexp.MustCompile(`(?i)\b(?:non|not|un)[-\s]?palleti[sz]ed`)
	rePalletized    = regexp.MustCompile(`(?i)palleti[sz]ed`)
)

// ApplyPricingHeuristics recovers values the extraction missed from the raw
// email text. Counts merge per countRules; container size from text always
// wins; flags and after-hours are only filled when unset.
func ApplyPricingHeuristics(rawText string, in internal.PricingInput) internal.PricingInput {
	if strings.TrimSpace(rawText) == "" {
		return in
	}

	for _, rule := range countRules {
		m := rule.Pattern.FindStringSubmatch(rawText)
		if m == nil {
			continue
		}
		n, ok := util.ParseCount(m[1])
		if !ok || n <= 0 {
			continue
		}
		rule.apply(&in, n)
	}

	if m := reContainerSize.FindStringSubmatch(rawText); m != nil {
		in.ContainerSize = merge(StrategyLastWriterWins, in.ContainerSize, m[1])
	}

	if reShrinkWrap.MatchString(rawText) {
		in.ShrinkWrap = fill(in.ShrinkWrap, true)
	}

	if in.AfterHours == internal.AfterHoursNone {
		switch {
		case reWeekend.MatchString(rawText):
			in.AfterHours = internal.AfterHoursWeekend
		case reAfterHours.MatchString(rawText):
			in.AfterHours = internal.AfterHoursWeekday
		}
	}

	switch {
	case reNotPalletized.MatchString(rawText):
		in.Palletized = fill(in.Palletized, false)
	case rePalletized.MatchString(rawText):
		in.Palletized = fill(in.Palletized, true)
	}
	return in
}

func (r countRule) apply(in *internal.PricingInput, n int) {
	switch r.Field {
	case "storageDays":
		in.StorageDays = merge(r.Strategy, in.StorageDays, n)
	case "pallets":
		in.Pallets = merge(r.Strategy, in.Pallets, n)
	case "pieces":
		in.Pieces = merge(r.Strategy, in.Pieces, n)
	case "workers":
		in.Workers = merge(r.Strategy, in.Workers, n)
	case "extraHours":
		in.ExtraHours = merge(r.Strategy, in.ExtraHours, float64(n))
	}
}

func merge[T cmp.Ordered](s Strategy, current *T, found T) *T {
	switch s {
	case StrategyFillUnset:
		return fill(current, found)
	case StrategyMaxOf:
		if current != nil && *current >= found {
			return current
		}
	}
	return &found
}

func fill[T any](current *T, found T) *T {
	if current != nil {
		return current
	}
	return &found
}
