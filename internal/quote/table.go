// Package quote renders priced results for emails and audit copies. It never
// changes an amount.
package quote

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"freightquote/internal"
	"freightquote/internal/money"
)

var ErrNoTotal = errors.New("quote: table has no total row")

var reTotalRow = regexp.MustCompile(`\|\s*\*\*Total\*\*\s*\|\s*\*\*\$(-?[0-9,]+\.[0-9]{2})\*\*\s*\|`)

var breakdownLabels = []struct {
	label string
	value func(b *internal.Breakdown) float64
}{
	{"Base transloading", func(b *internal.Breakdown) float64 { return b.BaseCost }},
	{"Accessories", func(b *internal.Breakdown) float64 { return b.Accessories }},
	{"Handling", func(b *internal.Breakdown) float64 { return b.Handling }},
	{"After-hours access", func(b *internal.Breakdown) float64 { return b.AfterHoursFee }},
	{"Storage", func(b *internal.Breakdown) float64 { return b.Storage }},
	{"Labor", func(b *internal.Breakdown) float64 { return b.Labor }},
}

// FormatTable renders the quote as a markdown table with a bold total row
// and, when present, a second table of invoice-only charges. A result with no
// line items and no breakdown renders as "".
func FormatTable(res internal.QuoteResult) string {
	items := res.LineItems
	if len(items) == 0 && res.Breakdown != nil {
		for _, l := range breakdownLabels {
			items = append(items, internal.LineItem{Label: l.label, Amount: l.value(res.Breakdown)})
		}
	}
	if len(items) == 0 {
		return ""
	}

	lines := []string{
		"Quotation Summary",
		"",
		"| Component | Amount |",
		"| --- | ---: |",
	}
	lines = append(lines, renderRows(items)...)
	lines = append(lines, fmt.Sprintf("| **Total** | **$%s** |", money.Format(res.Total)))

	if len(res.InvoiceItems) > 0 {
		lines = append(lines,
			"",
			"Invoice-only Charges",
			"",
			"| Component | Amount |",
			"| --- | ---: |",
		)
		lines = append(lines, renderRows(res.InvoiceItems)...)
	}
	return strings.Join(lines, "\n")
}

func renderRows(items []internal.LineItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprintf("| %s | $%s |", describe(item), money.Format(item.Amount)))
	}
	return out
}

func describe(item internal.LineItem) string {
	if item.Quantity == nil || *item.Quantity == 0 || item.Unit == "" {
		return item.Label
	}
	return fmt.Sprintf("%s (%s %s)", item.Label, strconv.FormatFloat(*item.Quantity, 'f', -1, 64), item.Unit)
}

// ParseTotal reads the total back out of a table produced by FormatTable.
func ParseTotal(table string) (float64, error) {
	m := reTotalRow.FindStringSubmatch(table)
	if m == nil {
		return 0, ErrNoTotal
	}
	return money.Parse(strings.ReplaceAll(m[1], ",", ""))
}
