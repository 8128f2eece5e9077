package ratesheet

import (
	"fmt"
	"sort"
	"strings"
)

// TermsText renders the card as plain text, one section per block, for
// inclusion in outbound quotes and for `rates show`.
func (s *Sheet) TermsText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Name)

	b.WriteString("\n" + SectionTransloading + "\n")
	for _, row := range s.doc.Transloading {
		label, _ := lookup(row, "Container Size")
		fmt.Fprintf(&b, "%s\n", label)
		for _, key := range sortedKeys(row) {
			if key == "Container Size" {
				continue
			}
			fmt.Fprintf(&b, "  %s: %s\n", key, row[key])
		}
	}

	writeTable(&b, SectionAccessorial, s.doc.Accessorial)

	b.WriteString("\n" + SectionStorage + "\n")
	for _, line := range s.doc.Storage {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	writeTable(&b, SectionWarehousing, s.doc.Warehousing)

	if d := s.doc.Drayage; d != nil {
		b.WriteString("\n" + SectionDrayage + "\n")
		for _, key := range sortedKeys(d.BaseRatePerMile) {
			fmt.Fprintf(&b, "  Base rate per mile (%s'): %s\n", key, d.BaseRatePerMile[key])
		}
		if d.MinimumMiles != "" {
			fmt.Fprintf(&b, "  Minimum miles: %s\n", d.MinimumMiles)
		}
		for _, w := range d.WeightSurcharges {
			fmt.Fprintf(&b, "  %s: %s\n", w.Label, w.Surcharge)
		}
		writeAddOns(&b, "Quote add-ons", d.QuoteAddOns)
		writeAddOns(&b, "Invoice only", d.InvoiceOnly)
	}
	return b.String()
}

func writeTable(b *strings.Builder, title string, table map[string]string) {
	b.WriteString("\n" + title + "\n")
	for _, key := range sortedKeys(table) {
		fmt.Fprintf(b, "  %s: %s\n", key, table[key])
	}
}

func writeAddOns(b *strings.Builder, title string, addOns map[string]addOnDocument) {
	if len(addOns) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s:\n", title)
	names := make([]string, 0, len(addOns))
	for name := range addOns {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a := addOns[name]
		line := a.Rate
		if a.Unit != "" {
			line += " per " + a.Unit
		}
		if a.FreeUnits != "" && a.FreeUnits != "0" {
			line += fmt.Sprintf(" (%s free)", a.FreeUnits)
		}
		fmt.Fprintf(b, "    %s: %s\n", name, line)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
