package quote

import (
	"fmt"
	"regexp"
	"strings"

	"freightquote/internal"
	"freightquote/internal/money"
	"freightquote/internal/ratesheet"
)

// FooterMarker separates a draft email body from its computed price footer.
const FooterMarker = "--PRICE-FOOTER--"

var reFooterLead = regexp.MustCompile(`^[-\s]+`)

func TransloadingFooter(res internal.QuoteResult, acc ratesheet.AccessorialRates) string {
	return fmt.Sprintf("\n\n%s\nPricing (computed): Total: $%s\nIncludes: Seal %s, Bill of Lading %s\n",
		FooterMarker, money.Format(res.Total), acc.SealText, acc.BillOfLadingText)
}

func DrayageFooter(res internal.QuoteResult) string {
	parts := make([]string, 0, len(res.LineItems))
	for _, item := range res.LineItems {
		parts = append(parts, fmt.Sprintf("%s: $%s", item.Label, money.Format(item.Amount)))
	}
	return fmt.Sprintf("\n\n%s\nDrayage pricing (computed): Total: $%s\n%s\n",
		FooterMarker, money.Format(res.Total), strings.Join(parts, "; "))
}

// Footer picks the footer for the result's service type.
func Footer(res internal.QuoteResult, acc ratesheet.AccessorialRates) string {
	if res.ServiceType == internal.ServiceDrayage {
		return DrayageFooter(res)
	}
	return TransloadingFooter(res, acc)
}

// SplitFooter separates text into the body and the footer note. The note is
// empty when the marker is absent or nothing follows it.
func SplitFooter(text string) (body, note string) {
	before, after, found := strings.Cut(text, FooterMarker)
	if !found {
		return strings.TrimSpace(text), ""
	}
	if next := strings.Index(after, FooterMarker); next >= 0 {
		after = after[:next]
	}
	return strings.TrimSpace(before), strings.TrimSpace(reFooterLead.ReplaceAllString(after, ""))
}
