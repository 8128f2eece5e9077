package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"freightquote/internal"
)

func TestExportQuoteXLSX(t *testing.T) {
	qty := 2.0
	out := Outcome{
		ID:          "req-7",
		ServiceType: internal.ServiceDrayage,
		Status:      StatusQuoted,
		RateCard:    "Card",
		Quote: &internal.QuoteResult{
			ServiceType: internal.ServiceDrayage,
			Total:       750,
			LineItems: []internal.LineItem{
				{Label: "Base drayage", Amount: 650, Category: internal.CategoryBase},
				{Label: "Extra stop", Amount: 100, Unit: "stops", Quantity: &qty, Category: internal.CategoryAddOn},
			},
			InvoiceItems: []internal.LineItem{{Label: "Terminal Dry Run", Amount: 150, Category: internal.CategoryInvoice}},
		},
	}
	path := filepath.Join(t.TempDir(), "nested", "quote.xlsx")
	if err := ExportQuoteXLSX(out, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(quoteSheet)
	if err != nil {
		t.Fatal(err)
	}
	last := rows[len(rows)-1]
	if last[0] != "Total" || last[1] != "750" {
		t.Fatalf("total row=%v", last)
	}
	if rows[7][0] != "Base drayage" || rows[8][2] != "2" {
		t.Fatalf("rows=%v", rows)
	}
	inv, err := f.GetRows(invoiceSheet)
	if err != nil || len(inv) != 2 || inv[1][0] != "Terminal Dry Run" {
		t.Fatalf("invoice rows=%v err=%v", inv, err)
	}
}

func TestExportRequiresQuote(t *testing.T) {
	if err := ExportQuoteXLSX(Outcome{ID: "x"}, filepath.Join(t.TempDir(), "q.xlsx")); err == nil {
		t.Fatalf("expected error")
	}
}
