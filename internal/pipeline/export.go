package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"freightquote/internal"
)

const (
	quoteSheet   = "Quote"
	invoiceSheet = "Invoice only"
)

var exportHeaders = []string{"component", "amount", "quantity", "unit", "category"}

// ExportQuoteXLSX writes the priced outcome to outputPath. Invoice-only
// charges go to their own sheet and are not part of the total row.
func ExportQuoteXLSX(out Outcome, outputPath string) error {
	if out.Quote == nil {
		return fmt.Errorf("export %s: request was not quoted", out.ID)
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), quoteSheet); err != nil {
		return err
	}

	meta := [][]any{
		{"request", out.ID},
		{"service", string(out.ServiceType)},
		{"rate card", out.RateCard},
		{"reference", out.Fingerprint},
		{"contact", out.Contact.Name + ", " + out.Contact.Company},
	}
	for i, row := range meta {
		setRow(f, quoteSheet, i+1, row)
	}

	start := len(meta) + 2
	next := writeItems(f, quoteSheet, start, out.Quote.LineItems)
	setRow(f, quoteSheet, next, []any{"Total", out.Quote.Total})

	if len(out.Quote.InvoiceItems) > 0 {
		if _, err := f.NewSheet(invoiceSheet); err != nil {
			return err
		}
		writeItems(f, invoiceSheet, 1, out.Quote.InvoiceItems)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

// writeItems writes a header row at row and the items below it. It returns
// the first free row.
func writeItems(f *excelize.File, sheet string, row int, items []internal.LineItem) int {
	headers := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	setRow(f, sheet, row, headers)
	for i, item := range items {
		var quantity any = ""
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		setRow(f, sheet, row+i+1, []any{item.Label, item.Amount, quantity, item.Unit, string(item.Category)})
	}
	return row + len(items) + 1
}

func setRow(f *excelize.File, sheet string, row int, values []any) {
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}
