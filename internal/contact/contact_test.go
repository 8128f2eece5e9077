package contact

import (
	"strings"
	"testing"

	"freightquote/internal/extraction"
)

func TestDerivePrefersExtractedValues(t *testing.T) {
	p := extraction.New(map[string]any{
		"contact_name": "maria LOPEZ",
		"company_name": "acme_freight",
		"phone":        "310-555-0100",
	})
	d := Derive(p, "ops@acme.com", "")
	if d.Name != "Maria Lopez" || d.Company != "Acme Freight" || d.Phone != "310-555-0100" || d.Email != "ops@acme.com" {
		t.Fatalf("details=%+v", d)
	}
}

func TestDeriveGuessesFromSender(t *testing.T) {
	d := Derive(extraction.New(nil), "john.smith@bluewave-logistics.com", "Call me at +1 (562) 555 0199 tomorrow")
	if d.Name != "John Smith" {
		t.Fatalf("name=%q", d.Name)
	}
	if d.Company != "Bluewave Logistics" {
		t.Fatalf("company=%q", d.Company)
	}
	if d.Phone != "+1 (562) 555 0199" {
		t.Fatalf("phone=%q", d.Phone)
	}
}

func TestDeriveFallback(t *testing.T) {
	d := Derive(extraction.New(nil), "", "")
	if d.Email != Fallback.Email || d.Phone != Fallback.Phone {
		t.Fatalf("details=%+v", d)
	}
	// fallback address yields guessed name and company
	if d.Name != "Operations" || d.Company != "Lithiumq" {
		t.Fatalf("details=%+v", d)
	}
}

func TestFormatBlock(t *testing.T) {
	block := FormatBlock(Fallback)
	if !strings.HasPrefix(block, "---\nSender details on file:\n") {
		t.Fatalf("block=%q", block)
	}
	if !strings.Contains(block, "Company: LithiumQ Logistics") || !strings.HasSuffix(block, "Email: operations@lithiumq.com") {
		t.Fatalf("block=%q", block)
	}
}
