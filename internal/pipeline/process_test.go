package pipeline

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"freightquote/internal"
	"freightquote/internal/pricing"
	"freightquote/internal/quote"
	"freightquote/internal/ratesheet"
)

func newProcessor() *Processor {
	return NewProcessor(ratesheet.Default(), nil)
}

func TestProcessTransloadingQuote(t *testing.T) {
	out, err := newProcessor().Process(context.Background(), Request{
		ID:      "t-1",
		Sender:  "ops@acme-imports.com",
		RawText: "Hi, we have a 40ft container arriving, palletized.",
		Reply:   "```json\n{\"container_size\": \"40ft\", \"palletized\": true, \"quantity\": 0}\n```",
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.Status != StatusQuoted || out.ServiceType != internal.ServiceTransloading {
		t.Fatalf("out=%+v", out)
	}
	if out.Quote.Total != 345 {
		t.Fatalf("total=%v", out.Quote.Total)
	}
	total, err := quote.ParseTotal(out.Table)
	if err != nil || total != 345 {
		t.Fatalf("table total=%v err=%v", total, err)
	}
	if !strings.Contains(out.Footer, quote.FooterMarker) || out.Fingerprint == "" {
		t.Fatalf("footer=%q fingerprint=%q", out.Footer, out.Fingerprint)
	}
	if out.Contact.Company != "Acme Imports" {
		t.Fatalf("contact=%+v", out.Contact)
	}
}

func TestProcessDrayageFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/drayage-extracted.json")
	if err != nil {
		t.Fatal(err)
	}
	out, err := newProcessor().Process(context.Background(), Request{ID: "d-1", RawText: "Drayage from LB", Reply: string(data)})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.Status != StatusQuoted || out.ServiceType != internal.ServiceDrayage {
		t.Fatalf("out=%+v", out)
	}
	// 62 mi @ 3.75 + hot rush 200 + pier pass 80 + prepull 150 + 1 extra stop 50
	if out.Quote.Total != 712.5 {
		t.Fatalf("total=%v items=%+v", out.Quote.Total, out.Quote.LineItems)
	}
	if len(out.Quote.InvoiceItems) != 2 {
		t.Fatalf("invoice=%+v", out.Quote.InvoiceItems)
	}
	if out.Contact.Name != "Dana Reyes" {
		t.Fatalf("contact=%+v", out.Contact)
	}
}

func TestProcessNeedsClarification(t *testing.T) {
	out, err := newProcessor().Process(context.Background(), Request{
		ID:      "d-2",
		RawText: "Need a drayage move, pier pass prepaid.",
		Reply:   `{"origin": "Port of Oakland", "container_size": "40ft"}`,
		Sender:  "lee@portside.io",
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.Status != StatusNeedsClarification || out.Quote != nil {
		t.Fatalf("out=%+v", out)
	}
	want := []string{"containerWeightLbs", "destination", "miles", "shipByDate"}
	if strings.Join(out.Missing, ",") != strings.Join(want, ",") {
		t.Fatalf("missing=%v", out.Missing)
	}
	for _, s := range []string{
		"detailed drayage quotation",
		"Missing: container weight (lbs), destination location, miles to travel, requested ship-by date",
		"Sender details on file:",
		"Email: lee@portside.io",
	} {
		if !strings.Contains(out.Clarification, s) {
			t.Fatalf("clarification missing %q:\n%s", s, out.Clarification)
		}
	}
}

func TestProcessMalformedReplyFallsBackToText(t *testing.T) {
	out, err := newProcessor().Process(context.Background(), Request{
		ID:      "t-2",
		RawText: "Quote for a 20' container, 300 cartons, not palletized",
		Reply:   "I could not parse this email.",
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.Status != StatusQuoted {
		t.Fatalf("out=%+v", out)
	}
	// 170 loose tier + seal + bill of lading
	if out.Quote.Total != 180 {
		t.Fatalf("total=%v", out.Quote.Total)
	}
}

func TestProcessUnsupportedSize(t *testing.T) {
	_, err := newProcessor().Process(context.Background(), Request{
		ID:    "t-3",
		Reply: `{"container_size": "53ft", "palletized": true, "quantity": 40}`,
	})
	if !errors.Is(err, pricing.ErrUnsupportedContainerSize) {
		t.Fatalf("err=%v", err)
	}
}

func TestFingerprintIsDeterministic(t *testing.T) {
	req := Request{ID: "a", Reply: `{"container_size": "40ft", "palletized": true, "quantity": 80}`}
	p := newProcessor()
	a, err := p.Process(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	req.ID = "b"
	b, err := p.Process(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if a.Fingerprint != b.Fingerprint {
		t.Fatalf("fingerprints differ: %s %s", a.Fingerprint, b.Fingerprint)
	}
	req.Reply = `{"container_size": "40ft", "palletized": true, "quantity": 81}`
	c, _ := p.Process(context.Background(), req)
	if c.Fingerprint == a.Fingerprint {
		t.Fatalf("different inputs share a fingerprint")
	}
}

func TestProcessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newProcessor().Process(ctx, Request{ID: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v", err)
	}
}
