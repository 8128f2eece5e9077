package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"freightquote/internal"
	"freightquote/internal/contact"
	"freightquote/internal/extraction"
	"freightquote/internal/logging"
	"freightquote/internal/pricing"
	"freightquote/internal/quote"
	"freightquote/internal/ratesheet"
)

type Status string

const (
	StatusQuoted             Status = "quoted"
	StatusNeedsClarification Status = "needs_clarification"
)

// Request is one inbound quote request: the email text and the extraction
// model's reply for it.
type Request struct {
	ID      string `json:"id"`
	Sender  string `json:"sender,omitempty"`
	RawText string `json:"rawText"`
	Reply   string `json:"reply"`
}

type Outcome struct {
	ID            string                `json:"id"`
	ServiceType   internal.ServiceType  `json:"serviceType"`
	Status        Status                `json:"status"`
	Missing       []string              `json:"missing"`
	Pricing       internal.PricingInput `json:"pricing"`
	Drayage       internal.DrayageInput `json:"drayage"`
	Quote         *internal.QuoteResult `json:"quote,omitempty"`
	Table         string                `json:"table,omitempty"`
	Footer        string                `json:"footer,omitempty"`
	Clarification string                `json:"clarification,omitempty"`
	Contact       contact.Details       `json:"contact"`
	Fingerprint   string                `json:"fingerprint,omitempty"`
	RateCard      string                `json:"rateCard"`
}

type Processor struct {
	sheet *ratesheet.Sheet
	log   *zap.Logger
}

func NewProcessor(sheet *ratesheet.Sheet, log *zap.Logger) *Processor {
	return &Processor{sheet: sheet, log: logging.OrNop(log)}
}

func (p *Processor) Sheet() *ratesheet.Sheet {
	return p.sheet
}

// Process classifies, normalizes and validates a request, then prices it or
// drafts a clarification. Calculator errors abort the request.
func (p *Processor) Process(ctx context.Context, req Request) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	start := time.Now()
	log := p.log.With(zap.String("request", req.ID))

	extracted, err := extraction.Decode(req.Reply)
	if errors.Is(err, extraction.ErrMalformed) {
		log.Warn("extraction reply is not JSON, continuing with text heuristics", zap.Error(err))
	}

	service := DetermineServiceType(extracted, req.RawText)
	normalized := ApplyPricingHeuristics(req.RawText, NormalizeTransloading(extracted))
	drayage := BuildDrayageInput(extracted, normalized)
	log.Debug("normalized", zap.String("service", string(service)))

	out := Outcome{
		ID:          req.ID,
		ServiceType: service,
		Pricing:     normalized,
		Drayage:     drayage,
		Contact:     contact.Derive(extracted, req.Sender, req.RawText),
		RateCard:    p.sheet.Name,
	}

	out.Missing = ValidateRequiredFields(service, normalized, drayage)
	if len(out.Missing) > 0 {
		out.Status = StatusNeedsClarification
		out.Clarification = ClarificationMessage(service, out.Missing, out.Contact)
		log.Debug("missing fields", zap.Strings("fields", out.Missing))
		return out, nil
	}

	var res internal.QuoteResult
	if service == internal.ServiceDrayage {
		res, err = pricing.CalculateDrayagePricing(p.sheet, drayage)
	} else {
		res, err = pricing.CalculateTransloadingCost(p.sheet, normalized)
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("price %s request %s: %w", service, req.ID, err)
	}

	out.Status = StatusQuoted
	out.Quote = &res
	out.Table = quote.FormatTable(res)
	out.Footer = quote.Footer(res, p.sheet.Accessorials)
	out.Fingerprint = Fingerprint(p.sheet.Name, service, normalized, drayage)

	log.Debug("quoted",
		zap.Float64("total", res.Total),
		zap.Int("lineItems", len(res.LineItems)),
		zap.Int("invoiceItems", len(res.InvoiceItems)),
		zap.Duration("took", time.Since(start)),
	)
	return out, nil
}

// ClarificationMessage drafts the reply asking the customer for the missing
// fields, followed by the sender details on file.
func ClarificationMessage(service internal.ServiceType, missing []string, details contact.Details) string {
	body := fmt.Sprintf(`Dear Customer,

Thank you for your inquiry.

Before we can prepare your detailed %s quotation, could you please confirm the following information:

Missing: %s

Once received, we will prepare your updated quote immediately.

Warm regards,
Logistics Team
LithiumQ`, service, strings.Join(FieldLabels(missing), ", "))
	return body + "\n\n" + contact.FormatBlock(details)
}
