package pipeline

import (
	"encoding/json"

	"github.com/google/uuid"

	"freightquote/internal"
)

var quoteNamespace = uuid.MustParse("6f0c3b9e-4a51-5d2e-9b7a-2f1d8c0e6a43")

// Fingerprint is a name-based UUID over the priced input and the rate card,
// so the same request against the same card always gets the same reference.
func Fingerprint(card string, service internal.ServiceType, pricing internal.PricingInput, drayage internal.DrayageInput) string {
	var priced any = pricing
	if service == internal.ServiceDrayage {
		priced = drayage
	}
	canonical, err := json.Marshal(struct {
		Card    string               `json:"card"`
		Service internal.ServiceType `json:"service"`
		Input   any                  `json:"input"`
	}{card, service, priced})
	if err != nil {
		return ""
	}
	return uuid.NewSHA1(quoteNamespace, canonical).String()
}
