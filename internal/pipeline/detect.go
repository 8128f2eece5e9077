package pipeline

import (
	"regexp"
	"strings"

	"freightquote/internal"
	"freightquote/internal/extraction"
)

var (
	explicitServiceFields = []string{"service_type", "serviceType", "mode", "shipment_type"}
	drayageSignalFields   = []string{"container_weight_lbs", "miles_to_travel"}

	reDrayageKeywords = regexp.MustCompile(`(?i)drayage|pier\s?pass|\blfd\b|last[-\s]free[-\s]day|pre-?pull|terminal|container\s?truck|chassis`)
)

// DetermineServiceType classifies a request. Rules are checked in order and
// the last one always answers.
func DetermineServiceType(extracted extraction.Payload, rawText string) internal.ServiceType {
	if explicit, ok := extracted.First(explicitServiceFields...); ok {
		if s, ok := explicit.(string); ok {
			lower := strings.ToLower(s)
			if strings.Contains(lower, "drayage") {
				return internal.ServiceDrayage
			}
			if strings.Contains(lower, "transload") {
				return internal.ServiceTransloading
			}
		}
	}

	if extracted.HasObject("drayage") {
		return internal.ServiceDrayage
	}
	if _, ok := extracted.First(drayageSignalFields...); ok {
		return internal.ServiceDrayage
	}

	if reDrayageKeywords.MatchString(rawText) {
		return internal.ServiceDrayage
	}
	return internal.ServiceTransloading
}
