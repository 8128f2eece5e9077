package pipeline

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"freightquote/internal"
)

var requiredValidate *validator.Validate

func init() {
	requiredValidate = validator.New(validator.WithRequiredStructEnabled())
	requiredValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// fieldLabels are the customer-facing names used in clarification emails.
var fieldLabels = map[string]string{
	"containerSize":      "container size",
	"palletized":         "palletized (yes/no)",
	"pieces":             "piece count",
	"containerWeightLbs": "container weight (lbs)",
	"origin":             "origin location",
	"destination":        "destination location",
	"miles":              "miles to travel",
	"shipByDate":         "requested ship-by date",
}

// ValidateRequiredFields returns the json names of the required fields the
// input for serviceType lacks. An empty result means the input can be priced.
func ValidateRequiredFields(serviceType internal.ServiceType, pricing internal.PricingInput, drayage internal.DrayageInput) []string {
	if serviceType == internal.ServiceDrayage {
		return missingFields(drayage)
	}
	return missingFields(pricing)
}

func missingFields(input any) []string {
	err := requiredValidate.Struct(input)
	if err == nil {
		return []string{}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field())
	}
	return out
}

// FieldLabels maps missing-field names to customer-facing labels.
func FieldLabels(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if label, ok := fieldLabels[f]; ok {
			out = append(out, label)
			continue
		}
		out = append(out, f)
	}
	return out
}
