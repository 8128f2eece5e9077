package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"freightquote/internal"
	"freightquote/internal/util"
)

func TestValidateTransloading(t *testing.T) {
	cases := []struct {
		name string
		in   internal.PricingInput
		want []string
	}{
		{"complete", internal.PricingInput{ContainerSize: util.StringPtr("40"), Palletized: util.BoolPtr(true), Pieces: util.IntPtr(10)}, []string{}},
		{"palletized false is present", internal.PricingInput{ContainerSize: util.StringPtr("40"), Palletized: util.BoolPtr(false), Pieces: util.IntPtr(0)}, []string{}},
		{"missing size", internal.PricingInput{Palletized: util.BoolPtr(true), Pieces: util.IntPtr(10)}, []string{"containerSize"}},
		{"missing all", internal.PricingInput{}, []string{"containerSize", "palletized", "pieces"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ValidateRequiredFields(internal.ServiceTransloading, c.in, internal.DrayageInput{})
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateDrayageRejectsZeroWeightAndMiles(t *testing.T) {
	in := internal.DrayageInput{
		ContainerSize:      "40",
		ContainerWeightLbs: util.FloatPtr(0),
		Origin:             "A",
		Destination:        "B",
		Miles:              util.FloatPtr(0),
		ShipByDate:         "2025-01-01",
	}
	got := ValidateRequiredFields(internal.ServiceDrayage, internal.PricingInput{}, in)
	if diff := cmp.Diff([]string{"containerWeightLbs", "miles"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFieldLabels(t *testing.T) {
	got := FieldLabels([]string{"containerWeightLbs", "shipByDate", "other"})
	want := []string{"container weight (lbs)", "requested ship-by date", "other"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
