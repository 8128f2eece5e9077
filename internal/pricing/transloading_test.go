package pricing

import (
	"errors"
	"testing"

	"freightquote/internal"
	"freightquote/internal/money"
	"freightquote/internal/ratesheet"
	"freightquote/internal/util"
)

func transloading(t *testing.T, in internal.PricingInput) internal.QuoteResult {
	t.Helper()
	res, err := CalculateTransloadingCost(ratesheet.Default(), in)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	return res
}

func TestPalletized40NoExtras(t *testing.T) {
	res := transloading(t, internal.PricingInput{
		ContainerSize: util.StringPtr("40"),
		Palletized:    util.BoolPtr(true),
		Pieces:        util.IntPtr(0),
	})
	if res.Total != 345 {
		t.Fatalf("total=%v", res.Total)
	}
	if res.Breakdown.BaseCost != 335 || res.Breakdown.Accessories != 10 {
		t.Fatalf("breakdown=%+v", res.Breakdown)
	}
	if len(res.LineItems) != 2 || res.LineItems[0].Label != LabelBaseCost {
		t.Fatalf("line items=%+v", res.LineItems)
	}
}

func TestTotalIsSumOfBuckets(t *testing.T) {
	inputs := []internal.PricingInput{
		{ContainerSize: util.StringPtr("20"), Palletized: util.BoolPtr(false), Pieces: util.IntPtr(1600)},
		{ContainerSize: util.StringPtr("45"), Palletized: util.BoolPtr(true), Pieces: util.IntPtr(800), Pallets: util.IntPtr(20),
			ShrinkWrap: util.BoolPtr(true), AfterHours: internal.AfterHoursWeekend, StorageDays: util.IntPtr(45),
			HeightInches: util.FloatPtr(72), Workers: util.IntPtr(3), ExtraHours: util.FloatPtr(1.5)},
		{ContainerSize: util.StringPtr("40ft"), Palletized: util.BoolPtr(false), Pieces: util.IntPtr(1501), Pallets: util.IntPtr(7),
			Seal: util.BoolPtr(false), AfterHours: internal.AfterHoursWeekday, StorageDays: util.IntPtr(3)},
	}
	for i, in := range inputs {
		res := transloading(t, in)
		b := res.Breakdown
		want := money.Sum(b.BaseCost, b.Accessories, b.Handling, b.AfterHoursFee, b.Storage, b.Labor)
		if res.Total != want {
			t.Fatalf("case %d: total=%v sum=%v", i, res.Total, want)
		}
	}
}

func TestLoosePerPieceTier(t *testing.T) {
	res := transloading(t, internal.PricingInput{
		ContainerSize: util.StringPtr("20"),
		Palletized:    util.BoolPtr(false),
		Pieces:        util.IntPtr(1600),
	})
	if res.Breakdown.BaseCost != 480 {
		t.Fatalf("base=%v", res.Breakdown.BaseCost)
	}
}

func TestSealAndBillOfLadingDefaults(t *testing.T) {
	cases := []struct {
		name string
		seal *bool
		bol  *bool
		want float64
	}{
		{"omitted", nil, nil, 10},
		{"seal off", util.BoolPtr(false), nil, 5},
		{"both off", util.BoolPtr(false), util.BoolPtr(false), 0},
		{"both on", util.BoolPtr(true), util.BoolPtr(true), 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := transloading(t, internal.PricingInput{
				ContainerSize: util.StringPtr("40"),
				Palletized:    util.BoolPtr(true),
				Pieces:        util.IntPtr(0),
				Seal:          c.seal,
				BillOfLading:  c.bol,
			})
			if res.Breakdown.Accessories != c.want {
				t.Fatalf("accessories=%v want %v", res.Breakdown.Accessories, c.want)
			}
		})
	}
}

func TestStorageBoundaries(t *testing.T) {
	cases := []struct {
		days   int
		height *float64
		want   float64
	}{
		{0, nil, 0},
		{2, nil, 0},
		{3, nil, 70},
		{9, nil, 70},
		{10, nil, 70 + 220},
		{39, nil, 70 + 220},
		{40, nil, 70 + 440},
		{10, util.FloatPtr(60), 70 + 220},
		{10, util.FloatPtr(61), 70 + 340},
	}
	for _, c := range cases {
		res := transloading(t, internal.PricingInput{
			ContainerSize: util.StringPtr("40"),
			Palletized:    util.BoolPtr(true),
			Pieces:        util.IntPtr(0),
			Pallets:       util.IntPtr(10),
			StorageDays:   util.IntPtr(c.days),
			HeightInches:  c.height,
		})
		if res.Breakdown.Storage != c.want {
			t.Fatalf("days=%d height=%v storage=%v want %v", c.days, c.height, res.Breakdown.Storage, c.want)
		}
	}
}

func TestAccessorialsHandlingAndLabor(t *testing.T) {
	res := transloading(t, internal.PricingInput{
		ContainerSize: util.StringPtr("40"),
		Palletized:    util.BoolPtr(true),
		Pieces:        util.IntPtr(400),
		Pallets:       util.IntPtr(10),
		ShrinkWrap:    util.BoolPtr(true),
		AfterHours:    internal.AfterHoursWeekday,
		Workers:       util.IntPtr(2),
		ExtraHours:    util.FloatPtr(1),
	})
	b := res.Breakdown
	if b.Accessories != 160 || b.Handling != 220 || b.AfterHoursFee != 350 || b.Labor != 70 {
		t.Fatalf("breakdown=%+v", b)
	}
	if res.Total != 335+160+220+350+70 {
		t.Fatalf("total=%v", res.Total)
	}
	if len(res.LineItems) != 5 {
		t.Fatalf("line items=%+v", res.LineItems)
	}
}

func TestLaborNeedsWorkersAndHours(t *testing.T) {
	res := transloading(t, internal.PricingInput{
		ContainerSize: util.StringPtr("40"),
		Palletized:    util.BoolPtr(true),
		Pieces:        util.IntPtr(0),
		ExtraHours:    util.FloatPtr(3),
	})
	if res.Breakdown.Labor != 0 {
		t.Fatalf("labor=%v", res.Breakdown.Labor)
	}
}

func TestUnsupportedContainerSize(t *testing.T) {
	_, err := CalculateTransloadingCost(ratesheet.Default(), internal.PricingInput{
		ContainerSize: util.StringPtr("53"),
		Palletized:    util.BoolPtr(true),
		Pieces:        util.IntPtr(0),
	})
	if !errors.Is(err, ErrUnsupportedContainerSize) {
		t.Fatalf("err=%v", err)
	}
	var sizeErr *UnsupportedContainerSizeError
	if !errors.As(err, &sizeErr) || sizeErr.Size != "53" {
		t.Fatalf("err=%v", err)
	}
}
