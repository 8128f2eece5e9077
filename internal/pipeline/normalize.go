package pipeline

import (
	"math"

	"freightquote/internal"
	"freightquote/internal/extraction"
	"freightquote/internal/util"
)

const (
	piecesPerPallet     = 40
	smallShipmentPieces = 500
)

// NormalizeTransloading maps extracted fields to a pricing input. Unknown
// values stay nil so later heuristics can fill them.
func NormalizeTransloading(extracted extraction.Payload) internal.PricingInput {
	var in internal.PricingInput

	if b, ok := extracted.Bool("palletized"); ok {
		in.Palletized = util.BoolPtr(b)
	}
	if n, ok := extracted.Int("quantity", "pieces"); ok && n >= 0 {
		in.Pieces = util.IntPtr(n)
	}
	if n, ok := extracted.Int("pallets", "pallet_count"); ok && n > 0 {
		in.Pallets = util.IntPtr(n)
	}
	if h, ok := extracted.Float("height_inches"); ok && h > 0 {
		in.HeightInches = util.FloatPtr(h)
	}

	if size, ok := extracted.String("container_size"); ok {
		if digits := util.FirstDigits(size); digits != "" {
			in.ContainerSize = util.StringPtr(digits)
		}
	}
	if in.ContainerSize == nil {
		in.ContainerSize = util.StringPtr(inferContainerSize(extracted, in.Pieces))
	}

	if in.Pallets == nil && util.DerefBool(in.Palletized, false) && util.DerefInt(in.Pieces) > 0 {
		in.Pallets = util.IntPtr(int(math.Ceil(float64(*in.Pieces) / piecesPerPallet)))
	}

	if fragile, _ := extracted.Bool("fragile"); fragile {
		in.ShrinkWrap = util.BoolPtr(true)
	}
	if urgent, _ := extracted.Bool("urgent"); urgent {
		in.AfterHours = internal.AfterHoursWeekday
		in.Workers = util.IntPtr(2)
		in.ExtraHours = util.FloatPtr(1)
	}
	return in
}

// inferContainerSize falls back to the larger container unless the shipment
// is clearly small.
func inferContainerSize(extracted extraction.Payload, pieces *int) string {
	if _, ok := extracted.String("pallet_size"); ok {
		return "40"
	}
	if n := util.DerefInt(pieces); n > 0 && n <= smallShipmentPieces {
		return "20"
	}
	return "40"
}
