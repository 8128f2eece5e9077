// Package pricing turns canonical inputs into quotes. Both calculators are
// pure functions of their input and the rate sheet they are given.
package pricing

import (
	"math"
	"strings"

	"freightquote/internal"
	"freightquote/internal/money"
	"freightquote/internal/ratesheet"
	"freightquote/internal/util"
)

const (
	monthlyHeightLimitInches = 60
	daysPerWeek              = 7
	daysPerMonth             = 30
)

// Breakdown labels, in display order.
const (
	LabelBaseCost   = "Base transloading"
	LabelAccessory  = "Accessories"
	LabelHandling   = "Handling"
	LabelAfterHours = "After-hours access"
	LabelStorage    = "Storage"
	LabelLabor      = "Labor"
)

func CalculateTransloadingCost(sheet *ratesheet.Sheet, in internal.PricingInput) (internal.QuoteResult, error) {
	size := normalizeSize(util.DerefString(in.ContainerSize))
	row, ok := sheet.RowFor(size)
	if !ok {
		return internal.QuoteResult{}, &UnsupportedContainerSizeError{Size: util.DerefString(in.ContainerSize)}
	}

	pallets := float64(util.DerefInt(in.Pallets))
	pieces := util.DerefInt(in.Pieces)

	var b internal.Breakdown

	if util.DerefBool(in.Palletized, false) {
		b.BaseCost = money.Round2(row.Palletized)
	} else {
		tier := row.TierFor(pieces)
		if tier.PerPiece {
			b.BaseCost = money.Round2(money.Mul(tier.Amount, float64(pieces)))
		} else {
			b.BaseCost = money.Round2(tier.Amount)
		}
	}

	acc := sheet.Accessorials
	var accessories []float64
	if util.DerefBool(in.ShrinkWrap, false) {
		accessories = append(accessories, money.Mul(acc.ShrinkWrapPerPallet, pallets))
	}
	if util.DerefBool(in.Seal, true) {
		accessories = append(accessories, acc.Seal)
	}
	if util.DerefBool(in.BillOfLading, true) {
		accessories = append(accessories, acc.BillOfLading)
	}
	b.Accessories = money.Sum(accessories...)

	b.Handling = money.Round2(money.Mul(sheet.Warehousing.HandlingPerPallet, pallets))

	switch in.AfterHours {
	case internal.AfterHoursWeekday:
		b.AfterHoursFee = money.Round2(sheet.Warehousing.AfterHoursWeekday)
	case internal.AfterHoursWeekend:
		b.AfterHoursFee = money.Round2(sheet.Warehousing.AfterHoursWeekend)
	}

	b.Storage = storageCharge(sheet, in, pallets)

	workers := float64(util.DerefInt(in.Workers))
	hours := util.DerefFloat(in.ExtraHours)
	if workers > 0 && hours > 0 {
		b.Labor = money.Round2(money.Mul(hours, workers, sheet.Storage.LaborPerHour))
	}

	total := money.Sum(b.BaseCost, b.Accessories, b.Handling, b.AfterHoursFee, b.Storage, b.Labor)

	items := []internal.LineItem{{Label: LabelBaseCost, Amount: b.BaseCost, Category: internal.CategoryBase}}
	items = appendPositive(items, internal.LineItem{Label: LabelAccessory, Amount: b.Accessories, Category: internal.CategoryAccessorial})
	items = appendPositive(items, internal.LineItem{Label: LabelHandling, Amount: b.Handling, Unit: "pallets", Quantity: qty(pallets), Category: internal.CategoryHandling})
	items = appendPositive(items, internal.LineItem{Label: LabelAfterHours, Amount: b.AfterHoursFee, Category: internal.CategoryAfterHours})
	items = appendPositive(items, internal.LineItem{Label: LabelStorage, Amount: b.Storage, Unit: "days", Quantity: qty(float64(util.DerefInt(in.StorageDays))), Category: internal.CategoryStorage})
	items = appendPositive(items, internal.LineItem{Label: LabelLabor, Amount: b.Labor, Unit: "worker-hours", Quantity: qty(hours * workers), Category: internal.CategoryLabor})

	return internal.QuoteResult{
		ServiceType: internal.ServiceTransloading,
		Total:       total,
		Breakdown:   &b,
		LineItems:   items,
	}, nil
}

// storageCharge bills one week once the free period is exceeded, then whole
// months past the first week at the height-bracket rate.
func storageCharge(sheet *ratesheet.Sheet, in internal.PricingInput, pallets float64) float64 {
	days := util.DerefInt(in.StorageDays)
	free := sheet.Storage.FreeDays()
	if days <= free {
		return 0
	}
	parts := []float64{money.Mul(pallets, sheet.Storage.WeeklyPerPallet)}

	if over := days - free - daysPerWeek; over > 0 {
		months := math.Ceil(float64(over) / daysPerMonth)
		rate := sheet.Warehousing.MonthlyUpTo60Inches
		if util.DerefFloat(in.HeightInches) > monthlyHeightLimitInches {
			rate = sheet.Warehousing.MonthlyOver60Inches
		}
		parts = append(parts, money.Mul(months, pallets, rate))
	}
	return money.Sum(parts...)
}

func normalizeSize(size string) string {
	if digits := util.FirstDigits(size); digits != "" {
		return digits
	}
	return strings.TrimSpace(size)
}

func appendPositive(items []internal.LineItem, item internal.LineItem) []internal.LineItem {
	if item.Amount <= 0 {
		return items
	}
	return append(items, item)
}

func qty(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}
