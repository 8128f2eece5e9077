package pricing

import (
	"fmt"
	"strings"

	"freightquote/internal"
	"freightquote/internal/money"
	"freightquote/internal/ratesheet"
	"freightquote/internal/util"
)

const hotRushNoticeHours = 48

var perMileFallback = []string{"40", "45"}

func CalculateDrayagePricing(sheet *ratesheet.Sheet, in internal.DrayageInput) (internal.QuoteResult, error) {
	rates := sheet.Drayage
	if rates == nil {
		return internal.QuoteResult{}, ErrMissingRateConfiguration
	}

	size, perMile := resolvePerMile(rates, normalizeSize(in.ContainerSize))
	requested := util.DerefFloat(in.Miles)
	charged := requested
	if charged < rates.MinimumMiles {
		charged = rates.MinimumMiles
	}
	base := money.Round2(money.Mul(perMile, charged))

	items := []internal.LineItem{{
		Label:    fmt.Sprintf("Base drayage (%s' · %s mi @ $%s/mi)", size, formatQty(charged), money.Format(perMile)),
		Amount:   base,
		Category: internal.CategoryBase,
	}}

	weight := util.DerefFloat(in.ContainerWeightLbs)
	meta := &internal.DrayageMetadata{
		ContainerSize:  size,
		RatePerMile:    perMile,
		WeightLbs:      weight,
		RequestedMiles: requested,
		ChargedMiles:   charged,
		Origin:         in.Origin,
		Destination:    in.Destination,
		ShipByDate:     in.ShipByDate,
		Reefer:         in.Reefer,
		Hazmat:         in.Hazmat,
	}
	if bracket, ok := rates.BracketFor(weight); ok && bracket.Surcharge > 0 {
		meta.WeightBracket = bracket.Label
		items = append(items, internal.LineItem{
			Label:    fmt.Sprintf("Weight surcharge (%s)", bracket.Label),
			Amount:   money.Round2(bracket.Surcharge),
			Category: internal.CategoryWeightSurcharge,
		})
	}

	flat := []struct {
		name string
		on   bool
	}{
		{ratesheet.AddOnHotRush, hotRush(in)},
		{ratesheet.AddOnPierPass, in.PrepaidPierPass},
		{ratesheet.AddOnTCF, in.TCFCharges},
		{ratesheet.AddOnChassisSplit, in.ChassisSplitRequired},
		{ratesheet.AddOnPrepull, in.PrepullRequired},
	}
	for _, f := range flat {
		if !f.on {
			continue
		}
		if item, ok := flatItem(rates.AddOns, f.name, internal.CategoryAddOn); ok {
			items = append(items, item)
		}
	}

	perUnit := []struct {
		name  string
		units *float64
	}{
		{ratesheet.AddOnExtraStop, in.ExtraStops},
		{ratesheet.AddOnEmptyStorage, in.EmptyStorageDays},
		{ratesheet.AddOnStorage, in.StorageDays},
	}
	for _, u := range perUnit {
		if item, ok := unitItem(rates.AddOns, u.name, util.DerefFloat(u.units), internal.CategoryAddOn); ok {
			items = append(items, item)
		}
	}

	amounts := make([]float64, 0, len(items))
	for _, item := range items {
		amounts = append(amounts, item.Amount)
	}

	return internal.QuoteResult{
		ServiceType:  internal.ServiceDrayage,
		Total:        money.Sum(amounts...),
		LineItems:    items,
		InvoiceItems: invoiceItems(rates, in),
		Metadata:     meta,
	}, nil
}

// hotRush assumes urgency is short-notice unless the request says otherwise.
func hotRush(in internal.DrayageInput) bool {
	if !in.Urgent {
		return false
	}
	if in.UrgentWithin48Hours == nil || *in.UrgentWithin48Hours {
		return true
	}
	return in.LFDHoursNotice != nil && *in.LFDHoursNotice < hotRushNoticeHours
}

// invoiceItems are billed separately by the carrier and never enter the
// quoted total.
func invoiceItems(rates *ratesheet.DrayageRates, in internal.DrayageInput) []internal.LineItem {
	var items []internal.LineItem
	addFlat := func(name string, on bool) {
		if !on {
			return
		}
		if item, ok := flatItem(rates.InvoiceOnly, name, internal.CategoryInvoice); ok {
			items = append(items, item)
		}
	}
	addUnits := func(name string, units *float64) {
		if item, ok := unitItem(rates.InvoiceOnly, name, util.DerefFloat(units), internal.CategoryInvoice); ok {
			items = append(items, item)
		}
	}

	addFlat(ratesheet.InvoiceTerminalDryRun, in.TerminalDryRun)
	if in.ChassisType == internal.ChassisWCCP {
		addUnits(ratesheet.InvoiceChassisWCCP, in.ChassisDays)
	} else {
		addUnits(ratesheet.InvoiceChassisStandard, in.ChassisDays)
	}
	addUnits(ratesheet.InvoiceTerminalWaiting, in.TerminalWaitingHours)
	addUnits(ratesheet.InvoiceLiveUnload, in.LiveUnloadHours)
	addFlat(ratesheet.InvoiceExamination, in.ExaminationRequired)
	addFlat(ratesheet.InvoiceReplug, in.ReplugRequired)
	addFlat(ratesheet.InvoiceDOCancellation, in.DeliveryOrderCancellation)
	addFlat(ratesheet.InvoiceOnTimeDelivery, in.OnTimeDelivery)

	if in.FailedDeliveryCityRate != nil {
		deduction := rates.InvoiceOnly[ratesheet.InvoiceFailedDelivery].Amount
		if amount := money.Sum(*in.FailedDeliveryCityRate, -deduction); amount > 0 {
			items = append(items, internal.LineItem{
				Label:    ratesheet.InvoiceFailedDelivery,
				Amount:   amount,
				Category: internal.CategoryInvoice,
			})
		}
	}
	return items
}

func resolvePerMile(rates *ratesheet.DrayageRates, size string) (string, float64) {
	if rate, ok := rates.PerMile[size]; ok {
		return size, rate
	}
	for _, fallback := range perMileFallback {
		if rate, ok := rates.PerMile[fallback]; ok {
			return fallback, rate
		}
	}
	return size, 0
}

func flatItem(table map[string]ratesheet.AddOnRate, name string, category internal.LineItemCategory) (internal.LineItem, bool) {
	rate, ok := table[name]
	if !ok || rate.Amount <= 0 {
		return internal.LineItem{}, false
	}
	return internal.LineItem{Label: name, Amount: money.Round2(rate.Amount), Category: category}, true
}

// unitItem charges the units left after the configured free allowance.
func unitItem(table map[string]ratesheet.AddOnRate, name string, units float64, category internal.LineItemCategory) (internal.LineItem, bool) {
	rate, ok := table[name]
	if !ok || rate.Amount <= 0 || units <= 0 {
		return internal.LineItem{}, false
	}
	billable := units - rate.FreeUnits
	if billable <= 0 {
		return internal.LineItem{}, false
	}
	return internal.LineItem{
		Label:    name,
		Amount:   money.Round2(money.Mul(rate.Amount, billable)),
		Unit:     pluralUnit(rate.Unit, billable),
		Quantity: qty(billable),
		Category: category,
	}, true
}

func pluralUnit(unit string, n float64) string {
	if unit == "" || n == 1 || strings.HasSuffix(unit, "s") {
		return unit
	}
	return unit + "s"
}

func formatQty(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
