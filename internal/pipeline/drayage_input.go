package pipeline

import (
	"strings"

	"freightquote/internal"
	"freightquote/internal/extraction"
	"freightquote/internal/util"
)

// nested lists the drayage sub-object first, then the top-level field.
func nested(field string) []string {
	return []string{"drayage." + field, field}
}

// invoiced also consults the drayage invoice sub-object.
func invoiced(field string) []string {
	return []string{"drayage." + field, "drayage.invoice." + field, field}
}

// BuildDrayageInput merges the nested drayage object with top-level
// fallbacks. For every field the first present candidate wins.
func BuildDrayageInput(extracted extraction.Payload, normalized internal.PricingInput) internal.DrayageInput {
	str := func(paths ...string) string {
		s, _ := extracted.String(paths...)
		return s
	}
	num := func(paths ...string) *float64 {
		if f, ok := extracted.Float(paths...); ok {
			return util.FloatPtr(f)
		}
		return nil
	}
	flag := func(paths ...string) bool {
		b, _ := extracted.Bool(paths...)
		return b
	}

	in := internal.DrayageInput{
		ContainerSize:      firstSize(extracted, normalized),
		ContainerWeightLbs: num(nested("container_weight_lbs")...),
		Miles:              num("drayage.miles", "drayage.miles_to_travel", "miles_to_travel", "miles"),
		Origin:             str("drayage.origin", "drayage.origin_city", "origin"),
		Destination:        str("drayage.destination", "drayage.destination_city", "destination"),
		ShipByDate:         str("drayage.ship_by_date", "drayage.requested_ship_by", "requested_ship_by"),

		Urgent:         flag(nested("urgent")...),
		LFDHoursNotice: num(nested("hours_before_lfd")...),

		ExtraStops:       num(nested("extra_stops")...),
		EmptyStorageDays: num(nested("empty_storage_days")...),
		StorageDays:      num(nested("storage_days")...),

		PrepullRequired:      flag(nested("prepull_required")...),
		ChassisSplitRequired: flag(nested("chassis_split_required")...),
		PrepaidPierPass:      flag(nested("prepaid_pier_pass")...),
		TCFCharges:           flag(nested("tcf_charges")...),
		TerminalDryRun:       flag(nested("terminal_dry_run")...),
		Reefer:               flag("drayage.reefer", "reefer", "temperature_controlled"),
		Hazmat:               flag(nested("hazmat")...),

		ChassisDays:          num(invoiced("chassis_days")...),
		TerminalWaitingHours: num(invoiced("terminal_waiting_hours")...),
		LiveUnloadHours:      num(invoiced("live_unload_hours")...),

		ExaminationRequired:       flag(invoiced("examination_fee")...),
		ReplugRequired:            flag(invoiced("replug_required")...),
		DeliveryOrderCancellation: flag(invoiced("delivery_order_cancellation")...),
		OnTimeDelivery:            flag(invoiced("on_time_delivery")...),
		FailedDeliveryCityRate:    num(invoiced("failed_delivery_city_rate")...),
	}

	if b, ok := extracted.Bool("drayage.urgent_within_48h", "drayage.within_48_hours", "urgent_within_48h"); ok {
		in.UrgentWithin48Hours = util.BoolPtr(b)
	}
	if chassis, ok := extracted.String(invoiced("chassis_type")...); ok {
		in.ChassisType = internal.ChassisStandard
		if strings.Contains(strings.ToLower(chassis), "wccp") {
			in.ChassisType = internal.ChassisWCCP
		}
	}
	return in
}

func firstSize(extracted extraction.Payload, normalized internal.PricingInput) string {
	for _, path := range []string{"drayage.container_size", "drayage_container_size"} {
		if s, ok := extracted.String(path); ok {
			if digits := util.FirstDigits(s); digits != "" {
				return digits
			}
		}
	}
	if normalized.ContainerSize != nil {
		if digits := util.FirstDigits(*normalized.ContainerSize); digits != "" {
			return digits
		}
	}
	if s, ok := extracted.String("container_size"); ok {
		return util.FirstDigits(s)
	}
	return ""
}
