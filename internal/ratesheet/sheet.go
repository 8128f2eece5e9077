package ratesheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"freightquote/internal/util"
)

const (
	SectionTransloading = "TRANSLOADING"
	SectionAccessorial  = "ACCESSORIAL CHARGES"
	SectionStorage      = "STORAGE"
	SectionWarehousing  = "WAREHOUSING"
	SectionDrayage      = "DRAYAGE"

	DefaultCardName = "FL Distribution LLC Warehouse Rates"

	defaultFreeHours = 48
)

// Quote-facing drayage add-on names as they appear in the rate sheet.
const (
	AddOnHotRush      = "Hot rush"
	AddOnPierPass     = "Prepaid Pier pass charges"
	AddOnTCF          = "TCF charges"
	AddOnChassisSplit = "Chassis split"
	AddOnPrepull      = "Prepull"
	AddOnExtraStop    = "Extra stop"
	AddOnEmptyStorage = "Empty storage"
	AddOnStorage      = "Storage"
)

// Invoice-only drayage item names.
const (
	InvoiceTerminalDryRun  = "Terminal Dry Run"
	InvoiceChassisStandard = "Chassis (standard)"
	InvoiceChassisWCCP     = "Chassis (WCCP)"
	InvoiceTerminalWaiting = "Terminal waiting"
	InvoiceLiveUnload      = "Live unload"
	InvoiceExamination     = "Examination fee"
	InvoiceReplug          = "Replug"
	InvoiceDOCancellation  = "DO cancellation"
	InvoiceOnTimeDelivery  = "On-time delivery"
	InvoiceFailedDelivery  = "Failed delivery deduction"
)

var (
	reTierRange = regexp.MustCompile(`(?i)(\d[\d,]*)\s*(?:-|to)\s*(\d[\d,]*)`)
	reTierOpen  = regexp.MustCompile(`(?i)(\d[\d,]*)\s*(?:\+|or more)`)
	reSizeToken = regexp.MustCompile(`\d+`)
	reFreeTime  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(hours?|hrs?|days?)`)
)

// Sheet is the typed, read-only view of one rate card. Build it once with
// Load or Default and share it between goroutines; nothing mutates it after
// construction.
type Sheet struct {
	Name         string
	Transloading []TransloadingRow
	Accessorials AccessorialRates
	Warehousing  WarehousingRates
	Storage      StorageRules
	Drayage      *DrayageRates

	entries []entry
	doc     cardDocument
}

type TransloadingRow struct {
	Label      string
	Sizes      []string
	Palletized float64
	Loose      []LooseTier
}

// LooseTier covers Min..Max pieces. The last tier of a row is open-ended and
// charged per piece; all other tiers are flat amounts.
type LooseTier struct {
	Label     string
	Min       int
	Max       int
	OpenEnded bool
	PerPiece  bool
	Amount    float64
}

type AccessorialRates struct {
	ShrinkWrapPerPallet float64
	Seal                float64
	BillOfLading        float64
	SealText            string
	BillOfLadingText    string
}

type WarehousingRates struct {
	HandlingPerPallet   float64
	AfterHoursWeekday   float64
	AfterHoursWeekend   float64
	MonthlyUpTo60Inches float64
	MonthlyOver60Inches float64
}

type StorageRules struct {
	FreeHours       float64
	WeeklyPerPallet float64
	LaborPerHour    float64
}

// FreeDays is the free period rounded up to whole days.
func (s StorageRules) FreeDays() int {
	return int(math.Ceil(s.FreeHours / 24))
}

type DrayageRates struct {
	PerMile        map[string]float64
	MinimumMiles   float64
	WeightBrackets []WeightBracket
	AddOns         map[string]AddOnRate
	InvoiceOnly    map[string]AddOnRate
}

type WeightBracket struct {
	Label     string
	MinLbs    float64
	MaxLbs    float64
	OpenEnded bool
	Surcharge float64
}

func (b WeightBracket) Contains(lbs float64) bool {
	return lbs >= b.MinLbs && (b.OpenEnded || lbs <= b.MaxLbs)
}

// AddOnRate is flat when Unit is empty, otherwise charged per unit beyond
// FreeUnits.
type AddOnRate struct {
	Label     string
	Amount    float64
	Unit      string
	FreeUnits float64
}

func (a AddOnRate) PerUnit() bool {
	return a.Unit != ""
}

type entry struct {
	path     string
	text     string
	value    float64
	monetary bool
}

type cardDocument struct {
	Transloading []map[string]string `json:"TRANSLOADING"`
	Accessorial  map[string]string   `json:"ACCESSORIAL CHARGES"`
	Storage      []string            `json:"STORAGE"`
	Warehousing  map[string]string   `json:"WAREHOUSING"`
	Drayage      *drayageDocument    `json:"DRAYAGE"`
}

type drayageDocument struct {
	BaseRatePerMile  map[string]string        `json:"Base rate per mile"`
	MinimumMiles     string                   `json:"Minimum miles"`
	WeightSurcharges []weightDocument         `json:"Weight surcharges"`
	QuoteAddOns      map[string]addOnDocument `json:"Quote add-ons"`
	InvoiceOnly      map[string]addOnDocument `json:"Invoice only"`
}

type weightDocument struct {
	Label     string `json:"Label"`
	MinLbs    string `json:"Min lbs"`
	MaxLbs    string `json:"Max lbs"`
	Surcharge string `json:"Surcharge"`
}

type addOnDocument struct {
	Rate      string `json:"Rate"`
	Unit      string `json:"Unit,omitempty"`
	FreeUnits string `json:"Free units,omitempty"`
}

// Load parses a rate sheet document and builds the named card. An empty
// cardName selects the only card in the document, or DefaultCardName when
// there are several.
func Load(doc []byte, cardName string) (*Sheet, error) {
	var generic any
	if err := json.Unmarshal(doc, &generic); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("decode: %w", err)}
	}
	if err := validateDocument(generic); err != nil {
		return nil, &ParseError{Err: err}
	}

	var cards map[string]cardDocument
	dec := json.NewDecoder(bytes.NewReader(doc))
	if err := dec.Decode(&cards); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("decode cards: %w", err)}
	}

	name, err := pickCard(cards, cardName)
	if err != nil {
		return nil, err
	}
	return build(name, cards[name])
}

func pickCard(cards map[string]cardDocument, cardName string) (string, error) {
	cardName = strings.TrimSpace(cardName)
	if cardName != "" {
		if _, ok := cards[cardName]; !ok {
			return "", &ParseError{Section: cardName, Err: ErrCardNotFound}
		}
		return cardName, nil
	}
	if len(cards) == 1 {
		for name := range cards {
			return name, nil
		}
	}
	if _, ok := cards[DefaultCardName]; ok {
		return DefaultCardName, nil
	}
	return "", &ParseError{Err: fmt.Errorf("%d rate cards found and none selected", len(cards))}
}

func build(name string, doc cardDocument) (*Sheet, error) {
	s := &Sheet{Name: name, doc: doc}

	for i, raw := range doc.Transloading {
		row, err := s.buildRow(i, raw)
		if err != nil {
			return nil, &ParseError{Section: SectionTransloading, Err: err}
		}
		s.Transloading = append(s.Transloading, row)
	}

	s.Accessorials = AccessorialRates{
		ShrinkWrapPerPallet: s.money(SectionAccessorial, doc.Accessorial, "Shrink wrap", "Shrink-wrap", "Shrinkwrap"),
		Seal:                s.money(SectionAccessorial, doc.Accessorial, "Seal"),
		BillOfLading:        s.money(SectionAccessorial, doc.Accessorial, "Bill of Lading", "BOL"),
	}
	s.Accessorials.SealText, _ = lookup(doc.Accessorial, "Seal")
	s.Accessorials.BillOfLadingText, _ = lookup(doc.Accessorial, "Bill of Lading", "BOL")

	s.Warehousing = WarehousingRates{
		HandlingPerPallet:   s.money(SectionWarehousing, doc.Warehousing, "Handling"),
		AfterHoursWeekday:   s.money(SectionWarehousing, doc.Warehousing, "After hours weekday"),
		AfterHoursWeekend:   s.money(SectionWarehousing, doc.Warehousing, "After hours weekend"),
		MonthlyUpTo60Inches: s.money(SectionWarehousing, doc.Warehousing, "Monthly storage up to 60in"),
		MonthlyOver60Inches: s.money(SectionWarehousing, doc.Warehousing, "Monthly storage over 60in"),
	}

	s.Storage = s.buildStorage(doc.Storage)

	if doc.Drayage != nil {
		s.Drayage = s.buildDrayage(doc.Drayage)
	}
	return s, nil
}

func (s *Sheet) buildRow(i int, raw map[string]string) (TransloadingRow, error) {
	label, _ := lookup(raw, "Container Size")
	sizes := reSizeToken.FindAllString(label, -1)
	if len(sizes) == 0 {
		return TransloadingRow{}, fmt.Errorf("row %d: no container size in %q", i+1, label)
	}

	path := fmt.Sprintf("%s[%s]", SectionTransloading, label)
	row := TransloadingRow{
		Label:      label,
		Sizes:      sizes,
		Palletized: s.money(path, raw, "Palletized"),
	}

	for column, text := range raw {
		tier, ok := parseTierColumn(column)
		if !ok {
			continue
		}
		tier.Amount = s.record(path+"."+column, text, true)
		row.Loose = append(row.Loose, tier)
	}
	if len(row.Loose) == 0 {
		return TransloadingRow{}, fmt.Errorf("row %q: no loose cargo tiers", label)
	}

	sort.Slice(row.Loose, func(a, b int) bool { return row.Loose[a].Min < row.Loose[b].Min })
	row.Loose[0].Min = 0
	last := len(row.Loose) - 1
	row.Loose[last].OpenEnded = true
	row.Loose[last].PerPiece = true
	return row, nil
}

func parseTierColumn(column string) (LooseTier, bool) {
	if !strings.Contains(strings.ToLower(column), "loose") {
		return LooseTier{}, false
	}
	if m := reTierRange.FindStringSubmatch(column); m != nil {
		lo, okLo := util.ParseCount(m[1])
		hi, okHi := util.ParseCount(m[2])
		if okLo && okHi {
			return LooseTier{Label: column, Min: lo, Max: hi}, true
		}
	}
	if m := reTierOpen.FindStringSubmatch(column); m != nil {
		if lo, ok := util.ParseCount(m[1]); ok {
			return LooseTier{Label: column, Min: lo, OpenEnded: true}, true
		}
	}
	return LooseTier{}, false
}

func (s *Sheet) buildStorage(lines []string) StorageRules {
	rules := StorageRules{FreeHours: defaultFreeHours}
	var weeklyText, laborText string
	for _, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "labor"):
			laborText = line
		case strings.Contains(lower, "week"):
			weeklyText = line
		case strings.Contains(lower, "free"):
			if m := reFreeTime.FindStringSubmatch(line); m != nil {
				v := ExtractDollarValue(m[1])
				if strings.HasPrefix(strings.ToLower(m[2]), "day") {
					v *= 24
				}
				if v > 0 {
					rules.FreeHours = v
				}
			}
		}
	}
	rules.WeeklyPerPallet = s.record(SectionStorage+".weekly", weeklyText, true)
	rules.LaborPerHour = s.record(SectionStorage+".labor", laborText, true)
	return rules
}

func (s *Sheet) buildDrayage(doc *drayageDocument) *DrayageRates {
	d := &DrayageRates{
		PerMile:     map[string]float64{},
		AddOns:      map[string]AddOnRate{},
		InvoiceOnly: map[string]AddOnRate{},
	}

	for size, text := range doc.BaseRatePerMile {
		key := util.FirstDigits(size)
		if key == "" {
			key = strings.TrimSpace(size)
		}
		d.PerMile[key] = s.record(SectionDrayage+".Base rate per mile."+size, text, true)
	}
	d.MinimumMiles = s.record(SectionDrayage+".Minimum miles", doc.MinimumMiles, false)

	for _, w := range doc.WeightSurcharges {
		bracket := WeightBracket{
			Label:     w.Label,
			MinLbs:    ExtractDollarValue(w.MinLbs),
			Surcharge: s.record(SectionDrayage+".Weight surcharges."+w.Label, w.Surcharge, true),
		}
		if strings.TrimSpace(w.MaxLbs) == "" {
			bracket.OpenEnded = true
		} else {
			bracket.MaxLbs = ExtractDollarValue(w.MaxLbs)
		}
		d.WeightBrackets = append(d.WeightBrackets, bracket)
	}
	sort.SliceStable(d.WeightBrackets, func(a, b int) bool {
		return d.WeightBrackets[a].MinLbs < d.WeightBrackets[b].MinLbs
	})

	for name, a := range doc.QuoteAddOns {
		d.AddOns[name] = s.addOn(SectionDrayage+".Quote add-ons."+name, name, a)
	}
	for name, a := range doc.InvoiceOnly {
		d.InvoiceOnly[name] = s.addOn(SectionDrayage+".Invoice only."+name, name, a)
	}
	return d
}

func (s *Sheet) addOn(path, name string, a addOnDocument) AddOnRate {
	return AddOnRate{
		Label:     name,
		Amount:    s.record(path, a.Rate, true),
		Unit:      strings.TrimSpace(a.Unit),
		FreeUnits: ExtractDollarValue(a.FreeUnits),
	}
}

func (s *Sheet) money(section string, table map[string]string, names ...string) float64 {
	text, key := lookup(table, names...)
	if key == "" {
		key = names[0]
	}
	return s.record(section+"."+key, text, true)
}

func (s *Sheet) record(path, text string, monetary bool) float64 {
	v := ExtractDollarValue(text)
	s.entries = append(s.entries, entry{path: path, text: text, value: v, monetary: monetary})
	return v
}

// lookup finds the first of names in table, ignoring case and surrounding
// spaces. It returns the text and the key as written in the document.
func lookup(table map[string]string, names ...string) (string, string) {
	for _, name := range names {
		if v, ok := table[name]; ok {
			return v, name
		}
	}
	for key, v := range table {
		for _, name := range names {
			if strings.EqualFold(strings.TrimSpace(key), name) {
				return v, key
			}
		}
	}
	return "", ""
}

// RowFor returns the transloading row whose container tokens include size.
func (s *Sheet) RowFor(size string) (TransloadingRow, bool) {
	size = strings.TrimSpace(size)
	for _, row := range s.Transloading {
		for _, token := range row.Sizes {
			if token == size {
				return row, true
			}
		}
	}
	return TransloadingRow{}, false
}

// TierFor returns the loose tier containing pieces, or the last tier when no
// range matches.
func (r TransloadingRow) TierFor(pieces int) LooseTier {
	for _, tier := range r.Loose {
		if pieces >= tier.Min && (tier.OpenEnded || pieces <= tier.Max) {
			return tier
		}
	}
	return r.Loose[len(r.Loose)-1]
}

// BracketFor returns the first weight bracket containing lbs.
func (d *DrayageRates) BracketFor(lbs float64) (WeightBracket, bool) {
	for _, b := range d.WeightBrackets {
		if b.Contains(lbs) {
			return b, true
		}
	}
	return WeightBracket{}, false
}
