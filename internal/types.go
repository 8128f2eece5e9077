package internal

type ServiceType string

const (
	ServiceTransloading ServiceType = "transloading"
	ServiceDrayage      ServiceType = "drayage"
)

type AfterHours string

const (
	AfterHoursNone    AfterHours = ""
	AfterHoursWeekday AfterHours = "weekday"
	AfterHoursWeekend AfterHours = "weekend"
)

type ChassisType string

const (
	ChassisStandard ChassisType = "standard"
	ChassisWCCP     ChassisType = "wccp"
)

// PricingInput is the canonical transloading request. Nil pointers mean the
// value is unknown; the calculator treats them as zero (or true for Seal and
// BillOfLading).
type PricingInput struct {
	ContainerSize *string    `json:"containerSize" validate:"required"`
	Palletized    *bool      `json:"palletized" validate:"required"`
	Pieces        *int       `json:"pieces" validate:"required"`
	Pallets       *int       `json:"pallets,omitempty"`
	ShrinkWrap    *bool      `json:"shrinkWrap,omitempty"`
	Seal          *bool      `json:"seal,omitempty"`
	BillOfLading  *bool      `json:"billOfLading,omitempty"`
	AfterHours    AfterHours `json:"afterHours,omitempty"`
	HeightInches  *float64   `json:"heightInches,omitempty"`
	StorageDays   *int       `json:"storageDays,omitempty"`
	Workers       *int       `json:"workers,omitempty"`
	ExtraHours    *float64   `json:"extraHours,omitempty"`
}

type DrayageInput struct {
	ContainerSize      string   `json:"containerSize" validate:"required"`
	ContainerWeightLbs *float64 `json:"containerWeightLbs" validate:"required,gt=0"`
	Origin             string   `json:"origin" validate:"required"`
	Destination        string   `json:"destination" validate:"required"`
	Miles              *float64 `json:"miles" validate:"required,gt=0"`
	ShipByDate         string   `json:"shipByDate" validate:"required"`

	Urgent              bool     `json:"urgent"`
	UrgentWithin48Hours *bool    `json:"urgentWithin48Hours,omitempty"`
	LFDHoursNotice      *float64 `json:"lfdHoursNotice,omitempty"`

	ExtraStops       *float64 `json:"extraStops,omitempty"`
	EmptyStorageDays *float64 `json:"emptyStorageDays,omitempty"`
	StorageDays      *float64 `json:"storageDays,omitempty"`

	PrepullRequired      bool `json:"prepullRequired"`
	ChassisSplitRequired bool `json:"chassisSplitRequired"`
	PrepaidPierPass      bool `json:"prepaidPierPass"`
	TCFCharges           bool `json:"tcfCharges"`
	TerminalDryRun       bool `json:"terminalDryRun"`
	Reefer               bool `json:"reefer"`
	Hazmat               bool `json:"hazmat"`

	ChassisDays          *float64    `json:"chassisDays,omitempty"`
	ChassisType          ChassisType `json:"chassisType,omitempty"`
	TerminalWaitingHours *float64    `json:"terminalWaitingHours,omitempty"`
	LiveUnloadHours      *float64    `json:"liveUnloadHours,omitempty"`

	ExaminationRequired       bool     `json:"examinationRequired"`
	ReplugRequired            bool     `json:"replugRequired"`
	DeliveryOrderCancellation bool     `json:"deliveryOrderCancellation"`
	OnTimeDelivery            bool     `json:"onTimeDelivery"`
	FailedDeliveryCityRate    *float64 `json:"failedDeliveryCityRate,omitempty"`
}

type LineItemCategory string

const (
	CategoryBase            LineItemCategory = "base"
	CategoryAccessorial     LineItemCategory = "accessorial"
	CategoryHandling        LineItemCategory = "handling"
	CategoryAfterHours      LineItemCategory = "after_hours"
	CategoryStorage         LineItemCategory = "storage"
	CategoryLabor           LineItemCategory = "labor"
	CategoryWeightSurcharge LineItemCategory = "weight_surcharge"
	CategoryAddOn           LineItemCategory = "add_on"
	CategoryInvoice         LineItemCategory = "invoice"
)

type LineItem struct {
	Label    string           `json:"label"`
	Amount   float64          `json:"amount"`
	Unit     string           `json:"unit,omitempty"`
	Quantity *float64         `json:"quantity,omitempty"`
	Category LineItemCategory `json:"category"`
}

type Breakdown struct {
	BaseCost      float64 `json:"baseCost"`
	Accessories   float64 `json:"accessories"`
	Handling      float64 `json:"handling"`
	AfterHoursFee float64 `json:"afterHoursFee"`
	Storage       float64 `json:"storage"`
	Labor         float64 `json:"labor"`
}

type DrayageMetadata struct {
	ContainerSize  string  `json:"containerSize"`
	RatePerMile    float64 `json:"ratePerMile"`
	WeightBracket  string  `json:"weightBracket,omitempty"`
	WeightLbs      float64 `json:"weightLbs"`
	RequestedMiles float64 `json:"requestedMiles"`
	ChargedMiles   float64 `json:"chargedMiles"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	ShipByDate     string  `json:"shipByDate"`
	Reefer         bool    `json:"reefer"`
	Hazmat         bool    `json:"hazmat"`
}

// QuoteResult is built once per pricing call and not modified afterwards.
type QuoteResult struct {
	ServiceType  ServiceType      `json:"serviceType"`
	Total        float64          `json:"total"`
	Breakdown    *Breakdown       `json:"breakdown,omitempty"`
	LineItems    []LineItem       `json:"lineItems"`
	InvoiceItems []LineItem       `json:"invoiceItems,omitempty"`
	Metadata     *DrayageMetadata `json:"metadata,omitempty"`
}
