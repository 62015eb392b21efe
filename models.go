package main

import "time"

// ErrorSource is the canonical category a reason/error code maps to.
// The set is closed: every classified record carries exactly one of these.
type ErrorSource string

const (
	CuttingOperatorError ErrorSource = "Cutting Operator Error"
	SewingOperatorError  ErrorSource = "Sewing Operator Error"
	CuttingMachineError  ErrorSource = "Cutting Machine Error"
	SewingMachineError   ErrorSource = "Sewing Machine Error"
	OtherMachineError    ErrorSource = "Other Machine Error"
	MaterialDefect       ErrorSource = "Material Defect"
	OtherError           ErrorSource = "Other"
	UnknownError         ErrorSource = "Unknown"
)

// AllErrorSources lists every category in presentation order. Percentage-of-total
// calculations iterate this list so categories absent from a period still appear.
var AllErrorSources = []ErrorSource{
	CuttingOperatorError,
	SewingOperatorError,
	CuttingMachineError,
	SewingMachineError,
	OtherMachineError,
	MaterialDefect,
	OtherError,
	UnknownError,
}

// Detection locations for sewing repairs.
const (
	DetectedAtSewing = "SEWING"
	DetectedAtQC     = "QC"
)

// RepairRecord is one row of the Sewing Repairs sheet after cleaning and
// classification. Created once at load time, enriched with ErrorSource and
// ParentSKU, then read-only.
type RepairRecord struct {
	ID            int64
	Date          time.Time
	Discovered    string // "SEWING" or "QC"
	SKU           string // compound SKU-Colorway-Size
	ParentSKU     string
	PRNumber      string
	TotalQty      int
	RepairQty     int
	RepairMinutes int
	PctRepaired   float64
	RepairReason  string
	RecutQty      int
	RecutReason   string
	FailQty       int
	FailReason    string
	ReasonCode    string
	ErrorSource   ErrorSource
	Manager       string
	SMO           string
	CMO           string
	CreatedAt     time.Time
}

// RecutRecord is one row of the Recut List sheet after cleaning and
// classification.
type RecutRecord struct {
	ID           int64
	Code         string
	ErrorSource  ErrorSource
	SKU          string
	ParentSKU    string
	Material     string
	CutLength    string
	Qty          int
	Operator     string
	OrderNumber  string
	DocumentNo   string
	PA           string
	Date         time.Time
	DueDate      time.Time // zero when the sheet left it blank
	OnList       bool
	Done         bool
	Scrap        bool
	Recut        bool
	Failed       bool
	QtyFailed    int
	DateScrapped time.Time // zero when the sheet left it blank
	CreatedAt    time.Time
}

// CurrentWeekRange returns Monday 00:00:00 and next Monday 00:00:00 for the current calendar week.
func CurrentWeekRange(loc *time.Location) (time.Time, time.Time) {
	now := time.Now().In(loc)
	return CurrentWeekRangeAt(now)
}

func CurrentWeekRangeAt(now time.Time) (time.Time, time.Time) {
	weekday := now.Weekday()
	if weekday == time.Sunday {
		weekday = 7
	}
	daysFromMonday := int(weekday) - int(time.Monday)
	monday := time.Date(now.Year(), now.Month(), now.Day()-daysFromMonday, 0, 0, 0, 0, now.Location())
	nextMonday := monday.AddDate(0, 0, 7)
	return monday, nextMonday
}

// ReportWeekRange returns the week a report generated at `now` should cover.
// Early Monday (before the cutoff) still reports on the previous week, since
// the tracker export for the new week is rarely ingested by then.
func ReportWeekRange(cfg Config, now time.Time) (time.Time, time.Time) {
	hour, min, err := parseClock(cfg.MondayCutoffTime)
	if err != nil {
		return CurrentWeekRangeAt(now)
	}

	if now.Weekday() == time.Monday {
		cutoff := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if now.Before(cutoff) {
			return CurrentWeekRangeAt(now.AddDate(0, 0, -7))
		}
	}
	return CurrentWeekRangeAt(now)
}
