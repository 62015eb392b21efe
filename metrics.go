package main

import (
	"math"
	"sort"
	"strings"
)

// Aggregate metrics over classified, SKU-resolved records. Every function
// here is pure grouping and summation; classification already happened at
// ingest time.

// Totals are the shared headline numbers across both sheets.
type Totals struct {
	TotalRepairs         int
	TotalRepairMinutes   int
	TotalRepairHours     float64
	TotalRecutPieces     int
	TotalRecutQtyRepairs int
	TotalFails           int
	RepairIncidents      int
	RecutIncidents       int
	TotalReworkEvents    int
}

func CalculateTotals(repairs []RepairRecord, recuts []RecutRecord) Totals {
	var t Totals
	for _, r := range repairs {
		t.TotalRepairs += r.RepairQty
		t.TotalRepairMinutes += r.RepairMinutes
		t.TotalRecutQtyRepairs += r.RecutQty
		t.TotalFails += r.FailQty
	}
	for _, r := range recuts {
		t.TotalRecutPieces += r.Qty
	}
	t.TotalRepairHours = round1(float64(t.TotalRepairMinutes) / 60)
	t.RepairIncidents = len(repairs)
	t.RecutIncidents = len(recuts)
	t.TotalReworkEvents = len(repairs) + len(recuts)
	return t
}

// ErrorSourceRow is one line of the error-source breakdown. The breakdown
// always contains all eight categories so percentage-of-total stays
// well-defined when a category is absent from the period.
type ErrorSourceRow struct {
	Source        ErrorSource
	Incidents     int
	PctOfTotal    float64
	RepairQty     int
	RecutQty      int
	RecutPieces   int
	FailQty       int
	RepairMinutes int
}

// ErrorSourceBreakdown groups both sheets by error source, sorted by
// incident count descending (ties in canonical enum order).
func ErrorSourceBreakdown(repairs []RepairRecord, recuts []RecutRecord) []ErrorSourceRow {
	bySource := make(map[ErrorSource]*ErrorSourceRow, len(AllErrorSources))
	rows := make([]ErrorSourceRow, len(AllErrorSources))
	for i, src := range AllErrorSources {
		rows[i] = ErrorSourceRow{Source: src}
		bySource[src] = &rows[i]
	}

	for _, r := range repairs {
		row := bySource[r.ErrorSource]
		if row == nil {
			continue
		}
		row.Incidents++
		row.RepairQty += r.RepairQty
		row.RecutQty += r.RecutQty
		row.FailQty += r.FailQty
		row.RepairMinutes += r.RepairMinutes
	}
	for _, r := range recuts {
		row := bySource[r.ErrorSource]
		if row == nil {
			continue
		}
		row.Incidents++
		row.RecutPieces += r.Qty
	}

	total := 0
	for i := range rows {
		total += rows[i].Incidents
	}
	if total > 0 {
		for i := range rows {
			rows[i].PctOfTotal = round1(float64(rows[i].Incidents) / float64(total) * 100)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Incidents > rows[j].Incidents })
	return rows
}

// --- Cutting manager ---

type CuttingManagerMetrics struct {
	TotalRecutPieces   int // B/C/F recut pieces
	CuttingIncidents   int // A1x repair incidents
	RecutQtyFromRepair int
	FailQtyFromCutting int
	CuttingErrors      int // A1A incidents + B-prefix recut incidents
	MarkingErrors      int // A1B incidents + C-prefix recut incidents
	KittingErrors      int // A1C incidents
	CutShortErrors     int // F-prefix recut incidents
}

func CalculateCuttingManagerMetrics(repairs []RepairRecord, recuts []RecutRecord) CuttingManagerMetrics {
	var m CuttingManagerMetrics
	cuttingRepairs := FilterRepairsBySource(repairs, CuttingOperatorError)
	cuttingRecuts := FilterRecutsBySource(recuts, CuttingOperatorError)

	m.CuttingIncidents = len(cuttingRepairs)
	for _, r := range cuttingRepairs {
		m.RecutQtyFromRepair += r.RecutQty
		m.FailQtyFromCutting += r.FailQty
		code := strings.ToUpper(r.ReasonCode)
		switch {
		case strings.Contains(code, "A1A"):
			m.CuttingErrors++
		case strings.Contains(code, "A1B"):
			m.MarkingErrors++
		case strings.Contains(code, "A1C"):
			m.KittingErrors++
		}
	}
	for _, r := range cuttingRecuts {
		m.TotalRecutPieces += r.Qty
		switch {
		case hasRecutCodePrefix(r.Code, "B"):
			m.CuttingErrors++
		case hasRecutCodePrefix(r.Code, "C"):
			m.MarkingErrors++
		case hasRecutCodePrefix(r.Code, "F"):
			m.CutShortErrors++
		}
	}
	return m
}

// MaterialRecutRow breaks cutting-error recut pieces down by material.
type MaterialRecutRow struct {
	Material      string
	RecutPieces   int
	CuttingErrors int // B-prefix pieces
	MarkingErrors int // C-prefix pieces
	CutTooShort   int // F-prefix pieces
}

func CuttingRecutsByMaterial(recuts []RecutRecord) []MaterialRecutRow {
	cutting := FilterRecutsBySource(recuts, CuttingOperatorError)
	byMaterial := make(map[string]*MaterialRecutRow)
	for _, r := range cutting {
		row, ok := byMaterial[r.Material]
		if !ok {
			row = &MaterialRecutRow{Material: r.Material}
			byMaterial[r.Material] = row
		}
		row.RecutPieces += r.Qty
		switch {
		case hasRecutCodePrefix(r.Code, "B"):
			row.CuttingErrors += r.Qty
		case hasRecutCodePrefix(r.Code, "C"):
			row.MarkingErrors += r.Qty
		case hasRecutCodePrefix(r.Code, "F"):
			row.CutTooShort += r.Qty
		}
	}

	rows := make([]MaterialRecutRow, 0, len(byMaterial))
	for _, row := range byMaterial {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].RecutPieces != rows[j].RecutPieces {
			return rows[i].RecutPieces > rows[j].RecutPieces
		}
		return rows[i].Material < rows[j].Material
	})
	return rows
}

// SKURecutRow aggregates recut pieces per parent SKU with the distinct
// materials that were affected.
type SKURecutRow struct {
	ParentSKU         string
	RecutPieces       int
	MaterialsAffected string // comma-joined, sorted distinct materials
}

func RecutsByParentSKU(recuts []RecutRecord) []SKURecutRow {
	type agg struct {
		pieces    int
		materials map[string]bool
	}
	bySKU := make(map[string]*agg)
	for _, r := range recuts {
		if r.ParentSKU == "" {
			continue
		}
		a, ok := bySKU[r.ParentSKU]
		if !ok {
			a = &agg{materials: make(map[string]bool)}
			bySKU[r.ParentSKU] = a
		}
		a.pieces += r.Qty
		if r.Material != "" {
			a.materials[r.Material] = true
		}
	}

	rows := make([]SKURecutRow, 0, len(bySKU))
	for sku, a := range bySKU {
		materials := make([]string, 0, len(a.materials))
		for m := range a.materials {
			materials = append(materials, m)
		}
		sort.Strings(materials)
		rows = append(rows, SKURecutRow{
			ParentSKU:         sku,
			RecutPieces:       a.pieces,
			MaterialsAffected: strings.Join(materials, ", "),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].RecutPieces != rows[j].RecutPieces {
			return rows[i].RecutPieces > rows[j].RecutPieces
		}
		return rows[i].ParentSKU < rows[j].ParentSKU
	})
	return rows
}

func CuttingRecutsByParentSKU(recuts []RecutRecord) []SKURecutRow {
	return RecutsByParentSKU(FilterRecutsBySource(recuts, CuttingOperatorError))
}

// --- Sewing manager ---

type SewingManagerMetrics struct {
	TotalRepairs        int
	TotalRepairMinutes  int
	TotalRepairHours    float64
	AvgMinutesPerRepair float64
	TotalFails          int
	CaughtAtSewing      int
	CaughtAtQC          int
	PctCaughtSewing     float64
	PctCaughtQC         float64
	SewingRecutPieces   int // A-code recut pieces
	SewingIncidents     int
}

func CalculateSewingManagerMetrics(repairs []RepairRecord, recuts []RecutRecord) SewingManagerMetrics {
	var m SewingManagerMetrics
	for _, r := range repairs {
		m.TotalRepairs += r.RepairQty
		m.TotalRepairMinutes += r.RepairMinutes
		m.TotalFails += r.FailQty
		switch r.Discovered {
		case DetectedAtSewing:
			m.CaughtAtSewing++
		case DetectedAtQC:
			m.CaughtAtQC++
		}
	}
	m.TotalRepairHours = round1(float64(m.TotalRepairMinutes) / 60)
	if m.TotalRepairs > 0 {
		m.AvgMinutesPerRepair = round1(float64(m.TotalRepairMinutes) / float64(m.TotalRepairs))
	}
	if n := len(repairs); n > 0 {
		m.PctCaughtSewing = round1(float64(m.CaughtAtSewing) / float64(n) * 100)
		m.PctCaughtQC = round1(float64(m.CaughtAtQC) / float64(n) * 100)
	}
	for _, r := range FilterRecutsBySource(recuts, SewingOperatorError) {
		m.SewingRecutPieces += r.Qty
	}
	m.SewingIncidents = len(FilterRepairsBySource(repairs, SewingOperatorError))
	return m
}

// SMORow summarizes one sewing machine operator's repair workload.
type SMORow struct {
	SMO                 string
	RepairQty           int
	RepairMinutes       int
	AvgMinutesPerRepair float64
	FailQty             int
	ParentSKUsRepaired  int // distinct parent SKUs touched
}

func SMOPerformance(repairs []RepairRecord) []SMORow {
	type agg struct {
		repairQty, minutes, failQty int
		skus                        map[string]bool
	}
	bySMO := make(map[string]*agg)
	for _, r := range repairs {
		if r.SMO == "" {
			continue
		}
		a, ok := bySMO[r.SMO]
		if !ok {
			a = &agg{skus: make(map[string]bool)}
			bySMO[r.SMO] = a
		}
		a.repairQty += r.RepairQty
		a.minutes += r.RepairMinutes
		a.failQty += r.FailQty
		if r.ParentSKU != "" {
			a.skus[r.ParentSKU] = true
		}
	}

	rows := make([]SMORow, 0, len(bySMO))
	for smo, a := range bySMO {
		row := SMORow{
			SMO:                smo,
			RepairQty:          a.repairQty,
			RepairMinutes:      a.minutes,
			FailQty:            a.failQty,
			ParentSKUsRepaired: len(a.skus),
		}
		if a.repairQty > 0 {
			row.AvgMinutesPerRepair = round1(float64(a.minutes) / float64(a.repairQty))
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].RepairQty != rows[j].RepairQty {
			return rows[i].RepairQty > rows[j].RepairQty
		}
		return rows[i].SMO < rows[j].SMO
	})
	return rows
}

// SKURepairRow aggregates repairs per parent SKU.
type SKURepairRow struct {
	ParentSKU           string
	RepairQty           int
	RepairMinutes       int
	AvgMinutesPerRepair float64
	FailQty             int
	RecutQty            int
	TotalRework         int // repair + recut + fail
}

func RepairsByParentSKU(repairs []RepairRecord) []SKURepairRow {
	bySKU := make(map[string]*SKURepairRow)
	for _, r := range repairs {
		if r.ParentSKU == "" {
			continue
		}
		row, ok := bySKU[r.ParentSKU]
		if !ok {
			row = &SKURepairRow{ParentSKU: r.ParentSKU}
			bySKU[r.ParentSKU] = row
		}
		row.RepairQty += r.RepairQty
		row.RepairMinutes += r.RepairMinutes
		row.FailQty += r.FailQty
		row.RecutQty += r.RecutQty
	}

	rows := make([]SKURepairRow, 0, len(bySKU))
	for _, row := range bySKU {
		if row.RepairQty > 0 {
			row.AvgMinutesPerRepair = round1(float64(row.RepairMinutes) / float64(row.RepairQty))
		}
		row.TotalRework = row.RepairQty + row.RecutQty + row.FailQty
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].RepairQty != rows[j].RepairQty {
			return rows[i].RepairQty > rows[j].RepairQty
		}
		return rows[i].ParentSKU < rows[j].ParentSKU
	})
	return rows
}

// --- Production manager ---

type ProductionManagerMetrics struct {
	Totals
	PctCuttingOperator float64
	PctSewingOperator  float64
	PctCuttingMachine  float64
	PctSewingMachine   float64
	PctOtherMachine    float64
	PctTotalMachine    float64
	PctMaterialDefects float64
}

func CalculateProductionManagerMetrics(repairs []RepairRecord, recuts []RecutRecord) ProductionManagerMetrics {
	m := ProductionManagerMetrics{Totals: CalculateTotals(repairs, recuts)}
	breakdown := ErrorSourceBreakdown(repairs, recuts)
	pct := func(src ErrorSource) float64 {
		for _, row := range breakdown {
			if row.Source == src {
				return row.PctOfTotal
			}
		}
		return 0
	}
	m.PctCuttingOperator = pct(CuttingOperatorError)
	m.PctSewingOperator = pct(SewingOperatorError)
	m.PctCuttingMachine = pct(CuttingMachineError)
	m.PctSewingMachine = pct(SewingMachineError)
	m.PctOtherMachine = pct(OtherMachineError)
	m.PctTotalMachine = round1(m.PctCuttingMachine + m.PctSewingMachine + m.PctOtherMachine)
	m.PctMaterialDefects = pct(MaterialDefect)
	return m
}

func TopProblemSKUsByRepairs(repairs []RepairRecord, n int) []SKURepairRow {
	rows := RepairsByParentSKU(repairs)
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// ProblemSKURecutRow extends the recut rollup with the top error codes seen.
type ProblemSKURecutRow struct {
	ParentSKU     string
	RecutPieces   int
	TopErrorCodes string // up to 3 distinct codes, first-seen order
}

func TopProblemSKUsByRecuts(recuts []RecutRecord, n int) []ProblemSKURecutRow {
	type agg struct {
		pieces int
		codes  []string
		seen   map[string]bool
	}
	bySKU := make(map[string]*agg)
	for _, r := range recuts {
		if r.ParentSKU == "" {
			continue
		}
		a, ok := bySKU[r.ParentSKU]
		if !ok {
			a = &agg{seen: make(map[string]bool)}
			bySKU[r.ParentSKU] = a
		}
		a.pieces += r.Qty
		if r.Code != "" && !a.seen[r.Code] && len(a.codes) < 3 {
			a.seen[r.Code] = true
			a.codes = append(a.codes, r.Code)
		}
	}

	rows := make([]ProblemSKURecutRow, 0, len(bySKU))
	for sku, a := range bySKU {
		rows = append(rows, ProblemSKURecutRow{
			ParentSKU:     sku,
			RecutPieces:   a.pieces,
			TopErrorCodes: strings.Join(a.codes, ", "),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].RecutPieces != rows[j].RecutPieces {
			return rows[i].RecutPieces > rows[j].RecutPieces
		}
		return rows[i].ParentSKU < rows[j].ParentSKU
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// --- QC manager ---

type QCManagerMetrics struct {
	TotalIssues        int
	CaughtAtSewing     int
	CaughtAtQC         int
	PctCaughtSewing    float64
	PctCaughtQC        float64
	RepairsFromQCCatch int
	FailsFromQCCatch   int
}

func CalculateQCManagerMetrics(repairs []RepairRecord) QCManagerMetrics {
	var m QCManagerMetrics
	m.TotalIssues = len(repairs)
	for _, r := range repairs {
		switch r.Discovered {
		case DetectedAtSewing:
			m.CaughtAtSewing++
		case DetectedAtQC:
			m.CaughtAtQC++
			m.RepairsFromQCCatch += r.RepairQty
			m.FailsFromQCCatch += r.FailQty
		}
	}
	if m.TotalIssues > 0 {
		m.PctCaughtSewing = round1(float64(m.CaughtAtSewing) / float64(m.TotalIssues) * 100)
		m.PctCaughtQC = round1(float64(m.CaughtAtQC) / float64(m.TotalIssues) * 100)
	}
	return m
}

// DetectionRow is the detection-location split for one parent SKU.
type DetectionRow struct {
	ParentSKU      string
	TotalIssues    int
	CaughtAtSewing int
	CaughtAtQC     int
	PctAtSewing    float64
	PctAtQC        float64
}

func DetectionByParentSKU(repairs []RepairRecord) []DetectionRow {
	bySKU := make(map[string]*DetectionRow)
	for _, r := range repairs {
		if r.ParentSKU == "" {
			continue
		}
		row, ok := bySKU[r.ParentSKU]
		if !ok {
			row = &DetectionRow{ParentSKU: r.ParentSKU}
			bySKU[r.ParentSKU] = row
		}
		row.TotalIssues++
		switch r.Discovered {
		case DetectedAtSewing:
			row.CaughtAtSewing++
		case DetectedAtQC:
			row.CaughtAtQC++
		}
	}

	rows := make([]DetectionRow, 0, len(bySKU))
	for _, row := range bySKU {
		if row.TotalIssues > 0 {
			row.PctAtSewing = round1(float64(row.CaughtAtSewing) / float64(row.TotalIssues) * 100)
			row.PctAtQC = round1(float64(row.CaughtAtQC) / float64(row.TotalIssues) * 100)
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalIssues != rows[j].TotalIssues {
			return rows[i].TotalIssues > rows[j].TotalIssues
		}
		return rows[i].ParentSKU < rows[j].ParentSKU
	})
	return rows
}

// PoorInlineDetectionSKUs returns SKUs where more than threshold percent of
// issues slipped past sewing and were only caught at QC.
func PoorInlineDetectionSKUs(repairs []RepairRecord, threshold float64) []DetectionRow {
	var out []DetectionRow
	for _, row := range DetectionByParentSKU(repairs) {
		if row.PctAtQC > threshold {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CaughtAtQC != out[j].CaughtAtQC {
			return out[i].CaughtAtQC > out[j].CaughtAtQC
		}
		return out[i].ParentSKU < out[j].ParentSKU
	})
	return out
}

// ReasonDetectionRow is the detection split for one reason code.
type ReasonDetectionRow struct {
	ReasonCode     string
	Total          int
	CaughtAtSewing int
	CaughtAtQC     int
	PctAtQC        float64
}

func ErrorTypesByDetection(repairs []RepairRecord) []ReasonDetectionRow {
	byCode := make(map[string]*ReasonDetectionRow)
	for _, r := range repairs {
		row, ok := byCode[r.ReasonCode]
		if !ok {
			row = &ReasonDetectionRow{ReasonCode: r.ReasonCode}
			byCode[r.ReasonCode] = row
		}
		row.Total++
		switch r.Discovered {
		case DetectedAtSewing:
			row.CaughtAtSewing++
		case DetectedAtQC:
			row.CaughtAtQC++
		}
	}

	rows := make([]ReasonDetectionRow, 0, len(byCode))
	for _, row := range byCode {
		if row.Total > 0 {
			row.PctAtQC = round1(float64(row.CaughtAtQC) / float64(row.Total) * 100)
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].ReasonCode < rows[j].ReasonCode
	})
	return rows
}

// --- Operations director ---

type OpsDirectorMetrics struct {
	TotalReworkEvents   int
	TotalRepairHours    float64
	TotalRecutPieces    int
	TotalFails          int
	TopProblemSKU       string
	TopProblemSKURework int
	PrimaryErrorSource  ErrorSource
	PrimaryErrorPct     float64
}

func CalculateOpsDirectorMetrics(repairs []RepairRecord, recuts []RecutRecord) OpsDirectorMetrics {
	totals := CalculateTotals(repairs, recuts)
	m := OpsDirectorMetrics{
		TotalReworkEvents: totals.TotalReworkEvents,
		TotalRepairHours:  totals.TotalRepairHours,
		TotalRecutPieces:  totals.TotalRecutPieces,
		TotalFails:        totals.TotalFails,
	}

	if rows := RepairsByParentSKU(repairs); len(rows) > 0 {
		m.TopProblemSKU = rows[0].ParentSKU
		m.TopProblemSKURework = rows[0].TotalRework
	}
	if breakdown := ErrorSourceBreakdown(repairs, recuts); len(breakdown) > 0 {
		m.PrimaryErrorSource = breakdown[0].Source
		m.PrimaryErrorPct = breakdown[0].PctOfTotal
	}
	return m
}

// ErrorTypeRow counts repair incidents per raw reason code.
type ErrorTypeRow struct {
	ReasonCode string
	Incidents  int
	RepairQty  int
	FailQty    int
}

// TopErrorTypes ranks the repairs sheet's reason codes by incident count.
// The recut sheet's codes live in a different vocabulary and are reported
// separately via TopProblemSKUsByRecuts.
func TopErrorTypes(repairs []RepairRecord, n int) []ErrorTypeRow {
	byCode := make(map[string]*ErrorTypeRow)
	for _, r := range repairs {
		if r.ReasonCode == "" {
			continue
		}
		row, ok := byCode[r.ReasonCode]
		if !ok {
			row = &ErrorTypeRow{ReasonCode: r.ReasonCode}
			byCode[r.ReasonCode] = row
		}
		row.Incidents++
		row.RepairQty += r.RepairQty
		row.FailQty += r.FailQty
	}

	rows := make([]ErrorTypeRow, 0, len(byCode))
	for _, row := range byCode {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Incidents != rows[j].Incidents {
			return rows[i].Incidents > rows[j].Incidents
		}
		return rows[i].ReasonCode < rows[j].ReasonCode
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// InvestmentRow merges both sheets per parent SKU for the investment
// priority list.
type InvestmentRow struct {
	ParentSKU        string
	RepairQty        int
	RecutPieces      int
	FailQty          int
	TotalRework      int
	RepairHours      float64
	PrimaryErrorCode string // most frequent recut CODE for the SKU
}

func SKUInvestmentPriority(repairs []RepairRecord, recuts []RecutRecord, n int) []InvestmentRow {
	bySKU := make(map[string]*InvestmentRow)
	get := func(sku string) *InvestmentRow {
		row, ok := bySKU[sku]
		if !ok {
			row = &InvestmentRow{ParentSKU: sku}
			bySKU[sku] = row
		}
		return row
	}

	minutes := make(map[string]int)
	for _, r := range repairs {
		if r.ParentSKU == "" {
			continue
		}
		row := get(r.ParentSKU)
		row.RepairQty += r.RepairQty
		row.FailQty += r.FailQty
		minutes[r.ParentSKU] += r.RepairMinutes
	}

	codeCounts := make(map[string]map[string]int)
	for _, r := range recuts {
		if r.ParentSKU == "" {
			continue
		}
		row := get(r.ParentSKU)
		row.RecutPieces += r.Qty
		if r.Code != "" {
			if codeCounts[r.ParentSKU] == nil {
				codeCounts[r.ParentSKU] = make(map[string]int)
			}
			codeCounts[r.ParentSKU][r.Code]++
		}
	}

	rows := make([]InvestmentRow, 0, len(bySKU))
	for sku, row := range bySKU {
		row.TotalRework = row.RepairQty + row.RecutPieces + row.FailQty
		row.RepairHours = round1(float64(minutes[sku]) / 60)
		row.PrimaryErrorCode = modeCode(codeCounts[sku])
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalRework != rows[j].TotalRework {
			return rows[i].TotalRework > rows[j].TotalRework
		}
		return rows[i].ParentSKU < rows[j].ParentSKU
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

func modeCode(counts map[string]int) string {
	best, bestCount := "", 0
	for code, n := range counts {
		if n > bestCount || (n == bestCount && code < best) {
			best, bestCount = code, n
		}
	}
	return best
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
