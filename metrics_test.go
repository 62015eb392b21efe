package main

import (
	"testing"
	"time"
)

func fixtureWeek(t *testing.T) ([]RepairRecord, []RecutRecord) {
	t.Helper()
	d := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	repairs := []RepairRecord{
		{
			Date: d, Discovered: DetectedAtSewing, ParentSKU: "AC-ESE", SMO: "JFernandez",
			ReasonCode: "S2", ErrorSource: SewingOperatorError,
			RepairQty: 3, RepairMinutes: 45,
		},
		{
			Date: d, Discovered: DetectedAtQC, ParentSKU: "AC-ESE", SMO: "JFernandez",
			ReasonCode: "A1A", ErrorSource: CuttingOperatorError,
			RepairQty: 1, RepairMinutes: 15, RecutQty: 2, FailQty: 1,
		},
		{
			Date: d, Discovered: DetectedAtQC, ParentSKU: "PC-F20-LG", SMO: "DKennedy",
			ReasonCode: "S2", ErrorSource: SewingOperatorError,
			RepairQty: 2, RepairMinutes: 30,
		},
	}
	recuts := []RecutRecord{
		{Date: d, Code: "B: Wrong Material Cut", ErrorSource: CuttingOperatorError, ParentSKU: "AC-ESE", Material: "Canvas", Qty: 4},
		{Date: d, Code: "F", ErrorSource: CuttingOperatorError, ParentSKU: "AC-ESE", Material: "Mesh", Qty: 2},
		{Date: d, Code: "A: SMO Error", ErrorSource: SewingOperatorError, ParentSKU: "PC-F20-LG", Material: "Canvas", Qty: 1},
	}
	return repairs, recuts
}

func TestCalculateTotals(t *testing.T) {
	repairs, recuts := fixtureWeek(t)
	totals := CalculateTotals(repairs, recuts)

	if totals.TotalRepairs != 6 || totals.TotalRepairMinutes != 90 {
		t.Errorf("repairs wrong: %+v", totals)
	}
	if totals.TotalRepairHours != 1.5 {
		t.Errorf("expected 1.5 hrs, got %v", totals.TotalRepairHours)
	}
	if totals.TotalRecutPieces != 7 || totals.TotalRecutQtyRepairs != 2 || totals.TotalFails != 1 {
		t.Errorf("recut/fail totals wrong: %+v", totals)
	}
	if totals.RepairIncidents != 3 || totals.RecutIncidents != 3 || totals.TotalReworkEvents != 6 {
		t.Errorf("incident counts wrong: %+v", totals)
	}
}

func TestErrorSourceBreakdown(t *testing.T) {
	repairs, recuts := fixtureWeek(t)
	rows := ErrorSourceBreakdown(repairs, recuts)

	if len(rows) != len(AllErrorSources) {
		t.Fatalf("breakdown must cover every category, got %d rows", len(rows))
	}
	// 3 cutting-operator and 3 sewing-operator incidents, tie broken by
	// canonical category order.
	if rows[0].Source != CuttingOperatorError || rows[0].Incidents != 3 || rows[0].PctOfTotal != 50 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Source != SewingOperatorError || rows[1].Incidents != 3 || rows[1].PctOfTotal != 50 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
	if rows[0].RecutPieces != 6 || rows[0].RepairQty != 1 || rows[0].FailQty != 1 {
		t.Errorf("cutting operator quantities wrong: %+v", rows[0])
	}
	for _, row := range rows[2:] {
		if row.Incidents != 0 || row.PctOfTotal != 0 {
			t.Errorf("expected zero row for %s: %+v", row.Source, row)
		}
	}
}

func TestErrorSourceBreakdownEmpty(t *testing.T) {
	rows := ErrorSourceBreakdown(nil, nil)
	if len(rows) != len(AllErrorSources) {
		t.Fatalf("expected all categories, got %d", len(rows))
	}
	for _, row := range rows {
		if row.PctOfTotal != 0 {
			t.Errorf("expected 0%% with no records, got %+v", row)
		}
	}
}

func TestCalculateCuttingManagerMetrics(t *testing.T) {
	repairs, recuts := fixtureWeek(t)
	m := CalculateCuttingManagerMetrics(repairs, recuts)

	if m.CuttingIncidents != 1 || m.RecutQtyFromRepair != 2 || m.FailQtyFromCutting != 1 {
		t.Errorf("repairs-sheet numbers wrong: %+v", m)
	}
	if m.TotalRecutPieces != 6 {
		t.Errorf("expected 6 recut pieces, got %d", m.TotalRecutPieces)
	}
	if m.CuttingErrors != 2 || m.MarkingErrors != 0 || m.KittingErrors != 0 || m.CutShortErrors != 1 {
		t.Errorf("error-type split wrong: %+v", m)
	}
}

func TestCuttingRecutsByMaterial(t *testing.T) {
	_, recuts := fixtureWeek(t)
	rows := CuttingRecutsByMaterial(recuts)

	if len(rows) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(rows))
	}
	if rows[0].Material != "Canvas" || rows[0].RecutPieces != 4 || rows[0].CuttingErrors != 4 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Material != "Mesh" || rows[1].RecutPieces != 2 || rows[1].CutTooShort != 2 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestRecutsByParentSKU(t *testing.T) {
	_, recuts := fixtureWeek(t)
	rows := RecutsByParentSKU(recuts)

	if len(rows) != 2 {
		t.Fatalf("expected 2 SKUs, got %d", len(rows))
	}
	if rows[0].ParentSKU != "AC-ESE" || rows[0].RecutPieces != 6 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[0].MaterialsAffected != "Canvas, Mesh" {
		t.Errorf("expected sorted distinct materials, got %q", rows[0].MaterialsAffected)
	}
	if rows[1].ParentSKU != "PC-F20-LG" || rows[1].RecutPieces != 1 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestCalculateSewingManagerMetrics(t *testing.T) {
	repairs, recuts := fixtureWeek(t)
	m := CalculateSewingManagerMetrics(repairs, recuts)

	if m.TotalRepairs != 6 || m.TotalRepairHours != 1.5 || m.AvgMinutesPerRepair != 15 {
		t.Errorf("repair numbers wrong: %+v", m)
	}
	if m.CaughtAtSewing != 1 || m.CaughtAtQC != 2 {
		t.Errorf("detection counts wrong: %+v", m)
	}
	if m.PctCaughtSewing != 33.3 || m.PctCaughtQC != 66.7 {
		t.Errorf("detection pcts wrong: %+v", m)
	}
	if m.SewingRecutPieces != 1 || m.SewingIncidents != 2 {
		t.Errorf("sewing-source numbers wrong: %+v", m)
	}
}

func TestSMOPerformance(t *testing.T) {
	repairs, _ := fixtureWeek(t)
	rows := SMOPerformance(repairs)

	if len(rows) != 2 {
		t.Fatalf("expected 2 SMOs, got %d", len(rows))
	}
	if rows[0].SMO != "JFernandez" || rows[0].RepairQty != 4 || rows[0].RepairMinutes != 60 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[0].AvgMinutesPerRepair != 15 || rows[0].FailQty != 1 || rows[0].ParentSKUsRepaired != 1 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].SMO != "DKennedy" || rows[1].RepairQty != 2 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestRepairsByParentSKU(t *testing.T) {
	repairs, _ := fixtureWeek(t)
	rows := RepairsByParentSKU(repairs)

	if len(rows) != 2 {
		t.Fatalf("expected 2 SKUs, got %d", len(rows))
	}
	r := rows[0]
	if r.ParentSKU != "AC-ESE" || r.RepairQty != 4 || r.RecutQty != 2 || r.FailQty != 1 {
		t.Errorf("unexpected first row: %+v", r)
	}
	if r.TotalRework != 7 || r.AvgMinutesPerRepair != 15 {
		t.Errorf("unexpected first row: %+v", r)
	}
}

func TestCalculateProductionManagerMetrics(t *testing.T) {
	repairs, recuts := fixtureWeek(t)
	m := CalculateProductionManagerMetrics(repairs, recuts)

	if m.PctCuttingOperator != 50 || m.PctSewingOperator != 50 {
		t.Errorf("operator pcts wrong: %+v", m)
	}
	if m.PctTotalMachine != 0 || m.PctMaterialDefects != 0 {
		t.Errorf("expected zero machine/material pcts: %+v", m)
	}
	if m.TotalReworkEvents != 6 {
		t.Errorf("embedded totals missing: %+v", m)
	}
}

func TestCalculateQCManagerMetrics(t *testing.T) {
	repairs, _ := fixtureWeek(t)
	m := CalculateQCManagerMetrics(repairs)

	if m.TotalIssues != 3 || m.CaughtAtSewing != 1 || m.CaughtAtQC != 2 {
		t.Errorf("counts wrong: %+v", m)
	}
	if m.PctCaughtSewing != 33.3 || m.PctCaughtQC != 66.7 {
		t.Errorf("pcts wrong: %+v", m)
	}
	if m.RepairsFromQCCatch != 3 || m.FailsFromQCCatch != 1 {
		t.Errorf("QC-caught quantities wrong: %+v", m)
	}
}

func TestDetectionByParentSKU(t *testing.T) {
	repairs, _ := fixtureWeek(t)
	rows := DetectionByParentSKU(repairs)

	if len(rows) != 2 {
		t.Fatalf("expected 2 SKUs, got %d", len(rows))
	}
	if rows[0].ParentSKU != "AC-ESE" || rows[0].PctAtQC != 50 || rows[0].PctAtSewing != 50 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].ParentSKU != "PC-F20-LG" || rows[1].PctAtQC != 100 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestPoorInlineDetectionSKUs(t *testing.T) {
	repairs, _ := fixtureWeek(t)
	rows := PoorInlineDetectionSKUs(repairs, 50)

	// AC-ESE sits exactly at 50% and must not be flagged.
	if len(rows) != 1 || rows[0].ParentSKU != "PC-F20-LG" {
		t.Fatalf("expected only PC-F20-LG above threshold, got %+v", rows)
	}
}

func TestErrorTypesByDetection(t *testing.T) {
	repairs, _ := fixtureWeek(t)
	rows := ErrorTypesByDetection(repairs)

	if len(rows) != 2 {
		t.Fatalf("expected 2 reason codes, got %d", len(rows))
	}
	if rows[0].ReasonCode != "S2" || rows[0].Total != 2 || rows[0].PctAtQC != 50 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].ReasonCode != "A1A" || rows[1].PctAtQC != 100 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestCalculateOpsDirectorMetrics(t *testing.T) {
	repairs, recuts := fixtureWeek(t)
	m := CalculateOpsDirectorMetrics(repairs, recuts)

	if m.TotalReworkEvents != 6 || m.TotalRepairHours != 1.5 || m.TotalRecutPieces != 7 || m.TotalFails != 1 {
		t.Errorf("totals wrong: %+v", m)
	}
	if m.TopProblemSKU != "AC-ESE" || m.TopProblemSKURework != 7 {
		t.Errorf("top problem SKU wrong: %+v", m)
	}
	if m.PrimaryErrorSource != CuttingOperatorError || m.PrimaryErrorPct != 50 {
		t.Errorf("primary error source wrong: %+v", m)
	}
}

func TestTopErrorTypes(t *testing.T) {
	repairs, _ := fixtureWeek(t)
	rows := TopErrorTypes(repairs, 5)

	if len(rows) != 2 {
		t.Fatalf("expected 2 codes, got %d", len(rows))
	}
	if rows[0].ReasonCode != "S2" || rows[0].Incidents != 2 || rows[0].RepairQty != 5 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].ReasonCode != "A1A" || rows[1].FailQty != 1 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}

	if got := TopErrorTypes(repairs, 1); len(got) != 1 {
		t.Errorf("expected truncation to 1, got %d", len(got))
	}
}

func TestSKUInvestmentPriority(t *testing.T) {
	repairs, recuts := fixtureWeek(t)
	rows := SKUInvestmentPriority(repairs, recuts, 10)

	if len(rows) != 2 {
		t.Fatalf("expected 2 SKUs, got %d", len(rows))
	}
	r := rows[0]
	if r.ParentSKU != "AC-ESE" || r.RepairQty != 4 || r.RecutPieces != 6 || r.FailQty != 1 {
		t.Errorf("unexpected first row: %+v", r)
	}
	if r.TotalRework != 11 || r.RepairHours != 1 {
		t.Errorf("unexpected first row: %+v", r)
	}
	if r.PrimaryErrorCode != "B: Wrong Material Cut" {
		t.Errorf("expected most frequent recut code, got %q", r.PrimaryErrorCode)
	}
	if rows[1].ParentSKU != "PC-F20-LG" || rows[1].TotalRework != 3 || rows[1].PrimaryErrorCode != "A: SMO Error" {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestTopProblemSKUsByRecuts(t *testing.T) {
	_, recuts := fixtureWeek(t)
	rows := TopProblemSKUsByRecuts(recuts, 10)

	if len(rows) != 2 {
		t.Fatalf("expected 2 SKUs, got %d", len(rows))
	}
	if rows[0].ParentSKU != "AC-ESE" || rows[0].RecutPieces != 6 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[0].TopErrorCodes != "B: Wrong Material Cut, F" {
		t.Errorf("unexpected codes: %q", rows[0].TopErrorCodes)
	}
}

func TestFilterHelpers(t *testing.T) {
	repairs, recuts := fixtureWeek(t)

	if got := FilterRepairsBySource(repairs, SewingOperatorError); len(got) != 2 {
		t.Errorf("expected 2 sewing-operator repairs, got %d", len(got))
	}
	if got := FilterRepairsBySource(repairs); len(got) != 3 {
		t.Errorf("no sources should pass everything, got %d", len(got))
	}
	if got := FilterRepairsByDetection(repairs, "qc"); len(got) != 2 {
		t.Errorf("expected 2 QC-detected repairs, got %d", len(got))
	}
	if got := FilterRecutsByCodes(recuts, "B", "F"); len(got) != 2 {
		t.Errorf("expected 2 B/F recuts, got %d", len(got))
	}
	if got := FilterRecutsByCodes(recuts, "a"); len(got) != 1 {
		t.Errorf("expected 1 A recut (case-insensitive prefix), got %d", len(got))
	}
}
