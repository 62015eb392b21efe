package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RenderWeeklyReport builds the markdown rework report for one week:
// headline totals, the error-source breakdown, and one section per role
// (production, cutting, sewing, QC, operations).
func RenderWeeklyReport(cfg Config, repairs []RepairRecord, recuts []RecutRecord, weekStart time.Time) string {
	weekEnd := weekStart.AddDate(0, 0, 6)
	var b strings.Builder

	fmt.Fprintf(&b, "### %s Rework Report %s - %s\n\n",
		cfg.TeamName, weekStart.Format("Jan 2"), weekEnd.Format("Jan 2, 2006"))

	totals := CalculateTotals(repairs, recuts)
	fmt.Fprintf(&b, "**Rework events:** %d (%d repairs, %d recuts)\n",
		totals.TotalReworkEvents, totals.RepairIncidents, totals.RecutIncidents)
	fmt.Fprintf(&b, "**Pieces repaired:** %d (%.1f hrs)  |  **Pieces recut:** %d  |  **Pieces failed:** %d\n\n",
		totals.TotalRepairs, totals.TotalRepairHours, totals.TotalRecutPieces, totals.TotalFails)

	b.WriteString("#### Error Sources\n\n")
	b.WriteString("| Error Source | Incidents | % of Total | Repaired | Recut Pieces | Failed | Repair Min |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, row := range ErrorSourceBreakdown(repairs, recuts) {
		if row.Incidents == 0 {
			continue
		}
		fmt.Fprintf(&b, "| %s | %d | %.1f%% | %d | %d | %d | %d |\n",
			row.Source, row.Incidents, row.PctOfTotal, row.RepairQty, row.RecutPieces, row.FailQty, row.RepairMinutes)
	}
	b.WriteString("\n")

	writeProductionSection(&b, repairs, recuts)
	writeCuttingSection(&b, repairs, recuts, cfg.TopSKUCount)
	writeSewingSection(&b, repairs, recuts)
	writeQCSection(&b, repairs, cfg.QCThresholdPct)
	writeOpsSection(&b, repairs, recuts, cfg.TopSKUCount)

	return b.String()
}

func writeProductionSection(b *strings.Builder, repairs []RepairRecord, recuts []RecutRecord) {
	m := CalculateProductionManagerMetrics(repairs, recuts)
	b.WriteString("#### Production\n\n")
	fmt.Fprintf(b, "- Operator errors: cutting %.1f%%, sewing %.1f%%\n", m.PctCuttingOperator, m.PctSewingOperator)
	fmt.Fprintf(b, "- Machine errors: %.1f%% total (cutting %.1f%%, sewing %.1f%%, other %.1f%%)\n",
		m.PctTotalMachine, m.PctCuttingMachine, m.PctSewingMachine, m.PctOtherMachine)
	fmt.Fprintf(b, "- Material defects: %.1f%%\n\n", m.PctMaterialDefects)
}

func writeCuttingSection(b *strings.Builder, repairs []RepairRecord, recuts []RecutRecord, topN int) {
	m := CalculateCuttingManagerMetrics(repairs, recuts)
	b.WriteString("#### Cutting\n\n")
	fmt.Fprintf(b, "- Recut pieces from cutting errors: %d\n", m.TotalRecutPieces)
	fmt.Fprintf(b, "- Cutting incidents on the repairs sheet: %d (recut qty %d, failed %d)\n",
		m.CuttingIncidents, m.RecutQtyFromRepair, m.FailQtyFromCutting)
	fmt.Fprintf(b, "- Error types: cutting %d, marking %d, kitting %d, cut-too-short %d\n\n",
		m.CuttingErrors, m.MarkingErrors, m.KittingErrors, m.CutShortErrors)

	if materials := CuttingRecutsByMaterial(recuts); len(materials) > 0 {
		b.WriteString("**Recuts by material**\n\n")
		for i, row := range materials {
			if i >= topN {
				break
			}
			fmt.Fprintf(b, "- %s: %d pieces (cut %d, marked %d, short %d)\n",
				row.Material, row.RecutPieces, row.CuttingErrors, row.MarkingErrors, row.CutTooShort)
		}
		b.WriteString("\n")
	}

	if skus := CuttingRecutsByParentSKU(recuts); len(skus) > 0 {
		b.WriteString("**Recuts by SKU**\n\n")
		for i, row := range skus {
			if i >= topN {
				break
			}
			line := fmt.Sprintf("- %s: %d pieces", row.ParentSKU, row.RecutPieces)
			if row.MaterialsAffected != "" {
				line += fmt.Sprintf(" (materials: %s)", row.MaterialsAffected)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}
}

func writeSewingSection(b *strings.Builder, repairs []RepairRecord, recuts []RecutRecord) {
	m := CalculateSewingManagerMetrics(repairs, recuts)
	b.WriteString("#### Sewing\n\n")
	fmt.Fprintf(b, "- Repairs: %d pieces, %.1f hrs (avg %.1f min/repair)\n",
		m.TotalRepairs, m.TotalRepairHours, m.AvgMinutesPerRepair)
	fmt.Fprintf(b, "- Caught at sewing: %d (%.1f%%), caught at QC: %d (%.1f%%)\n",
		m.CaughtAtSewing, m.PctCaughtSewing, m.CaughtAtQC, m.PctCaughtQC)
	fmt.Fprintf(b, "- Recut pieces from sewing errors: %d, sewing incidents: %d\n\n",
		m.SewingRecutPieces, m.SewingIncidents)

	if smos := SMOPerformance(repairs); len(smos) > 0 {
		b.WriteString("**SMO performance**\n\n")
		b.WriteString("| SMO | Repaired | Min | Avg Min | Failed | SKUs |\n")
		b.WriteString("|---|---|---|---|---|---|\n")
		for _, row := range smos {
			fmt.Fprintf(b, "| %s | %d | %d | %.1f | %d | %d |\n",
				row.SMO, row.RepairQty, row.RepairMinutes, row.AvgMinutesPerRepair, row.FailQty, row.ParentSKUsRepaired)
		}
		b.WriteString("\n")
	}
}

func writeQCSection(b *strings.Builder, repairs []RepairRecord, threshold float64) {
	m := CalculateQCManagerMetrics(repairs)
	b.WriteString("#### QC\n\n")
	fmt.Fprintf(b, "- Issues: %d, caught at sewing %d (%.1f%%), caught at QC %d (%.1f%%)\n",
		m.TotalIssues, m.CaughtAtSewing, m.PctCaughtSewing, m.CaughtAtQC, m.PctCaughtQC)
	fmt.Fprintf(b, "- QC-caught repairs: %d pieces, fails: %d pieces\n\n", m.RepairsFromQCCatch, m.FailsFromQCCatch)

	if poor := PoorInlineDetectionSKUs(repairs, threshold); len(poor) > 0 {
		fmt.Fprintf(b, "**SKUs with poor inline detection (>%.0f%% caught at QC)**\n\n", threshold)
		for _, row := range poor {
			fmt.Fprintf(b, "- %s: %d of %d issues caught at QC (%.1f%%)\n",
				row.ParentSKU, row.CaughtAtQC, row.TotalIssues, row.PctAtQC)
		}
		b.WriteString("\n")
	}
}

func writeOpsSection(b *strings.Builder, repairs []RepairRecord, recuts []RecutRecord, topN int) {
	m := CalculateOpsDirectorMetrics(repairs, recuts)
	b.WriteString("#### Operations\n\n")
	fmt.Fprintf(b, "- Rework events: %d, repair time %.1f hrs, recut pieces %d, fails %d\n",
		m.TotalReworkEvents, m.TotalRepairHours, m.TotalRecutPieces, m.TotalFails)
	if m.TopProblemSKU != "" {
		fmt.Fprintf(b, "- Top problem SKU: %s (%d rework pieces)\n", m.TopProblemSKU, m.TopProblemSKURework)
	}
	if m.PrimaryErrorSource != "" && m.PrimaryErrorPct > 0 {
		fmt.Fprintf(b, "- Primary error source: %s (%.1f%%)\n", m.PrimaryErrorSource, m.PrimaryErrorPct)
	}
	b.WriteString("\n")

	if priority := SKUInvestmentPriority(repairs, recuts, topN); len(priority) > 0 {
		b.WriteString("**SKU investment priority**\n\n")
		b.WriteString("| Parent SKU | Repaired | Recut | Failed | Total | Hrs | Primary Code |\n")
		b.WriteString("|---|---|---|---|---|---|---|\n")
		for _, row := range priority {
			fmt.Fprintf(b, "| %s | %d | %d | %d | %d | %.1f | %s |\n",
				row.ParentSKU, row.RepairQty, row.RecutPieces, row.FailQty, row.TotalRework, row.RepairHours, row.PrimaryErrorCode)
		}
		b.WriteString("\n")
	}

	if errorTypes := TopErrorTypes(repairs, 5); len(errorTypes) > 0 {
		b.WriteString("**Top error types (repairs sheet)**\n\n")
		for _, row := range errorTypes {
			fmt.Fprintf(b, "- %s: %d incidents (%d repaired, %d failed)\n",
				row.ReasonCode, row.Incidents, row.RepairQty, row.FailQty)
		}
		b.WriteString("\n")
	}
}

func WriteReportFile(content, outputDir string, reportDate time.Time, teamName string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s_%s.md", sanitizeFilename(teamName), reportDate.Format("20060102"))
	path := filepath.Join(outputDir, filename)
	return path, os.WriteFile(path, []byte(content), 0644)
}

func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_", " ", "_")
	return replacer.Replace(s)
}
