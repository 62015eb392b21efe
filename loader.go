package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Column headers of the two sheet exports. Ingestion matches columns by
// header name so reordered or partially-exported sheets degrade gracefully:
// a missing column leaves the derived field zero/blank/Unknown.
const (
	repairColDate          = "Date"
	repairColDiscovered    = "Repair Discovered"
	repairColSKU           = "SKU-Colorway-Size"
	repairColPRNumber      = "PR#"
	repairColTotalQty      = "Total Qty"
	repairColRepairQty     = "Repair Qty"
	repairColRepairMinutes = "Repair Time (min)"
	repairColPctRepaired   = "% Repaired"
	repairColRepairReason  = "Reason for Repair"
	repairColRecutQty      = "Recut Qty"
	repairColRecutReason   = "Reason for Recut"
	repairColFailQty       = "Fail Qty"
	repairColFailReason    = "Reason for Fail"
	repairColReasonCode    = "Reason Code"
	repairColManager       = "Manager"
	repairColSMO           = "SMO/PA"
	repairColCMO           = "CMO"
)

const (
	recutColCode         = "CODE"
	recutColSKU          = "SKU"
	recutColMaterial     = "Material"
	recutColCutLength    = "Cut/Length"
	recutColQty          = "QTY"
	recutColOperator     = "Operator/Order#"
	recutColOrderNumber  = "Order#"
	recutColDocumentNo   = "Document_No"
	recutColPA           = "PA"
	recutColDate         = "Date"
	recutColDueDate      = "Due Date"
	recutColOnList       = "On list"
	recutColDone         = "Done"
	recutColScrap        = "scrap?"
	recutColRecut        = "RECUT?"
	recutColFailed       = "FAILED?"
	recutColQtyFailed    = "QTY Failed"
	recutColDateScrapped = "Date Scrapped"
)

// LoadStats counts what ingestion kept and dropped, as a data-quality signal.
type LoadStats struct {
	RowsRead       int
	Loaded         int
	DroppedNoDate  int
	DroppedNoQty   int
	UnknownCodes   int
	UnresolvedSKUs int
}

func (s LoadStats) String() string {
	return fmt.Sprintf("rows=%d loaded=%d dropped_no_date=%d dropped_no_qty=%d unknown_codes=%d unresolved_skus=%d",
		s.RowsRead, s.Loaded, s.DroppedNoDate, s.DroppedNoQty, s.UnknownCodes, s.UnresolvedSKUs)
}

// LoadRepairsFile reads a Sewing Repairs CSV export.
func LoadRepairsFile(path string, tables *Tables) ([]RepairRecord, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open repairs csv: %w", err)
	}
	defer f.Close()
	return ReadRepairs(f, tables)
}

// LoadRecutsFile reads a Recut List CSV export.
func LoadRecutsFile(path string, tables *Tables) ([]RecutRecord, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open recuts csv: %w", err)
	}
	defer f.Close()
	return ReadRecuts(f, tables)
}

// ReadRepairs parses Sewing Repairs rows, applies normalization and
// classification, and filters rows that carry no usable data: unparseable
// date, or zero across all three quantity columns.
func ReadRepairs(r io.Reader, tables *Tables) ([]RepairRecord, LoadStats, error) {
	rows, header, err := readSheet(r)
	if err != nil {
		return nil, LoadStats{}, err
	}

	var stats LoadStats
	var records []RepairRecord
	for _, row := range rows {
		stats.RowsRead++
		cell := func(col string) string { return header.get(row, col) }

		date, ok := parseSheetDate(cell(repairColDate))
		if !ok {
			stats.DroppedNoDate++
			continue
		}

		rec := RepairRecord{
			Date:          date,
			Discovered:    NormalizeDetection(cell(repairColDiscovered)),
			SKU:           strings.TrimSpace(cell(repairColSKU)),
			PRNumber:      strings.TrimSpace(cell(repairColPRNumber)),
			TotalQty:      parseQty(cell(repairColTotalQty)),
			RepairQty:     parseQty(cell(repairColRepairQty)),
			RepairMinutes: parseQty(cell(repairColRepairMinutes)),
			PctRepaired:   parseFloat(cell(repairColPctRepaired)),
			RepairReason:  strings.TrimSpace(cell(repairColRepairReason)),
			RecutQty:      parseQty(cell(repairColRecutQty)),
			RecutReason:   strings.TrimSpace(cell(repairColRecutReason)),
			FailQty:       parseQty(cell(repairColFailQty)),
			FailReason:    strings.TrimSpace(cell(repairColFailReason)),
			ReasonCode:    strings.TrimSpace(cell(repairColReasonCode)),
			Manager:       NormalizeName(cell(repairColManager)),
			SMO:           NormalizeOperatorName(cell(repairColSMO)),
			CMO:           NormalizeName(cell(repairColCMO)),
		}

		if rec.RepairQty == 0 && rec.RecutQty == 0 && rec.FailQty == 0 {
			stats.DroppedNoQty++
			continue
		}

		rec.ErrorSource = tables.ClassifyRepairCode(rec.ReasonCode)
		if rec.ErrorSource == OtherError || rec.ErrorSource == UnknownError {
			stats.UnknownCodes++
		}
		rec.ParentSKU = tables.ParentSKU(rec.SKU)
		if rec.ParentSKU == "" {
			stats.UnresolvedSKUs++
		}

		records = append(records, rec)
		stats.Loaded++
	}

	return records, stats, nil
}

// ReadRecuts parses Recut List rows. Rows without a date or with a
// non-positive piece count are dropped.
func ReadRecuts(r io.Reader, tables *Tables) ([]RecutRecord, LoadStats, error) {
	rows, header, err := readSheet(r)
	if err != nil {
		return nil, LoadStats{}, err
	}

	var stats LoadStats
	var records []RecutRecord
	for _, row := range rows {
		stats.RowsRead++
		cell := func(col string) string { return header.get(row, col) }

		date, ok := parseSheetDate(cell(recutColDate))
		if !ok {
			stats.DroppedNoDate++
			continue
		}

		rec := RecutRecord{
			Code:        strings.TrimSpace(cell(recutColCode)),
			SKU:         strings.TrimSpace(cell(recutColSKU)),
			Material:    strings.TrimSpace(cell(recutColMaterial)),
			CutLength:   strings.TrimSpace(cell(recutColCutLength)),
			Qty:         parseQty(cell(recutColQty)),
			Operator:    NormalizeName(cell(recutColOperator)),
			OrderNumber: strings.TrimSpace(cell(recutColOrderNumber)),
			DocumentNo:  strings.TrimSpace(cell(recutColDocumentNo)),
			PA:          NormalizeName(cell(recutColPA)),
			Date:        date,
			OnList:      ParseFlag(cell(recutColOnList)),
			Done:        ParseFlag(cell(recutColDone)),
			Scrap:       ParseFlag(cell(recutColScrap)),
			Recut:       ParseFlag(cell(recutColRecut)),
			Failed:      ParseFlag(cell(recutColFailed)),
			QtyFailed:   parseQty(cell(recutColQtyFailed)),
		}
		if due, ok := parseSheetDate(cell(recutColDueDate)); ok {
			rec.DueDate = due
		}
		if scrapped, ok := parseSheetDate(cell(recutColDateScrapped)); ok {
			rec.DateScrapped = scrapped
		}

		if rec.Qty <= 0 {
			stats.DroppedNoQty++
			continue
		}

		rec.ErrorSource = tables.ClassifyRecutCode(rec.Code)
		if rec.ErrorSource == OtherError || rec.ErrorSource == UnknownError {
			stats.UnknownCodes++
		}
		rec.ParentSKU = tables.ParentSKU(rec.SKU)
		if rec.ParentSKU == "" {
			stats.UnresolvedSKUs++
		}

		records = append(records, rec)
		stats.Loaded++
	}

	return records, stats, nil
}

// sheetHeader maps column names to indexes. Missing columns report -1.
type sheetHeader map[string]int

func (h sheetHeader) get(row []string, col string) string {
	idx, ok := h[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func readSheet(r io.Reader) ([][]string, sheetHeader, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports often have ragged trailing cells
	reader.LazyQuotes = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty sheet")
	}

	header := make(sheetHeader, len(all[0]))
	for i, name := range all[0] {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := header[name]; dup {
			log.Printf("ingest duplicate column %q, keeping first", name)
			continue
		}
		header[name] = i
	}
	return all[1:], header, nil
}

// sheetDateLayouts covers the formats the tracker exports produce.
var sheetDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"2006-01-02T15:04:05Z07:00",
}

func parseSheetDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range sheetDateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseQty coerces a numeric cell to an int, zero-filling anything that does
// not parse. Spreadsheet exports frequently render counts as "3.0".
func parseQty(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func parseFloat(raw string) float64 {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
