package main

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "reworkbot-test.db")
	db, err := InitDB(dbPath)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepairRecordsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

	records := []RepairRecord{
		{
			Date:          base,
			Discovered:    DetectedAtSewing,
			SKU:           "AC-ESE-BK",
			ParentSKU:     "AC-ESE",
			PRNumber:      "PR100",
			TotalQty:      10,
			RepairQty:     3,
			RepairMinutes: 45,
			PctRepaired:   100,
			RepairReason:  "loose stitch",
			ReasonCode:    "S2",
			ErrorSource:   SewingOperatorError,
			Manager:       "Maria Garcia",
			SMO:           "JFernandez",
		},
		{
			Date:        base.AddDate(0, 0, 2),
			Discovered:  DetectedAtQC,
			SKU:         "PC-F20-BK-LG",
			ParentSKU:   "PC-F20-LG",
			RecutQty:    2,
			FailQty:     1,
			ReasonCode:  "A1Z",
			ErrorSource: CuttingMachineError,
		},
	}
	inserted, err := InsertRepairRecords(db, records)
	if err != nil {
		t.Fatalf("InsertRepairRecords failed: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected inserted=2, got %d", inserted)
	}

	got, err := GetRepairsByDateRange(db, base, base.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("GetRepairsByDateRange failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ErrorSource != SewingOperatorError || got[0].SMO != "JFernandez" {
		t.Errorf("first record did not round-trip: %+v", got[0])
	}
	if got[1].ParentSKU != "PC-F20-LG" || got[1].RecutQty != 2 {
		t.Errorf("second record did not round-trip: %+v", got[1])
	}

	// Range end is exclusive.
	got, err = GetRepairsByDateRange(db, base, base.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("GetRepairsByDateRange failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exclusive range end, got %d records", len(got))
	}
}

func TestRecutRecordsRoundTripNullDates(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

	records := []RecutRecord{
		{
			Code:        "F: Material Cut Too Short",
			ErrorSource: CuttingOperatorError,
			SKU:         "AC-ESE-BK",
			ParentSKU:   "AC-ESE",
			Material:    "Canvas",
			Qty:         4,
			Date:        base,
			DueDate:     base.AddDate(0, 0, 7),
			OnList:      true,
			Recut:       true,
		},
		{
			Code:         "D",
			ErrorSource:  MaterialDefect,
			SKU:          "PC-F20-BK-LG",
			ParentSKU:    "PC-F20-LG",
			Qty:          2,
			Date:         base.AddDate(0, 0, 1),
			Scrap:        true,
			Failed:       true,
			QtyFailed:    2,
			DateScrapped: base.AddDate(0, 0, 2),
		},
	}
	if _, err := InsertRecutRecords(db, records); err != nil {
		t.Fatalf("InsertRecutRecords failed: %v", err)
	}

	got, err := GetRecutsByDateRange(db, base, base.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("GetRecutsByDateRange failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	r := got[0]
	if r.DueDate.IsZero() {
		t.Errorf("expected due date to survive, got zero")
	}
	if !r.DateScrapped.IsZero() {
		t.Errorf("expected NULL scrap date to scan as zero time, got %v", r.DateScrapped)
	}
	if !r.OnList || !r.Recut || r.Scrap {
		t.Errorf("flags did not round-trip: %+v", r)
	}

	r = got[1]
	if !r.DueDate.IsZero() {
		t.Errorf("expected NULL due date to scan as zero time, got %v", r.DueDate)
	}
	if r.DateScrapped.IsZero() {
		t.Errorf("expected scrap date to survive")
	}
	if !r.Scrap || !r.Failed || r.QtyFailed != 2 {
		t.Errorf("flags did not round-trip: %+v", r)
	}
}

func TestInsertEmptySlices(t *testing.T) {
	db := newTestDB(t)
	if n, err := InsertRepairRecords(db, nil); err != nil || n != 0 {
		t.Fatalf("InsertRepairRecords(nil) = %d, %v", n, err)
	}
	if n, err := InsertRecutRecords(db, nil); err != nil || n != 0 {
		t.Fatalf("InsertRecutRecords(nil) = %d, %v", n, err)
	}
}

func TestCountRecords(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

	if _, err := InsertRepairRecords(db, []RepairRecord{{Date: base, RepairQty: 1}}); err != nil {
		t.Fatalf("InsertRepairRecords failed: %v", err)
	}
	if _, err := InsertRecutRecords(db, []RecutRecord{{Date: base, Qty: 1}, {Date: base, Qty: 2}}); err != nil {
		t.Fatalf("InsertRecutRecords failed: %v", err)
	}

	repairs, recuts, err := CountRecords(db)
	if err != nil {
		t.Fatalf("CountRecords failed: %v", err)
	}
	if repairs != 1 || recuts != 2 {
		t.Fatalf("expected 1 repair and 2 recuts, got %d and %d", repairs, recuts)
	}
}
