package main

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS repair_records (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		date           DATETIME NOT NULL,
		discovered     TEXT DEFAULT '',
		sku            TEXT DEFAULT '',
		parent_sku     TEXT DEFAULT '',
		pr_number      TEXT DEFAULT '',
		total_qty      INTEGER DEFAULT 0,
		repair_qty     INTEGER DEFAULT 0,
		repair_minutes INTEGER DEFAULT 0,
		pct_repaired   REAL DEFAULT 0,
		repair_reason  TEXT DEFAULT '',
		recut_qty      INTEGER DEFAULT 0,
		recut_reason   TEXT DEFAULT '',
		fail_qty       INTEGER DEFAULT 0,
		fail_reason    TEXT DEFAULT '',
		reason_code    TEXT DEFAULT '',
		error_source   TEXT NOT NULL DEFAULT 'Unknown',
		manager        TEXT DEFAULT '',
		smo            TEXT DEFAULT '',
		cmo            TEXT DEFAULT '',
		created_at     DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_repair_records_date ON repair_records(date);
	CREATE INDEX IF NOT EXISTS idx_repair_records_parent_sku ON repair_records(parent_sku);
	CREATE INDEX IF NOT EXISTS idx_repair_records_error_source ON repair_records(error_source);

	CREATE TABLE IF NOT EXISTS recut_records (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		code          TEXT DEFAULT '',
		error_source  TEXT NOT NULL DEFAULT 'Unknown',
		sku           TEXT DEFAULT '',
		parent_sku    TEXT DEFAULT '',
		material      TEXT DEFAULT '',
		cut_length    TEXT DEFAULT '',
		qty           INTEGER DEFAULT 0,
		operator      TEXT DEFAULT '',
		order_number  TEXT DEFAULT '',
		document_no   TEXT DEFAULT '',
		pa            TEXT DEFAULT '',
		date          DATETIME NOT NULL,
		due_date      DATETIME,
		on_list       INTEGER DEFAULT 0,
		done          INTEGER DEFAULT 0,
		scrap         INTEGER DEFAULT 0,
		recut         INTEGER DEFAULT 0,
		failed        INTEGER DEFAULT 0,
		qty_failed    INTEGER DEFAULT 0,
		date_scrapped DATETIME,
		created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_recut_records_date ON recut_records(date);
	CREATE INDEX IF NOT EXISTS idx_recut_records_parent_sku ON recut_records(parent_sku);
	CREATE INDEX IF NOT EXISTS idx_recut_records_error_source ON recut_records(error_source);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func InsertRepairRecords(db *sql.DB, records []RepairRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO repair_records
		 (date, discovered, sku, parent_sku, pr_number, total_qty, repair_qty, repair_minutes,
		  pct_repaired, repair_reason, recut_qty, recut_reason, fail_qty, fail_reason,
		  reason_code, error_source, manager, smo, cmo)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, r := range records {
		_, err := stmt.Exec(
			r.Date, r.Discovered, r.SKU, r.ParentSKU, r.PRNumber, r.TotalQty, r.RepairQty,
			r.RepairMinutes, r.PctRepaired, r.RepairReason, r.RecutQty, r.RecutReason,
			r.FailQty, r.FailReason, r.ReasonCode, string(r.ErrorSource), r.Manager, r.SMO, r.CMO,
		)
		if err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, tx.Commit()
}

func InsertRecutRecords(db *sql.DB, records []RecutRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO recut_records
		 (code, error_source, sku, parent_sku, material, cut_length, qty, operator,
		  order_number, document_no, pa, date, due_date, on_list, done, scrap, recut,
		  failed, qty_failed, date_scrapped)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, r := range records {
		_, err := stmt.Exec(
			r.Code, string(r.ErrorSource), r.SKU, r.ParentSKU, r.Material, r.CutLength,
			r.Qty, r.Operator, r.OrderNumber, r.DocumentNo, r.PA, r.Date,
			nullableTime(r.DueDate), r.OnList, r.Done, r.Scrap, r.Recut, r.Failed,
			r.QtyFailed, nullableTime(r.DateScrapped),
		)
		if err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, tx.Commit()
}

func GetRepairsByDateRange(db *sql.DB, from, to time.Time) ([]RepairRecord, error) {
	rows, err := db.Query(
		`SELECT id, date, discovered, sku, parent_sku, pr_number, total_qty, repair_qty,
		        repair_minutes, pct_repaired, repair_reason, recut_qty, recut_reason,
		        fail_qty, fail_reason, reason_code, error_source, manager, smo, cmo, created_at
		 FROM repair_records WHERE date >= ? AND date < ?
		 ORDER BY date, id`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []RepairRecord
	for rows.Next() {
		var r RepairRecord
		var src string
		err := rows.Scan(
			&r.ID, &r.Date, &r.Discovered, &r.SKU, &r.ParentSKU, &r.PRNumber, &r.TotalQty,
			&r.RepairQty, &r.RepairMinutes, &r.PctRepaired, &r.RepairReason, &r.RecutQty,
			&r.RecutReason, &r.FailQty, &r.FailReason, &r.ReasonCode, &src,
			&r.Manager, &r.SMO, &r.CMO, &r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		r.ErrorSource = ErrorSource(src)
		records = append(records, r)
	}
	return records, rows.Err()
}

func GetRecutsByDateRange(db *sql.DB, from, to time.Time) ([]RecutRecord, error) {
	rows, err := db.Query(
		`SELECT id, code, error_source, sku, parent_sku, material, cut_length, qty, operator,
		        order_number, document_no, pa, date, due_date, on_list, done, scrap, recut,
		        failed, qty_failed, date_scrapped, created_at
		 FROM recut_records WHERE date >= ? AND date < ?
		 ORDER BY date, id`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []RecutRecord
	for rows.Next() {
		var r RecutRecord
		var src string
		var due, scrapped sql.NullTime
		err := rows.Scan(
			&r.ID, &r.Code, &src, &r.SKU, &r.ParentSKU, &r.Material, &r.CutLength, &r.Qty,
			&r.Operator, &r.OrderNumber, &r.DocumentNo, &r.PA, &r.Date, &due, &r.OnList,
			&r.Done, &r.Scrap, &r.Recut, &r.Failed, &r.QtyFailed, &scrapped, &r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		r.ErrorSource = ErrorSource(src)
		if due.Valid {
			r.DueDate = due.Time
		}
		if scrapped.Valid {
			r.DateScrapped = scrapped.Time
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountRecords reports the total rows in both tables, used for ingest summaries.
func CountRecords(db *sql.DB) (repairs, recuts int, err error) {
	if err = db.QueryRow(`SELECT COUNT(*) FROM repair_records`).Scan(&repairs); err != nil {
		return 0, 0, err
	}
	if err = db.QueryRow(`SELECT COUNT(*) FROM recut_records`).Scan(&recuts); err != nil {
		return 0, 0, err
	}
	return repairs, recuts, nil
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
