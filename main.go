package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	"github.com/slack-go/slack"
)

func main() {
	repairsPath := flag.String("repairs", "", "Sewing Repairs CSV export to ingest")
	recutsPath := flag.String("recuts", "", "Recut List CSV export to ingest")
	reportOnce := flag.Bool("report", false, "Generate one report and exit")
	reportWeek := flag.String("week", "", "Report week start (YYYYMMDD, default: current report week)")
	flag.Parse()

	cfg := LoadConfig()

	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()

	if *repairsPath != "" || *recutsPath != "" {
		ingest(cfg, db, *repairsPath, *recutsPath)
		return
	}

	if *reportOnce {
		weekStart := resolveReportWeek(cfg, *reportWeek)
		path, headline, err := GenerateWeeklyReport(cfg, db, weekStart)
		if err != nil {
			log.Fatalf("Report error: %v", err)
		}
		log.Printf("%s", headline)
		log.Printf("Report written to %s", path)
		return
	}

	if !cfg.SlackConfigured() {
		log.Fatalf("slack_bot_token and report_channel_id are required to run the bot (use -repairs/-recuts or -report for one-shot modes)")
	}

	os.MkdirAll(cfg.ReportOutputDir, 0755)
	api := slack.New(cfg.SlackBotToken)

	log.Println("Starting Rework Report Bot...")
	StartIngestReminder(cfg, api)
	StartReportScheduler(cfg, db, api)

	select {} // schedulers run in goroutines
}

func ingest(cfg Config, db *sql.DB, repairsPath, recutsPath string) {
	tables := cfg.Tables()

	if repairsPath != "" {
		records, stats, err := LoadRepairsFile(repairsPath, tables)
		if err != nil {
			log.Fatalf("Failed to load repairs: %v", err)
		}
		inserted, err := InsertRepairRecords(db, records)
		if err != nil {
			log.Fatalf("Failed to store repairs (inserted %d): %v", inserted, err)
		}
		log.Printf("ingest repairs file=%s %s inserted=%d", repairsPath, stats, inserted)
	}

	if recutsPath != "" {
		records, stats, err := LoadRecutsFile(recutsPath, tables)
		if err != nil {
			log.Fatalf("Failed to load recuts: %v", err)
		}
		inserted, err := InsertRecutRecords(db, records)
		if err != nil {
			log.Fatalf("Failed to store recuts (inserted %d): %v", inserted, err)
		}
		log.Printf("ingest recuts file=%s %s inserted=%d", recutsPath, stats, inserted)
	}

	repairs, recuts, err := CountRecords(db)
	if err == nil {
		log.Printf("ingest done total_repairs=%d total_recuts=%d", repairs, recuts)
	}
}

func resolveReportWeek(cfg Config, week string) time.Time {
	if week == "" {
		start, _ := ReportWeekRange(cfg, time.Now().In(cfg.Location))
		return start
	}
	ts, err := time.ParseInLocation("20060102", week, cfg.Location)
	if err != nil {
		log.Fatalf("invalid -week '%s': %v", week, err)
	}
	start, _ := CurrentWeekRangeAt(ts)
	return start
}
