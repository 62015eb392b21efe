package main

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

// GenerateWeeklyReport loads the report week's records, renders the report,
// asks for a narrative if an LLM is configured, and writes the file. It has
// no Slack dependency so the one-shot -report mode can call it too.
func GenerateWeeklyReport(cfg Config, db *sql.DB, weekStart time.Time) (path string, headline string, err error) {
	weekEnd := weekStart.AddDate(0, 0, 7)
	repairs, err := GetRepairsByDateRange(db, weekStart, weekEnd)
	if err != nil {
		return "", "", fmt.Errorf("loading repairs: %w", err)
	}
	recuts, err := GetRecutsByDateRange(db, weekStart, weekEnd)
	if err != nil {
		return "", "", fmt.Errorf("loading recuts: %w", err)
	}
	log.Printf("report week=%s repairs=%d recuts=%d", weekStart.Format("2006-01-02"), len(repairs), len(recuts))

	content := RenderWeeklyReport(cfg, repairs, recuts, weekStart)

	narrative, usage, llmErr := NarrativeSummary(cfg, content)
	if llmErr != nil {
		log.Printf("report narrative error (non-fatal): %v", llmErr)
	}
	if narrative != "" {
		content = narrative + "\n\n" + content
		log.Printf("report narrative tokens=%d", usage.TotalTokens())
	}

	path, err = WriteReportFile(content, cfg.ReportOutputDir, weekStart, cfg.TeamName)
	if err != nil {
		return "", "", fmt.Errorf("writing report file: %w", err)
	}

	totals := CalculateTotals(repairs, recuts)
	headline = fmt.Sprintf("%s rework report for week of %s: %d rework events, %d pieces recut, %.1f repair hrs",
		cfg.TeamName, weekStart.Format("Jan 2"), totals.TotalReworkEvents, totals.TotalRecutPieces, totals.TotalRepairHours)
	return path, headline, nil
}

// StartReportScheduler runs the weekly report on a 5-field cron expression
// (minute hour day-of-month month day-of-week), e.g. "0 8 * * 1" for Monday
// 8am, and posts the result to the report channel.
func StartReportScheduler(cfg Config, db *sql.DB, api *slack.Client) {
	schedule := strings.TrimSpace(cfg.ReportSchedule)
	if schedule == "" {
		log.Println("Scheduled reports disabled (report_schedule not set)")
		return
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		log.Printf("Invalid report_schedule '%s': %v, scheduled reports disabled", schedule, err)
		return
	}
	log.Printf("Weekly report scheduled (cron: %s)", schedule)

	go func() {
		for {
			now := time.Now().In(cfg.Location)
			next := sched.Next(now)
			wait := next.Sub(now)
			log.Printf("Next report at %s (in %s)", next.Format("Mon Jan 2 15:04"), wait.Round(time.Minute))

			time.Sleep(wait)

			weekStart, _ := ReportWeekRange(cfg, time.Now().In(cfg.Location))
			path, headline, genErr := GenerateWeeklyReport(cfg, db, weekStart)
			if genErr != nil {
				log.Printf("Scheduled report error: %v", genErr)
				continue
			}
			log.Printf("Scheduled report written: %s", path)

			if cfg.SlackConfigured() {
				if postErr := PostReport(api, cfg, path, headline); postErr != nil {
					log.Printf("Scheduled report post error: %v", postErr)
				}
			}
		}
	}()
}
