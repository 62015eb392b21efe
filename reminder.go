package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

var dayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// StartIngestReminder posts a weekly reminder to the report channel to
// export and ingest the rework tracker before the Monday report runs.
func StartIngestReminder(cfg Config, api *slack.Client) {
	if cfg.ReportChannelID == "" {
		log.Println("No report_channel_id configured, ingest reminder disabled")
		return
	}

	weekday, ok := dayMap[strings.ToLower(cfg.ReminderDay)]
	if !ok {
		log.Printf("Invalid reminder_day '%s', using Friday", cfg.ReminderDay)
		weekday = time.Friday
	}

	hour, min, err := parseClock(cfg.ReminderTime)
	if err != nil {
		log.Printf("Invalid reminder_time '%s': %v, using 14:00", cfg.ReminderTime, err)
		hour, min = 14, 0
	}

	log.Printf("Ingest reminder scheduled every %s at %02d:%02d", weekday, hour, min)

	go func() {
		for {
			now := time.Now().In(cfg.Location)
			next := nextWeekday(now, weekday, hour, min)
			wait := next.Sub(now)
			log.Printf("Next ingest reminder at %s (in %s)", next.Format("Mon Jan 2 15:04"), wait.Round(time.Minute))

			time.Sleep(wait)
			sendIngestReminder(api, cfg)
		}
	}()
}

func nextWeekday(now time.Time, day time.Weekday, hour, min int) time.Time {
	daysUntil := (day - now.Weekday() + 7) % 7
	if daysUntil == 0 {
		target := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if now.Before(target) {
			return target
		}
		daysUntil = 7
	}
	return time.Date(now.Year(), now.Month(), now.Day()+int(daysUntil), hour, min, 0, 0, now.Location())
}

func sendIngestReminder(api *slack.Client, cfg Config) {
	monday, nextMonday := CurrentWeekRange(cfg.Location)
	msg := fmt.Sprintf(
		"Friendly reminder to export this week's rework tracker (%s - %s) and ingest it:\n"+
			"`reworkbot -repairs sewing_repairs.csv -recuts recut_list.csv`",
		monday.Format("Jan 2"), nextMonday.AddDate(0, 0, -1).Format("Jan 2"),
	)

	if err := PostMessage(api, cfg, msg); err != nil {
		log.Printf("Error sending ingest reminder: %v", err)
	} else {
		log.Printf("Sent ingest reminder to %s", cfg.ReportChannelID)
	}
}
