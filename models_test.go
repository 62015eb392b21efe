package main

import (
	"testing"
	"time"
)

func TestCurrentWeekRangeAt(t *testing.T) {
	loc := time.UTC
	cases := []struct {
		now  time.Time
		from string
		to   string
	}{
		// Wednesday.
		{time.Date(2026, 2, 11, 15, 0, 0, 0, loc), "20260209", "20260216"},
		// Monday maps to itself.
		{time.Date(2026, 2, 9, 0, 0, 0, 0, loc), "20260209", "20260216"},
		// Sunday belongs to the week that started the previous Monday.
		{time.Date(2026, 2, 15, 23, 0, 0, 0, loc), "20260209", "20260216"},
	}
	for _, tc := range cases {
		from, to := CurrentWeekRangeAt(tc.now)
		if from.Format("20060102") != tc.from || to.Format("20060102") != tc.to {
			t.Errorf("CurrentWeekRangeAt(%v) = %s -> %s, want %s -> %s",
				tc.now, from.Format("20060102"), to.Format("20060102"), tc.from, tc.to)
		}
	}
}

func TestReportWeekRangeMondayCutoff(t *testing.T) {
	loc := time.UTC
	cfg := Config{MondayCutoffTime: "12:00"}

	mondayMorning := time.Date(2026, 2, 9, 9, 0, 0, 0, loc)
	from, to := ReportWeekRange(cfg, mondayMorning)
	if from.Format("20060102") != "20260202" || to.Format("20060102") != "20260209" {
		t.Fatalf("expected previous week for Monday morning, got %s -> %s", from.Format("20060102"), to.Format("20060102"))
	}

	mondayAfternoon := time.Date(2026, 2, 9, 13, 0, 0, 0, loc)
	from, to = ReportWeekRange(cfg, mondayAfternoon)
	if from.Format("20060102") != "20260209" || to.Format("20060102") != "20260216" {
		t.Fatalf("expected current week for Monday afternoon, got %s -> %s", from.Format("20060102"), to.Format("20060102"))
	}

	tuesday := time.Date(2026, 2, 10, 9, 0, 0, 0, loc)
	from, _ = ReportWeekRange(cfg, tuesday)
	if from.Format("20060102") != "20260209" {
		t.Fatalf("cutoff must only apply on Mondays, got %s", from.Format("20060102"))
	}
}
