package weather

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ReferenceTimeZone is the zone used for "today" and for hour timestamps.
const ReferenceTimeZone = "Asia/Jerusalem"

// NormalizeForecast drops past days and, within the kept days, past hours.
//
// A day is kept when its calendar date in loc is today or later. An hour is kept
// when the day's midnight plus the HH part of its "HH:MM" label is not before now.
// The minutes part of the label is ignored, so "14:30" is treated as 14:00.
// Relative order is preserved and days left without hours are kept.
// The input is not modified.
func NormalizeForecast(f Forecast, now time.Time, loc *time.Location) (Forecast, error) {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	today := midnight(now, loc)

	var days []DailyForecast
	for _, day := range f.Days {
		dayStart := midnight(day.Date.In(loc), loc)
		if dayStart.Before(today) {
			continue
		}

		kept := day
		kept.Hours = nil
		for _, hour := range day.Hours {
			at, err := hourTimestamp(day, hour, loc)
			if err != nil {
				return Forecast{}, fmt.Errorf("day %s: %w", dayStart.Format(time.DateOnly), err)
			}
			if at.Before(now) {
				continue
			}
			kept.Hours = append(kept.Hours, hour)
		}
		days = append(days, kept)
	}

	return Forecast{Days: days}, nil
}

// hourTimestamp returns the instant an hourly entry refers to: the day's
// midnight in loc plus the HH part of the label.
func hourTimestamp(day DailyForecast, hour HourlyForecast, loc *time.Location) (time.Time, error) {
	hh, err := hourOf(hour.Hour)
	if err != nil {
		return time.Time{}, err
	}
	d := day.Date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), hh, 0, 0, 0, loc), nil
}

func midnight(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func hourOf(label string) (int, error) {
	hh, _, _ := strings.Cut(strings.TrimSpace(label), ":")
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 {
		return 0, fmt.Errorf("invalid hour label %q", label)
	}
	return h, nil
}
