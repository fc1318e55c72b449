package insight

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/faheemframes/healthyfi/internal/domain"
)

// WindowDays is the size of the trailing weekly window.
const WindowDays = 7

// BucketMode selects how a record is assigned to a day of the window.
type BucketMode string

const (
	// WeekdayOffset indexes by weekday distance from today. A record 7 or
	// more days old that shares today's weekday lands in today's bucket.
	WeekdayOffset BucketMode = "weekday"
	// CalendarDays indexes by the calendar-day difference from today and
	// drops anything older than the window.
	CalendarDays BucketMode = "calendar"
)

// ParseBucketMode accepts "weekday" (default when empty) or "calendar".
func ParseBucketMode(s string) (BucketMode, error) {
	switch BucketMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", WeekdayOffset:
		return WeekdayOffset, nil
	case CalendarDays:
		return CalendarDays, nil
	default:
		return "", fmt.Errorf("unknown bucket mode %q", s)
	}
}

// WeekdayTag is the short label shown under a weekly bar.
func WeekdayTag(d time.Weekday) string {
	return d.String()[:3]
}

// StartOfDay returns local midnight of t in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// BucketWeek spreads records over the seven days ending today, oldest first.
// Every bucket is present even when empty.
func BucketWeek(today time.Time, mode BucketMode, records []domain.IntakeRecord) []domain.DayBucket {
	todayStart := StartOfDay(today)
	buckets := make([]domain.DayBucket, WindowDays)
	for i := range buckets {
		date := todayStart.AddDate(0, 0, i-(WindowDays-1))
		buckets[i] = domain.DayBucket{Day: WeekdayTag(date.Weekday()), Date: date}
	}
	for _, rec := range records {
		if !validRecord(rec) {
			continue
		}
		idx := dayOffset(todayStart, rec.Time.In(today.Location()), mode)
		if idx < 0 || idx >= WindowDays {
			continue
		}
		switch rec.Metric {
		case domain.MetricCalories:
			buckets[idx].Calories += rec.Value
		case domain.MetricWaterML:
			buckets[idx].WaterML += rec.Value
		}
	}
	return buckets
}

func dayOffset(todayStart, at time.Time, mode BucketMode) int {
	if mode == CalendarDays {
		return (WindowDays - 1) - daysBetween(StartOfDay(at), todayStart)
	}
	return (int(at.Weekday()) - int(todayStart.Weekday()) + WindowDays - 1) % WindowDays
}

// daysBetween counts calendar days from a to b, both at local midnight.
// Dates are compared in UTC so DST transitions do not shorten a day.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

func validRecord(rec domain.IntakeRecord) bool {
	if rec.Time.IsZero() {
		return false
	}
	return !math.IsNaN(rec.Value) && !math.IsInf(rec.Value, 0) && rec.Value >= 0
}
