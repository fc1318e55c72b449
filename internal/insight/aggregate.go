package insight

import (
	"math"
	"time"

	"github.com/faheemframes/healthyfi/internal/domain"
)

// Tier is the colour band of a progress bar.
type Tier string

const (
	TierRed    Tier = "red"
	TierYellow Tier = "yellow"
	TierBlue   Tier = "blue"
	TierGreen  Tier = "green"
)

// TierFor maps a display percentage onto its colour band.
func TierFor(percent float64) Tier {
	switch {
	case percent >= 100:
		return TierGreen
	case percent >= 75:
		return TierBlue
	case percent >= 50:
		return TierYellow
	default:
		return TierRed
	}
}

// Progress is a goal-progress ratio. Raw is unclamped; Display is clamped to
// [0, 100] for progress bars.
type Progress struct {
	GoalSet bool    `json:"goal_set"`
	Goal    float64 `json:"goal"`
	Raw     float64 `json:"raw_percent"`
	Display float64 `json:"percent"`
	Tier    Tier    `json:"tier"`
}

// NewProgress computes total/goal*100. A missing or non-positive goal yields
// 0% with GoalSet false.
func NewProgress(total float64, goal *float64) Progress {
	if goal == nil || *goal <= 0 {
		return Progress{Tier: TierFor(0)}
	}
	raw := total / *goal * 100
	display := math.Min(math.Max(raw, 0), 100)
	return Progress{GoalSet: true, Goal: *goal, Raw: raw, Display: display, Tier: TierFor(display)}
}

// CalorieProgress has no numeric default: an unset goal is 0%.
func CalorieProgress(total float64, goals domain.GoalProfile) Progress {
	return NewProgress(total, goals.DailyCalorieGoal)
}

// WaterProgress falls back to the default water goal.
func WaterProgress(total float64, goals domain.GoalProfile) Progress {
	goal := goals.DailyWaterGoalML
	if goal <= 0 {
		goal = domain.DefaultWaterGoalML
	}
	return NewProgress(total, &goal)
}

// SumSince adds every valid record at or after since.
func SumSince(records []domain.IntakeRecord, since time.Time) float64 {
	var sum float64
	for _, rec := range records {
		if !validRecord(rec) || rec.Time.Before(since) {
			continue
		}
		sum += rec.Value
	}
	return sum
}

// SumToday adds the records logged since local midnight of today.
func SumToday(records []domain.IntakeRecord, today time.Time) float64 {
	return SumSince(records, StartOfDay(today))
}

// WeeklyAverage divides everything logged since the cutoff by seven,
// regardless of how many days have data.
func WeeklyAverage(records []domain.IntakeRecord, since time.Time) float64 {
	return SumSince(records, since) / WindowDays
}

// WeekAgo is the lower bound of the weekly store query: exactly seven days
// before now, not aligned to midnight.
func WeekAgo(now time.Time) time.Time {
	return now.AddDate(0, 0, -WindowDays)
}

// Streak counts consecutive days, ending today, with at least one record.
// It looks back at most maxDays days.
func Streak(today time.Time, times []time.Time, maxDays int) int {
	todayStart := StartOfDay(today)
	logged := make(map[int]struct{}, len(times))
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		logged[daysBetween(StartOfDay(t.In(today.Location())), todayStart)] = struct{}{}
	}
	streak := 0
	for i := 0; i < maxDays; i++ {
		if _, ok := logged[i]; !ok {
			break
		}
		streak++
	}
	return streak
}
