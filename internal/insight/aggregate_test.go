package insight

import (
	"math"
	"testing"
	"time"

	"github.com/faheemframes/healthyfi/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestNewProgressClampsDisplayButKeepsRaw(t *testing.T) {
	p := NewProgress(2500, ptr(2000.0))
	if p.Display != 100 {
		t.Fatalf("Display = %v, want 100", p.Display)
	}
	if p.Raw != 125 {
		t.Fatalf("Raw = %v, want 125", p.Raw)
	}
	if p.Tier != TierGreen {
		t.Fatalf("Tier = %q, want %q", p.Tier, TierGreen)
	}
}

func TestNewProgressWithoutGoal(t *testing.T) {
	for _, goal := range []*float64{nil, ptr(0.0), ptr(-10.0)} {
		p := NewProgress(1800, goal)
		if p.GoalSet || p.Raw != 0 || p.Display != 0 || p.Tier != TierRed {
			t.Fatalf("NewProgress(1800, %v) = %+v, want zero progress", goal, p)
		}
	}
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    Tier
	}{
		{0, TierRed},
		{49.99, TierRed},
		{50, TierYellow},
		{74.99, TierYellow},
		{75, TierBlue},
		{99.99, TierBlue},
		{100, TierGreen},
	}
	for _, tc := range tests {
		if got := TierFor(tc.percent); got != tc.want {
			t.Fatalf("TierFor(%v) = %q, want %q", tc.percent, got, tc.want)
		}
	}
}

func TestCalorieProgressDashboardScenario(t *testing.T) {
	goals := domain.GoalProfile{DailyCalorieGoal: ptr(2000.0), DailyWaterGoalML: domain.DefaultWaterGoalML}
	p := CalorieProgress(1500, goals)
	if p.Display != 75 {
		t.Fatalf("Display = %v, want 75", p.Display)
	}
	if p.Tier != TierBlue {
		t.Fatalf("Tier = %q, want %q", p.Tier, TierBlue)
	}
}

func TestWaterProgressDefaultsGoal(t *testing.T) {
	p := WaterProgress(1250, domain.GoalProfile{})
	if p.Goal != domain.DefaultWaterGoalML || p.Display != 50 {
		t.Fatalf("WaterProgress = %+v, want 50%% of default goal", p)
	}
}

func TestSumTodayAndWeeklyAverage(t *testing.T) {
	now := refToday
	records := []domain.IntakeRecord{
		cal(now.Add(-time.Hour), 600),
		cal(StartOfDay(now), 400),
		cal(StartOfDay(now).Add(-time.Minute), 700),
		cal(WeekAgo(now), 0),
		cal(WeekAgo(now).Add(-time.Second), 10000),
	}
	if got := SumToday(records, now); got != 1000 {
		t.Fatalf("SumToday = %v, want 1000", got)
	}
	// Always divided by seven even though only two days have data.
	if got, want := WeeklyAverage(records, WeekAgo(now)), 1700.0/7; math.Abs(got-want) > 1e-9 {
		t.Fatalf("WeeklyAverage = %v, want %v", got, want)
	}
}

func TestStreak(t *testing.T) {
	day := func(offset, hour int) time.Time {
		return time.Date(2026, 10, 15-offset, hour, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		name  string
		times []time.Time
		max   int
		want  int
	}{
		{name: "nothing logged", want: 0, max: 30},
		{name: "today only", times: []time.Time{day(0, 8)}, max: 30, want: 1},
		{name: "gap breaks streak", times: []time.Time{day(0, 8), day(1, 12), day(3, 9)}, max: 30, want: 2},
		{name: "missing today", times: []time.Time{day(1, 8), day(2, 8)}, max: 30, want: 0},
		{name: "capped", times: []time.Time{day(0, 1), day(1, 1), day(2, 1), day(3, 1)}, max: 3, want: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Streak(refToday, tc.times, tc.max); got != tc.want {
				t.Fatalf("Streak = %d, want %d", got, tc.want)
			}
		})
	}
}
