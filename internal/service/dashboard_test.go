package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
)

var refNow = time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)

func at(daysAgo, hour int) time.Time {
	d := refNow.AddDate(0, 0, -daysAgo)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

func completeProfile() *domain.Profile {
	return &domain.Profile{
		UserID:           "u1",
		HeightCm:         ptr(170.0),
		WeightKg:         ptr(70.0),
		Age:              ptr(30),
		Gender:           ptr("female"),
		ActivityLevel:    ptr("moderately_active"),
		Goal:             ptr("maintain"),
		DailyCalorieGoal: ptr(2000.0),
	}
}

func newDashboard(meals *fakeMeals, water *fakeWater) *DashboardService {
	s := NewDashboardService(meals, water, insight.WeekdayOffset, zerolog.Nop())
	s.now = func() time.Time { return refNow }
	return s
}

func sampleMeals() *fakeMeals {
	return &fakeMeals{meals: []domain.Meal{
		{Name: "Oatmeal Bowl", Calories: 800, Time: at(0, 9)},
		{Name: "Pasta", Calories: 700, Time: at(0, 12)},
		{Name: "Salad", Calories: 600, Time: at(1, 19)},
		{Name: "Wrap", Calories: 500, Time: at(2, 13)},
		{Name: "Old", Calories: 900, Time: at(20, 13)},
	}}
}

func TestDashboardBuild(t *testing.T) {
	meals := sampleMeals()
	water := &fakeWater{intakes: []domain.WaterIntake{
		{AmountML: 1000, Time: at(0, 8)},
		{AmountML: 500, Time: at(1, 8)},
	}}
	d := newDashboard(meals, water).Build(context.Background(), domain.SessionContext{UserID: "u1", Profile: completeProfile(), Location: time.UTC})

	if len(d.Failures) != 0 {
		t.Fatalf("Failures = %+v", d.Failures)
	}
	if d.Calories.Today != 1500 {
		t.Fatalf("Calories.Today = %v, want 1500", d.Calories.Today)
	}
	if d.Calories.Progress.Display != 75 || d.Calories.Progress.Tier != insight.TierBlue {
		t.Fatalf("calorie progress = %+v", d.Calories.Progress)
	}
	if d.Water.Today != 1000 || d.Water.Progress.Display != 40 || d.Water.Progress.Tier != insight.TierRed {
		t.Fatalf("water = %+v", d.Water)
	}
	if want := 2600.0 / 7; math.Abs(d.Calories.WeeklyAverage-want) > 1e-9 {
		t.Fatalf("Calories.WeeklyAverage = %v, want %v", d.Calories.WeeklyAverage, want)
	}
	if d.Streak != 3 {
		t.Fatalf("Streak = %d, want 3", d.Streak)
	}
	if d.BMI == nil || d.BMI.Value != 24.2 || d.BMI.Category != insight.Normal {
		t.Fatalf("BMI = %+v", d.BMI)
	}
	if d.ProfileStatus != domain.ProfileComplete {
		t.Fatalf("ProfileStatus = %q", d.ProfileStatus)
	}
	if len(d.Weekly) != 7 {
		t.Fatalf("len(Weekly) = %d", len(d.Weekly))
	}
	last := d.Weekly[6]
	if last.Day != "Thu" || last.Calories != 1500 || last.WaterML != 1000 {
		t.Fatalf("today bucket = %+v", last)
	}
	if d.Weekly[5].Calories != 600 || d.Weekly[5].WaterML != 500 || d.Weekly[4].Calories != 500 {
		t.Fatalf("weekly = %+v", d.Weekly)
	}
	if d.Weekly[0].Calories != 0 {
		t.Fatalf("records older than a week must not reach the chart: %+v", d.Weekly[0])
	}
	wantSince := insight.StartOfDay(refNow).AddDate(0, 0, -(StreakDays - 1))
	if !meals.since.Equal(wantSince) {
		t.Fatalf("meals fetched since %v, want %v", meals.since, wantSince)
	}
}

func TestDashboardMetricFailureIsIsolated(t *testing.T) {
	water := &fakeWater{err: errors.New("timeout")}
	d := newDashboard(sampleMeals(), water).Build(context.Background(), domain.SessionContext{UserID: "u1", Profile: completeProfile()})

	if len(d.Failures) != 1 || d.Failures[0].Metric != domain.MetricWaterML {
		t.Fatalf("Failures = %+v", d.Failures)
	}
	if d.Water.Today != 0 || d.Water.WeeklyAverage != 0 {
		t.Fatalf("water = %+v, want zeros", d.Water)
	}
	if d.Calories.Today != 1500 {
		t.Fatalf("Calories.Today = %v, want 1500", d.Calories.Today)
	}
}

func TestDashboardWithoutProfile(t *testing.T) {
	d := newDashboard(&fakeMeals{}, &fakeWater{}).Build(context.Background(), domain.SessionContext{UserID: "u1"})

	if d.ProfileStatus != domain.ProfileMissing {
		t.Fatalf("ProfileStatus = %q", d.ProfileStatus)
	}
	if d.BMI != nil {
		t.Fatalf("BMI = %+v, want nil", d.BMI)
	}
	if d.Calories.Progress.GoalSet || d.Calories.Progress.Display != 0 {
		t.Fatalf("calorie progress = %+v", d.Calories.Progress)
	}
	if d.Goals.DailyWaterGoalML != domain.DefaultWaterGoalML {
		t.Fatalf("water goal = %v", d.Goals.DailyWaterGoalML)
	}
	if d.Streak != 0 {
		t.Fatalf("Streak = %d", d.Streak)
	}
}

func TestDashboardUsesSessionLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	// 18:30 UTC on the 14th is already the 15th in Jakarta.
	meals := &fakeMeals{meals: []domain.Meal{{Calories: 400, Time: time.Date(2026, 10, 14, 18, 30, 0, 0, time.UTC)}}}
	d := newDashboard(meals, &fakeWater{}).Build(context.Background(), domain.SessionContext{UserID: "u1", Location: jakarta})

	if d.Calories.Today != 400 {
		t.Fatalf("Calories.Today = %v, want 400", d.Calories.Today)
	}
	if d.Date.Location() != jakarta || d.Date.Day() != 15 {
		t.Fatalf("Date = %v", d.Date)
	}
}
