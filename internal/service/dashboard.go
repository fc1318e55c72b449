package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
)

// StreakDays is how far back the meal streak looks.
const StreakDays = 30

// MetricSummary is the today/weekly view of one intake metric.
type MetricSummary struct {
	Today         float64          `json:"today"`
	WeeklyAverage float64          `json:"weekly_average"`
	Progress      insight.Progress `json:"progress"`
}

// MetricFailure records a metric whose store read failed. The metric is
// reported as zero and the rest of the dashboard is still served.
type MetricFailure struct {
	Metric  domain.Metric `json:"metric"`
	Scope   string        `json:"scope"`
	Message string        `json:"message"`
}

type Dashboard struct {
	Date          time.Time            `json:"date"`
	Calories      MetricSummary        `json:"calories"`
	Water         MetricSummary        `json:"water"`
	Weekly        []domain.DayBucket   `json:"weekly"`
	BMI           *insight.BMIReading  `json:"bmi"`
	Streak        int                  `json:"streak"`
	Goals         domain.GoalProfile   `json:"goals"`
	ProfileStatus domain.ProfileStatus `json:"profile_status"`
	Failures      []MetricFailure      `json:"failures,omitempty"`
}

// DashboardService assembles the dashboard from the intake stores.
type DashboardService struct {
	meals  domain.MealRepository
	water  domain.WaterRepository
	mode   insight.BucketMode
	logger zerolog.Logger
	now    func() time.Time
}

func NewDashboardService(meals domain.MealRepository, water domain.WaterRepository, mode insight.BucketMode, logger zerolog.Logger) *DashboardService {
	return &DashboardService{meals: meals, water: water, mode: mode, logger: logger, now: time.Now}
}

// Build computes the dashboard for the session. Each metric is fetched on
// its own; a failure is recorded in Failures and never aborts the other.
func (s *DashboardService) Build(ctx context.Context, sess domain.SessionContext) *Dashboard {
	now := s.now()
	if sess.Location != nil {
		now = now.In(sess.Location)
	}
	weekAgo := insight.WeekAgo(now)
	streakStart := insight.StartOfDay(now).AddDate(0, 0, -(StreakDays - 1))

	var goals domain.GoalProfile
	if sess.Profile != nil {
		goals = sess.Profile.Goals()
	} else {
		goals = domain.Profile{}.Goals()
	}

	d := &Dashboard{
		Date:          insight.StartOfDay(now),
		Goals:         goals,
		ProfileStatus: domain.StatusOf(sess.Profile),
	}
	if sess.Profile != nil {
		d.BMI = insight.ReadBMI(sess.Profile.Body())
	}

	var calorieRecords, waterRecords []domain.IntakeRecord

	meals, err := s.meals.ListSince(ctx, sess.UserID, earliest(weekAgo, streakStart))
	if err != nil {
		d.Failures = append(d.Failures, s.fail(sess.UserID, domain.MetricCalories, "meals", err))
	} else {
		times := make([]time.Time, 0, len(meals))
		for _, m := range meals {
			calorieRecords = append(calorieRecords, m.Record())
			times = append(times, m.Time)
		}
		d.Streak = insight.Streak(now, times, StreakDays)
	}

	water, err := s.water.ListSince(ctx, sess.UserID, weekAgo)
	if err != nil {
		d.Failures = append(d.Failures, s.fail(sess.UserID, domain.MetricWaterML, "water_intake", err))
	} else {
		for _, w := range water {
			waterRecords = append(waterRecords, w.Record())
		}
	}

	calories := insight.SumToday(calorieRecords, now)
	waterToday := insight.SumToday(waterRecords, now)
	d.Calories = MetricSummary{
		Today:         calories,
		WeeklyAverage: insight.WeeklyAverage(calorieRecords, weekAgo),
		Progress:      insight.CalorieProgress(calories, goals),
	}
	d.Water = MetricSummary{
		Today:         waterToday,
		WeeklyAverage: insight.WeeklyAverage(waterRecords, weekAgo),
		Progress:      insight.WaterProgress(waterToday, goals),
	}

	weekly := append(since(calorieRecords, weekAgo), waterRecords...)
	d.Weekly = insight.BucketWeek(now, s.mode, weekly)
	return d
}

func (s *DashboardService) fail(userID string, metric domain.Metric, scope string, err error) MetricFailure {
	s.logger.Error().Err(err).Str("user_id", userID).Str("metric", string(metric)).Msg("dashboard metric fetch failed")
	return MetricFailure{Metric: metric, Scope: scope, Message: "could not load " + scope}
}

func since(records []domain.IntakeRecord, cutoff time.Time) []domain.IntakeRecord {
	out := make([]domain.IntakeRecord, 0, len(records))
	for _, r := range records {
		if !r.Time.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
