package domain

import (
	"strings"
	"time"
)

// DefaultWaterGoalML applies whenever a profile has no water goal.
const DefaultWaterGoalML = 2500

// ActivityLevel enumerates the activity levels offered during onboarding.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivityExtremelyActive:
		return true
	default:
		return false
	}
}

// GoalType enumerates weight goals.
type GoalType string

const (
	GoalLoseWeight  GoalType = "lose_weight"
	GoalMaintain    GoalType = "maintain"
	GoalGainWeight  GoalType = "gain_weight"
	GoalBuildMuscle GoalType = "build_muscle"
)

func (g GoalType) IsValid() bool {
	switch g {
	case GoalLoseWeight, GoalMaintain, GoalGainWeight, GoalBuildMuscle:
		return true
	default:
		return false
	}
}

// Profile is a row of user_profiles. Older rows carry goal_type instead of goal.
type Profile struct {
	UserID           string   `json:"user_id"`
	HeightCm         *float64 `json:"height_cm"`
	WeightKg         *float64 `json:"weight_kg"`
	Age              *int     `json:"age"`
	Gender           *string  `json:"gender"`
	ActivityLevel    *string  `json:"activity_level"`
	Goal             *string  `json:"goal"`
	GoalType         *string  `json:"goal_type,omitempty"`
	DailyCalorieGoal *float64 `json:"daily_calorie_goal"`
	DailyWaterGoalML *float64 `json:"daily_water_goal_ml"`
}

// ResolvedGoal returns goal, falling back to the legacy goal_type column.
func (p Profile) ResolvedGoal() string {
	if p.Goal != nil && strings.TrimSpace(*p.Goal) != "" {
		return strings.TrimSpace(*p.Goal)
	}
	if p.GoalType != nil {
		return strings.TrimSpace(*p.GoalType)
	}
	return ""
}

// Goals extracts the goal profile, applying the water default.
func (p Profile) Goals() GoalProfile {
	g := GoalProfile{DailyWaterGoalML: DefaultWaterGoalML}
	if p.DailyCalorieGoal != nil && *p.DailyCalorieGoal > 0 {
		v := *p.DailyCalorieGoal
		g.DailyCalorieGoal = &v
	}
	if p.DailyWaterGoalML != nil && *p.DailyWaterGoalML > 0 {
		g.DailyWaterGoalML = *p.DailyWaterGoalML
	}
	return g
}

// Body extracts the inputs used for BMI.
func (p Profile) Body() BodyMetricsInput {
	return BodyMetricsInput{HeightCm: p.HeightCm, WeightKg: p.WeightKg}
}

// GoalProfile holds daily targets. A nil calorie goal means "not set".
type GoalProfile struct {
	DailyCalorieGoal *float64 `json:"daily_calorie_goal"`
	DailyWaterGoalML float64  `json:"daily_water_goal_ml"`
}

// BodyMetricsInput holds the optional inputs for BMI.
type BodyMetricsInput struct {
	HeightCm *float64 `json:"height_cm"`
	WeightKg *float64 `json:"weight_kg"`
}

// ProfileStatus drives onboarding in the client.
type ProfileStatus string

const (
	ProfileMissing    ProfileStatus = "missing"
	ProfileIncomplete ProfileStatus = "incomplete"
	ProfileComplete   ProfileStatus = "complete"
)

// StatusOf reports whether a profile exists and has every onboarding field.
func StatusOf(p *Profile) ProfileStatus {
	if p == nil {
		return ProfileMissing
	}
	if !positive(p.HeightCm) || !positive(p.WeightKg) || p.Age == nil || *p.Age <= 0 ||
		blank(p.Gender) || blank(p.ActivityLevel) || p.ResolvedGoal() == "" {
		return ProfileIncomplete
	}
	return ProfileComplete
}

func positive(v *float64) bool { return v != nil && *v > 0 }

func blank(v *string) bool { return v == nil || strings.TrimSpace(*v) == "" }

// SessionContext carries the caller identity and profile snapshot into
// service operations for the lifetime of one request.
type SessionContext struct {
	UserID   string
	Profile  *Profile
	Location *time.Location
}

// Now returns the current time in the session's location.
func (s SessionContext) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}
