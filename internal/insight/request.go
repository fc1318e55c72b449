package insight

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/faheemframes/healthyfi/internal/domain"
)

const (
	notSpecified = "Not specified"
	notSet       = "Not set"
	defaultGoal  = string(domain.GoalMaintain)

	systemPrompt = "You are a helpful nutrition expert providing personalized health tips."
)

// InsightInput is everything known about the user when tips are requested.
// Profile may be nil.
type InsightInput struct {
	CalorieIntake float64
	WaterIntake   float64
	Profile       *domain.Profile
}

// InsightContext is the narrative context with every optional field already
// replaced by a readable placeholder.
type InsightContext struct {
	CalorieIntake string `json:"calorie_intake"`
	WaterIntake   string `json:"water_intake"`
	CalorieGoal   string `json:"calorie_goal"`
	WaterGoalML   string `json:"water_goal_ml"`
	GoalType      string `json:"goal_type"`
	Goal          string `json:"goal"`
	BMI           string `json:"bmi"`
	Age           string `json:"age"`
	Gender        string `json:"gender"`
	ActivityLevel string `json:"activity_level"`
}

// InsightRequest is the outbound chat request for the AI collaborator.
type InsightRequest struct {
	System  string
	Prompt  string
	Context InsightContext
}

// BuildInsightRequest assembles the prompt. It never omits a profile line.
func BuildInsightRequest(in InsightInput) InsightRequest {
	ctx := buildContext(in)
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "You are a nutrition expert. Based on the user's daily intake and profile:\n")
	fmt.Fprintf(sb, "- Total calories: %s kcal (Goal: %s)\n", ctx.CalorieIntake, withUnit(ctx.CalorieGoal, " kcal"))
	fmt.Fprintf(sb, "- Total water: %sml (Goal: %sml)\n", ctx.WaterIntake, ctx.WaterGoalML)
	fmt.Fprintf(sb, "- Weight goal: %s\n", ctx.GoalType)
	sb.WriteString("\nUser Profile:\n")
	fmt.Fprintf(sb, "- BMI: %s\n", ctx.BMI)
	fmt.Fprintf(sb, "- Age: %s\n", ctx.Age)
	fmt.Fprintf(sb, "- Gender: %s\n", ctx.Gender)
	fmt.Fprintf(sb, "- Activity Level: %s\n", ctx.ActivityLevel)
	fmt.Fprintf(sb, "- Goal: %s\n", ctx.Goal)
	fmt.Fprintf(sb, "- Daily Calorie Goal: %s\n", withUnit(ctx.CalorieGoal, " kcal"))
	fmt.Fprintf(sb, "- Daily Water Goal: %sml\n", ctx.WaterGoalML)
	fmt.Fprintf(sb, `
Provide 3 personalized, actionable health tips to improve their diet and hydration. Keep each tip concise (1-2 sentences). Focus on:
1. Calorie balance analysis based on their goal (%s weight)
2. Hydration assessment and recommendations
3. One specific nutrition habit based on their BMI and goals

Make suggestions specific to their profile data and current intake. Be encouraging and practical.

Format as a JSON array of strings.`, ctx.GoalType)
	return InsightRequest{System: systemPrompt, Prompt: sb.String(), Context: ctx}
}

func buildContext(in InsightInput) InsightContext {
	ctx := InsightContext{
		CalorieIntake: formatNumber(in.CalorieIntake),
		WaterIntake:   formatNumber(in.WaterIntake),
		CalorieGoal:   notSet,
		WaterGoalML:   formatNumber(domain.DefaultWaterGoalML),
		GoalType:      defaultGoal,
		Goal:          notSpecified,
		BMI:           notSpecified,
		Age:           notSpecified,
		Gender:        notSpecified,
		ActivityLevel: notSpecified,
	}
	p := in.Profile
	if p == nil {
		return ctx
	}
	goals := p.Goals()
	if goals.DailyCalorieGoal != nil {
		ctx.CalorieGoal = formatNumber(*goals.DailyCalorieGoal)
	}
	ctx.WaterGoalML = formatNumber(goals.DailyWaterGoalML)
	if goal := p.ResolvedGoal(); goal != "" {
		ctx.GoalType = goal
		ctx.Goal = humanize(goal)
	}
	if reading := ReadBMI(p.Body()); reading != nil {
		ctx.BMI = fmt.Sprintf("%.1f (%s)", reading.Value, reading.Category)
	}
	if p.Age != nil && *p.Age > 0 {
		ctx.Age = strconv.Itoa(*p.Age)
	}
	if p.Gender != nil && strings.TrimSpace(*p.Gender) != "" {
		ctx.Gender = humanize(*p.Gender)
	}
	if p.ActivityLevel != nil && strings.TrimSpace(*p.ActivityLevel) != "" {
		ctx.ActivityLevel = humanize(*p.ActivityLevel)
	}
	return ctx
}

// humanize turns stored enum values such as "lightly_active" into labels.
func humanize(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
	return cases.Title(language.English).String(s)
}

func withUnit(v, unit string) string {
	if v == notSet || v == notSpecified {
		return v
	}
	return v + unit
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
