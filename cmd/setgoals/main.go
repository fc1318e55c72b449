package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/faheemframes/healthyfi/internal/adapter/repo"
	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/infra"
	"github.com/faheemframes/healthyfi/internal/service"
)

func main() {
	var (
		idFlag       string
		calorieFlag  float64
		waterFlag    float64
		goalFlag     string
		activityFlag string
	)

	flag.StringVar(&idFlag, "id", "", "user ID to update (UUID)")
	flag.Float64Var(&calorieFlag, "calories", 0, "daily calorie goal in kcal (<=0 keeps current value)")
	flag.Float64Var(&waterFlag, "water", 0, "daily water goal in ml (<=0 keeps current value)")
	flag.StringVar(&goalFlag, "goal", "", "weight goal (lose_weight, maintain, gain_weight, build_muscle)")
	flag.StringVar(&activityFlag, "activity", "", "activity level (sedentary ... extremely_active)")
	flag.Parse()

	_ = godotenv.Load()

	userID := strings.TrimSpace(idFlag)
	if _, err := uuid.Parse(userID); err != nil {
		exitWithError(errors.New("-id must be a user UUID"))
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli", os.Getenv("LOG_LEVEL")).With().Str("cmd", "setgoals").Logger()
	profiles := service.NewProfileService(repo.NewProfileRepository(infra.NewSQLRunner(pool, logger)))

	current, err := profiles.Load(ctx, userID)
	if err != nil {
		exitWithError(fmt.Errorf("failed to load profile: %w", err))
	}
	p := domain.Profile{UserID: userID}
	if current != nil {
		p = *current
		if p.Goal == nil && p.GoalType != nil {
			goal := p.ResolvedGoal()
			p.Goal = &goal
		}
	}
	if calorieFlag > 0 {
		p.DailyCalorieGoal = &calorieFlag
	}
	if waterFlag > 0 {
		p.DailyWaterGoalML = &waterFlag
	}
	if v := strings.TrimSpace(goalFlag); v != "" {
		p.Goal = &v
	}
	if v := strings.TrimSpace(activityFlag); v != "" {
		p.ActivityLevel = &v
	}

	saved, err := profiles.Save(ctx, domain.SessionContext{UserID: userID}, p)
	if err != nil {
		exitWithError(fmt.Errorf("failed to save profile: %w", err))
	}

	goals := saved.Goals()
	fmt.Printf("User %s goals updated (profile %s)\n", saved.UserID, domain.StatusOf(saved))
	if goals.DailyCalorieGoal != nil {
		fmt.Printf("daily_calorie_goal=%v\n", *goals.DailyCalorieGoal)
	}
	fmt.Printf("daily_water_goal_ml=%v\n", goals.DailyWaterGoalML)
	if goal := saved.ResolvedGoal(); goal != "" {
		fmt.Printf("goal=%s\n", goal)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
