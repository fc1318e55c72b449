package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/insight"
)

// CommonMeals are the quick-add presets offered next to the meal form.
var CommonMeals = []domain.FoodItem{
	{Name: "Oatmeal Bowl", Calories: 300},
	{Name: "Grilled Chicken", Calories: 250},
	{Name: "Caesar Salad", Calories: 350},
	{Name: "Pasta Carbonara", Calories: 550},
	{Name: "Greek Yogurt", Calories: 150},
	{Name: "Protein Shake", Calories: 200},
	{Name: "Salmon Fillet", Calories: 400},
	{Name: "Veggie Wrap", Calories: 320},
}

const (
	maxMealCalories = 10000
	maxWaterML      = 10000
)

// IntakeService logs and lists meals and water for a session.
type IntakeService struct {
	meals domain.MealRepository
	water domain.WaterRepository
}

func NewIntakeService(meals domain.MealRepository, water domain.WaterRepository) *IntakeService {
	return &IntakeService{meals: meals, water: water}
}

// LogMeal stores a meal. A zero at means now.
func (s *IntakeService) LogMeal(ctx context.Context, sess domain.SessionContext, name string, calories int, at time.Time) (*domain.Meal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: meal name is required", domain.ErrInvalidInput)
	}
	if calories < 0 || calories > maxMealCalories {
		return nil, fmt.Errorf("%w: calories must be between 0 and %d", domain.ErrInvalidInput, maxMealCalories)
	}
	meal := &domain.Meal{UserID: sess.UserID, Name: name, Calories: calories, Time: at}
	if err := s.meals.Create(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// LogWater stores a water intake in millilitres. A zero at means now.
func (s *IntakeService) LogWater(ctx context.Context, sess domain.SessionContext, amountML int, at time.Time) (*domain.WaterIntake, error) {
	if amountML <= 0 || amountML > maxWaterML {
		return nil, fmt.Errorf("%w: amount_ml must be between 1 and %d", domain.ErrInvalidInput, maxWaterML)
	}
	intake := &domain.WaterIntake{UserID: sess.UserID, AmountML: amountML, Time: at}
	if err := s.water.Create(ctx, intake); err != nil {
		return nil, err
	}
	return intake, nil
}

// MealsToday lists meals since local midnight, newest first.
func (s *IntakeService) MealsToday(ctx context.Context, sess domain.SessionContext) ([]domain.Meal, error) {
	return s.meals.ListSince(ctx, sess.UserID, insight.StartOfDay(sess.Now()))
}

// WaterToday lists water intakes since local midnight, newest first.
func (s *IntakeService) WaterToday(ctx context.Context, sess domain.SessionContext) ([]domain.WaterIntake, error) {
	return s.water.ListSince(ctx, sess.UserID, insight.StartOfDay(sess.Now()))
}
