package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/infra"
	"github.com/faheemframes/healthyfi/internal/sqlinline"
)

// MealRepositoryPG implements domain.MealRepository backed by PostgreSQL.
type MealRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewMealRepository creates a new MealRepositoryPG.
func NewMealRepository(sql infra.SQLExecutor) *MealRepositoryPG {
	return &MealRepositoryPG{sql: sql}
}

// Create inserts a meal and fills in its generated ID and timestamp.
// A zero Time is stored as now().
func (r *MealRepositoryPG) Create(ctx context.Context, meal *domain.Meal) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertMeal, meal.UserID, meal.Name, meal.Calories, optionalTime(meal.Time))
	if err := row.Scan(&meal.ID, &meal.Time); err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

// ListSince returns the user's meals logged at or after since, newest first.
func (r *MealRepositoryPG) ListSince(ctx context.Context, userID string, since time.Time) ([]domain.Meal, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListMealsSince, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	meals := make([]domain.Meal, 0)
	for rows.Next() {
		var m domain.Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Calories, &m.Time); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

var _ domain.MealRepository = (*MealRepositoryPG)(nil)
