package domain

import (
	"context"
	"time"
)

// MealRepository defines access to the meals table.
type MealRepository interface {
	Create(ctx context.Context, meal *Meal) error
	ListSince(ctx context.Context, userID string, since time.Time) ([]Meal, error)
}

// WaterRepository defines access to the water_intake table.
type WaterRepository interface {
	Create(ctx context.Context, intake *WaterIntake) error
	ListSince(ctx context.Context, userID string, since time.Time) ([]WaterIntake, error)
}

// ProfileRepository defines access to user_profiles. Get returns ErrNotFound
// when the user has no profile row yet.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
}

// ReminderRepository defines access to the reminders table.
type ReminderRepository interface {
	List(ctx context.Context, userID string) ([]Reminder, error)
	Create(ctx context.Context, reminder *Reminder) error
	Delete(ctx context.Context, userID, id string) error
}
