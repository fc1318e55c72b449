package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidReminderType = errors.New("invalid reminder type")

type ReminderType string

const (
	ReminderWater ReminderType = "water"
	ReminderMeal  ReminderType = "meal"
	ReminderGoal  ReminderType = "goal"
)

func (r ReminderType) IsValid() bool {
	switch r {
	case ReminderWater, ReminderMeal, ReminderGoal:
		return true
	default:
		return false
	}
}

// Message is the canned text stored with a reminder of this type.
func (r ReminderType) Message() string {
	switch r {
	case ReminderWater:
		return "💧 Time to hydrate! Don't forget to drink water."
	case ReminderMeal:
		return "🍽️ Time for a healthy meal! Log your food to stay on track."
	case ReminderGoal:
		return "🎯 Check your daily progress! How are you doing with your goals?"
	default:
		return ""
	}
}

type ReminderStatus string

const (
	ReminderPending ReminderStatus = "pending"
	ReminderSent    ReminderStatus = "sent"
	ReminderFailed  ReminderStatus = "failed"
)

// Reminder is a stored row of the reminders table. Reminders are never dispatched.
type Reminder struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	Type          ReminderType   `json:"reminder_type"`
	Message       string         `json:"message"`
	ScheduledTime time.Time      `json:"scheduled_time"`
	SentAt        *time.Time     `json:"sent_at"`
	Status        ReminderStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (r Reminder) Validate() error {
	if !r.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidReminderType, r.Type)
	}
	if r.ScheduledTime.IsZero() {
		return errors.New("reminder scheduled_time is required")
	}
	return nil
}
