package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/faheemframes/healthyfi/internal/domain"
)

// ReminderService stores reminders. Nothing here ever delivers them.
type ReminderService struct {
	repo domain.ReminderRepository
}

func NewReminderService(repo domain.ReminderRepository) *ReminderService {
	return &ReminderService{repo: repo}
}

func (s *ReminderService) List(ctx context.Context, sess domain.SessionContext) ([]domain.Reminder, error) {
	return s.repo.List(ctx, sess.UserID)
}

// Schedule creates a pending reminder for today at clock ("HH:MM") in the
// session's location, carrying the type's canned message.
func (s *ReminderService) Schedule(ctx context.Context, sess domain.SessionContext, kind domain.ReminderType, clock string) (*domain.Reminder, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %w %q", domain.ErrInvalidInput, domain.ErrInvalidReminderType, kind)
	}
	at, err := TodayAt(sess.Now(), clock)
	if err != nil {
		return nil, err
	}
	rem := &domain.Reminder{
		UserID:        sess.UserID,
		Type:          kind,
		Message:       kind.Message(),
		ScheduledTime: at,
		Status:        domain.ReminderPending,
	}
	if err := s.repo.Create(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

func (s *ReminderService) Delete(ctx context.Context, sess domain.SessionContext, id string) error {
	return s.repo.Delete(ctx, sess.UserID, id)
}

// TodayAt places an "HH:MM" clock time on now's calendar date.
func TodayAt(now time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time must be HH:MM", domain.ErrInvalidInput)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}
