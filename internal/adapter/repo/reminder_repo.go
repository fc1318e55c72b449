package repo

import (
	"context"
	"fmt"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/infra"
	"github.com/faheemframes/healthyfi/internal/sqlinline"
)

// ReminderRepositoryPG implements domain.ReminderRepository backed by PostgreSQL.
type ReminderRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewReminderRepository(sql infra.SQLExecutor) *ReminderRepositoryPG {
	return &ReminderRepositoryPG{sql: sql}
}

// List returns the user's reminders ordered by scheduled time.
func (r *ReminderRepositoryPG) List(ctx context.Context, userID string) ([]domain.Reminder, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListReminders, userID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Reminder, 0)
	for rows.Next() {
		var (
			rem    domain.Reminder
			kind   string
			status string
		)
		if err := rows.Scan(&rem.ID, &rem.UserID, &kind, &rem.Message, &rem.ScheduledTime, &rem.SentAt, &status, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		rem.Type = domain.ReminderType(kind)
		rem.Status = domain.ReminderStatus(status)
		out = append(out, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return out, nil
}

// Create validates and stores a reminder. Status defaults to pending.
func (r *ReminderRepositoryPG) Create(ctx context.Context, rem *domain.Reminder) error {
	if rem.Status == "" {
		rem.Status = domain.ReminderPending
	}
	if err := rem.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertReminder, rem.UserID, string(rem.Type), rem.Message, rem.ScheduledTime, string(rem.Status))
	if err := row.Scan(&rem.ID, &rem.CreatedAt); err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

// Delete removes one of the user's reminders. Deleting another user's
// reminder reports domain.ErrNotFound.
func (r *ReminderRepositoryPG) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteReminder, id, userID)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.ReminderRepository = (*ReminderRepositoryPG)(nil)
