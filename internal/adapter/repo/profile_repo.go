package repo

import (
	"context"
	"fmt"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/infra"
	"github.com/faheemframes/healthyfi/internal/sqlinline"
)

// ProfileRepositoryPG implements domain.ProfileRepository backed by PostgreSQL.
type ProfileRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewProfileRepository(sql infra.SQLExecutor) *ProfileRepositoryPG {
	return &ProfileRepositoryPG{sql: sql}
}

// Get returns domain.ErrNotFound when the user has not onboarded yet.
func (r *ProfileRepositoryPG) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.sql.QueryRow(ctx, sqlinline.QSelectProfile, userID).Scan(
		&p.UserID,
		&p.HeightCm,
		&p.WeightKg,
		&p.Age,
		&p.Gender,
		&p.ActivityLevel,
		&p.Goal,
		&p.GoalType,
		&p.DailyCalorieGoal,
		&p.DailyWaterGoalML,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select profile: %w", err)
	}
	return &p, nil
}

// Upsert writes the profile keyed on user_id.
func (r *ProfileRepositoryPG) Upsert(ctx context.Context, p *domain.Profile) error {
	_, err := r.sql.Exec(ctx, sqlinline.QUpsertProfile,
		p.UserID,
		p.HeightCm,
		p.WeightKg,
		p.Age,
		deref(p.Gender),
		deref(p.ActivityLevel),
		deref(p.Goal),
		p.DailyCalorieGoal,
		p.DailyWaterGoalML,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ domain.ProfileRepository = (*ProfileRepositoryPG)(nil)
