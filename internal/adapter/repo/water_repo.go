package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/faheemframes/healthyfi/internal/domain"
	"github.com/faheemframes/healthyfi/internal/infra"
	"github.com/faheemframes/healthyfi/internal/sqlinline"
)

// WaterRepositoryPG implements domain.WaterRepository backed by PostgreSQL.
type WaterRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewWaterRepository(sql infra.SQLExecutor) *WaterRepositoryPG {
	return &WaterRepositoryPG{sql: sql}
}

func (r *WaterRepositoryPG) Create(ctx context.Context, intake *domain.WaterIntake) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertWaterIntake, intake.UserID, intake.AmountML, optionalTime(intake.Time))
	if err := row.Scan(&intake.ID, &intake.Time); err != nil {
		return fmt.Errorf("insert water intake: %w", err)
	}
	return nil
}

func (r *WaterRepositoryPG) ListSince(ctx context.Context, userID string, since time.Time) ([]domain.WaterIntake, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListWaterIntakeSince, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list water intake: %w", err)
	}
	defer rows.Close()

	out := make([]domain.WaterIntake, 0)
	for rows.Next() {
		var w domain.WaterIntake
		if err := rows.Scan(&w.ID, &w.UserID, &w.AmountML, &w.Time); err != nil {
			return nil, fmt.Errorf("scan water intake: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list water intake: %w", err)
	}
	return out, nil
}

var _ domain.WaterRepository = (*WaterRepositoryPG)(nil)
