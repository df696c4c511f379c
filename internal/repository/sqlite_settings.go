package repository

import (
	"context"
	"fmt"

	"github.com/szabadkai/quarterback/internal/db"
	"github.com/szabadkai/quarterback/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo over the single seeded
// plan_settings row.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.PlanSettings, error) {
	query := `SELECT current_quarter, num_engineers, pto_per_person, adhoc_reserve_pct,
		bug_reserve_pct, story_point_day_ratio, min_schedule_days
		FROM plan_settings WHERE id = 'default'`
	var s domain.PlanSettings
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.CurrentQuarter,
		&s.NumEngineers,
		&s.PTOPerPerson,
		&s.AdhocReservePct,
		&s.BugReservePct,
		&s.StoryPointDayRatio,
		&s.MinScheduleDays,
	)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Update(ctx context.Context, s *domain.PlanSettings) error {
	query := `UPDATE plan_settings SET current_quarter = ?, num_engineers = ?,
		pto_per_person = ?, adhoc_reserve_pct = ?, bug_reserve_pct = ?,
		story_point_day_ratio = ?, min_schedule_days = ?
		WHERE id = 'default'`
	_, err := r.db.ExecContext(ctx, query,
		s.CurrentQuarter,
		s.NumEngineers,
		s.PTOPerPerson,
		s.AdhocReservePct,
		s.BugReservePct,
		s.StoryPointDayRatio,
		s.MinScheduleDays,
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
