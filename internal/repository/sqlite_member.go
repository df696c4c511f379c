package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/szabadkai/quarterback/internal/db"
	"github.com/szabadkai/quarterback/internal/domain"
)

// SQLiteMemberRepo implements MemberRepo using a SQLite database.
// PTO dates and type preferences live in join tables and are loaded
// with every read.
type SQLiteMemberRepo struct {
	db db.DBTX
}

// NewSQLiteMemberRepo creates a new SQLiteMemberRepo.
func NewSQLiteMemberRepo(conn db.DBTX) *SQLiteMemberRepo {
	return &SQLiteMemberRepo{db: conn}
}

func (r *SQLiteMemberRepo) Create(ctx context.Context, m *domain.TeamMember) error {
	query := `INSERT INTO team_members (id, name, region_id, role_id) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.RegionID, m.RoleID)
	if err != nil {
		return fmt.Errorf("inserting team member: %w", err)
	}
	if err := r.replacePTODates(ctx, m.ID, m.PTODates); err != nil {
		return err
	}
	return r.replacePreferences(ctx, m.ID, m.TypePreferences)
}

func (r *SQLiteMemberRepo) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	query := `SELECT id, name, region_id, role_id FROM team_members WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var m domain.TeamMember
	if err := row.Scan(&m.ID, &m.Name, &m.RegionID, &m.RoleID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("team member not found")
		}
		return nil, fmt.Errorf("scanning team member: %w", err)
	}
	if err := r.loadExtras(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *SQLiteMemberRepo) List(ctx context.Context) ([]*domain.TeamMember, error) {
	query := `SELECT id, name, region_id, role_id FROM team_members ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.RegionID, &m.RoleID); err != nil {
			return nil, fmt.Errorf("scanning team member row: %w", err)
		}
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team members: %w", err)
	}

	for _, m := range members {
		if err := r.loadExtras(ctx, m); err != nil {
			return nil, err
		}
	}
	return members, nil
}

func (r *SQLiteMemberRepo) Update(ctx context.Context, m *domain.TeamMember) error {
	query := `UPDATE team_members SET name = ?, region_id = ?, role_id = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, m.Name, m.RegionID, m.RoleID, m.ID)
	if err != nil {
		return fmt.Errorf("updating team member: %w", err)
	}
	if err := r.replacePTODates(ctx, m.ID, m.PTODates); err != nil {
		return err
	}
	return r.replacePreferences(ctx, m.ID, m.TypePreferences)
}

func (r *SQLiteMemberRepo) Delete(ctx context.Context, id string) error {
	// PTO dates and preferences cascade; owned projects drop their owner
	// via ON DELETE SET NULL.
	query := `DELETE FROM team_members WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting team member: %w", err)
	}
	return nil
}

func (r *SQLiteMemberRepo) CountByRegion(ctx context.Context, regionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM team_members WHERE region_id = ?`, regionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting members by region: %w", err)
	}
	return n, nil
}

func (r *SQLiteMemberRepo) CountByRole(ctx context.Context, roleID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM team_members WHERE role_id = ?`, roleID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting members by role: %w", err)
	}
	return n, nil
}

func (r *SQLiteMemberRepo) loadExtras(ctx context.Context, m *domain.TeamMember) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date FROM member_pto_dates WHERE member_id = ? ORDER BY date`, m.ID)
	if err != nil {
		return fmt.Errorf("loading pto dates: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return fmt.Errorf("scanning pto date: %w", err)
		}
		m.PTODates = append(m.PTODates, d)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating pto dates: %w", err)
	}

	prefRows, err := r.db.QueryContext(ctx,
		`SELECT project_type, level FROM member_type_preferences WHERE member_id = ?`, m.ID)
	if err != nil {
		return fmt.Errorf("loading type preferences: %w", err)
	}
	defer prefRows.Close()
	for prefRows.Next() {
		var projectType, level string
		if err := prefRows.Scan(&projectType, &level); err != nil {
			return fmt.Errorf("scanning type preference: %w", err)
		}
		if m.TypePreferences == nil {
			m.TypePreferences = make(map[string]domain.PreferenceLevel)
		}
		m.TypePreferences[projectType] = domain.ParsePreferenceLevel(level)
	}
	if err := prefRows.Err(); err != nil {
		return fmt.Errorf("iterating type preferences: %w", err)
	}
	return nil
}

func (r *SQLiteMemberRepo) replacePTODates(ctx context.Context, memberID string, dates []string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM member_pto_dates WHERE member_id = ?`, memberID); err != nil {
		return fmt.Errorf("clearing pto dates: %w", err)
	}
	for _, d := range dates {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO member_pto_dates (member_id, date) VALUES (?, ?)`, memberID, d)
		if err != nil {
			return fmt.Errorf("inserting pto date: %w", err)
		}
	}
	return nil
}

func (r *SQLiteMemberRepo) replacePreferences(ctx context.Context, memberID string, prefs map[string]domain.PreferenceLevel) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM member_type_preferences WHERE member_id = ?`, memberID); err != nil {
		return fmt.Errorf("clearing type preferences: %w", err)
	}
	for projectType, level := range prefs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO member_type_preferences (member_id, project_type, level) VALUES (?, ?, ?)`,
			memberID, projectType, string(level))
		if err != nil {
			return fmt.Errorf("inserting type preference: %w", err)
		}
	}
	return nil
}
