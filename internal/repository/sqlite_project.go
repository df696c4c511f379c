package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/szabadkai/quarterback/internal/db"
	"github.com/szabadkai/quarterback/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const projectColumns = `id, name, owner_id, start_date, end_date, status, type,
	ice_impact, ice_confidence, ice_effort, ice_score, story_points, manday_estimate,
	created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		nullableStringToValue(p.OwnerID),
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		string(p.Status),
		p.Type,
		p.ICEImpact,
		p.ICEConfidence,
		p.ICEEffort,
		p.ICEScore,
		p.StoryPoints,
		nullableIntToValue(p.MandayEstimate),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProject(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found")
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, owner_id = ?, start_date = ?, end_date = ?,
		status = ?, type = ?, ice_impact = ?, ice_confidence = ?, ice_effort = ?,
		ice_score = ?, story_points = ?, manday_estimate = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		nullableStringToValue(p.OwnerID),
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		string(p.Status),
		p.Type,
		p.ICEImpact,
		p.ICEConfidence,
		p.ICEEffort,
		p.ICEScore,
		p.StoryPoints,
		nullableIntToValue(p.MandayEstimate),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) UnscheduleAll(ctx context.Context) error {
	query := `UPDATE projects SET owner_id = NULL, start_date = NULL, end_date = NULL, updated_at = ?`
	_, err := r.db.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("unscheduling projects: %w", err)
	}
	return nil
}

// scanProject works for both *sql.Row and *sql.Rows via their Scan method.
func scanProject(scan func(dest ...any) error) (*domain.Project, error) {
	var p domain.Project
	var createdAtStr, updatedAtStr, statusStr string
	var ownerID, startDateStr, endDateStr sql.NullString
	var mandayEstimate sql.NullInt64

	err := scan(
		&p.ID, &p.Name, &ownerID,
		&startDateStr, &endDateStr,
		&statusStr, &p.Type,
		&p.ICEImpact, &p.ICEConfidence, &p.ICEEffort, &p.ICEScore,
		&p.StoryPoints, &mandayEstimate,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(statusStr)
	p.OwnerID = nullStringToPtr(ownerID)
	p.StartDate = parseNullableTime(startDateStr, dateLayout)
	p.EndDate = parseNullableTime(endDateStr, dateLayout)
	p.MandayEstimate = nullIntToPtr(mandayEstimate)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &p, nil
}
