package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/szabadkai/quarterback/internal/db"
	"github.com/szabadkai/quarterback/internal/domain"
)

// SQLiteRegionRepo implements RegionRepo using a SQLite database.
type SQLiteRegionRepo struct {
	db db.DBTX
}

// NewSQLiteRegionRepo creates a new SQLiteRegionRepo.
func NewSQLiteRegionRepo(conn db.DBTX) *SQLiteRegionRepo {
	return &SQLiteRegionRepo{db: conn}
}

func (r *SQLiteRegionRepo) Create(ctx context.Context, reg *domain.Region) error {
	query := `INSERT INTO regions (id, name, pto_days, holidays) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, reg.ID, reg.Name, reg.PTODays, reg.Holidays)
	if err != nil {
		return fmt.Errorf("inserting region: %w", err)
	}
	return nil
}

func (r *SQLiteRegionRepo) GetByID(ctx context.Context, id string) (*domain.Region, error) {
	query := `SELECT id, name, pto_days, holidays FROM regions WHERE id = ?`
	return r.scanRegion(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRegionRepo) GetByName(ctx context.Context, name string) (*domain.Region, error) {
	query := `SELECT id, name, pto_days, holidays FROM regions WHERE name = ? COLLATE NOCASE`
	return r.scanRegion(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteRegionRepo) List(ctx context.Context) ([]*domain.Region, error) {
	query := `SELECT id, name, pto_days, holidays FROM regions ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing regions: %w", err)
	}
	defer rows.Close()

	var regions []*domain.Region
	for rows.Next() {
		var reg domain.Region
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.PTODays, &reg.Holidays); err != nil {
			return nil, fmt.Errorf("scanning region row: %w", err)
		}
		regions = append(regions, &reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating regions: %w", err)
	}
	return regions, nil
}

func (r *SQLiteRegionRepo) Update(ctx context.Context, reg *domain.Region) error {
	query := `UPDATE regions SET name = ?, pto_days = ?, holidays = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, reg.Name, reg.PTODays, reg.Holidays, reg.ID)
	if err != nil {
		return fmt.Errorf("updating region: %w", err)
	}
	return nil
}

func (r *SQLiteRegionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM regions WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting region: %w", err)
	}
	return nil
}

func (r *SQLiteRegionRepo) scanRegion(row *sql.Row) (*domain.Region, error) {
	var reg domain.Region
	err := row.Scan(&reg.ID, &reg.Name, &reg.PTODays, &reg.Holidays)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("region not found")
		}
		return nil, fmt.Errorf("scanning region: %w", err)
	}
	return &reg, nil
}
