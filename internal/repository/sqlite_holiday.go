package repository

import (
	"context"
	"fmt"

	"github.com/szabadkai/quarterback/internal/db"
	"github.com/szabadkai/quarterback/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo using a SQLite database.
// The date string is the primary key; re-adding a date renames it.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

// NewSQLiteHolidayRepo creates a new SQLiteHolidayRepo.
func NewSQLiteHolidayRepo(conn db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: conn}
}

func (r *SQLiteHolidayRepo) Upsert(ctx context.Context, h *domain.CompanyHoliday) error {
	query := `INSERT INTO company_holidays (date, name) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET name = excluded.name`
	_, err := r.db.ExecContext(ctx, query, h.Date, h.Name)
	if err != nil {
		return fmt.Errorf("upserting holiday: %w", err)
	}
	return nil
}

func (r *SQLiteHolidayRepo) List(ctx context.Context) ([]*domain.CompanyHoliday, error) {
	query := `SELECT date, name FROM company_holidays ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()

	var holidays []*domain.CompanyHoliday
	for rows.Next() {
		var h domain.CompanyHoliday
		if err := rows.Scan(&h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("scanning holiday row: %w", err)
		}
		holidays = append(holidays, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return holidays, nil
}

func (r *SQLiteHolidayRepo) Delete(ctx context.Context, date string) error {
	query := `DELETE FROM company_holidays WHERE date = ?`
	_, err := r.db.ExecContext(ctx, query, date)
	if err != nil {
		return fmt.Errorf("deleting holiday: %w", err)
	}
	return nil
}
