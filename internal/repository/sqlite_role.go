package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/szabadkai/quarterback/internal/db"
	"github.com/szabadkai/quarterback/internal/domain"
)

// SQLiteRoleRepo implements RoleRepo using a SQLite database.
type SQLiteRoleRepo struct {
	db db.DBTX
}

// NewSQLiteRoleRepo creates a new SQLiteRoleRepo.
func NewSQLiteRoleRepo(conn db.DBTX) *SQLiteRoleRepo {
	return &SQLiteRoleRepo{db: conn}
}

func (r *SQLiteRoleRepo) Create(ctx context.Context, role *domain.Role) error {
	query := `INSERT INTO roles (id, name, focus) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, role.ID, role.Name, role.Focus)
	if err != nil {
		return fmt.Errorf("inserting role: %w", err)
	}
	return nil
}

func (r *SQLiteRoleRepo) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	query := `SELECT id, name, focus FROM roles WHERE id = ?`
	return r.scanRole(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRoleRepo) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	query := `SELECT id, name, focus FROM roles WHERE name = ? COLLATE NOCASE`
	return r.scanRole(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteRoleRepo) List(ctx context.Context) ([]*domain.Role, error) {
	query := `SELECT id, name, focus FROM roles ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	defer rows.Close()

	var roles []*domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Focus); err != nil {
			return nil, fmt.Errorf("scanning role row: %w", err)
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roles: %w", err)
	}
	return roles, nil
}

func (r *SQLiteRoleRepo) Update(ctx context.Context, role *domain.Role) error {
	query := `UPDATE roles SET name = ?, focus = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, role.Name, role.Focus, role.ID)
	if err != nil {
		return fmt.Errorf("updating role: %w", err)
	}
	return nil
}

func (r *SQLiteRoleRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM roles WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting role: %w", err)
	}
	return nil
}

func (r *SQLiteRoleRepo) scanRole(row *sql.Row) (*domain.Role, error) {
	var role domain.Role
	err := row.Scan(&role.ID, &role.Name, &role.Focus)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("role not found")
		}
		return nil, fmt.Errorf("scanning role: %w", err)
	}
	return &role, nil
}
