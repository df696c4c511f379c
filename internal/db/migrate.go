package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const schema = `
CREATE TABLE IF NOT EXISTS regions (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	pto_days REAL NOT NULL DEFAULT 0,
	holidays REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS roles (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	focus REAL NOT NULL DEFAULT 100
);

CREATE TABLE IF NOT EXISTS team_members (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	region_id TEXT NOT NULL REFERENCES regions(id),
	role_id TEXT NOT NULL REFERENCES roles(id)
);

CREATE TABLE IF NOT EXISTS member_pto_dates (
	member_id TEXT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
	date TEXT NOT NULL,
	PRIMARY KEY (member_id, date)
);

CREATE TABLE IF NOT EXISTS member_type_preferences (
	member_id TEXT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
	project_type TEXT NOT NULL,
	level TEXT NOT NULL CHECK (level IN ('loved', 'preferred', 'neutral', 'avoided', 'disliked')),
	PRIMARY KEY (member_id, project_type)
);

CREATE TABLE IF NOT EXISTS company_holidays (
	date TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	owner_id TEXT REFERENCES team_members(id) ON DELETE SET NULL,
	start_date TEXT,
	end_date TEXT,
	status TEXT NOT NULL DEFAULT 'planned'
		CHECK (status IN ('planned', 'in_progress', 'at_risk', 'blocked', 'completed')),
	type TEXT NOT NULL DEFAULT 'feature',
	ice_impact INTEGER NOT NULL DEFAULT 5,
	ice_confidence INTEGER NOT NULL DEFAULT 5,
	ice_effort INTEGER NOT NULL DEFAULT 5,
	ice_score REAL NOT NULL DEFAULT 0,
	story_points INTEGER NOT NULL DEFAULT 0,
	manday_estimate INTEGER,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
CREATE INDEX IF NOT EXISTS idx_projects_owner ON projects(owner_id);
CREATE INDEX IF NOT EXISTS idx_team_members_region ON team_members(region_id);
CREATE INDEX IF NOT EXISTS idx_team_members_role ON team_members(role_id);

CREATE TABLE IF NOT EXISTS plan_settings (
	id TEXT PRIMARY KEY DEFAULT 'default',
	current_quarter TEXT NOT NULL DEFAULT '',
	num_engineers INTEGER NOT NULL DEFAULT 5,
	pto_per_person REAL NOT NULL DEFAULT 8,
	adhoc_reserve_pct REAL NOT NULL DEFAULT 20,
	bug_reserve_pct REAL NOT NULL DEFAULT 10,
	story_point_day_ratio REAL NOT NULL DEFAULT 1.0,
	min_schedule_days INTEGER NOT NULL DEFAULT 3
);

INSERT OR IGNORE INTO plan_settings (id) VALUES ('default');
`

// Migrate creates the schema and seeds default regions and roles on a
// fresh database. Safe to run repeatedly.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	if err := seedDefaults(db); err != nil {
		return fmt.Errorf("seeding defaults: %w", err)
	}
	return nil
}

func seedDefaults(db *sql.DB) error {
	var regionCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM regions").Scan(&regionCount); err != nil {
		return fmt.Errorf("counting regions: %w", err)
	}
	if regionCount == 0 {
		defaults := []struct {
			name     string
			pto      float64
			holidays float64
		}{
			{"North America", 12, 5},
			{"EMEA", 10, 8},
			{"APAC", 15, 7},
		}
		for _, r := range defaults {
			_, err := db.Exec(
				"INSERT INTO regions (id, name, pto_days, holidays) VALUES (?, ?, ?, ?)",
				uuid.New().String(), r.name, r.pto, r.holidays,
			)
			if err != nil {
				return fmt.Errorf("seeding region %q: %w", r.name, err)
			}
		}
	}

	var roleCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM roles").Scan(&roleCount); err != nil {
		return fmt.Errorf("counting roles: %w", err)
	}
	if roleCount == 0 {
		defaults := []struct {
			name  string
			focus float64
		}{
			{"IC Engineer", 100},
			{"Engineering Manager", 60},
			{"QA / SDET", 90},
		}
		for _, r := range defaults {
			_, err := db.Exec(
				"INSERT INTO roles (id, name, focus) VALUES (?, ?, ?)",
				uuid.New().String(), r.name, r.focus,
			)
			if err != nil {
				return fmt.Errorf("seeding role %q: %w", r.name, err)
			}
		}
	}
	return nil
}
