package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Initialize the Postgres database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSchedulesQuery := `
	CREATE TABLE IF NOT EXISTS schedules (
		id TEXT PRIMARY KEY,
		route JSONB NOT NULL,
		capacity_current DOUBLE PRECISION NOT NULL,
		capacity_maximum DOUBLE PRECISION NOT NULL,
		capacity_unit TEXT NOT NULL,
		scheduled_date TIMESTAMPTZ NOT NULL,
		time_slot_start TEXT NOT NULL,
		time_slot_end TEXT NOT NULL,
		status TEXT NOT NULL,
		results JSONB,
		recurring JSONB,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	`

	createMaterialsQuery := `
	CREATE TABLE IF NOT EXISTS materials (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		min_weight_kg DOUBLE PRECISION NOT NULL,
		max_weight_kg DOUBLE PRECISION NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);
	`

	createScheduleIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_schedules_status_date
	ON schedules(status, scheduled_date)
	WHERE is_active = TRUE;
	`

	statements := []string{
		createSchedulesQuery,
		createMaterialsQuery,
		createScheduleIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type MaterialSeed struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	MinWeightKg float64 `json:"min_weight_kg"`
	MaxWeightKg float64 `json:"max_weight_kg"`
}

// Populate the material catalog from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed materials: read %q: %w", jsonPath, err)
	}

	var data []MaterialSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed materials: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed materials: item at index %d: name cannot be empty", i+1)
		}

		if item.MinWeightKg >= item.MaxWeightKg {
			return fmt.Errorf(
				"seed materials: item %q: min weight %v must be less than max weight %v",
				item.Name, item.MinWeightKg, item.MaxWeightKg,
			)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed materials: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO materials (
		id,
		name,
		category,
		description,
		min_weight_kg,
		max_weight_kg,
		is_active
	)
	VALUES ($1, $2, $3, $4, $5, $6, TRUE)
	ON CONFLICT (id) DO NOTHING;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed materials: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range data {
		// Deterministic IDs so reseeding does not duplicate catalog rows.
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("material:"+m.Name)).String()
		if _, err := stmt.Exec(id, m.Name, m.Category, m.Description, m.MinWeightKg, m.MaxWeightKg); err != nil {
			return fmt.Errorf("seed materials: insert name=%q: %w", m.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed materials: commit tx: %w", err)
	}

	return nil
}
