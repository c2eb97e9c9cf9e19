package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"collection-route-service/internal/domain"
)

// Postgres-backed implementation of the MaterialRepository port.
type PostgresMaterialRepository struct{ DB *sql.DB }

func NewPostgresMaterialRepository(db *sql.DB) *PostgresMaterialRepository {
	return &PostgresMaterialRepository{DB: db}
}

func (r *PostgresMaterialRepository) Create(ctx context.Context, material *domain.Material) error {
	if r.DB == nil {
		return errors.New("material repository: DB is nil")
	}

	_, err := r.DB.ExecContext(ctx, `
	INSERT INTO materials (
		id,
		name,
		category,
		description,
		min_weight_kg,
		max_weight_kg,
		is_active
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`,
		material.ID,
		material.Name,
		material.Category,
		material.Description,
		material.Criteria.MinWeightKg,
		material.Criteria.MaxWeightKg,
		material.IsActive,
	)
	if err != nil {
		return fmt.Errorf("create material name=%q: %w", material.Name, err)
	}

	return nil
}

func (r *PostgresMaterialRepository) List(ctx context.Context) ([]*domain.Material, error) {
	if r.DB == nil {
		return nil, errors.New("material repository: DB is nil")
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT
		id,
		name,
		category,
		description,
		min_weight_kg,
		max_weight_kg,
		is_active
	FROM materials
	WHERE is_active = TRUE
	ORDER BY name;
	`)
	if err != nil {
		return nil, fmt.Errorf("list materials: query materials table: %w", err)
	}
	defer rows.Close()

	materials := make([]*domain.Material, 0, 32)
	for rows.Next() {
		var m domain.Material
		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Category,
			&m.Description,
			&m.Criteria.MinWeightKg,
			&m.Criteria.MaxWeightKg,
			&m.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("list materials: scan row: %w", err)
		}
		materials = append(materials, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list materials: row iteration: %w", err)
	}

	return materials, nil
}
