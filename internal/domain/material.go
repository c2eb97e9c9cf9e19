package domain

import (
	"fmt"
	"strings"
)

// ValidationCriteria bounds the per-collection weight accepted for a
// material.
type ValidationCriteria struct {
	MinWeightKg float64 `json:"min_weight_kg"`
	MaxWeightKg float64 `json:"max_weight_kg"`
}

// Material is a catalog entry describing what a collection run may accept.
type Material struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Description string             `json:"description,omitempty"`
	Criteria    ValidationCriteria `json:"validation_criteria"`
	IsActive    bool               `json:"is_active"`
}

// Validate enforces save-time invariants on the catalog entry.
func (m *Material) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("material: name must not be empty")
	}

	if m.Criteria.MinWeightKg < 0 {
		return fmt.Errorf("material %q: min weight must not be negative, got %v", m.Name, m.Criteria.MinWeightKg)
	}

	if m.Criteria.MinWeightKg >= m.Criteria.MaxWeightKg {
		return fmt.Errorf(
			"material %q: min weight %v must be less than max weight %v",
			m.Name, m.Criteria.MinWeightKg, m.Criteria.MaxWeightKg,
		)
	}

	return nil
}

// AcceptsWeight reports whether a collected weight falls inside the
// material's validation bounds.
func (m *Material) AcceptsWeight(weightKg float64) bool {
	return weightKg >= m.Criteria.MinWeightKg && weightKg <= m.Criteria.MaxWeightKg
}
