package ports

import (
	"context"

	"collection-route-service/internal/domain"
)

// Port: a boundary for the material catalog.
type MaterialRepository interface {
	// Persist a new catalog entry.
	Create(ctx context.Context, material *domain.Material) error
	// Retrieve all active catalog entries.
	List(ctx context.Context) ([]*domain.Material, error)
}
