package ports

import (
	"context"

	"collection-route-service/internal/domain"
)

// Port: a read-through cache for schedule lookups. A miss is not an error;
// callers fall back to the repository and repopulate.
type ScheduleCache interface {
	// Return the cached schedule and whether it was present.
	Get(ctx context.Context, id string) (*domain.CollectionSchedule, bool, error)
	// Store a schedule under its identifier.
	Set(ctx context.Context, schedule *domain.CollectionSchedule) error
	// Drop a cached schedule after a write.
	Invalidate(ctx context.Context, id string) error
}
