package ports

import (
	"context"
	"errors"

	"collection-route-service/internal/domain"
)

// ErrScheduleNotFound is returned when a schedule identifier does not match
// an active schedule.
var ErrScheduleNotFound = errors.New("schedule not found")

// Port: a boundary for persisting and retrieving collection schedules.
//
// Updates are last-write-wins; the repository provides no optimistic locking
// for concurrent edits to the same schedule.
type ScheduleRepository interface {
	// Persist a new schedule.
	Create(ctx context.Context, schedule *domain.CollectionSchedule) error
	// Persist a batch of schedules atomically (base plus recurrence chain).
	CreateBatch(ctx context.Context, schedules []*domain.CollectionSchedule) error
	// Retrieve one active schedule by identifier.
	GetByID(ctx context.Context, id string) (*domain.CollectionSchedule, error)
	// Retrieve active schedules, optionally filtered by status.
	List(ctx context.Context, status string) ([]*domain.CollectionSchedule, error)
	// Replace the stored state of an existing schedule.
	Update(ctx context.Context, schedule *domain.CollectionSchedule) error
	// Soft-delete a schedule by clearing its active flag.
	Archive(ctx context.Context, id string) error
}
