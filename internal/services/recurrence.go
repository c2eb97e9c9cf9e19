package services

import (
	"errors"
	"fmt"
	"time"

	"collection-route-service/internal/domain"

	"github.com/google/uuid"
)

// ExpandRecurring generates the follow-up schedules spawned by a recurring
// base schedule: one per interval-day step after the base date, up to and
// including the last step that does not exceed the end date. The base
// schedule itself is never duplicated.
//
// Follow-ups copy the base route with all points reset to pending, start
// with an empty load, and reference the base via Recurring.ParentSchedule.
// Recurrence is disabled on follow-ups so they cannot expand again.
func ExpandRecurring(base *domain.CollectionSchedule) ([]*domain.CollectionSchedule, error) {
	if base == nil {
		return nil, errors.New("expand recurring: base schedule must be non-nil")
	}

	if base.Recurring == nil || !base.Recurring.Enabled {
		return nil, nil
	}

	if base.Recurring.IntervalDays < 1 {
		return nil, fmt.Errorf("expand recurring: interval must be at least 1 day, got %d", base.Recurring.IntervalDays)
	}

	if base.Recurring.EndDate == nil {
		return nil, errors.New("expand recurring: end date is required")
	}

	endDate := *base.Recurring.EndDate
	followUps := []*domain.CollectionSchedule{}

	for date := base.ScheduledDate.AddDate(0, 0, base.Recurring.IntervalDays); !date.After(endDate); date = date.AddDate(0, 0, base.Recurring.IntervalDays) {
		followUps = append(followUps, followUpSchedule(base, date))
	}

	return followUps, nil
}

func followUpSchedule(base *domain.CollectionSchedule, date time.Time) *domain.CollectionSchedule {
	route := make([]domain.RoutePoint, len(base.Route))
	copy(route, base.Route)
	for i := range route {
		route[i].Status = domain.PointPending
		route[i].ActualTime = nil
		route[i].CollectedWeight = nil
	}

	return &domain.CollectionSchedule{
		ID:    uuid.NewString(),
		Route: route,
		Capacity: domain.Capacity{
			Current: 0,
			Maximum: base.Capacity.Maximum,
			Unit:    base.Capacity.Unit,
		},
		ScheduledDate: date,
		TimeSlot:      base.TimeSlot,
		Status:        domain.ScheduleScheduled,
		Recurring: &domain.Recurring{
			Enabled:        false,
			ParentSchedule: base.ID,
		},
		IsActive: true,
	}
}
