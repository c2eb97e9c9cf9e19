package services

import (
	"testing"
	"time"

	"collection-route-service/internal/domain"
)

func recurringBase(interval int, endOffsetDays int) *domain.CollectionSchedule {
	base := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	end := base.AddDate(0, 0, endOffsetDays)

	weight := 12.5
	return &domain.CollectionSchedule{
		ID: "base-1",
		Route: []domain.RoutePoint{
			{
				Coordinates:     domain.Coordinates{Lat: 41.38, Lng: 2.17},
				Address:         "Av. Diagonal 100",
				Status:          domain.PointCompleted,
				CollectedWeight: &weight,
			},
		},
		Capacity:      domain.Capacity{Current: 12.5, Maximum: 500, Unit: "kg"},
		ScheduledDate: base,
		TimeSlot:      domain.TimeSlot{Start: "08:00", End: "12:00"},
		Status:        domain.ScheduleScheduled,
		Recurring: &domain.Recurring{
			Enabled:      true,
			IntervalDays: interval,
			EndDate:      &end,
		},
		IsActive: true,
	}
}

func TestExpandRecurringGeneratesFollowUps(t *testing.T) {
	// Day 0 base, 7-day interval, day-20 end: follow-ups at day 7 and day
	// 14; day 21 is beyond the end date.
	base := recurringBase(7, 20)

	followUps, err := ExpandRecurring(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(followUps) != 2 {
		t.Fatalf("expected 2 follow-ups, got %d", len(followUps))
	}

	wantDates := []time.Time{
		base.ScheduledDate.AddDate(0, 0, 7),
		base.ScheduledDate.AddDate(0, 0, 14),
	}

	for i, f := range followUps {
		if !f.ScheduledDate.Equal(wantDates[i]) {
			t.Errorf("follow-up %d date = %v, want %v", i, f.ScheduledDate, wantDates[i])
		}

		if f.Recurring == nil || f.Recurring.ParentSchedule != base.ID {
			t.Errorf("follow-up %d must reference the base schedule", i)
		}

		if f.Recurring.Enabled {
			t.Errorf("follow-up %d must not recur again", i)
		}

		if f.ID == base.ID || f.ID == "" {
			t.Errorf("follow-up %d needs its own identifier, got %q", i, f.ID)
		}
	}
}

func TestExpandRecurringResetsRunState(t *testing.T) {
	base := recurringBase(7, 20)

	followUps, err := ExpandRecurring(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := followUps[0]
	if f.Capacity.Current != 0 {
		t.Errorf("follow-up load = %v, want 0", f.Capacity.Current)
	}
	if f.Capacity.Maximum != base.Capacity.Maximum {
		t.Errorf("follow-up capacity maximum = %v, want %v", f.Capacity.Maximum, base.Capacity.Maximum)
	}

	for i, p := range f.Route {
		if p.Status != domain.PointPending {
			t.Errorf("follow-up point %d status = %q, want pending", i, p.Status)
		}
		if p.CollectedWeight != nil {
			t.Errorf("follow-up point %d must not carry collected weight", i)
		}
	}

	// The base schedule is never touched by expansion.
	if base.Route[0].Status != domain.PointCompleted {
		t.Error("base route must not be mutated")
	}
}

func TestExpandRecurringEndDateBeforeFirstStep(t *testing.T) {
	base := recurringBase(7, 5)

	followUps, err := ExpandRecurring(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(followUps) != 0 {
		t.Fatalf("expected no follow-ups, got %d", len(followUps))
	}
}

func TestExpandRecurringDisabled(t *testing.T) {
	base := recurringBase(7, 20)
	base.Recurring.Enabled = false

	followUps, err := ExpandRecurring(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if followUps != nil {
		t.Fatalf("disabled recurrence must expand to nothing, got %d", len(followUps))
	}
}

func TestExpandRecurringInvalidConfig(t *testing.T) {
	base := recurringBase(0, 20)
	if _, err := ExpandRecurring(base); err == nil {
		t.Error("expected error for non-positive interval")
	}

	base = recurringBase(7, 20)
	base.Recurring.EndDate = nil
	if _, err := ExpandRecurring(base); err == nil {
		t.Error("expected error for missing end date")
	}
}
