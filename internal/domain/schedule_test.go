package domain

import (
	"testing"
	"time"
)

func TestCapacityHasCapacity(t *testing.T) {
	c := Capacity{Current: 8, Maximum: 10, Unit: "kg"}

	if !c.HasCapacity(1) {
		t.Error("8+1 <= 10 should have capacity")
	}
	if !c.HasCapacity(2) {
		t.Error("exactly reaching the maximum should have capacity")
	}
	if c.HasCapacity(3) {
		t.Error("8+3 > 10 should not have capacity")
	}
}

func TestTimeSlotValidate(t *testing.T) {
	valid := TimeSlot{Start: "08:00", End: "12:30"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []TimeSlot{
		{Start: "12:00", End: "08:00"},
		{Start: "08:00", End: "08:00"},
		{Start: "8:00", End: "12:00"},
		{Start: "08:00", End: "25:00"},
		{Start: "", End: "12:00"},
	}
	for _, ts := range cases {
		if err := ts.Validate(); err == nil {
			t.Errorf("time slot %q-%q should be rejected", ts.Start, ts.End)
		}
	}
}

func validSchedule() *CollectionSchedule {
	return &CollectionSchedule{
		ID: "sched-1",
		Route: []RoutePoint{
			{
				Coordinates: Coordinates{Lat: 41.38, Lng: 2.17},
				Address:     "Carrer de Sants 12",
				Status:      PointPending,
			},
		},
		Capacity:      Capacity{Current: 0, Maximum: 500, Unit: "kg"},
		ScheduledDate: time.Now().AddDate(0, 0, 7),
		TimeSlot:      TimeSlot{Start: "08:00", End: "12:00"},
		Status:        ScheduleScheduled,
		IsActive:      true,
	}
}

func TestScheduleValidate(t *testing.T) {
	now := time.Now()

	if err := validSchedule().Validate(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	past := validSchedule()
	past.ScheduledDate = now.AddDate(0, 0, -1)
	if err := past.Validate(now); err == nil {
		t.Error("past-dated schedule should be rejected")
	}

	badSlot := validSchedule()
	badSlot.TimeSlot = TimeSlot{Start: "12:00", End: "08:00"}
	if err := badSlot.Validate(now); err == nil {
		t.Error("inverted time slot should be rejected")
	}

	badCoords := validSchedule()
	badCoords.Route[0].Coordinates = Coordinates{Lat: 91, Lng: 0}
	if err := badCoords.Validate(now); err == nil {
		t.Error("out-of-range coordinates should be rejected")
	}

	noCapacity := validSchedule()
	noCapacity.Capacity.Maximum = 0
	if err := noCapacity.Validate(now); err == nil {
		t.Error("non-positive capacity maximum should be rejected")
	}

	badRecurring := validSchedule()
	badRecurring.Recurring = &Recurring{Enabled: true, IntervalDays: 7}
	if err := badRecurring.Validate(now); err == nil {
		t.Error("recurring config without end date should be rejected")
	}
}

func TestRoutePointTransitions(t *testing.T) {
	p := &RoutePoint{Status: PointPending}

	if err := p.TransitionTo(PointInProgress); err != nil {
		t.Fatalf("pending -> in_progress: %v", err)
	}
	if err := p.TransitionTo(PointCompleted); err != nil {
		t.Fatalf("in_progress -> completed: %v", err)
	}

	// Completed is terminal.
	if err := p.TransitionTo(PointPending); err == nil {
		t.Error("completed -> pending must be rejected")
	}
	if err := p.TransitionTo(PointInProgress); err == nil {
		t.Error("completed -> in_progress must be rejected")
	}

	skipped := &RoutePoint{Status: PointInProgress}
	if err := skipped.TransitionTo(PointSkipped); err != nil {
		t.Fatalf("in_progress -> skipped: %v", err)
	}

	// No skipping the in_progress step.
	fresh := &RoutePoint{Status: PointPending}
	if err := fresh.TransitionTo(PointCompleted); err == nil {
		t.Error("pending -> completed must be rejected")
	}
}

func TestCoordinates(t *testing.T) {
	if !(Coordinates{Lat: 90, Lng: -180}).Valid() {
		t.Error("boundary coordinates should be valid")
	}
	if (Coordinates{Lat: 90.1, Lng: 0}).Valid() {
		t.Error("latitude beyond 90 should be invalid")
	}
	if (Coordinates{Lat: 0, Lng: 180.5}).Valid() {
		t.Error("longitude beyond 180 should be invalid")
	}

	// One degree of latitude is 111 km, one degree of longitude 85 km.
	a := Coordinates{Lat: 0, Lng: 0}
	if got := a.DistanceKm(Coordinates{Lat: 1, Lng: 0}); got != 111 {
		t.Errorf("latitude degree distance = %v, want 111", got)
	}
	if got := a.DistanceKm(Coordinates{Lat: 0, Lng: 1}); got != 85 {
		t.Errorf("longitude degree distance = %v, want 85", got)
	}
	if got := a.DistanceKm(a); got != 0 {
		t.Errorf("self distance = %v, want 0", got)
	}
}
