package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Lifecycle of a collection run.
type ScheduleStatus string

const (
	ScheduleScheduled   ScheduleStatus = "scheduled"
	ScheduleInProgress  ScheduleStatus = "in_progress"
	ScheduleCompleted   ScheduleStatus = "completed"
	ScheduleCancelled   ScheduleStatus = "cancelled"
	ScheduleRescheduled ScheduleStatus = "rescheduled"
)

func ValidScheduleStatuses() []string {
	return []string{
		string(ScheduleScheduled),
		string(ScheduleInProgress),
		string(ScheduleCompleted),
		string(ScheduleCancelled),
		string(ScheduleRescheduled),
	}
}

func IsValidScheduleStatus(s string) bool {
	for _, valid := range ValidScheduleStatuses() {
		if valid == s {
			return true
		}
	}
	return false
}

// Capacity tracks the load of a collection run. Current must not exceed
// Maximum; the invariant is checked by HasCapacity, not enforced
// transactionally.
type Capacity struct {
	Current float64 `json:"current"`
	Maximum float64 `json:"maximum"`
	Unit    string  `json:"unit"`
}

// HasCapacity reports whether additionalWeight still fits. Pure predicate:
// no mutation, no locking. Callers apply the increment themselves, so a
// check-then-save race exists at the persistence layer.
func (c Capacity) HasCapacity(additionalWeight float64) bool {
	return c.Current+additionalWeight <= c.Maximum
}

var hhmmPattern = regexp.MustCompile(`^(0[0-9]|1[0-9]|2[0-3]):(0[0-9]|[1-5][0-9])$`)

// TimeSlot is the planned window of a run as zero-padded HH:MM strings.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Validate checks format and ordering. Lexicographic comparison is correct
// for zero-padded 24h times.
func (t TimeSlot) Validate() error {
	if !hhmmPattern.MatchString(t.Start) {
		return fmt.Errorf("time slot: start %q is not a valid HH:MM time", t.Start)
	}
	if !hhmmPattern.MatchString(t.End) {
		return fmt.Errorf("time slot: end %q is not a valid HH:MM time", t.End)
	}
	if t.Start >= t.End {
		return fmt.Errorf("time slot: start %q must be before end %q", t.Start, t.End)
	}
	return nil
}

// Recurring configures periodic follow-up schedules spawned from a base
// schedule. Follow-ups carry ParentSchedule back-references; the base never
// references itself.
type Recurring struct {
	Enabled        bool       `json:"enabled"`
	IntervalDays   int        `json:"interval_days"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	ParentSchedule string     `json:"parent_schedule,omitempty"`
}

// Results holds post-run metrics, populated after completion.
type Results struct {
	TotalWeightKg   float64  `json:"total_weight_kg"`
	DurationMinutes float64  `json:"duration_minutes"`
	Issues          []string `json:"issues,omitempty"`
}

// CollectionSchedule is one planned collection run: an ordered pickup route,
// a load budget, and a time window. Schedules are archived via IsActive
// rather than deleted.
type CollectionSchedule struct {
	ID            string         `json:"id"`
	Route         []RoutePoint   `json:"route"`
	Capacity      Capacity       `json:"capacity"`
	ScheduledDate time.Time      `json:"scheduled_date"`
	TimeSlot      TimeSlot       `json:"time_slot"`
	Status        ScheduleStatus `json:"status"`
	Results       *Results       `json:"results,omitempty"`
	Recurring     *Recurring     `json:"recurring,omitempty"`
	IsActive      bool           `json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Validate enforces save-time invariants. Violations reject the write; there
// is no partial application.
func (s *CollectionSchedule) Validate(now time.Time) error {
	if err := s.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	if s.ScheduledDate.Before(now) {
		return fmt.Errorf(
			"schedule: scheduled date %s is in the past",
			s.ScheduledDate.Format(time.RFC3339),
		)
	}

	if s.Capacity.Maximum <= 0 {
		return fmt.Errorf("schedule: capacity maximum must be positive, got %v", s.Capacity.Maximum)
	}

	for i, p := range s.Route {
		if !p.Coordinates.Valid() {
			return fmt.Errorf(
				"schedule: route point %d has invalid coordinates (lat=%v, lng=%v)",
				i, p.Coordinates.Lat, p.Coordinates.Lng,
			)
		}
	}

	if s.Recurring != nil && s.Recurring.Enabled {
		if s.Recurring.IntervalDays < 1 {
			return fmt.Errorf("schedule: recurring interval must be at least 1 day, got %d", s.Recurring.IntervalDays)
		}
		if s.Recurring.EndDate == nil {
			return fmt.Errorf("schedule: recurring config requires an end date")
		}
	}

	return nil
}
