package dto

import "time"

type CoordinatesPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RoutePointRequest struct {
	Coordinates CoordinatesPayload `json:"coordinates"`
	Address     string             `json:"address"`
	ProductIDs  []string           `json:"product_ids,omitempty"`
}

type TimeSlotPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CapacityPayload struct {
	Current float64 `json:"current"`
	Maximum float64 `json:"maximum"`
	Unit    string  `json:"unit"`
}

type RecurringRequest struct {
	Enabled      bool       `json:"enabled"`
	IntervalDays int        `json:"interval_days"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

type CreateScheduleRequest struct {
	Route         []RoutePointRequest `json:"route"`
	CapacityMax   float64             `json:"capacity_maximum"`
	CapacityUnit  string              `json:"capacity_unit"`
	ScheduledDate time.Time           `json:"scheduled_date"`
	TimeSlot      TimeSlotPayload     `json:"time_slot"`
	Recurring     *RecurringRequest   `json:"recurring,omitempty"`
}

type RoutePointResponse struct {
	Coordinates     CoordinatesPayload `json:"coordinates"`
	Address         string             `json:"address"`
	ProductIDs      []string           `json:"product_ids,omitempty"`
	Status          string             `json:"status"`
	EstimatedTime   *time.Time         `json:"estimated_time,omitempty"`
	ActualTime      *time.Time         `json:"actual_time,omitempty"`
	CollectedWeight *float64           `json:"collected_weight,omitempty"`
}

type RecurringResponse struct {
	Enabled        bool       `json:"enabled"`
	IntervalDays   int        `json:"interval_days,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	ParentSchedule string     `json:"parent_schedule,omitempty"`
}

type ScheduleResponse struct {
	ID            string               `json:"id"`
	Route         []RoutePointResponse `json:"route"`
	Capacity      CapacityPayload      `json:"capacity"`
	ScheduledDate time.Time            `json:"scheduled_date"`
	TimeSlot      TimeSlotPayload      `json:"time_slot"`
	Status        string               `json:"status"`
	Recurring     *RecurringResponse   `json:"recurring,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type CreateScheduleResponse struct {
	Schedule  ScheduleResponse   `json:"schedule"`
	FollowUps []ScheduleResponse `json:"follow_ups,omitempty"`
}

type ListSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

type OptimizeResponse struct {
	OriginalPoints    int                  `json:"originalPoints"`
	OptimizedPoints   int                  `json:"optimizedPoints"`
	EstimatedDuration float64              `json:"estimatedDuration"`
	EstimatedSavings  float64              `json:"estimatedSavings"`
	Route             []RoutePointResponse `json:"route"`
}

type UpdatePointRequest struct {
	Status          string   `json:"status"`
	CollectedWeight *float64 `json:"collected_weight,omitempty"`
}
