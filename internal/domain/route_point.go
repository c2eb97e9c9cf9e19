package domain

import (
	"fmt"
	"time"
)

// Lifecycle of a single pickup stop. Transitions are monotonic:
// pending -> in_progress -> {completed, skipped}. No reverse transitions.
type PointStatus string

const (
	PointPending    PointStatus = "pending"
	PointInProgress PointStatus = "in_progress"
	PointCompleted  PointStatus = "completed"
	PointSkipped    PointStatus = "skipped"
)

func ValidPointStatuses() []string {
	return []string{
		string(PointPending),
		string(PointInProgress),
		string(PointCompleted),
		string(PointSkipped),
	}
}

func IsValidPointStatus(s string) bool {
	for _, valid := range ValidPointStatuses() {
		if valid == s {
			return true
		}
	}
	return false
}

// RoutePoint is one pickup stop within a collection route: where to go,
// which listed products are collected there, and how the stop went.
type RoutePoint struct {
	Coordinates     Coordinates `json:"coordinates"`
	Address         string      `json:"address"`
	ProductIDs      []string    `json:"product_ids,omitempty"`
	Status          PointStatus `json:"status"`
	EstimatedTime   *time.Time  `json:"estimated_time,omitempty"`
	ActualTime      *time.Time  `json:"actual_time,omitempty"`
	CollectedWeight *float64    `json:"collected_weight,omitempty"`
}

// TransitionTo advances the point status, rejecting reverse or skipped-step
// transitions.
func (p *RoutePoint) TransitionTo(next PointStatus) error {
	allowed := map[PointStatus][]PointStatus{
		PointPending:    {PointInProgress},
		PointInProgress: {PointCompleted, PointSkipped},
	}

	for _, s := range allowed[p.Status] {
		if s == next {
			p.Status = next
			return nil
		}
	}

	return fmt.Errorf("route point: invalid status transition %q -> %q", p.Status, next)
}
