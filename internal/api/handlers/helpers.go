package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"collection-route-service/internal/api/dto"
	"collection-route-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func toScheduleResponse(s *domain.CollectionSchedule) dto.ScheduleResponse {
	res := dto.ScheduleResponse{
		ID:    s.ID,
		Route: toRouteResponse(s.Route),
		Capacity: dto.CapacityPayload{
			Current: s.Capacity.Current,
			Maximum: s.Capacity.Maximum,
			Unit:    s.Capacity.Unit,
		},
		ScheduledDate: s.ScheduledDate,
		TimeSlot:      dto.TimeSlotPayload{Start: s.TimeSlot.Start, End: s.TimeSlot.End},
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}

	if s.Recurring != nil {
		res.Recurring = &dto.RecurringResponse{
			Enabled:        s.Recurring.Enabled,
			IntervalDays:   s.Recurring.IntervalDays,
			EndDate:        s.Recurring.EndDate,
			ParentSchedule: s.Recurring.ParentSchedule,
		}
	}

	return res
}

func toRouteResponse(route []domain.RoutePoint) []dto.RoutePointResponse {
	out := make([]dto.RoutePointResponse, 0, len(route))
	for _, p := range route {
		out = append(out, dto.RoutePointResponse{
			Coordinates:     dto.CoordinatesPayload{Lat: p.Coordinates.Lat, Lng: p.Coordinates.Lng},
			Address:         p.Address,
			ProductIDs:      p.ProductIDs,
			Status:          string(p.Status),
			EstimatedTime:   p.EstimatedTime,
			ActualTime:      p.ActualTime,
			CollectedWeight: p.CollectedWeight,
		})
	}
	return out
}
