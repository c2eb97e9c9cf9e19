package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"collection-route-service/internal/api/dto"
	"collection-route-service/internal/domain"
	"collection-route-service/internal/ports"
	"collection-route-service/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ScheduleHandler exposes the administrative schedule endpoints: creation
// (with recurrence expansion), retrieval, route optimization, per-point
// progress updates, and archival.
type ScheduleHandler struct {
	Repo  ports.ScheduleRepository
	Cache ports.ScheduleCache
}

// Create validates and persists a new collection schedule. When recurrence
// is enabled the follow-up chain is expanded and stored in the same request,
// so either the whole chain exists or none of it does.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Route) == 0 {
		writeError(w, r, http.StatusBadRequest, "route must contain at least one point")
		return
	}

	route := make([]domain.RoutePoint, 0, len(req.Route))
	for i, p := range req.Route {
		coords := domain.Coordinates{Lat: p.Coordinates.Lat, Lng: p.Coordinates.Lng}
		if !coords.Valid() {
			writeError(w, r, http.StatusBadRequest,
				"route point "+strconv.Itoa(i)+" has invalid coordinates")
			return
		}

		route = append(route, domain.RoutePoint{
			Coordinates: coords,
			Address:     p.Address,
			ProductIDs:  p.ProductIDs,
			Status:      domain.PointPending,
		})
	}

	schedule := &domain.CollectionSchedule{
		ID:    uuid.NewString(),
		Route: route,
		Capacity: domain.Capacity{
			Current: 0,
			Maximum: req.CapacityMax,
			Unit:    req.CapacityUnit,
		},
		ScheduledDate: req.ScheduledDate,
		TimeSlot:      domain.TimeSlot{Start: req.TimeSlot.Start, End: req.TimeSlot.End},
		Status:        domain.ScheduleScheduled,
		IsActive:      true,
	}

	if req.Recurring != nil {
		schedule.Recurring = &domain.Recurring{
			Enabled:      req.Recurring.Enabled,
			IntervalDays: req.Recurring.IntervalDays,
			EndDate:      req.Recurring.EndDate,
		}
	}

	if err := schedule.Validate(time.Now()); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	followUps, err := services.ExpandRecurring(schedule)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	batch := append([]*domain.CollectionSchedule{schedule}, followUps...)
	if err := h.Repo.CreateBatch(r.Context(), batch); err != nil {
		log.Printf("create schedule failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.CreateScheduleResponse{Schedule: toScheduleResponse(schedule)}
	for _, f := range followUps {
		res.FollowUps = append(res.FollowUps, toScheduleResponse(f))
	}

	writeJSON(w, r, http.StatusCreated, res)
}

// List returns active schedules, optionally filtered by status.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !domain.IsValidScheduleStatus(status) {
		writeError(w, r, http.StatusBadRequest, "unknown schedule status "+strconv.Quote(status))
		return
	}

	schedules, err := h.Repo.List(r.Context(), status)
	if err != nil {
		log.Printf("list schedules failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSchedulesResponse{Schedules: make([]dto.ScheduleResponse, 0, len(schedules))}
	for _, s := range schedules {
		res.Schedules = append(res.Schedules, toScheduleResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get fetches one schedule, reading through the cache when configured.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if h.Cache != nil {
		if s, ok, err := h.Cache.Get(r.Context(), id); err != nil {
			// Cache failures degrade to a repository read.
			log.Printf("schedule cache get failed: id=%s err=%v", id, err)
		} else if ok {
			writeJSON(w, r, http.StatusOK, toScheduleResponse(s))
			return
		}
	}

	s, err := h.loadSchedule(w, r, id)
	if err != nil {
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Set(r.Context(), s); err != nil {
			log.Printf("schedule cache set failed: id=%s err=%v", id, err)
		}
	}

	writeJSON(w, r, http.StatusOK, toScheduleResponse(s))
}

// Optimize reorders the schedule's route with the nearest-neighbor pass,
// recomputes the estimated duration, persists the result and returns a
// summary of the action.
func (h *ScheduleHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	schedule, err := h.loadSchedule(w, r, id)
	if err != nil {
		return
	}

	originalPoints := len(schedule.Route)

	schedule.Route = services.OptimizeRoute(schedule.Route)
	estimatedDuration := services.EstimateRouteDuration(schedule.Route)

	optimizedPoints := len(schedule.Route)

	// Savings as a percentage reduction in point count, kept for response
	// compatibility. The optimizer only reorders, so optimizedPoints always
	// equals originalPoints and this value is always zero.
	estimatedSavings := 0.0
	if originalPoints > 0 {
		estimatedSavings = float64(originalPoints-optimizedPoints) / float64(originalPoints) * 100
	}

	if err := h.Repo.Update(r.Context(), schedule); err != nil {
		log.Printf("optimize schedule failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.invalidate(r, id)

	writeJSON(w, r, http.StatusOK, dto.OptimizeResponse{
		OriginalPoints:    originalPoints,
		OptimizedPoints:   optimizedPoints,
		EstimatedDuration: estimatedDuration,
		EstimatedSavings:  estimatedSavings,
		Route:             toRouteResponse(schedule.Route),
	})
}

// UpdatePoint advances one route point through its lifecycle and records the
// collected weight. The capacity predicate is checked before applying the
// increment; the check and the save are not transactional.
func (h *ScheduleHandler) UpdatePoint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		writeError(w, r, http.StatusBadRequest, "point index must be a non-negative integer")
		return
	}

	var req dto.UpdatePointRequest
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if !domain.IsValidPointStatus(req.Status) {
		writeError(w, r, http.StatusBadRequest, "unknown point status "+strconv.Quote(req.Status))
		return
	}

	schedule, err := h.loadSchedule(w, r, id)
	if err != nil {
		return
	}

	if index >= len(schedule.Route) {
		writeError(w, r, http.StatusNotFound, "route point index out of range")
		return
	}

	point := &schedule.Route[index]
	if err := point.TransitionTo(domain.PointStatus(req.Status)); err != nil {
		writeError(w, r, http.StatusConflict, err.Error())
		return
	}

	if req.CollectedWeight != nil {
		weight := *req.CollectedWeight
		if weight < 0 {
			writeError(w, r, http.StatusBadRequest, "collected weight must not be negative")
			return
		}

		if !schedule.Capacity.HasCapacity(weight) {
			writeError(w, r, http.StatusConflict, "collected weight exceeds schedule capacity")
			return
		}

		point.CollectedWeight = &weight
		schedule.Capacity.Current += weight
	}

	if point.Status == domain.PointCompleted || point.Status == domain.PointSkipped {
		now := time.Now().UTC()
		point.ActualTime = &now
	}

	if err := h.Repo.Update(r.Context(), schedule); err != nil {
		log.Printf("update route point failed: id=%s index=%d err=%v", id, index, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.invalidate(r, id)

	writeJSON(w, r, http.StatusOK, toScheduleResponse(schedule))
}

// Archive soft-deletes a schedule; it remains in storage with is_active
// cleared.
func (h *ScheduleHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Repo.Archive(r.Context(), id); err != nil {
		if errors.Is(err, ports.ErrScheduleNotFound) {
			writeError(w, r, http.StatusNotFound, "schedule not found")
			return
		}
		log.Printf("archive schedule failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.invalidate(r, id)

	w.WriteHeader(http.StatusNoContent)
}

func (h *ScheduleHandler) loadSchedule(w http.ResponseWriter, r *http.Request, id string) (*domain.CollectionSchedule, error) {
	s, err := h.Repo.GetByID(r.Context(), id)
	if errors.Is(err, ports.ErrScheduleNotFound) {
		writeError(w, r, http.StatusNotFound, "schedule not found")
		return nil, err
	}
	if err != nil {
		log.Printf("get schedule failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, err
	}

	return s, nil
}

func (h *ScheduleHandler) invalidate(r *http.Request, id string) {
	if h.Cache == nil {
		return
	}
	if err := h.Cache.Invalidate(r.Context(), id); err != nil {
		log.Printf("schedule cache invalidate failed: id=%s err=%v", id, err)
	}
}
