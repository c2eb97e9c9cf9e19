package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"collection-route-service/internal/api/dto"
	"collection-route-service/internal/domain"
	"collection-route-service/internal/ports"

	"github.com/google/uuid"
)

// MaterialHandler exposes the material catalog endpoints.
type MaterialHandler struct {
	Repo ports.MaterialRepository
}

func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMaterialRequest

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

	material := &domain.Material{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Criteria: domain.ValidationCriteria{
			MinWeightKg: req.Criteria.MinWeightKg,
			MaxWeightKg: req.Criteria.MaxWeightKg,
		},
		IsActive: true,
	}

	if err := material.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.Create(r.Context(), material); err != nil {
		log.Printf("create material failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toMaterialResponse(material))
}

func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	materials, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("list materials failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListMaterialsResponse{Materials: make([]dto.MaterialResponse, 0, len(materials))}
	for _, m := range materials {
		res.Materials = append(res.Materials, toMaterialResponse(m))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toMaterialResponse(m *domain.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Description: m.Description,
		Criteria: dto.ValidationCriteriaPayload{
			MinWeightKg: m.Criteria.MinWeightKg,
			MaxWeightKg: m.Criteria.MaxWeightKg,
		},
	}
}
