package dto

type ValidationCriteriaPayload struct {
	MinWeightKg float64 `json:"min_weight_kg"`
	MaxWeightKg float64 `json:"max_weight_kg"`
}

type CreateMaterialRequest struct {
	Name        string                    `json:"name"`
	Category    string                    `json:"category"`
	Description string                    `json:"description,omitempty"`
	Criteria    ValidationCriteriaPayload `json:"validation_criteria"`
}

type MaterialResponse struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Category    string                    `json:"category"`
	Description string                    `json:"description,omitempty"`
	Criteria    ValidationCriteriaPayload `json:"validation_criteria"`
}

type ListMaterialsResponse struct {
	Materials []MaterialResponse `json:"materials"`
}
