package dto

import (
	"time"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
)

// CategoryCreateRequest is the admin payload for a new activity category.
type CategoryCreateRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=255"`
	MaxPoints    *int   `json:"max_points" validate:"omitempty,gt=0"`
	OverrideFAID *uint  `json:"override_fa_id" validate:"omitempty,gt=0"`
}

// CategoryOverrideRequest rebinds or clears a category's override advisor.
// The change affects only future routing.
type CategoryOverrideRequest struct {
	OverrideFAID *uint `json:"override_fa_id" validate:"omitempty,gt=0"`
}

// CategoryResponse is returned to API clients when viewing categories.
type CategoryResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	MaxPoints    *int      `json:"max_points"`
	OverrideFAID *uint     `json:"override_fa_id"`
	OverrideFA   *UserLite `json:"override_fa,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewCategoryResponse converts a category model into a DTO.
func NewCategoryResponse(model models.Category) CategoryResponse {
	response := CategoryResponse{
		ID:           model.ID,
		Name:         model.Name,
		MaxPoints:    model.MaxPoints,
		OverrideFAID: model.OverrideFAID,
		CreatedAt:    model.CreatedAt,
	}

	if model.OverrideFA != nil && model.OverrideFA.ID != 0 {
		lite := NewUserLite(*model.OverrideFA)
		response.OverrideFA = &lite
	}

	return response
}

// NewCategoryResponseSlice converts category models into DTOs.
func NewCategoryResponseSlice(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, NewCategoryResponse(category))
	}

	return responses
}
