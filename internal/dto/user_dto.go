package dto

import (
	"time"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
)

// UserLite summarizes a user inside other payloads.
type UserLite struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// NewUserLite converts a user model into its summary form.
func NewUserLite(model models.User) UserLite {
	return UserLite{
		ID:    model.ID,
		Name:  model.Name,
		Email: model.Email,
		Role:  model.Role,
	}
}

// UserResponse is the full account view used by admin listings.
type UserResponse struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	PrimaryFAID *uint       `json:"primary_fa_id"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewUserResponse converts a user model into a DTO.
func NewUserResponse(model models.User) UserResponse {
	return UserResponse{
		ID:          model.ID,
		Name:        model.Name,
		Email:       model.Email,
		Role:        model.Role,
		PrimaryFAID: model.PrimaryFAID,
		CreatedAt:   model.CreatedAt,
	}
}

// NewUserResponseSlice converts user models into DTOs.
func NewUserResponseSlice(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}

	return responses
}

// AssignPrimaryFARequest durably associates an advisor with a student. A null
// id clears the association.
type AssignPrimaryFARequest struct {
	PrimaryFAID *uint `json:"primary_fa_id" validate:"omitempty,gt=0"`
}

// LedgerEntryResponse reports the finalized total and remaining capacity for
// one category.
type LedgerEntryResponse struct {
	Category  string `json:"category"`
	Points    int    `json:"points"`
	Remaining int    `json:"remaining"`
}

// ProfileResponse is returned by the authenticated profile endpoint. Points
// are populated for students only.
type ProfileResponse struct {
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	Email       string                `json:"email"`
	Role        models.Role           `json:"role"`
	PrimaryFAID *uint                 `json:"primary_fa_id,omitempty"`
	Points      []LedgerEntryResponse `json:"points,omitempty"`
}
