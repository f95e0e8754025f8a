package dto

import (
	"time"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
)

// RequestSubmitRequest is the payload for a new activity point claim. The
// proof reference must come from a prior upload; the engine never inspects it.
type RequestSubmitRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=255"`
	Category string `json:"category" validate:"required,max=255"`
	Points   int    `json:"points" validate:"required,gt=0"`
	ProofRef string `json:"proof_ref" validate:"required,max=512"`
}

// RequestTransitionRequest carries an FA or admin action on a request.
// Resubmission has its own endpoint since it replaces the proof.
type RequestTransitionRequest struct {
	Action  string `json:"action" validate:"required,oneof=approve reject request-info finalize-approve finalize-reject"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

// RequestResubmitRequest sends a request back into review with a fresh proof
// and, optionally, revised points.
type RequestResubmitRequest struct {
	Points   *int   `json:"points" validate:"omitempty,gt=0"`
	ProofRef string `json:"proof_ref" validate:"required,max=512"`
}

// BulkApproveRequest lists the requests an advisor wants to approve at once.
type BulkApproveRequest struct {
	RequestIDs []uint `json:"request_ids" validate:"required,min=1,dive,gt=0"`
}

// BulkApproveResponse reports how many requests actually moved. Ineligible or
// unknown ids are skipped silently, per the workflow contract.
type BulkApproveResponse struct {
	Count int64 `json:"count"`
}

// CommentResponse serializes one entry of the comment trail.
type CommentResponse struct {
	AuthorID   uint        `json:"author_id"`
	AuthorName string      `json:"author_name"`
	AuthorRole models.Role `json:"author_role"`
	Text       string      `json:"text"`
	CreatedAt  time.Time   `json:"created_at"`
}

// RequestResponse is returned to API clients when viewing requests.
type RequestResponse struct {
	ID           uint                 `json:"id"`
	StudentID    uint                 `json:"student_id"`
	Title        string               `json:"title"`
	Category     string               `json:"category"`
	Points       int                  `json:"points"`
	Proof        string               `json:"proof"`
	AssignedFAID uint                 `json:"assigned_fa_id"`
	Status       models.RequestStatus `json:"status"`
	Comments     []CommentResponse    `json:"comments"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	Student      UserLite             `json:"student"`
	AssignedFA   UserLite             `json:"assigned_fa"`
}

// NewRequestResponse converts an ActivityRequest model into a DTO.
func NewRequestResponse(model models.ActivityRequest) RequestResponse {
	response := RequestResponse{
		ID:           model.ID,
		StudentID:    model.StudentID,
		Title:        model.Title,
		Category:     model.Category,
		Points:       model.Points,
		Proof:        model.Proof,
		AssignedFAID: model.AssignedFAID,
		Status:       model.Status,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}

	if model.Student.ID != 0 {
		response.Student = NewUserLite(model.Student)
	}

	if model.AssignedFA.ID != 0 {
		response.AssignedFA = NewUserLite(model.AssignedFA)
	}

	comments := make([]CommentResponse, 0, len(model.Comments))
	for _, comment := range model.Comments {
		comments = append(comments, CommentResponse{
			AuthorID:   comment.AuthorID,
			AuthorName: comment.AuthorName,
			AuthorRole: comment.AuthorRole,
			Text:       comment.Text,
			CreatedAt:  comment.CreatedAt,
		})
	}
	response.Comments = comments

	return response
}

// NewRequestResponseSlice converts request models into DTOs.
func NewRequestResponseSlice(requests []models.ActivityRequest) []RequestResponse {
	responses := make([]RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, NewRequestResponse(request))
	}

	return responses
}
