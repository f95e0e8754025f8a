package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/dto"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/observability"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/repository"
)

var (
	// ErrRequestNotFound indicates a request could not be located.
	ErrRequestNotFound = errors.New("request not found")
	// ErrNoAdvisorAssigned blocks a submission when neither the category
	// override nor the student's primary advisor resolves to a reviewer.
	ErrNoAdvisorAssigned = errors.New("no faculty advisor available to review this request")
	// ErrUnauthorized indicates an actor/role or identity mismatch on a
	// transition. Never downgraded to a silent no-op.
	ErrUnauthorized = errors.New("actor is not authorized for this action")
	// ErrInvalidTransition indicates the action is not legal from the
	// request's current status. Distinct from ErrUnauthorized.
	ErrInvalidTransition = errors.New("action is not legal from the current status")
	// ErrCommentRequired indicates a transition that demands a reason was
	// attempted without one.
	ErrCommentRequired = errors.New("a comment explaining the decision is required")
)

// Actor is the identity assertion attached to every workflow call by the
// external auth collaborator.
type Actor struct {
	ID   uint
	Role models.Role
}

// WorkflowService owns the request lifecycle: submission routing, the status
// state machine, bulk approval and the queue listings.
type WorkflowService interface {
	Submit(ctx context.Context, actor Actor, payload dto.RequestSubmitRequest) (dto.RequestResponse, error)
	Transition(ctx context.Context, actor Actor, requestID uint, payload dto.RequestTransitionRequest) (dto.RequestResponse, error)
	Resubmit(ctx context.Context, actor Actor, requestID uint, payload dto.RequestResubmitRequest) (dto.RequestResponse, error)
	BulkApprove(ctx context.Context, actor Actor, payload dto.BulkApproveRequest) (dto.BulkApproveResponse, error)
	ListForStudent(ctx context.Context, studentID uint) ([]dto.RequestResponse, error)
	ListForFA(ctx context.Context, faID uint) ([]dto.RequestResponse, error)
	ListFinalQueue(ctx context.Context) ([]dto.RequestResponse, error)
}

type workflowService struct {
	requests   repository.RequestRepository
	users      repository.UserRepository
	categories repository.CategoryRepository
	ledger     LedgerService
	audit      AuditRecorder
	validator  *validator.Validate
	logger     zerolog.Logger
	tracer     trace.Tracer
	now        func() time.Time
}

// NewWorkflowService constructs the workflow engine. The audit recorder may
// be nil, in which case mutations are not trailed.
func NewWorkflowService(requestRepo repository.RequestRepository, userRepo repository.UserRepository, categoryRepo repository.CategoryRepository, ledger LedgerService, audit AuditRecorder, validate *validator.Validate, logger zerolog.Logger) WorkflowService {
	return &workflowService{
		requests:   requestRepo,
		users:      userRepo,
		categories: categoryRepo,
		ledger:     ledger,
		audit:      audit,
		validator:  validate,
		logger:     logger.With().Str("component", "workflow_service").Logger(),
		tracer:     otel.Tracer("github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/service/workflow"),
		now:        time.Now,
	}
}

func (s *workflowService) Submit(ctx context.Context, actor Actor, payload dto.RequestSubmitRequest) (dto.RequestResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.RequestResponse{}, err
	}

	student, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RequestResponse{}, ErrUserNotFound
		}
		return dto.RequestResponse{}, err
	}
	if student.Role != models.RoleStudent {
		return dto.RequestResponse{}, ErrUnauthorized
	}

	category, err := s.categories.GetByName(ctx, payload.Category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RequestResponse{}, ErrCategoryNotFound
		}
		return dto.RequestResponse{}, err
	}

	advisorID, err := s.resolveAdvisor(ctx, student, category)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	if err := s.ledger.Reserve(ctx, student.ID, category.Name, payload.Points, 0); err != nil {
		var capErr *CapExceededError
		if errors.As(err, &capErr) {
			observability.CapRejections().WithLabelValues("submit").Inc()
		}
		return dto.RequestResponse{}, err
	}

	request := models.ActivityRequest{
		StudentID:    student.ID,
		Title:        payload.Title,
		Category:     category.Name,
		Points:       payload.Points,
		Proof:        payload.ProofRef,
		AssignedFAID: advisorID,
		Status:       models.StatusSubmitted,
	}

	if err := s.requests.Create(ctx, &request); err != nil {
		return dto.RequestResponse{}, err
	}

	s.recordAudit(ctx, actor, "request.submitted", request.ID, map[string]interface{}{
		"category":       category.Name,
		"points":         payload.Points,
		"assigned_fa_id": advisorID,
	})
	observability.Transitions().WithLabelValues("submit", "ok").Inc()

	created, err := s.requests.GetByID(ctx, request.ID)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	s.logger.Info().
		Uint("request_id", created.ID).
		Uint("student_id", student.ID).
		Uint("assigned_fa_id", advisorID).
		Str("category", category.Name).
		Msg("activity request submitted")

	return dto.NewRequestResponse(created), nil
}

// resolveAdvisor implements the routing priority: category override advisor
// first, the student's primary advisor second. Resolution happens exactly
// once, at submission; later registry changes never re-route in-flight work.
func (s *workflowService) resolveAdvisor(ctx context.Context, student models.User, category models.Category) (uint, error) {
	candidate := category.OverrideFAID
	if candidate == nil {
		candidate = student.PrimaryFAID
	}
	if candidate == nil {
		return 0, ErrNoAdvisorAssigned
	}

	advisor, err := s.users.GetByID(ctx, *candidate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNoAdvisorAssigned
		}
		return 0, err
	}
	if !advisor.IsAdvisor() {
		return 0, ErrNoAdvisorAssigned
	}

	return advisor.ID, nil
}

func (s *workflowService) Transition(ctx context.Context, actor Actor, requestID uint, payload dto.RequestTransitionRequest) (dto.RequestResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.RequestResponse{}, err
	}

	action := models.Action(payload.Action)
	edge, ok := models.TransitionFor(action)
	if !ok || action == models.ActionResubmit {
		return dto.RequestResponse{}, ErrInvalidTransition
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RequestResponse{}, ErrRequestNotFound
		}
		return dto.RequestResponse{}, err
	}

	// Authorization before state preconditions, so a wrong actor learns
	// nothing about the request's progress.
	if actor.Role != edge.Actor {
		return dto.RequestResponse{}, ErrUnauthorized
	}
	if edge.Actor == models.RoleFA && actor.ID != request.AssignedFAID {
		return dto.RequestResponse{}, ErrUnauthorized
	}

	if request.Status != edge.From {
		return dto.RequestResponse{}, ErrInvalidTransition
	}

	commentText := strings.TrimSpace(payload.Comment)
	if edge.CommentRequired && commentText == "" {
		return dto.RequestResponse{}, ErrCommentRequired
	}

	var comment *models.RequestComment
	if commentText != "" {
		author, err := s.users.GetByID(ctx, actor.ID)
		if err != nil {
			return dto.RequestResponse{}, err
		}
		comment = &models.RequestComment{
			AuthorID:   author.ID,
			AuthorName: author.Name,
			AuthorRole: author.Role,
			Text:       commentText,
		}
	}

	updated := request
	updated.Status = edge.To

	var credit *repository.LedgerCredit
	if action == models.ActionFinalizeApprove {
		credit = &repository.LedgerCredit{
			StudentID: request.StudentID,
			Category:  request.Category,
			Points:    request.Points,
			Cap:       models.PointsCap,
		}
	}

	if err := s.applyTransition(ctx, &updated, edge.From, comment, credit, action); err != nil {
		return dto.RequestResponse{}, err
	}

	if action == models.ActionFinalizeApprove {
		s.ledger.InvalidateSummary(ctx, request.StudentID)
	}

	s.recordAudit(ctx, actor, "request."+string(action), request.ID, map[string]interface{}{
		"from":   string(edge.From),
		"to":     string(edge.To),
		"points": request.Points,
	})
	observability.Transitions().WithLabelValues(string(action), "ok").Inc()

	result, err := s.requests.GetByID(ctx, request.ID)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	s.logger.Info().
		Uint("request_id", request.ID).
		Str("action", string(action)).
		Str("status", string(result.Status)).
		Msg("request transitioned")

	return dto.NewRequestResponse(result), nil
}

// applyTransition runs the conditional single-transaction update and maps
// persistence-level conflicts back into workflow errors. Finalization is
// traced since it carries the ledger credit.
func (s *workflowService) applyTransition(ctx context.Context, request *models.ActivityRequest, from models.RequestStatus, comment *models.RequestComment, credit *repository.LedgerCredit, action models.Action) error {
	if credit != nil {
		var span trace.Span
		ctx, span = s.tracer.Start(ctx, "workflow.finalize")
		span.SetAttributes(
			attribute.Int64("request.id", int64(request.ID)),
			attribute.String("request.category", request.Category),
			attribute.Int("request.points", request.Points),
		)
		defer span.End()

		err := s.requests.Transition(ctx, request, from, comment, credit)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "finalize_failed")
		} else {
			span.SetStatus(codes.Ok, "finalized")
		}
		return s.mapTransitionError(ctx, err, request, action)
	}

	err := s.requests.Transition(ctx, request, from, comment, nil)
	return s.mapTransitionError(ctx, err, request, action)
}

func (s *workflowService) mapTransitionError(ctx context.Context, err error, request *models.ActivityRequest, action models.Action) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrStaleStatus):
		observability.Transitions().WithLabelValues(string(action), "conflict").Inc()
		return ErrInvalidTransition
	case errors.Is(err, repository.ErrLedgerCapExceeded):
		observability.CapRejections().WithLabelValues("finalize").Inc()
		remaining, remErr := s.ledger.Remaining(ctx, request.StudentID, request.Category, request.ID)
		if remErr != nil {
			s.logger.Warn().Err(remErr).Uint("request_id", request.ID).Msg("failed to compute remaining capacity")
			remaining = 0
		}
		return &CapExceededError{Category: request.Category, Requested: request.Points, Remaining: remaining}
	default:
		return err
	}
}

func (s *workflowService) Resubmit(ctx context.Context, actor Actor, requestID uint, payload dto.RequestResubmitRequest) (dto.RequestResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.RequestResponse{}, err
	}

	edge, _ := models.TransitionFor(models.ActionResubmit)

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RequestResponse{}, ErrRequestNotFound
		}
		return dto.RequestResponse{}, err
	}

	if actor.Role != models.RoleStudent || actor.ID != request.StudentID {
		return dto.RequestResponse{}, ErrUnauthorized
	}

	if request.Status != edge.From {
		return dto.RequestResponse{}, ErrInvalidTransition
	}

	newPoints := request.Points
	if payload.Points != nil {
		newPoints = *payload.Points
	}

	// The request's own earlier reservation is excluded so revised points
	// replace it instead of stacking on top.
	if err := s.ledger.Reserve(ctx, request.StudentID, request.Category, newPoints, request.ID); err != nil {
		var capErr *CapExceededError
		if errors.As(err, &capErr) {
			observability.CapRejections().WithLabelValues("resubmit").Inc()
		}
		return dto.RequestResponse{}, err
	}

	student, err := s.users.GetByID(ctx, request.StudentID)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	text := "Resubmitted with replacement proof"
	if newPoints != request.Points {
		text = fmt.Sprintf("%s; points revised from %d to %d", text, request.Points, newPoints)
	}
	comment := &models.RequestComment{
		AuthorID:   student.ID,
		AuthorName: student.Name,
		AuthorRole: student.Role,
		Text:       text,
	}

	updated := request
	updated.Status = edge.To
	updated.Points = newPoints
	updated.Proof = payload.ProofRef

	if err := s.requests.Transition(ctx, &updated, edge.From, comment, nil); err != nil {
		return dto.RequestResponse{}, s.mapTransitionError(ctx, err, &updated, models.ActionResubmit)
	}

	s.recordAudit(ctx, actor, "request.resubmitted", request.ID, map[string]interface{}{
		"points":          newPoints,
		"previous_points": request.Points,
	})
	observability.Transitions().WithLabelValues(string(models.ActionResubmit), "ok").Inc()

	result, err := s.requests.GetByID(ctx, request.ID)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	s.logger.Info().
		Uint("request_id", request.ID).
		Int("points", newPoints).
		Msg("request resubmitted")

	return dto.NewRequestResponse(result), nil
}

func (s *workflowService) BulkApprove(ctx context.Context, actor Actor, payload dto.BulkApproveRequest) (dto.BulkApproveResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.BulkApproveResponse{}, err
	}

	if actor.Role != models.RoleFA {
		return dto.BulkApproveResponse{}, ErrUnauthorized
	}

	count, err := s.requests.BulkApprove(ctx, actor.ID, payload.RequestIDs)
	if err != nil {
		return dto.BulkApproveResponse{}, err
	}

	observability.BulkApproveBatch().Observe(float64(len(payload.RequestIDs)))
	if count > 0 {
		observability.Transitions().WithLabelValues(string(models.ActionApprove), "bulk").Add(float64(count))
	}

	s.recordAudit(ctx, actor, "request.bulk_approved", 0, map[string]interface{}{
		"requested_ids": payload.RequestIDs,
		"affected":      count,
	})

	s.logger.Info().
		Uint("fa_id", actor.ID).
		Int("requested", len(payload.RequestIDs)).
		Int64("affected", count).
		Msg("bulk approve applied")

	return dto.BulkApproveResponse{Count: count}, nil
}

func (s *workflowService) ListForStudent(ctx context.Context, studentID uint) ([]dto.RequestResponse, error) {
	requests, err := s.requests.List(ctx, repository.RequestFilter{StudentID: &studentID})
	if err != nil {
		return nil, err
	}

	return dto.NewRequestResponseSlice(requests), nil
}

func (s *workflowService) ListForFA(ctx context.Context, faID uint) ([]dto.RequestResponse, error) {
	status := models.StatusSubmitted
	requests, err := s.requests.List(ctx, repository.RequestFilter{AssignedFAID: &faID, Status: &status})
	if err != nil {
		return nil, err
	}

	return dto.NewRequestResponseSlice(requests), nil
}

func (s *workflowService) ListFinalQueue(ctx context.Context) ([]dto.RequestResponse, error) {
	status := models.StatusFAApproved
	requests, err := s.requests.List(ctx, repository.RequestFilter{Status: &status})
	if err != nil {
		return nil, err
	}

	return dto.NewRequestResponseSlice(requests), nil
}

func (s *workflowService) recordAudit(ctx context.Context, actor Actor, action string, requestID uint, metadata map[string]interface{}) {
	if s.audit == nil {
		return
	}

	entry := AuditEntry{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     action,
		EntityType: "activity_request",
		Metadata:   metadata,
	}
	if requestID != 0 {
		id := requestID
		entry.EntityID = &id
	}

	_ = s.audit.Record(ctx, entry)
}
