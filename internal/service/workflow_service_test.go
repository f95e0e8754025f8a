package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/dto"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/repository"
)

type memoryUserRepo struct {
	users map[uint]models.User
}

func newMemoryUserRepo(users ...models.User) *memoryUserRepo {
	repo := &memoryUserRepo{users: make(map[uint]models.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (m *memoryUserRepo) GetByID(ctx context.Context, id uint) (models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *memoryUserRepo) List(ctx context.Context, filter repository.UserFilter) ([]models.User, error) {
	results := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		results = append(results, user)
	}
	return results, nil
}

func (m *memoryUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.ID] = *user
	return nil
}

type memoryCategoryRepo struct {
	categories map[uint]models.Category
	nextID     uint
}

func newMemoryCategoryRepo(categories ...models.Category) *memoryCategoryRepo {
	repo := &memoryCategoryRepo{categories: make(map[uint]models.Category), nextID: 1}
	for _, category := range categories {
		if category.ID >= repo.nextID {
			repo.nextID = category.ID + 1
		}
		repo.categories[category.ID] = category
	}
	return repo
}

func (m *memoryCategoryRepo) GetByID(ctx context.Context, id uint) (models.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return models.Category{}, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (m *memoryCategoryRepo) GetByName(ctx context.Context, name string) (models.Category, error) {
	for _, category := range m.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return models.Category{}, gorm.ErrRecordNotFound
}

func (m *memoryCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	results := make([]models.Category, 0, len(m.categories))
	for _, category := range m.categories {
		results = append(results, category)
	}
	return results, nil
}

func (m *memoryCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	category.ID = m.nextID
	category.CreatedAt = time.Now()
	m.categories[m.nextID] = *category
	m.nextID++
	return nil
}

func (m *memoryCategoryRepo) SetOverrideFA(ctx context.Context, id uint, faID *uint) error {
	category, ok := m.categories[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	category.OverrideFAID = faID
	category.OverrideFA = nil
	m.categories[id] = category
	return nil
}

// memoryRequestRepo backs both the request repository and the ledger
// repository so the cap math in tests reads the same state the transition
// writes.
type memoryRequestRepo struct {
	requests map[uint]models.ActivityRequest
	ledger   map[string]int
	nextID   uint
}

func newMemoryRequestRepo() *memoryRequestRepo {
	return &memoryRequestRepo{
		requests: make(map[uint]models.ActivityRequest),
		ledger:   make(map[string]int),
		nextID:   1,
	}
}

func ledgerKey(studentID uint, category string) string {
	return fmt.Sprintf("%d:%s", studentID, category)
}

func (m *memoryRequestRepo) List(ctx context.Context, filter repository.RequestFilter) ([]models.ActivityRequest, error) {
	results := make([]models.ActivityRequest, 0, len(m.requests))
	for _, request := range m.requests {
		if filter.StudentID != nil && request.StudentID != *filter.StudentID {
			continue
		}
		if filter.AssignedFAID != nil && request.AssignedFAID != *filter.AssignedFAID {
			continue
		}
		if filter.Status != nil && request.Status != *filter.Status {
			continue
		}
		if filter.Category != nil && request.Category != *filter.Category {
			continue
		}
		results = append(results, request)
	}
	return results, nil
}

func (m *memoryRequestRepo) GetByID(ctx context.Context, id uint) (models.ActivityRequest, error) {
	request, ok := m.requests[id]
	if !ok {
		return models.ActivityRequest{}, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (m *memoryRequestRepo) Create(ctx context.Context, request *models.ActivityRequest) error {
	request.ID = m.nextID
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	m.requests[m.nextID] = *request
	m.nextID++
	return nil
}

func (m *memoryRequestRepo) SumOutstanding(ctx context.Context, studentID uint, category string, excludeID uint) (int, error) {
	total := 0
	for _, request := range m.requests {
		if request.StudentID != studentID || request.Category != category {
			continue
		}
		if !request.Status.CountsAgainstCap() {
			continue
		}
		if excludeID != 0 && request.ID == excludeID {
			continue
		}
		total += request.Points
	}
	return total, nil
}

func (m *memoryRequestRepo) Transition(ctx context.Context, request *models.ActivityRequest, from models.RequestStatus, comment *models.RequestComment, credit *repository.LedgerCredit) error {
	stored, ok := m.requests[request.ID]
	if !ok || stored.Status != from {
		return repository.ErrStaleStatus
	}

	if credit != nil {
		key := ledgerKey(credit.StudentID, credit.Category)
		if m.ledger[key]+credit.Points > credit.Cap {
			return repository.ErrLedgerCapExceeded
		}
		m.ledger[key] += credit.Points
	}

	stored.Status = request.Status
	stored.Points = request.Points
	stored.Proof = request.Proof
	stored.UpdatedAt = time.Now()
	if comment != nil {
		comment.RequestID = request.ID
		comment.CreatedAt = time.Now()
		stored.Comments = append(stored.Comments, *comment)
	}
	m.requests[request.ID] = stored
	return nil
}

func (m *memoryRequestRepo) BulkApprove(ctx context.Context, faID uint, ids []uint) (int64, error) {
	var count int64
	for _, id := range ids {
		request, ok := m.requests[id]
		if !ok || request.AssignedFAID != faID || request.Status != models.StatusSubmitted {
			continue
		}
		request.Status = models.StatusFAApproved
		request.UpdatedAt = time.Now()
		m.requests[id] = request
		count++
	}
	return count, nil
}

func (m *memoryRequestRepo) FinalizedPoints(ctx context.Context, studentID uint, category string) (int, error) {
	return m.ledger[ledgerKey(studentID, category)], nil
}

func (m *memoryRequestRepo) ListForStudent(ctx context.Context, studentID uint) ([]models.PointsLedgerEntry, error) {
	entries := make([]models.PointsLedgerEntry, 0)
	for key, points := range m.ledger {
		var id uint
		var category string
		if _, err := fmt.Sscanf(key, "%d:%s", &id, &category); err != nil {
			continue
		}
		if id != studentID {
			continue
		}
		entries = append(entries, models.PointsLedgerEntry{StudentID: studentID, Category: category, Points: points})
	}
	return entries, nil
}

type recordingAuditor struct {
	entries []AuditEntry
}

func (r *recordingAuditor) Record(ctx context.Context, entry AuditEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

type workflowFixture struct {
	users      *memoryUserRepo
	categories *memoryCategoryRepo
	requests   *memoryRequestRepo
	auditor    *recordingAuditor
	svc        WorkflowService
}

// newWorkflowFixture seeds a student (1) whose primary advisor is FA 2,
// another advisor FA 3, an admin 4, a "sports" category without an override
// and a "cultural" category overridden to FA 3.
func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	faID := uint(2)
	overrideID := uint(3)

	users := newMemoryUserRepo(
		models.User{ID: 1, Name: "Asha Nair", Email: "asha@example.edu", Role: models.RoleStudent, PrimaryFAID: &faID},
		models.User{ID: 2, Name: "Prof. Menon", Email: "menon@example.edu", Role: models.RoleFA},
		models.User{ID: 3, Name: "Prof. Iyer", Email: "iyer@example.edu", Role: models.RoleFA},
		models.User{ID: 4, Name: "Registrar", Email: "registrar@example.edu", Role: models.RoleAdmin},
		models.User{ID: 5, Name: "Rohit Shah", Email: "rohit@example.edu", Role: models.RoleStudent},
	)
	categories := newMemoryCategoryRepo(
		models.Category{ID: 1, Name: "sports"},
		models.Category{ID: 2, Name: "cultural", OverrideFAID: &overrideID},
	)
	requests := newMemoryRequestRepo()
	auditor := &recordingAuditor{}

	validate := validator.New(validator.WithRequiredStructEnabled())
	ledger := NewLedgerService(requests, requests, nil, time.Minute, testLogger())
	svc := NewWorkflowService(requests, users, categories, ledger, auditor, validate, testLogger())

	return &workflowFixture{
		users:      users,
		categories: categories,
		requests:   requests,
		auditor:    auditor,
		svc:        svc,
	}
}

func submitPayload(category string, points int) dto.RequestSubmitRequest {
	return dto.RequestSubmitRequest{
		Title:    "Inter-college tournament",
		Category: category,
		Points:   points,
		ProofRef: "https://files.example.edu/proof.pdf",
	}
}

func TestWorkflowSubmitRoutesToPrimaryAdvisor(t *testing.T) {
	f := newWorkflowFixture(t)

	created, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("sports", 4))
	require.NoError(t, err)
	require.Equal(t, uint(2), created.AssignedFAID)
	require.Equal(t, models.StatusSubmitted, created.Status)
}

func TestWorkflowSubmitOverrideBeatsPrimary(t *testing.T) {
	f := newWorkflowFixture(t)

	created, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("cultural", 4))
	require.NoError(t, err)
	require.Equal(t, uint(3), created.AssignedFAID)
}

func TestWorkflowSubmitNoAdvisorAvailable(t *testing.T) {
	f := newWorkflowFixture(t)

	// Student 5 has no primary advisor and "sports" has no override.
	_, err := f.svc.Submit(context.Background(), Actor{ID: 5, Role: models.RoleStudent}, submitPayload("sports", 4))
	require.ErrorIs(t, err, ErrNoAdvisorAssigned)
}

func TestWorkflowSubmitUnknownCategory(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("esports", 4))
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestWorkflowSubmitRejectsOverCapReservation(t *testing.T) {
	f := newWorkflowFixture(t)
	actor := Actor{ID: 1, Role: models.RoleStudent}

	_, err := f.svc.Submit(context.Background(), actor, submitPayload("sports", 6))
	require.NoError(t, err)

	_, err = f.svc.Submit(context.Background(), actor, submitPayload("sports", 6))
	var capErr *CapExceededError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, "sports", capErr.Category)
	require.Equal(t, 6, capErr.Requested)
	require.Equal(t, 4, capErr.Remaining)

	// The remaining capacity is still usable.
	_, err = f.svc.Submit(context.Background(), actor, submitPayload("sports", 4))
	require.NoError(t, err)
}

func TestWorkflowSubmitRecordsAudit(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("sports", 4))
	require.NoError(t, err)
	require.Len(t, f.auditor.entries, 1)
	require.Equal(t, "request.submitted", f.auditor.entries[0].Action)
	require.Equal(t, uint(1), f.auditor.entries[0].ActorID)
}

func TestWorkflowTransitionWrongAdvisorUnauthorized(t *testing.T) {
	f := newWorkflowFixture(t)

	created, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("sports", 4))
	require.NoError(t, err)

	// FA 3 is a valid advisor but not the one this request routed to.
	_, err = f.svc.Transition(context.Background(), Actor{ID: 3, Role: models.RoleFA}, created.ID, dto.RequestTransitionRequest{Action: "approve"})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestWorkflowTransitionWrongRoleUnauthorized(t *testing.T) {
	f := newWorkflowFixture(t)

	created, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("sports", 4))
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), Actor{ID: 4, Role: models.RoleAdmin}, created.ID, dto.RequestTransitionRequest{Action: "approve"})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestWorkflowTransitionIllegalFromCurrentStatus(t *testing.T) {
	f := newWorkflowFixture(t)
	fa := Actor{ID: 2, Role: models.RoleFA}

	created, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("sports", 4))
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), fa, created.ID, dto.RequestTransitionRequest{Action: "approve"})
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), fa, created.ID, dto.RequestTransitionRequest{Action: "approve"})
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestWorkflowRequestInfoRequiresComment(t *testing.T) {
	f := newWorkflowFixture(t)
	fa := Actor{ID: 2, Role: models.RoleFA}

	created, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("sports", 4))
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), fa, created.ID, dto.RequestTransitionRequest{Action: "request-info"})
	require.ErrorIs(t, err, ErrCommentRequired)

	updated, err := f.svc.Transition(context.Background(), fa, created.ID, dto.RequestTransitionRequest{Action: "request-info", Comment: "Certificate is illegible, please rescan"})
	require.NoError(t, err)
	require.Equal(t, models.StatusMoreInfoRequired, updated.Status)
	require.Len(t, updated.Comments, 1)
	require.Equal(t, "Prof. Menon", updated.Comments[0].AuthorName)
}

func TestWorkflowFinalizeApproveCreditsLedger(t *testing.T) {
	f := newWorkflowFixture(t)
	student := Actor{ID: 1, Role: models.RoleStudent}
	fa := Actor{ID: 2, Role: models.RoleFA}
	admin := Actor{ID: 4, Role: models.RoleAdmin}

	created, err := f.svc.Submit(context.Background(), student, submitPayload("sports", 4))
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), fa, created.ID, dto.RequestTransitionRequest{Action: "approve"})
	require.NoError(t, err)

	finalized, err := f.svc.Transition(context.Background(), admin, created.ID, dto.RequestTransitionRequest{Action: "finalize-approve"})
	require.NoError(t, err)
	require.Equal(t, models.StatusAdminFinalized, finalized.Status)

	points, err := f.requests.FinalizedPoints(context.Background(), 1, "sports")
	require.NoError(t, err)
	require.Equal(t, 4, points)

	// Terminal states accept no further actions.
	_, err = f.svc.Transition(context.Background(), admin, created.ID, dto.RequestTransitionRequest{Action: "finalize-reject"})
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestWorkflowFinalizeRejectLeavesLedgerUntouched(t *testing.T) {
	f := newWorkflowFixture(t)
	fa := Actor{ID: 2, Role: models.RoleFA}
	admin := Actor{ID: 4, Role: models.RoleAdmin}

	created, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("sports", 4))
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), fa, created.ID, dto.RequestTransitionRequest{Action: "approve"})
	require.NoError(t, err)

	rejected, err := f.svc.Transition(context.Background(), admin, created.ID, dto.RequestTransitionRequest{Action: "finalize-reject", Comment: "Event not recognized"})
	require.NoError(t, err)
	require.Equal(t, models.StatusRejected, rejected.Status)

	points, err := f.requests.FinalizedPoints(context.Background(), 1, "sports")
	require.NoError(t, err)
	require.Zero(t, points)
}

func TestWorkflowFinalizeApproveBlockedByCap(t *testing.T) {
	f := newWorkflowFixture(t)
	fa := Actor{ID: 2, Role: models.RoleFA}
	admin := Actor{ID: 4, Role: models.RoleAdmin}

	// Pre-credit the ledger so the pending request no longer fits.
	f.requests.ledger[ledgerKey(1, "sports")] = 8

	created, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("sports", 2))
	require.NoError(t, err)
	_, err = f.svc.Transition(context.Background(), fa, created.ID, dto.RequestTransitionRequest{Action: "approve"})
	require.NoError(t, err)

	f.requests.ledger[ledgerKey(1, "sports")] = 9

	_, err = f.svc.Transition(context.Background(), admin, created.ID, dto.RequestTransitionRequest{Action: "finalize-approve"})
	var capErr *CapExceededError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, 2, capErr.Requested)

	// The request stays in the admin queue.
	stored, err := f.requests.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusFAApproved, stored.Status)
}

func TestWorkflowResubmitReplacesOwnReservation(t *testing.T) {
	f := newWorkflowFixture(t)
	student := Actor{ID: 1, Role: models.RoleStudent}
	fa := Actor{ID: 2, Role: models.RoleFA}

	created, err := f.svc.Submit(context.Background(), student, submitPayload("sports", 6))
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), fa, created.ID, dto.RequestTransitionRequest{Action: "request-info", Comment: "Need the organizer's letter"})
	require.NoError(t, err)

	// 9 would not fit on top of the original 6, but the resubmission
	// replaces that reservation rather than stacking on it.
	revised := 9
	updated, err := f.svc.Resubmit(context.Background(), student, created.ID, dto.RequestResubmitRequest{
		Points:   &revised,
		ProofRef: "https://files.example.edu/proof-v2.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusSubmitted, updated.Status)
	require.Equal(t, 9, updated.Points)
	require.Equal(t, "https://files.example.edu/proof-v2.pdf", updated.Proof)

	// The trail holds the advisor's ask and the system resubmission note.
	require.Len(t, updated.Comments, 2)
	require.Contains(t, updated.Comments[1].Text, "points revised from 6 to 9")
}

func TestWorkflowResubmitOnlyByOwner(t *testing.T) {
	f := newWorkflowFixture(t)
	fa := Actor{ID: 2, Role: models.RoleFA}

	created, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("sports", 4))
	require.NoError(t, err)
	_, err = f.svc.Transition(context.Background(), fa, created.ID, dto.RequestTransitionRequest{Action: "request-info", Comment: "More detail please"})
	require.NoError(t, err)

	_, err = f.svc.Resubmit(context.Background(), Actor{ID: 5, Role: models.RoleStudent}, created.ID, dto.RequestResubmitRequest{ProofRef: "https://files.example.edu/other.pdf"})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestWorkflowResubmitRequiresMoreInfoState(t *testing.T) {
	f := newWorkflowFixture(t)
	student := Actor{ID: 1, Role: models.RoleStudent}

	created, err := f.svc.Submit(context.Background(), student, submitPayload("sports", 4))
	require.NoError(t, err)

	_, err = f.svc.Resubmit(context.Background(), student, created.ID, dto.RequestResubmitRequest{ProofRef: "https://files.example.edu/proof-v2.pdf"})
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestWorkflowTransitionRejectsResubmitAction(t *testing.T) {
	f := newWorkflowFixture(t)

	created, err := f.svc.Submit(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, submitPayload("sports", 4))
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), Actor{ID: 1, Role: models.RoleStudent}, created.ID, dto.RequestTransitionRequest{Action: "resubmit"})
	require.Error(t, err)
}

func TestWorkflowBulkApproveSkipsIneligible(t *testing.T) {
	f := newWorkflowFixture(t)
	student := Actor{ID: 1, Role: models.RoleStudent}
	fa := Actor{ID: 2, Role: models.RoleFA}

	first, err := f.svc.Submit(context.Background(), student, submitPayload("sports", 2))
	require.NoError(t, err)
	second, err := f.svc.Submit(context.Background(), student, submitPayload("sports", 3))
	require.NoError(t, err)
	// Routed to FA 3, not FA 2.
	other, err := f.svc.Submit(context.Background(), student, submitPayload("cultural", 2))
	require.NoError(t, err)

	result, err := f.svc.BulkApprove(context.Background(), fa, dto.BulkApproveRequest{
		RequestIDs: []uint{first.ID, second.ID, other.ID, 999},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), result.Count)

	// Re-running the same batch moves nothing.
	result, err = f.svc.BulkApprove(context.Background(), fa, dto.BulkApproveRequest{
		RequestIDs: []uint{first.ID, second.ID},
	})
	require.NoError(t, err)
	require.Zero(t, result.Count)
}

func TestWorkflowBulkApproveRequiresAdvisorRole(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.svc.BulkApprove(context.Background(), Actor{ID: 4, Role: models.RoleAdmin}, dto.BulkApproveRequest{RequestIDs: []uint{1}})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestWorkflowQueues(t *testing.T) {
	f := newWorkflowFixture(t)
	student := Actor{ID: 1, Role: models.RoleStudent}
	fa := Actor{ID: 2, Role: models.RoleFA}

	first, err := f.svc.Submit(context.Background(), student, submitPayload("sports", 2))
	require.NoError(t, err)
	_, err = f.svc.Submit(context.Background(), student, submitPayload("sports", 3))
	require.NoError(t, err)

	queue, err := f.svc.ListForFA(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, queue, 2)

	_, err = f.svc.Transition(context.Background(), fa, first.ID, dto.RequestTransitionRequest{Action: "approve"})
	require.NoError(t, err)

	queue, err = f.svc.ListForFA(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, queue, 1)

	finalQueue, err := f.svc.ListFinalQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, finalQueue, 1)
	require.Equal(t, first.ID, finalQueue[0].ID)

	mine, err := f.svc.ListForStudent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
}

func TestWorkflowTransitionUnknownRequest(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.svc.Transition(context.Background(), Actor{ID: 2, Role: models.RoleFA}, 404, dto.RequestTransitionRequest{Action: "approve"})
	require.ErrorIs(t, err, ErrRequestNotFound)
}
