package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
)

var (
	// ErrStaleStatus is returned when a conditional status update matched no
	// rows, meaning the request changed concurrently or the precondition did
	// not hold against the stored state.
	ErrStaleStatus = errors.New("request status changed concurrently")
	// ErrLedgerCapExceeded is returned when the increment-with-check against
	// the ledger would push the finalized total past the cap. The surrounding
	// transaction is rolled back, leaving the request untouched.
	ErrLedgerCapExceeded = errors.New("ledger points cap exceeded")
)

// RequestFilter narrows activity request queries.
type RequestFilter struct {
	StudentID    *uint
	AssignedFAID *uint
	Status       *models.RequestStatus
	Category     *string
}

// LedgerCredit describes the ledger increment performed atomically with a
// finalize-approve transition.
type LedgerCredit struct {
	StudentID uint
	Category  string
	Points    int
	Cap       int
}

// RequestRepository defines data operations for activity requests. Transition
// is the only mutation path after creation: it applies the status change, the
// optional comment and the optional ledger credit in a single transaction,
// conditioned on the previously observed status.
type RequestRepository interface {
	List(ctx context.Context, filter RequestFilter) ([]models.ActivityRequest, error)
	GetByID(ctx context.Context, id uint) (models.ActivityRequest, error)
	Create(ctx context.Context, request *models.ActivityRequest) error
	SumOutstanding(ctx context.Context, studentID uint, category string, excludeID uint) (int, error)
	Transition(ctx context.Context, request *models.ActivityRequest, from models.RequestStatus, comment *models.RequestComment, credit *LedgerCredit) error
	BulkApprove(ctx context.Context, faID uint, ids []uint) (int64, error)
}

type requestRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRequestRepository instantiates the repository.
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db, now: time.Now}
}

func (r *requestRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.ActivityRequest{}).
		Preload("Student").
		Preload("AssignedFA").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("request_comments.created_at ASC, request_comments.id ASC")
		})
}

func (r *requestRepository) List(ctx context.Context, filter RequestFilter) ([]models.ActivityRequest, error) {
	query := r.baseQuery(ctx)

	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}

	if filter.AssignedFAID != nil {
		query = query.Where("assigned_fa_id = ?", *filter.AssignedFAID)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var requests []models.ActivityRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *requestRepository) GetByID(ctx context.Context, id uint) (models.ActivityRequest, error) {
	var request models.ActivityRequest
	if err := r.baseQuery(ctx).First(&request, id).Error; err != nil {
		return models.ActivityRequest{}, err
	}

	return request, nil
}

func (r *requestRepository) Create(ctx context.Context, request *models.ActivityRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) SumOutstanding(ctx context.Context, studentID uint, category string, excludeID uint) (int, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.ActivityRequest{}).
		Select("COALESCE(SUM(points), 0)").
		Where("student_id = ?", studentID).
		Where("category = ?", category).
		Where("status NOT IN ?", []models.RequestStatus{models.StatusRejected, models.StatusAdminFinalized})

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Scan(&total).Error; err != nil {
		return 0, err
	}

	return int(total), nil
}

func (r *requestRepository) Transition(ctx context.Context, request *models.ActivityRequest, from models.RequestStatus, comment *models.RequestComment, credit *LedgerCredit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ActivityRequest{}).
			Where("id = ?", request.ID).
			Where("status = ?", from).
			Updates(map[string]interface{}{
				"status":     request.Status,
				"points":     request.Points,
				"proof":      request.Proof,
				"updated_at": r.now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStaleStatus
		}

		if comment != nil {
			comment.RequestID = request.ID
			if err := tx.Create(comment).Error; err != nil {
				return err
			}
		}

		if credit != nil {
			if err := creditLedger(tx, credit); err != nil {
				return err
			}
		}

		return nil
	})
}

// creditLedger performs the atomic increment-with-check the cap invariant
// requires under concurrent finalizations. The row is created lazily; the
// conditional UPDATE only matches while the resulting total stays within cap.
func creditLedger(tx *gorm.DB, credit *LedgerCredit) error {
	entry := models.PointsLedgerEntry{
		StudentID: credit.StudentID,
		Category:  credit.Category,
		Points:    0,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "category"}},
		DoNothing: true,
	}).Create(&entry).Error; err != nil {
		return err
	}

	result := tx.Model(&models.PointsLedgerEntry{}).
		Where("student_id = ?", credit.StudentID).
		Where("category = ?", credit.Category).
		Where("points + ? <= ?", credit.Points, credit.Cap).
		Update("points", gorm.Expr("points + ?", credit.Points))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLedgerCapExceeded
	}

	return nil
}

func (r *requestRepository) BulkApprove(ctx context.Context, faID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&models.ActivityRequest{}).
		Where("id IN ?", ids).
		Where("assigned_fa_id = ?", faID).
		Where("status = ?", models.StatusSubmitted).
		Updates(map[string]interface{}{
			"status":     models.StatusFAApproved,
			"updated_at": r.now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
